package router

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/pkg/gemini"
)

// Classify asks the model for the three-line classification of message.
// The raw answer is returned with code fences stripped; validation happens
// in intent.Parse.
func (r *SemanticRouter) Classify(ctx context.Context, message string, now time.Time) (string, error) {
	prompt := fmt.Sprintf(PromptRouterSystem, now.Format(nowLayout), message)

	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role: gemini.RoleUser,
				Parts: []gemini.Part{
					{Text: prompt},
				},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: RouterTemperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	responseText := stripFences(resp.Text())
	if responseText == "" {
		r.l.Warnf(ctx, "%s: empty LLM response", LogPrefixClassify)
		return "", fmt.Errorf("%s: %w", LogPrefixClassify, gemini.ErrEmptyResponse)
	}

	r.l.Debugf(ctx, "%s: raw classification %q", LogPrefixClassify, responseText)
	return responseText, nil
}

// stripFences removes markdown code blocks if present (```text ... ```).
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.Index(s, "\n"); nl >= 0 && !strings.Contains(s[:nl], ":") {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
