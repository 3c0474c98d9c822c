package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
)

const (
	transcribePrompt = "Transcribe this voice message verbatim. Reply with the spoken words only. If nothing intelligible is said, reply with an empty message."

	defaultAudioMimeType = "audio/ogg"
)

// Transcribe converts audio to text. An unintelligible recording yields "" and no error.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", nil
	}
	if mimeType == "" {
		mimeType = defaultAudioMimeType
	}

	resp, err := c.GenerateContent(ctx, GenerateRequest{
		Contents: []Content{
			{
				Role: RoleUser,
				Parts: []Part{
					{Text: transcribePrompt},
					{InlineData: &Blob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(audio)}},
				},
			},
		},
		GenerationConfig: &GenerationConfig{Temperature: 0},
	})
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}

	return resp.Text(), nil
}
