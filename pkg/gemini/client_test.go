package gemini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"calendar-assistant/pkg/gemini"
)

func newMockServer(t *testing.T, reply func(req gemini.GenerateRequest) (int, string)) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		status, body := reply(req)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func candidate(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	})
	return string(b)
}

func TestClient_GenerateContent(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(candidate("mocked response string")))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL + "/")
	client.SetModel("test-model")

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
		if gotPath != "/models/test-model:generateContent" {
			t.Errorf("unexpected path: %s", gotPath)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Empty model keeps default", func(t *testing.T) {
		c := gemini.NewClient("k")
		c.SetModel("")
		if c.Model() != gemini.DefaultModel {
			t.Errorf("model = %s", c.Model())
		}
	})
}

func TestResponseText(t *testing.T) {
	var nilResp *gemini.GenerateResponse
	if nilResp.Text() != "" {
		t.Error("nil response should have empty text")
	}

	resp := &gemini.GenerateResponse{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Parts: []gemini.Part{{Text: " category: list\n"}, {Text: "subcategory: none "}}},
	}}}
	if got := resp.Text(); got != "category: list\nsubcategory: none" {
		t.Errorf("Text() = %q", got)
	}
}

func TestClient_Transcribe(t *testing.T) {
	audio := []byte("OggS-fake-audio")

	ts := newMockServer(t, func(req gemini.GenerateRequest) (int, string) {
		parts := req.Contents[0].Parts
		if len(parts) != 2 || parts[1].InlineData == nil {
			return http.StatusBadRequest, ""
		}
		if parts[1].InlineData.MimeType != "audio/ogg" {
			return http.StatusBadRequest, ""
		}
		data, err := base64.StdEncoding.DecodeString(parts[1].InlineData.Data)
		if err != nil || string(data) != string(audio) {
			return http.StatusBadRequest, ""
		}
		return http.StatusOK, candidate("Dentist on Friday at two")
	})

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Audio is sent inline", func(t *testing.T) {
		text, err := client.Transcribe(context.Background(), audio, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Dentist on Friday at two" {
			t.Errorf("unexpected transcript: %q", text)
		}
	})

	t.Run("Empty audio skips the call", func(t *testing.T) {
		text, err := client.Transcribe(context.Background(), nil, "audio/ogg")
		if err != nil || text != "" {
			t.Errorf("expected empty transcript without error, got %q, %v", text, err)
		}
	})

	t.Run("No candidates gives empty text", func(t *testing.T) {
		empty := newMockServer(t, func(gemini.GenerateRequest) (int, string) {
			return http.StatusOK, `{"candidates":[]}`
		})
		c := gemini.NewClient("test-api-key")
		c.SetAPIURL(empty.URL)

		text, err := c.Transcribe(context.Background(), audio, "audio/ogg")
		if err != nil || text != "" {
			t.Errorf("expected empty transcript without error, got %q, %v", text, err)
		}
	})
}
