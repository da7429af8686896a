package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiServer(t *testing.T, handler http.HandlerFunc) *GeminiGateway {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGeminiGateway(GeminiConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
	})
}

func TestGeminiGenerate(t *testing.T) {
	gateway := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Equal(t, "Summarize this case.", req.Contents[0].Parts[0].Text)

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "Summary: theft case."}},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	text, err := gateway.Generate(context.Background(), "Summarize this case.")
	require.NoError(t, err)
	assert.Equal(t, "Summary: theft case.", text)
}

func TestGeminiGenerateEmptyCandidates(t *testing.T) {
	for name, body := range map[string]string{
		"no candidates": `{}`,
		"empty list":    `{"candidates": []}`,
		"missing parts": `{"candidates": [{"content": {"role": "model"}}]}`,
		"empty text":    `{"candidates": [{"content": {"parts": [{"text": ""}]}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			gateway := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			})

			text, err := gateway.Generate(context.Background(), "prompt")
			require.NoError(t, err)
			assert.Equal(t, NoResponseFallback, text)
		})
	}
}

func TestGeminiGenerateErrorStatus(t *testing.T) {
	gateway := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := gateway.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrGateway)
}

func TestGeminiGenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gateway := NewGeminiGateway(GeminiConfig{BaseURL: srv.URL, APIKey: "test-key"})
	srv.Close()

	_, err := gateway.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrGateway)
}

func TestGeminiGenerateMalformedJson(t *testing.T) {
	gateway := geminiServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := gateway.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrGateway)
}
