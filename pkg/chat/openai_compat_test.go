package chat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/estatebot/pkg/chat"
)

func TestOpenAICompatBackend_Name(t *testing.T) {
	t.Parallel()
	b := chat.NewOpenAICompatBackend("http://localhost:8000", "mistral")
	assert.Equal(t, "openai_compat", b.Name())
}

func TestOpenAICompatBackend_Generate(t *testing.T) {
	t.Parallel()

	successResponse := `{
		"choices": [{"message": {"role": "assistant", "content": "Mortgage rates vary by lender."}}],
		"model": "gpt-3.5-turbo",
		"usage": {"prompt_tokens": 10, "completion_tokens": 6, "total_tokens": 16}
	}`

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		req        chat.GenerateRequest
		apiKey     string
		wantErr    bool
		wantErrMsg string
		wantResp   string
		wantUsage  int
	}{
		{
			name: "successful generation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)

				var req map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "gpt-3.5-turbo", req["model"])
				msgs := req["messages"].([]any)
				assert.Len(t, msgs, 1)
				first := msgs[0].(map[string]any)
				assert.Equal(t, "user", first["role"])
				assert.Equal(t, "Tell me about financing options", first["content"])
				assert.NotContains(t, req, "temperature")
				assert.NotContains(t, req, "max_tokens")

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req:       chat.GenerateRequest{Prompt: "Tell me about financing options"},
			wantResp:  "Mortgage rates vary by lender.",
			wantUsage: 16,
		},
		{
			name: "persona and generation settings sent",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				msgs := req["messages"].([]any)
				assert.Len(t, msgs, 2)
				first := msgs[0].(map[string]any)
				assert.Equal(t, "system", first["role"])
				assert.Equal(t, "You are a realtor", first["content"])
				assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
				assert.InDelta(t, 0.7, req["temperature"], 1e-9)
				assert.InDelta(t, 167, req["max_tokens"], 1e-9)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req: chat.GenerateRequest{
				System:      "You are a realtor",
				Prompt:      "hello",
				Temperature: 0.7,
				MaxTokens:   167,
			},
			wantResp: "Mortgage rates vary by lender.",
		},
		{
			name:   "auth header sent when key provided",
			apiKey: "sk-test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer sk-test-key", r.Header.Get("Authorization"))
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req:      chat.GenerateRequest{Prompt: "test"},
			wantResp: "Mortgage rates vary by lender.",
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached"}}`))
			},
			req:        chat.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "openai-compatible API error (status 429)",
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"choices":[],"model":"test","usage":{}}`))
			},
			req:        chat.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "empty choices",
		},
		{
			name: "invalid JSON response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`not json`))
			},
			req:        chat.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "parsing openai-compatible response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			opts := []chat.OpenAICompatOption{
				chat.WithOpenAICompatHTTPClient(srv.Client()),
				chat.WithOpenAICompatAPIKey(tt.apiKey),
			}

			backend := chat.NewOpenAICompatBackend(srv.URL, "", opts...)
			resp, err := backend.Generate(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			if tt.wantUsage > 0 {
				assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
			}
		})
	}
}

func TestOpenAICompatBackend_StatusErrorType(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`invalid key`))
	}))
	defer srv.Close()

	backend := chat.NewOpenAICompatBackend(srv.URL, "gpt-4o-mini")
	_, err := backend.Generate(context.Background(), chat.GenerateRequest{Prompt: "hi"})

	var statusErr *chat.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "invalid key", statusErr.Body)
}
