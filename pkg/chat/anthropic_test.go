package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/estatebot/pkg/chat"
)

func TestAnthropicBackend_Name(t *testing.T) {
	t.Parallel()
	b := chat.NewAnthropicBackend()
	assert.Equal(t, "anthropic", b.Name())
}

func TestAnthropicBackend_Generate(t *testing.T) {
	t.Parallel()

	successResponse := `{
		"content": [{"type": "text", "text": "Berlin has many listings."}],
		"model": "claude-3-5-haiku-latest",
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`

	tests := []struct {
		name       string
		apiKey     string
		handler    http.HandlerFunc
		req        chat.GenerateRequest
		wantErr    bool
		wantErrMsg string
		wantResp   string
		wantUsage  int
	}{
		{
			name:   "successful generation",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
				assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

				var req map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "You are a realtor", req["system"])
				assert.InDelta(t, 50, req["max_tokens"], 1e-9)
				assert.InDelta(t, 0.2, req["temperature"], 1e-9)
				msgs := req["messages"].([]any)
				assert.Len(t, msgs, 1)
				assert.Equal(t, "What is a good area?", msgs[0].(map[string]any)["content"])

				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req: chat.GenerateRequest{
				System:      "You are a realtor",
				Prompt:      "What is a good area?",
				Temperature: 0.2,
				MaxTokens:   50,
			},
			wantResp:  "Berlin has many listings.",
			wantUsage: 15,
		},
		{
			name:   "default token budget without persona",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var req map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.InDelta(t, 256, req["max_tokens"], 1e-9)
				assert.NotContains(t, req, "system")
				assert.NotContains(t, req, "temperature")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{
					"content": [
						{"type": "text", "text": "Two "},
						{"type": "tool_use"},
						{"type": "text", "text": "blocks."}
					],
					"model": "m",
					"usage": {"input_tokens": 1, "output_tokens": 2}
				}`))
			},
			req:       chat.GenerateRequest{Prompt: "test"},
			wantResp:  "Two blocks.",
			wantUsage: 3,
		},
		{
			name:       "missing API key",
			apiKey:     "",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			req:        chat.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "ANTHROPIC_API_KEY",
		},
		{
			name:   "rate limited 429",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{
					"error": {"type": "rate_limit_error", "message": "rate limit exceeded"}
				}`))
			},
			req:        chat.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "rate_limit_error",
		},
		{
			name:   "empty content",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"content":[],"model":"m","usage":{}}`))
			},
			req:        chat.GenerateRequest{Prompt: "test"},
			wantErr:    true,
			wantErrMsg: "empty reply",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			backend := chat.NewAnthropicBackend(
				chat.WithAnthropicAPIKey(tt.apiKey),
				chat.WithAnthropicEndpoint(srv.URL),
				chat.WithAnthropicHTTPClient(srv.Client()),
			)
			resp, err := backend.Generate(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
		})
	}
}

func TestAnthropicBackend_MissingKeyIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := chat.NewAnthropicBackend(chat.WithAnthropicAPIKey("")).
		Generate(context.Background(), chat.GenerateRequest{Prompt: "x"})
	assert.ErrorIs(t, err, chat.ErrMissingAnthropicKey)
}
