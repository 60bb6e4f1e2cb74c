package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultOpenAIEndpoint = "https://api.openai.com"
	defaultOpenAIModel    = "gpt-3.5-turbo"
	openAICompatLabel     = "openai-compatible"
)

// OpenAICompatBackend answers through a /v1/chat/completions endpoint:
// api.openai.com or any server speaking the same API (vLLM, LM Studio).
type OpenAICompatBackend struct {
	completionsURL string
	model          string
	apiKey         string
	client         *http.Client
}

// OpenAICompatOption configures the OpenAICompatBackend.
type OpenAICompatOption func(*OpenAICompatBackend)

// WithOpenAICompatHTTPClient overrides the default HTTP client.
func WithOpenAICompatHTTPClient(c *http.Client) OpenAICompatOption {
	return func(b *OpenAICompatBackend) {
		b.client = c
	}
}

// WithOpenAICompatAPIKey sets the bearer token. Without it OPENAI_API_KEY
// is used, and an empty key sends no Authorization header.
func WithOpenAICompatAPIKey(key string) OpenAICompatOption {
	return func(b *OpenAICompatBackend) {
		b.apiKey = key
	}
}

// NewOpenAICompatBackend creates a backend for endpoint. Empty endpoint and
// model select api.openai.com and gpt-3.5-turbo.
func NewOpenAICompatBackend(
	endpoint, model string,
	opts ...OpenAICompatOption,
) *OpenAICompatBackend {
	if endpoint == "" {
		endpoint = defaultOpenAIEndpoint
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	b := &OpenAICompatBackend{
		completionsURL: strings.TrimRight(endpoint, "/") + "/v1/chat/completions",
		model:          model,
		apiKey:         os.Getenv("OPENAI_API_KEY"),
		client:         &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OpenAICompatBackend) Name() string {
	return "openai_compat"
}

type completionRequest struct {
	Model       string              `json:"model"`
	Messages    []completionMessage `json:"messages"`
	Temperature *float64            `json:"temperature,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionReply struct {
	Model   string `json:"model"`
	Choices []struct {
		Message completionMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (b *OpenAICompatBackend) completion(req GenerateRequest) completionRequest {
	msgs := make([]completionMessage, 0, 2)
	if req.System != "" {
		msgs = append(msgs, completionMessage{Role: "system", Content: req.System})
	}
	msgs = append(msgs, completionMessage{Role: "user", Content: req.Prompt})

	return completionRequest{
		Model:       b.model,
		Messages:    msgs,
		Temperature: req.temperature(),
		MaxTokens:   req.MaxTokens,
	}
}

// Generate posts a chat completion and returns the first choice.
func (b *OpenAICompatBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	header := http.Header{}
	if b.apiKey != "" {
		header.Set("Authorization", "Bearer "+b.apiKey)
	}

	raw, err := postJSON(ctx, b.client, openAICompatLabel, b.completionsURL, header, b.completion(req), nil)
	if err != nil {
		return GenerateResponse{}, err
	}

	var reply completionReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return GenerateResponse{}, fmt.Errorf("parsing %s response: %w", openAICompatLabel, err)
	}
	if len(reply.Choices) == 0 {
		return GenerateResponse{}, fmt.Errorf("empty choices from %s API: %w", openAICompatLabel, ErrEmptyReply)
	}

	return GenerateResponse{
		Content: reply.Choices[0].Message.Content,
		Model:   reply.Model,
		Usage: TokenUsage{
			PromptTokens:     reply.Usage.PromptTokens,
			CompletionTokens: reply.Usage.CompletionTokens,
			TotalTokens:      reply.Usage.TotalTokens,
		},
	}, nil
}
