package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAnthropicURL     = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel   = "claude-3-5-haiku-latest"
	defaultAnthropicVersion = "2023-06-01"
	// The Messages API requires max_tokens on every call.
	defaultAnthropicTokens = 256
)

// ErrMissingAnthropicKey is returned by Generate when no API key is set.
var ErrMissingAnthropicKey = errors.New("ANTHROPIC_API_KEY is not set")

// AnthropicBackend answers through the Anthropic Messages API.
type AnthropicBackend struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// AnthropicOption configures the AnthropicBackend.
type AnthropicOption func(*AnthropicBackend)

// WithAnthropicEndpoint overrides the Messages API URL.
func WithAnthropicEndpoint(url string) AnthropicOption {
	return func(b *AnthropicBackend) {
		if url != "" {
			b.endpoint = url
		}
	}
}

// WithAnthropicModel overrides the default model.
func WithAnthropicModel(model string) AnthropicOption {
	return func(b *AnthropicBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// WithAnthropicAPIKey sets the API key. Without it ANTHROPIC_API_KEY is used.
func WithAnthropicAPIKey(key string) AnthropicOption {
	return func(b *AnthropicBackend) {
		b.apiKey = key
	}
}

// WithAnthropicHTTPClient overrides the default HTTP client.
func WithAnthropicHTTPClient(c *http.Client) AnthropicOption {
	return func(b *AnthropicBackend) {
		b.client = c
	}
}

// NewAnthropicBackend creates a Messages API backend.
func NewAnthropicBackend(opts ...AnthropicOption) *AnthropicBackend {
	b := &AnthropicBackend{
		apiKey:   os.Getenv("ANTHROPIC_API_KEY"),
		model:    defaultAnthropicModel,
		endpoint: defaultAnthropicURL,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*AnthropicBackend) Name() string {
	return "anthropic"
}

type messagesRequest struct {
	Model       string         `json:"model"`
	System      string         `json:"system,omitempty"`
	Messages    []messagesTurn `json:"messages"`
	MaxTokens   int            `json:"max_tokens"`
	Temperature *float64       `json:"temperature,omitempty"`
}

type messagesTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesReply struct {
	Model   string `json:"model"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (b *AnthropicBackend) messages(req GenerateRequest) messagesRequest {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicTokens
	}
	return messagesRequest{
		Model:       b.model,
		System:      req.System,
		Messages:    []messagesTurn{{Role: "user", Content: req.Prompt}},
		MaxTokens:   maxTokens,
		Temperature: req.temperature(),
	}
}

// anthropicErrorMessage turns {"error":{"type","message"}} into "type: message".
func anthropicErrorMessage(raw []byte) string {
	var body struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil || body.Error.Message == "" {
		return ""
	}
	return body.Error.Type + ": " + body.Error.Message
}

// Generate posts one user turn and joins the text blocks of the reply.
func (b *AnthropicBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	if b.apiKey == "" {
		return GenerateResponse{}, ErrMissingAnthropicKey
	}

	header := http.Header{}
	header.Set("x-api-key", b.apiKey)
	header.Set("anthropic-version", defaultAnthropicVersion)

	raw, err := postJSON(ctx, b.client, "anthropic", b.endpoint, header, b.messages(req), anthropicErrorMessage)
	if err != nil {
		return GenerateResponse{}, err
	}

	var reply messagesReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return GenerateResponse{}, fmt.Errorf("parsing anthropic response: %w", err)
	}

	var text strings.Builder
	for _, c := range reply.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		return GenerateResponse{}, fmt.Errorf("anthropic: %w", ErrEmptyReply)
	}

	return GenerateResponse{
		Content: text.String(),
		Model:   reply.Model,
		Usage: TokenUsage{
			PromptTokens:     reply.Usage.InputTokens,
			CompletionTokens: reply.Usage.OutputTokens,
			TotalTokens:      reply.Usage.InputTokens + reply.Usage.OutputTokens,
		},
	}, nil
}
