package chat

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiBackend implements LLMBackend using the Gemini API through the
// official genai client.
type GeminiBackend struct {
	cli   *genai.Client
	model string
}

type geminiOptions struct {
	baseURL    string
	httpClient *http.Client
}

// GeminiOption configures the GeminiBackend.
type GeminiOption func(*geminiOptions)

// WithGeminiBaseURL overrides the Gemini API base URL.
func WithGeminiBaseURL(u string) GeminiOption {
	return func(o *geminiOptions) {
		o.baseURL = u
	}
}

// WithGeminiHTTPClient overrides the HTTP client used by genai.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(o *geminiOptions) {
		o.httpClient = c
	}
}

// NewGeminiBackend creates a Gemini backend. An empty model selects
// gemini-2.0-flash.
func NewGeminiBackend(
	ctx context.Context,
	apiKey, model string,
	opts ...GeminiOption,
) (*GeminiBackend, error) {
	var o geminiOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}

	cli, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiBackend{cli: cli, model: model}, nil
}

// Name returns the backend name.
func (*GeminiBackend) Name() string {
	return "gemini"
}

// Generate calls Models.GenerateContent.
func (b *GeminiBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens) //nolint:gosec // small configured value
	}
	if t := req.temperature(); t != nil {
		cfg.Temperature = genai.Ptr(float32(*t))
	}

	resp, err := b.cli.Models.GenerateContent(ctx, b.model,
		genai.Text(req.Prompt),
		cfg,
	)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("calling gemini API: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return GenerateResponse{}, fmt.Errorf("gemini: %w", ErrEmptyReply)
	}

	out := GenerateResponse{
		Content: text,
		Model:   b.model,
	}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = TokenUsage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return out, nil
}
