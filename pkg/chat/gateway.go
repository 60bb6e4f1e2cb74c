package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/donaldgifford/estatebot/internal/metrics"
)

// Gateway implements Completer by wrapping the user prompt in the
// assistant instructions and sending it to an LLM backend.
type Gateway struct {
	backend     LLMBackend
	prompts     *PromptRenderer
	temperature float64
	log         *slog.Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithTemperature sets the sampling temperature. 0 keeps the backend default.
func WithTemperature(t float64) GatewayOption {
	return func(g *Gateway) {
		g.temperature = t
	}
}

// NewGateway creates a Gateway over backend.
func NewGateway(backend LLMBackend, prompts *PromptRenderer, log *slog.Logger, opts ...GatewayOption) *Gateway {
	g := &Gateway{backend: backend, prompts: prompts, log: log}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete renders the assistant prompt for query and returns the reply text.
func (g *Gateway) Complete(ctx context.Context, query string) (string, error) {
	prompt, err := g.prompts.Render(query)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	start := time.Now()
	resp, err := g.backend.Generate(ctx, GenerateRequest{
		System:      prompt.System,
		Prompt:      prompt.User,
		Temperature: g.temperature,
		MaxTokens:   g.prompts.MaxTokens(),
	})
	metrics.GenerativeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", g.backend.Name(), err)
	}

	if resp.Content == "" {
		return "", fmt.Errorf("%s generate: %w", g.backend.Name(), ErrEmptyReply)
	}

	g.log.Debug("generative reply",
		"backend", g.backend.Name(),
		"model", resp.Model,
		"total_tokens", resp.Usage.TotalTokens,
	)

	return resp.Content, nil
}
