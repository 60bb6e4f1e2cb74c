// Package chat provides the generative-text gateway used to answer chat
// prompts, with pluggable LLM backends abstracted behind interfaces for
// testability.
package chat

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyReply is returned when a backend answers without any text.
var ErrEmptyReply = errors.New("empty reply from LLM backend")

// GenerateRequest is one single-turn generation call. System carries the
// assistant persona and goes into the provider's system slot.
type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature float64 // 0 keeps the provider default
	MaxTokens   int     // 0 keeps the provider default
}

func (r GenerateRequest) temperature() *float64 {
	if r.Temperature <= 0 {
		return nil
	}
	t := r.Temperature
	return &t
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM text generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// Completer answers a raw user prompt with text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// HTTPStatusError is returned when a backend answers with a non-200 status.
type HTTPStatusError struct {
	Backend    string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Backend, e.StatusCode, e.Body)
}
