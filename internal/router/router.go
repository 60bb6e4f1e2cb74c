// Package router decides whether a chat prompt is answered from the
// listings API or by the generative-text gateway.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/donaldgifford/estatebot/internal/metrics"
	"github.com/donaldgifford/estatebot/internal/onoffice"
	"github.com/donaldgifford/estatebot/pkg/chat"
)

// FallbackAnswer is returned in place of a generative reply when the
// gateway fails.
const FallbackAnswer = "Sorry, I couldn't process your request right now. " +
	"I am a real estate bot and would love to help with anything connected to our business."

// Kind identifies the branch a prompt was routed to.
type Kind string

// Routing outcomes.
const (
	KindStructuredSearch Kind = "structured_search"
	KindGenerative       Kind = "generative"
	KindRejected         Kind = "rejected"
)

// Result is the outcome of routing one prompt. Which fields are set
// depends on Kind.
type Result struct {
	Kind Kind

	// KindStructuredSearch
	Count        int
	Location     string
	PriceCeiling int

	// KindGenerative
	Answer string

	// KindRejected
	Reason string
}

// Message formats the result as a chat reply.
func (r Result) Message() string {
	switch r.Kind {
	case KindStructuredSearch:
		if r.Count == 0 {
			return fmt.Sprintf("No properties found in %s under %d.", r.Location, r.PriceCeiling)
		}
		return fmt.Sprintf("I found %d properties in %s under %d.", r.Count, r.Location, r.PriceCeiling)
	case KindGenerative:
		return r.Answer
	default:
		return "Sorry, the prompt cannot be empty."
	}
}

// Searcher is the part of the listings client the router needs.
type Searcher interface {
	Search(ctx context.Context, filter onoffice.Filter, opts ...onoffice.SearchOption) (onoffice.Response, error)
}

// Router routes prompts between structured search and generative answers.
// It holds no per-request state and is safe for concurrent use.
type Router struct {
	listings  Searcher
	generator chat.Completer
	log       *slog.Logger
}

// New creates a Router.
func New(listings Searcher, generator chat.Completer, log *slog.Logger) *Router {
	return &Router{listings: listings, generator: generator, log: log}
}

// Route answers prompt. Errors from the listings API are returned to the
// caller; errors from the generative gateway are logged and replaced by
// FallbackAnswer so the chat surface always has something to say.
func (r *Router) Route(ctx context.Context, prompt string) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		metrics.ChatRoutesTotal.WithLabelValues(string(KindRejected)).Inc()
		return Result{Kind: KindRejected, Reason: "empty prompt"}, nil
	}

	intent := ParseIntent(prompt)
	if intent.Structured() {
		metrics.ChatRoutesTotal.WithLabelValues(string(KindStructuredSearch)).Inc()
		return r.search(ctx, intent)
	}

	metrics.ChatRoutesTotal.WithLabelValues(string(KindGenerative)).Inc()
	return r.generate(ctx, prompt), nil
}

func (r *Router) search(ctx context.Context, intent Intent) (Result, error) {
	resp, err := r.listings.Search(ctx, onoffice.Filter{
		onoffice.FieldLocation: onoffice.LocationLike(intent.Location),
		onoffice.FieldPrice:    onoffice.PriceBelow(intent.PriceCeiling),
	})
	if err != nil {
		return Result{}, fmt.Errorf("searching listings: %w", err)
	}

	count := resp.Count()
	r.log.Info("structured search",
		"location", intent.Location,
		"price_ceiling", intent.PriceCeiling,
		"count", count,
	)

	return Result{
		Kind:         KindStructuredSearch,
		Count:        count,
		Location:     intent.Location,
		PriceCeiling: intent.PriceCeiling,
	}, nil
}

func (r *Router) generate(ctx context.Context, prompt string) Result {
	answer, err := r.generator.Complete(ctx, prompt)
	if err == nil && answer == "" {
		err = chat.ErrEmptyReply
	}
	if err != nil {
		metrics.GenerativeFailuresTotal.Inc()
		r.log.Error("generative gateway failed", "error", err)
		return Result{Kind: KindGenerative, Answer: FallbackAnswer}
	}
	return Result{Kind: KindGenerative, Answer: answer}
}
