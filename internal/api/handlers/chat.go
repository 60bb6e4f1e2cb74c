package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/estatebot/internal/router"
)

// PromptRouter routes a chat prompt to search or generation.
type PromptRouter interface {
	Route(ctx context.Context, prompt string) (router.Result, error)
}

// ChatHandler handles chat prompts.
type ChatHandler struct {
	router PromptRouter
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(r PromptRouter) *ChatHandler {
	return &ChatHandler{router: r}
}

// ChatInput is the request body for the chat endpoint.
type ChatInput struct {
	Body struct {
		Prompt string `json:"prompt" doc:"Free-text question" example:"Show me apartments in Berlin under 300000"`
	}
}

// ChatOutput is the response body for the chat endpoint.
type ChatOutput struct {
	Body struct {
		Response string `json:"response" doc:"Chat reply" example:"I found 3 properties in Berlin under 300000."`
	}
}

// Chat routes the prompt and returns the reply text.
func (h *ChatHandler) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	res, err := h.router.Route(ctx, input.Body.Prompt)
	if err != nil {
		return nil, listingsError(err)
	}

	if res.Kind == router.KindRejected {
		return nil, huma.Error422UnprocessableEntity(res.Message())
	}

	out := &ChatOutput{}
	out.Body.Response = res.Message()
	return out, nil
}

// RegisterChatRoutes registers the chat endpoint with the Huma API.
func RegisterChatRoutes(api huma.API, h *ChatHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "chat",
		Method:      http.MethodPost,
		Path:        "/api/v1/chat",
		Summary:     "Ask about listings",
		Description: "Answers from a structured listings search when the prompt names a price and a location, otherwise from the language model.",
		Tags:        []string{"chat"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Chat)
}
