package client

import (
	"context"
)

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat sends a prompt and returns the reply text.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	var resp chatResponse
	if err := c.post(ctx, "/api/v1/chat", chatRequest{Prompt: prompt}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
