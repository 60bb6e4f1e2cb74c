package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// postJSON sends payload to url and returns the raw 200 reply body. Any
// other status becomes *HTTPStatusError; errBody, when set, condenses the
// error body into a readable message.
func postJSON(
	ctx context.Context,
	hc *http.Client,
	backend, url string,
	header http.Header,
	payload any,
	errBody func([]byte) string,
) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s request: %w", backend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", backend, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s API: %w", backend, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", backend, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(raw)
		if errBody != nil {
			if m := errBody(raw); m != "" {
				msg = m
			}
		}
		return nil, &HTTPStatusError{Backend: backend, StatusCode: resp.StatusCode, Body: msg}
	}
	return raw, nil
}
