// Package onoffice provides a signed-request client for the onOffice
// listings API, abstracted behind interfaces for testability.
package onoffice

import (
	"context"
	"log/slog"
)

// Action and resource identifiers used by the listings API.
const (
	ActionRead         = "urn:onoffice-de-ns:smart:2.5:smartml:action:read"
	ResourceTypeEstate = "estate"
)

// Credentials holds the API token and secret used to sign requests.
// The secret never leaves the process; only derived signatures are sent.
type Credentials struct {
	APIKey string
	Secret []byte
}

// NewCredentials builds Credentials from the token and secret strings as
// they appear in configuration.
func NewCredentials(apiKey, secret string) Credentials {
	return Credentials{APIKey: apiKey, Secret: []byte(secret)}
}

// String implements fmt.Stringer without exposing the secret.
func (c Credentials) String() string {
	return "onoffice.Credentials{APIKey: " + c.APIKey + ", Secret: [redacted]}"
}

// LogValue implements slog.LogValuer without exposing the secret.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("api_key", c.APIKey),
		slog.String("secret", "[redacted]"),
	)
}

// ListingsClient defines the interface for reading estates from onOffice.
type ListingsClient interface {
	Call(ctx context.Context, action, resourceType string, params QuerySpec) (Response, error)
	FetchDefault(ctx context.Context) (Response, error)
	FetchAll(ctx context.Context) (Response, error)
	Search(ctx context.Context, filter Filter, opts ...SearchOption) (Response, error)
}
