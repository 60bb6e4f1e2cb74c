// Package handlers implements the HTTP operations of the estatebot API.
package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/estatebot/internal/onoffice"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// listingsError maps a listings client failure to an HTTP error. Failures to
// build the request locally are server errors; everything else is the
// upstream's fault.
func listingsError(err error) error {
	var encErr *onoffice.EncodingError
	if errors.As(err, &encErr) {
		return huma.Error500InternalServerError("building onOffice request: " + encErr.Error())
	}
	return huma.Error502BadGateway(err.Error())
}
