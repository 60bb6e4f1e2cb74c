package handlers

import (
	"context"
	"net/http"
	"reflect"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/estatebot/internal/onoffice"
)

// PropertiesHandler exposes the listings queries directly.
type PropertiesHandler struct {
	client onoffice.ListingsClient
}

// NewPropertiesHandler creates a new PropertiesHandler.
func NewPropertiesHandler(c onoffice.ListingsClient) *PropertiesHandler {
	return &PropertiesHandler{client: c}
}

// PropertiesOutput carries an onOffice JSON document unchanged.
type PropertiesOutput struct {
	Body map[string]any
}

// OptionalInt is an integer query parameter that tells an absent value
// from an explicit 0.
type OptionalInt struct {
	Value int
	IsSet bool
}

// Schema documents the parameter as a plain integer.
func (o OptionalInt) Schema(r huma.Registry) *huma.Schema {
	return huma.SchemaFromType(r, reflect.TypeOf(o.Value))
}

// Receiver exposes Value to the huma parameter parser.
func (o *OptionalInt) Receiver() reflect.Value {
	return reflect.ValueOf(o).Elem().Field(0)
}

// OnParamSet records whether the parameter was present.
func (o *OptionalInt) OnParamSet(isSet bool, _ any) {
	o.IsSet = isSet
}

// SearchPropertiesInput is the input for a filtered listings search.
// A present price_max always filters, even when it is 0.
type SearchPropertiesInput struct {
	PriceMax OptionalInt `query:"price_max" doc:"Only listings with a purchase price below this"`
	Location string      `query:"location"  doc:"Substring of the listing location"`
	Limit    int         `query:"limit"     doc:"Number of results"                            minimum:"0" default:"100"`
	Offset   int         `query:"offset"    doc:"Pagination offset"                            minimum:"0" default:"0"`
}

// ListProperties returns the "response" member of the default active
// listings query.
func (h *PropertiesHandler) ListProperties(ctx context.Context, _ *struct{}) (*PropertiesOutput, error) {
	resp, err := h.client.FetchDefault(ctx)
	if err != nil {
		return nil, listingsError(err)
	}

	body := resp.Body()
	if body == nil {
		body = map[string]any{}
	}
	return &PropertiesOutput{Body: body}, nil
}

// ListAllProperties returns the full response of the unfiltered query.
func (h *PropertiesHandler) ListAllProperties(ctx context.Context, _ *struct{}) (*PropertiesOutput, error) {
	resp, err := h.client.FetchAll(ctx)
	if err != nil {
		return nil, listingsError(err)
	}
	return &PropertiesOutput{Body: resp}, nil
}

// SearchProperties runs a filtered search and returns the full response.
func (h *PropertiesHandler) SearchProperties(
	ctx context.Context,
	input *SearchPropertiesInput,
) (*PropertiesOutput, error) {
	filter := onoffice.Filter{}
	if input.PriceMax.IsSet {
		filter[onoffice.FieldPrice] = onoffice.PriceBelow(input.PriceMax.Value)
	}
	if input.Location != "" {
		filter[onoffice.FieldLocation] = onoffice.LocationLike(input.Location)
	}

	resp, err := h.client.Search(ctx, filter,
		onoffice.WithLimit(input.Limit),
		onoffice.WithOffset(input.Offset),
	)
	if err != nil {
		return nil, listingsError(err)
	}
	return &PropertiesOutput{Body: resp}, nil
}

// RegisterPropertiesRoutes registers the listings endpoints with the Huma API.
func RegisterPropertiesRoutes(api huma.API, h *PropertiesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties",
		Summary:     "List active properties",
		Description: "Active listings under 300000, at most 10. Returns the response member of the onOffice reply.",
		Tags:        []string{"properties"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListProperties)

	huma.Register(api, huma.Operation{
		OperationID: "list-all-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/all",
		Summary:     "List all properties",
		Description: "Unfiltered listings, at most 100. Returns the full onOffice reply.",
		Tags:        []string{"properties"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListAllProperties)

	huma.Register(api, huma.Operation{
		OperationID: "search-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/search",
		Summary:     "Search properties",
		Description: "Filters listings by maximum price and location substring.",
		Tags:        []string{"properties"},
		Errors:      []int{http.StatusBadGateway},
	}, h.SearchProperties)
}
