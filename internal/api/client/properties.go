package client

import (
	"context"
	"net/url"
	"strconv"
)

// Document is an onOffice JSON document as relayed by the server.
type Document map[string]any

// SearchParams defines query parameters for a property search. A nil
// PriceMax sends no price filter.
type SearchParams struct {
	PriceMax *int
	Location string
	Limit    int
	Offset   int
}

// Properties returns the "response" member of the default active listings
// query.
func (c *Client) Properties(ctx context.Context) (Document, error) {
	var doc Document
	if err := c.get(ctx, "/api/v1/properties", &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AllProperties returns the full reply of the unfiltered listings query.
func (c *Client) AllProperties(ctx context.Context) (Document, error) {
	var doc Document
	if err := c.get(ctx, "/api/v1/properties/all", &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SearchProperties runs a filtered listings search.
func (c *Client) SearchProperties(ctx context.Context, params *SearchParams) (Document, error) {
	q := url.Values{}
	if params.PriceMax != nil {
		q.Set("price_max", strconv.Itoa(*params.PriceMax))
	}
	if params.Location != "" {
		q.Set("location", params.Location)
	}
	q.Set("limit", strconv.Itoa(params.Limit))
	q.Set("offset", strconv.Itoa(params.Offset))

	var doc Document
	if err := c.get(ctx, "/api/v1/properties/search?"+q.Encode(), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Records returns the records of the first result in a full reply, or in a
// "response" member.
func (d Document) Records() []map[string]any {
	body := map[string]any(d)
	if inner, ok := d["response"].(map[string]any); ok {
		body = inner
	}
	results, _ := body["results"].([]any)
	if len(results) == 0 {
		return nil
	}
	first, _ := results[0].(map[string]any)
	data, _ := first["data"].(map[string]any)
	raw, _ := data["records"].([]any)

	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		if rec, ok := r.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}
