package onoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/estatebot/internal/metrics"
)

const (
	defaultAPIURL = "https://api.onoffice.de/api/stable/api.php"
	tracerName    = "github.com/donaldgifford/estatebot/internal/onoffice"
)

// Outcome labels recorded for every call.
const (
	outcomeOK        = "ok"
	outcomeEncoding  = "encoding_error"
	outcomeTransport = "transport_error"
	outcomeHTTP      = "http_error"
	outcomeMalformed = "malformed_response"
)

// SignedClient implements ListingsClient by POSTing HMAC-signed actions to
// the onOffice API. It holds no state between calls besides its immutable
// credentials and is safe for concurrent use.
type SignedClient struct {
	creds   Credentials
	apiURL  string
	client  *http.Client
	log     *slog.Logger
	tracer  trace.Tracer
	nowFunc func() time.Time // for testing
}

// Option configures the SignedClient.
type Option func(*SignedClient)

// WithAPIURL overrides the default API endpoint.
func WithAPIURL(u string) Option {
	return func(c *SignedClient) {
		c.apiURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *SignedClient) {
		c.client = hc
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *SignedClient) {
		c.log = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(c *SignedClient) {
		c.nowFunc = f
	}
}

// NewSignedClient creates a new onOffice client for the given credentials.
func NewSignedClient(creds Credentials, opts ...Option) *SignedClient {
	c := &SignedClient{
		creds:   creds,
		apiURL:  defaultAPIURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer(tracerName),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Action is a single signed action inside a request.
type Action struct {
	ActionID     string    `json:"actionid"`
	ResourceType string    `json:"resourcetype"`
	ResourceID   string    `json:"resourceid"`
	Identifier   string    `json:"identifier"`
	Timestamp    string    `json:"timestamp"`
	HMAC         string    `json:"hmac"`
	HMACVersion  int       `json:"hmac_version"`
	Parameters   QuerySpec `json:"parameters"`
}

// Request is the top-level request body. The API accepts batches of
// actions; this client always sends exactly one.
type Request struct {
	Token   string      `json:"token"`
	Request RequestBody `json:"request"`
}

// RequestBody holds the batched actions.
type RequestBody struct {
	Actions []Action `json:"actions"`
}

// NewRequest builds the signed request body for a single action at the
// given unix timestamp.
func NewRequest(
	creds Credentials,
	timestamp int64,
	action, resourceType string,
	params QuerySpec,
) (Request, error) {
	sig, err := Sign(timestamp, action, resourceType, creds.APIKey, creds.Secret)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Token: creds.APIKey,
		Request: RequestBody{
			Actions: []Action{{
				ActionID:     action,
				ResourceType: resourceType,
				ResourceID:   "",
				Identifier:   "",
				Timestamp:    strconv.FormatInt(timestamp, 10),
				HMAC:         sig,
				HMACVersion:  HMACVersion,
				Parameters:   params,
			}},
		},
	}, nil
}

// Call signs and sends a single action and returns the decoded response.
// Errors are never swallowed: see EncodingError, TransportError,
// UpstreamHTTPError and MalformedResponseError.
func (c *SignedClient) Call(
	ctx context.Context,
	action, resourceType string,
	params QuerySpec,
) (Response, error) {
	ctx, span := c.tracer.Start(ctx, "onoffice.Call", trace.WithAttributes(
		attribute.String("onoffice.action", action),
		attribute.String("onoffice.resource_type", resourceType),
	))
	defer span.End()

	start := time.Now()
	resp, outcome, err := c.call(ctx, action, resourceType, params)

	metrics.OnOfficeCallDuration.Observe(time.Since(start).Seconds())
	metrics.OnOfficeCallsTotal.WithLabelValues(outcome).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		c.log.Debug("onoffice call failed",
			"resource_type", resourceType,
			"outcome", outcome,
			"error", err,
		)
		return nil, err
	}

	c.log.Debug("onoffice call",
		"resource_type", resourceType,
		"outcome", outcome,
		"records", resp.Count(),
	)
	return resp, nil
}

func (c *SignedClient) call(
	ctx context.Context,
	action, resourceType string,
	params QuerySpec,
) (Response, string, error) {
	// The same timestamp goes into the signature and the envelope.
	ts := c.nowFunc().Unix()

	payload, err := NewRequest(c.creds, ts, action, resourceType, params)
	if err != nil {
		return nil, outcomeEncoding, fmt.Errorf("signing request: %w", err)
	}

	body, err := encodeRequest(payload)
	if err != nil {
		return nil, outcomeEncoding, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.apiURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, outcomeTransport, &TransportError{Err: fmt.Errorf("creating HTTP request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, outcomeTransport, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, outcomeTransport, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, outcomeHTTP, &UpstreamHTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var out Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, outcomeMalformed, &MalformedResponseError{Body: string(respBody), Err: err}
	}

	return out, outcomeOK, nil
}

// encodeRequest marshals the envelope with filter operators such as "<"
// written literally rather than as \u003c.
func encodeRequest(req Request) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// FetchDefault reads up to ten active estates priced below 300000.
func (c *SignedClient) FetchDefault(ctx context.Context) (Response, error) {
	return c.Call(ctx, ActionRead, ResourceTypeEstate, DefaultActiveListings())
}

// FetchAll reads the first hundred estates without a filter.
func (c *SignedClient) FetchAll(ctx context.Context) (Response, error) {
	return c.Call(ctx, ActionRead, ResourceTypeEstate, AllListings())
}

// Search reads estates matching filter.
func (c *SignedClient) Search(
	ctx context.Context,
	filter Filter,
	opts ...SearchOption,
) (Response, error) {
	return c.Call(ctx, ActionRead, ResourceTypeEstate, SearchQuery(filter, opts...))
}
