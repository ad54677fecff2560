package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skateplan/internal/core/ports"
	"skateplan/pkg/logger"
	"skateplan/pkg/tracing"
	"skateplan/pkg/utils"

	"go.uber.org/zap"
)

const (
	headerRequestID = "X-Request-ID"
	defaultTimeout  = 30 * time.Second
	maxLoggedBody   = 200
)

// Metrics receives one observation per request.
type Metrics interface {
	RecordAPIRequest(method string, status int, duration time.Duration)
	RecordAPIFailure(kind string)
}

type nopMetrics struct{}

func (nopMetrics) RecordAPIRequest(string, int, time.Duration) {}
func (nopMetrics) RecordAPIFailure(string)                     {}

// Client is the Request Gateway: the one place that speaks HTTP to the
// backend. It performs no retries and no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	log        *logger.ContextLogger
	metrics    Metrics
}

var _ ports.Gateway = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = logger.NewContextLogger(l) }
}

func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a gateway for baseURL, e.g. "https://host/api".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger.NewContextLogger(nil),
		metrics:    nopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends one request and returns the raw JSON body. A 204 response
// yields (nil, nil). Every failure is a *RequestError and is logged once.
func (c *Client) Request(ctx context.Context, endpoint, method string, body ports.RequestBody, token string) (json.RawMessage, error) {
	method = strings.ToUpper(method)

	requestID := logger.RequestIDFrom(ctx)
	if requestID == "" {
		requestID = utils.NewRequestID()
		ctx = logger.WithRequestID(ctx, requestID)
	}

	ctx, span := tracing.TraceAPIRequest(ctx, method, endpoint)
	defer span.End()

	start := time.Now()
	raw, status, err := c.do(ctx, endpoint, method, body, token, requestID)
	c.metrics.RecordAPIRequest(method, status, time.Since(start))
	if status > 0 {
		tracing.AddSpanAttributes(ctx, tracing.StatusCodeKey.Int(status))
	}

	if err != nil {
		c.metrics.RecordAPIFailure(string(err.Kind))
		tracing.AddSpanAttributes(ctx, tracing.FailureKindKey.String(string(err.Kind)))
		tracing.RecordError(ctx, err)
		fields := []zap.Field{
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
			zap.String("kind", string(err.Kind)),
		}
		if len(err.Body) > 0 {
			fields = append(fields, zap.String("body", utils.TruncateString(string(err.Body), maxLoggedBody)))
		}
		c.log.LogError(ctx, err, "api request failed", fields...)
		return nil, err
	}
	return raw, nil
}

func (c *Client) do(ctx context.Context, endpoint, method string, body ports.RequestBody, token, requestID string) (json.RawMessage, int, *RequestError) {
	fail := func(kind FailureKind, status int, msg string, cause error) *RequestError {
		return &RequestError{Kind: kind, Method: method, Endpoint: endpoint, StatusCode: status, Message: msg, Err: cause}
	}

	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, 0, fail(KindEncode, 0, fmt.Sprintf("failed to encode request body: %v", err), err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, 0, fail(KindTransport, 0, fmt.Sprintf("failed to build request: %v", err), err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fail(KindTransport, 0, fmt.Sprintf("request failed: %v", err), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fail(KindTransport, resp.StatusCode, fmt.Sprintf("failed to read response: %v", err), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := fail(KindStatus, resp.StatusCode, errorMessage(data, resp.StatusCode), nil)
		re.Body = data
		return nil, resp.StatusCode, re
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}
	if !json.Valid(data) {
		cause := fmt.Errorf("response body is not valid JSON (%d bytes)", len(data))
		return nil, resp.StatusCode, fail(KindDecode, resp.StatusCode,
			fmt.Sprintf("failed to decode response: status %d", resp.StatusCode), cause)
	}
	return json.RawMessage(data), resp.StatusCode, nil
}

// encodeBody returns the reader and Content-Type for body. Multipart
// payloads are passed through untouched.
func encodeBody(body ports.RequestBody) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case ports.JSONBody:
		return encodeJSON(b.Value)
	case *ports.JSONBody:
		return encodeJSON(b.Value)
	case ports.MultipartBody:
		return bytes.NewReader(b.Payload), b.ContentType, nil
	case *ports.MultipartBody:
		return bytes.NewReader(b.Payload), b.ContentType, nil
	default:
		return nil, "", fmt.Errorf("unsupported body type %T", body)
	}
}

func encodeJSON(v interface{}) (io.Reader, string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), "application/json", nil
}

// errorMessage resolves the message of a failed response: "detail", then
// "error", then a synthesized status message. Empty, false, zero and null
// values do not count.
func errorMessage(data []byte, status int) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		fields = map[string]json.RawMessage{}
	}
	for _, key := range []string{"detail", "error"} {
		if msg, ok := messageValue(fields[key]); ok {
			return msg
		}
	}
	return fmt.Sprintf("HTTP error: status %d", status)
}

func messageValue(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		if !t {
			return "", false
		}
	case float64:
		if t == 0 {
			return "", false
		}
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw), true
	}
	return compact.String(), true
}
