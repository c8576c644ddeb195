// Package backend implements the Resource Client: typed requests against the
// fleet backend's REST API. It neither caches nor retries.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

const (
	apiPrefix       = "/api/v1"
	secretHeader    = "x-internal-secret"
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

var _ ports.Backend = (*Client)(nil)

// Client implements ports.Backend over HTTP.
type Client struct {
	baseURL    *url.URL
	secret     string
	httpClient *http.Client
	limiter    *rate.Limiter
	tracer     ports.Tracer
}

// NewClient creates a Client for the given settings.
func NewClient(settings domain.BackendSettings, tracer ports.Tracer) (*Client, error) {
	return newClientWithHTTP(settings, tracer, &http.Client{Timeout: settings.Timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(settings domain.BackendSettings, tracer ports.Tracer, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(settings.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, zerr.With(domain.ErrInvalidConfig, "base_url", settings.BaseURL)
	}

	limit := rate.Inf
	if settings.RateLimit > 0 {
		limit = rate.Limit(settings.RateLimit)
	}
	burst := settings.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:    base,
		secret:     settings.Secret,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		tracer:     tracer,
	}, nil
}

// request describes one backend call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// public requests are served outside /api/v1 and need no secret.
	public bool
}

func (c *Client) do(ctx context.Context, req request, out any) (err error) {
	fullPath := req.path
	if !req.public {
		fullPath = apiPrefix + req.path
	}
	requestID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, req.method+" "+fullPath,
		ports.WithAttribute("http.request.method", req.method),
		ports.WithAttribute("url.path", fullPath),
		ports.WithAttribute("request.id", requestID),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "rate limiter wait aborted"), "path", fullPath))
	}

	httpReq, err := c.newRequest(ctx, req, fullPath, requestID)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "request failed"), "path", fullPath))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	span.SetAttribute("http.response.status_code", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.ServerError{StatusCode: resp.StatusCode, Detail: parseDetail(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Join(domain.ErrNetwork, zerr.With(zerr.Wrap(err, "failed to read response body"), "path", fullPath))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Join(domain.ErrDecodeFailed, zerr.With(err, "path", fullPath))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, req request, fullPath, requestID string) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + fullPath
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var body io.Reader = http.NoBody
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrEncodeFailed.Error())
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRequestBuildFailed.Error())
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.secret != "" && !req.public {
		httpReq.Header.Set(secretHeader, c.secret)
	}
	return httpReq, nil
}

// validationItem is one entry of a FastAPI validation failure.
type validationItem struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// parseDetail extracts the user-facing message from an error body. The detail
// is usually a string; request validation failures carry a list instead.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		return detail
	}

	var items []validationItem
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if len(item.Loc) == 0 {
				parts = append(parts, item.Msg)
				continue
			}
			parts = append(parts, locString(item.Loc[len(item.Loc)-1])+": "+item.Msg)
		}
		return strings.Join(parts, "; ")
	}

	return string(envelope.Detail)
}

func locString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.Itoa(int(t))
	default:
		data, _ := json.Marshal(t)
		return string(data)
	}
}
