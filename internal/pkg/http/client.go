package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/piresc/passeio/internal/pkg/circuitbreaker"
	"github.com/piresc/passeio/internal/pkg/errs"
	"github.com/piresc/passeio/internal/pkg/logger"
	nrpkg "github.com/piresc/passeio/internal/pkg/newrelic"
	"github.com/piresc/passeio/internal/pkg/requestcontext"
	"github.com/piresc/passeio/internal/pkg/retry"
	"github.com/piresc/passeio/internal/utils"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// maxErrorBody caps how much of a failed response is kept
	maxErrorBody = 512
)

// Observer receives one call per HTTP exchange. status is 0 when the
// request never got a response.
type Observer func(method, endpoint string, status int, duration time.Duration)

// Config describes the marketplace API
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Client talks JSON to the marketplace API. Reads are retried with backoff,
// writes are sent exactly once. Every endpoint group has its own breaker.
// GetJSONOnce and GetJSONUnguarded opt out of retries and breakers respectively.
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
	retrier    *retry.Retrier
	breakers   *circuitbreaker.Manager
	logger     *logger.ZapLogger
	observer   Observer
}

// NewClient creates a marketplace client
func NewClient(config Config, l *logger.ZapLogger) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = config.MaxRetries
	retryConfig.IsRetryable = IsRetryable

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: &nethttp.Client{Timeout: config.Timeout},
		retrier:    retry.New(retryConfig, l),
		breakers:   circuitbreaker.NewManager(l),
		logger:     l,
	}
}

// SetObserver installs a hook called after every exchange
func (c *Client) SetObserver(observer Observer) {
	c.observer = observer
}

// Breakers exposes the per-endpoint circuit breakers
func (c *Client) Breakers() *circuitbreaker.Manager {
	return c.breakers
}

// IsRetryable reports whether a failed read may be attempted again
func IsRetryable(err error) bool {
	if errors.Is(err, errs.ErrCanceled) || errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) {
		return false
	}
	var apiErr *errs.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= nethttp.StatusInternalServerError
	}
	return errors.Is(err, errs.ErrTransport)
}

// GetJSON performs a GET and decodes the JSON body into result
func (c *Client) GetJSON(ctx context.Context, endpoint, token string, result interface{}) error {
	return c.breakers.Execute(ctx, breakerName(endpoint), func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, nethttp.MethodGet, endpoint, token, nil, "", result)
		})
	})
}

// GetJSONOnce performs a single GET through the endpoint's breaker, without retries
func (c *Client) GetJSONOnce(ctx context.Context, endpoint, token string, result interface{}) error {
	return c.breakers.Execute(ctx, breakerName(endpoint), func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodGet, endpoint, token, nil, "", result)
	})
}

// GetJSONUnguarded performs a retried GET that bypasses the breakers. Its
// failures are never counted against the endpoint group.
func (c *Client) GetJSONUnguarded(ctx context.Context, endpoint, token string, result interface{}) error {
	return c.retrier.Execute(ctx, func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodGet, endpoint, token, nil, "", result)
	})
}

// PostJSON sends body as JSON once and decodes the answer into result
func (c *Client) PostJSON(ctx context.Context, endpoint, token string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.breakers.Execute(ctx, breakerName(endpoint), func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodPost, endpoint, token, payload, "application/json", result)
	})
}

// Delete sends a DELETE once
func (c *Client) Delete(ctx context.Context, endpoint, token string) error {
	return c.breakers.Execute(ctx, breakerName(endpoint), func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodDelete, endpoint, token, nil, "", nil)
	})
}

// FilePart is a file attached to a multipart form
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// MultipartForm is a form upload
type MultipartForm struct {
	Fields map[string]string
	Files  []FilePart
}

// PostMultipart uploads a form once and decodes the answer into result
func (c *Client) PostMultipart(ctx context.Context, endpoint, token string, form MultipartForm, result interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}
	for _, file := range form.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Filename))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return fmt.Errorf("failed to create form file %s: %w", file.Field, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("failed to write form file %s: %w", file.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close multipart body: %w", err)
	}

	return c.breakers.Execute(ctx, breakerName(endpoint), func(ctx context.Context) error {
		return c.do(ctx, nethttp.MethodPost, endpoint, token, buf.Bytes(), w.FormDataContentType(), result)
	})
}

func (c *Client) do(ctx context.Context, method, endpoint, token string, body []byte, contentType string, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		c.observe(method, endpoint, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w: %w", method, endpoint, errs.ErrCanceled, ctxErr)
		}
		c.logger.Warn("Marketplace request failed",
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.Err(err))
		return fmt.Errorf("%s %s: %w: %v", method, endpoint, errs.ErrTransport, err)
	}
	defer resp.Body.Close()
	c.observe(method, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s %s: %w", method, endpoint, &errs.APIError{
			StatusCode: resp.StatusCode,
			Body:       utils.Truncate(strings.TrimSpace(string(raw)), maxErrorBody),
		})
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s %s: %w: invalid response body: %v", method, endpoint, errs.ErrTransport, err)
	}
	return nil
}

func (c *Client) observe(method, endpoint string, status int, d time.Duration) {
	if c.observer != nil {
		c.observer(method, EndpointName(endpoint), status, d)
	}
}

// EndpointName reduces a path to its resource, e.g. "/passeador/12" -> "passeador"
func EndpointName(endpoint string) string {
	path := strings.TrimPrefix(endpoint, "/")
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}

func breakerName(endpoint string) string {
	return "marketplace." + EndpointName(endpoint)
}
