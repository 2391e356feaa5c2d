// Package affiliate is a typed client for the affiliate program admin API.
package affiliate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"admin/internal/cache"
	"admin/internal/domain"
	"admin/internal/infra"
)

const defaultErrorMessage = "API request failed"

// APIError is returned when the API answers with a non-success HTTP status.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("affiliate: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap lets callers match API failures with errors.Is(err, domain.ErrUpstream),
// and 404s with domain.ErrNotFound.
func (e *APIError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{domain.ErrUpstream, domain.ErrNotFound}
	}
	return []error{domain.ErrUpstream}
}

// Options configures the admin API client.
type Options struct {
	BaseURL        string
	Token          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	Cache          *cache.Cache
	RequestTimeout time.Duration
}

// Client performs HTTP calls against the affiliate admin API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *infra.Logger
	cache      *cache.Cache
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient constructs a client with defaults for anything left unset.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("affiliate: base url is required")
	}
	if u, err := url.Parse(baseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("affiliate: invalid base url %q", opts.BaseURL)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		baseURL:    baseURL,
		token:      strings.TrimSpace(opts.Token),
		httpClient: httpClient,
		logger:     logger,
		cache:      opts.Cache,
	}, nil
}

// get reads an endpoint, through the cache when one is configured, and decodes the
// envelope data into out.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	load := func(ctx context.Context) ([]byte, error) {
		return c.do(ctx, http.MethodGet, key, nil)
	}
	var (
		data []byte
		err  error
	)
	if c.cache != nil {
		data, err = c.cache.Fetch(ctx, key, load)
	} else {
		data, err = load(ctx)
	}
	if err != nil {
		return fmt.Errorf("affiliate: %s: %w", op, err)
	}
	if err := decodeData(data, out); err != nil {
		return fmt.Errorf("affiliate: %s: decode data: %w", op, err)
	}
	return nil
}

// send performs a mutation and, on success, drops cached reads under the given prefixes.
func (c *Client) send(ctx context.Context, op, method, path string, body, out any, invalidate ...string) error {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return fmt.Errorf("affiliate: %s: %w", op, err)
	}
	if c.cache != nil && len(invalidate) > 0 {
		if err := c.cache.Invalidate(ctx, invalidate...); err != nil {
			c.logger.Warn().Err(err).Str("op", op).Msg("affiliate: cache invalidation failed")
		}
	}
	if out == nil {
		return nil
	}
	if err := decodeData(data, out); err != nil {
		return fmt.Errorf("affiliate: %s: decode data: %w", op, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, pathAndQuery string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathAndQuery, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.logger.Debug().
		Str("method", method).
		Str("path", pathAndQuery).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("affiliate: api call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: defaultErrorMessage}
		var detail errorResponse
		if err := json.Unmarshal(raw, &detail); err == nil {
			apiErr.Code = detail.Code
			if msg := strings.TrimSpace(detail.Message); msg != "" {
				apiErr.Message = msg
			}
		}
		return nil, apiErr
	}

	var env domain.Envelope[json.RawMessage]
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return env.Data, nil
}

func decodeData(data []byte, out any) error {
	if out == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return json.Unmarshal(trimmed, out)
}

func pageQuery(p domain.Pagination) url.Values {
	p = p.Normalize()
	q := url.Values{}
	q.Set("page", fmt.Sprint(p.Page))
	q.Set("limit", fmt.Sprint(p.Limit))
	return q
}

func escapeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	return url.PathEscape(id), nil
}
