// Package backend talks to the remote logistics API that owns rate cards,
// consignments, directories, shipments and pricing.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Kabir14815/rr/internal/config"
	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/pkg/logger"
	"github.com/Kabir14815/rr/pkg/metric"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const _maxErrorBody = 64 << 10

// Client is safe for concurrent use. Idempotent reads are retried; writes
// are sent once.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	log     logger.Logger
	metrics metric.Upstream

	username      string
	password      string
	retryAttempts uint
	retryDelay    time.Duration
	now           func() time.Time

	authMu  sync.Mutex
	token   string
	expires time.Time
}

type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	form   url.Values
	accept string
}

func (r request) idempotent() bool {
	return r.method == http.MethodGet
}

func NewClient(cfg config.Backend, log logger.Logger, metrics metric.Upstream, opts ...Option) (*Client, error) {
	const op = "backend.NewClient"

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}

	c := &Client{
		baseURL:       base,
		http:          &http.Client{Timeout: cfg.Timeout},
		limiter:       rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		log:           log,
		metrics:       metrics,
		username:      cfg.Username,
		password:      cfg.Password,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err = c.validate(); err != nil {
		return nil, fmt.Errorf("%s: validation: %w", op, err)
	}

	return c, nil
}

// doJSON runs r and decodes the JSON response body into out; a nil out discards it.
func (c *Client) doJSON(ctx context.Context, r request, out any) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", r.op, entity.ErrTransport, err)
	}
	return nil
}

// do returns a 2xx response whose body the caller must close.
func (c *Client) do(ctx context.Context, r request) (*http.Response, error) {
	start := time.Now()
	attempts := uint(1)
	if r.idempotent() && c.retryAttempts > 1 {
		attempts = c.retryAttempts
	}

	var (
		resp   *http.Response
		status int
	)
	err := retry.Do(
		func() error {
			var err error
			resp, err = c.send(ctx, r, true)
			if err != nil {
				return err
			}
			status = resp.StatusCode
			if resp.StatusCode >= http.StatusBadRequest {
				err = decodeError(resp)
				if resp.StatusCode < http.StatusInternalServerError {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			// fires after the final attempt too
			if n+1 >= attempts {
				return
			}
			c.metrics.Retry(r.op)
			c.log.Ctx(ctx).LogAttrs(ctx, logger.DebugLevel, "retrying backend call",
				logger.String("operation", r.op),
				logger.Int("attempt", int(n)+1),
				logger.Err(err),
			)
		}),
	)
	c.metrics.Call(r.op, status, time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		var remote *entity.RemoteError
		if !errors.As(err, &remote) && !errors.Is(err, entity.ErrTransport) {
			err = fmt.Errorf("%w: %w", entity.ErrTransport, err)
		}
		return nil, fmt.Errorf("%s: %w", r.op, err)
	}
	return resp, nil
}

// send performs a single attempt. With auth set, a 401 drops the cached
// token and the request is repeated once with a fresh one.
func (c *Client) send(ctx context.Context, r request, auth bool) (*http.Response, error) {
	resp, err := c.sendOnce(ctx, r, auth)
	if err != nil || !auth || resp.StatusCode != http.StatusUnauthorized || !c.authConfigured() {
		return resp, err
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	c.invalidateToken()
	return c.sendOnce(ctx, r, auth)
}

func (c *Client) sendOnce(ctx context.Context, r request, auth bool) (*http.Response, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, retry.Unrecoverable(err)
	}

	if auth {
		token, err := c.bearer(ctx)
		if errors.Is(err, entity.ErrUnauthorized) {
			return nil, retry.Unrecoverable(err)
		}
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if err = c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", entity.ErrTransport, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrTransport, err)
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := c.baseURL.JoinPath(r.path)
	if strings.HasSuffix(r.path, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case r.body != nil:
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	accept := r.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	if id := c.log.GetRequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	return req, nil
}

// decodeError turns a rejected response into an *entity.RemoteError. The body
// is consumed and closed.
func decodeError(resp *http.Response) error {
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, _maxErrorBody))

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	detail := ""
	if json.Unmarshal(raw, &payload) == nil && len(payload.Detail) > 0 {
		var text string
		if json.Unmarshal(payload.Detail, &text) == nil {
			detail = text
		} else {
			var items []struct {
				Msg string `json:"msg"`
			}
			if json.Unmarshal(payload.Detail, &items) == nil && len(items) > 0 {
				detail = items[0].Msg
			}
		}
	}

	return &entity.RemoteError{Status: resp.StatusCode, Detail: detail, Kind: kindOf(resp.StatusCode)}
}

func kindOf(status int) error {
	switch {
	case status == http.StatusNotFound:
		return entity.ErrDataNotFound
	case status == http.StatusConflict:
		return entity.ErrConflictingData
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return entity.ErrUnauthorized
	case status >= http.StatusInternalServerError:
		return entity.ErrTransport
	default:
		return entity.ErrInvalidData
	}
}
