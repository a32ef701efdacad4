package backend

import (
	"errors"
	"net/http"
	"time"
)

type Option func(*Client)

// HTTPClient replaces the default client; its timeout still bounds each attempt.
func HTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Clock overrides the time source used for token expiry.
func Clock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func (c *Client) validate() error {
	if c.baseURL == nil || c.baseURL.Scheme == "" || c.baseURL.Host == "" {
		return errors.New("invalid base url: scheme and host are required")
	}
	if c.http == nil {
		return errors.New("http client is required")
	}
	if c.log == nil {
		return errors.New("logger is required")
	}
	if c.metrics == nil {
		return errors.New("metrics are required")
	}
	if c.retryAttempts == 0 {
		return errors.New("invalid retry attempts: must be >= 1")
	}
	if c.limiter.Burst() < 1 {
		return errors.New("invalid burst: must be >= 1")
	}
	if c.username != "" && c.password == "" {
		return errors.New("password is required when username is set")
	}
	return nil
}
