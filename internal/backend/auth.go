package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Kabir14815/rr/internal/entity"
	"github.com/Kabir14815/rr/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

const (
	_refreshSkew     = 30 * time.Second
	_defaultTokenTTL = 15 * time.Minute
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *Client) authConfigured() bool {
	return c.username != ""
}

// bearer returns a valid access token, logging in when none is cached or the
// cached one is about to expire. Without credentials it returns "".
func (c *Client) bearer(ctx context.Context) (string, error) {
	if !c.authConfigured() {
		return "", nil
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()

	if c.token != "" && c.now().Add(_refreshSkew).Before(c.expires) {
		return c.token, nil
	}

	token, expires, err := c.login(ctx)
	if err != nil {
		return "", err
	}
	c.token, c.expires = token, expires
	return token, nil
}

func (c *Client) invalidateToken() {
	c.authMu.Lock()
	c.token = ""
	c.expires = time.Time{}
	c.authMu.Unlock()
}

func (c *Client) login(ctx context.Context) (string, time.Time, error) {
	const op = "backend.login"

	resp, err := c.sendOnce(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/auth/login",
		form: url.Values{
			"username": {c.username},
			"password": {c.password},
		},
	}, false)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		remote := decodeError(resp)
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", op, entity.ErrUnauthorized, remote)
	}
	defer resp.Body.Close()

	var body tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil || body.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("%s: %w: malformed token response", op, entity.ErrUnauthorized)
	}

	expires := c.now().Add(_defaultTokenTTL)
	claims := jwt.MapClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(body.AccessToken, claims); err == nil {
		if exp, expErr := claims.GetExpirationTime(); expErr == nil && exp != nil {
			expires = exp.Time
		}
	}

	c.log.Ctx(ctx).LogAttrs(ctx, logger.InfoLevel, "backend session established",
		logger.String("username", c.username),
		logger.Time("expires", expires),
	)
	return body.AccessToken, expires, nil
}
