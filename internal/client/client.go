// Package client is a typed Go client for the CryptoInsight API. It pairs
// with session.Holder so a signup or login immediately persists the session,
// the way the browser front end stores its token after authenticating.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"cryptoinsight/internal/client/session"
	"cryptoinsight/internal/domain/entity"
	"cryptoinsight/internal/errors"
)

const defaultTimeout = 10 * time.Second

// ErrUnauthorized is returned when the server rejects the session token.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries the server's {"message": ...} failure body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// AuthResult is the body of a successful signup or login.
type AuthResult struct {
	User  *entity.Principal `json:"user"`
	Token string            `json:"token"`
}

// Client talks to one CryptoInsight server on behalf of one session.
type Client struct {
	baseURL string
	http    *http.Client
	holder  *session.Holder
}

// New creates a client against the given base URL.
func New(baseURL string, holder *session.Holder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		holder:  holder,
	}
}

// Signup registers an account and persists the returned session.
func (c *Client) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.authenticate(ctx, "/api/auth/signup", email, password)
}

// Login opens a session for existing credentials and persists it.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

// Logout drops the local session. The server holds no session state, so
// there is nothing to call remotely.
func (c *Client) Logout() error {
	return c.holder.Clear()
}

// CurrentPrincipal reports who the held session belongs to, if any.
func (c *Client) CurrentPrincipal() (*entity.Principal, error) {
	return c.holder.CurrentPrincipal()
}

// Coins fetches the tracked coin listing.
func (c *Client) Coins(ctx context.Context) ([]entity.Coin, error) {
	var coins []entity.Coin
	if err := c.doJSON(ctx, http.MethodGet, "/api/coins", nil, &coins); err != nil {
		return nil, err
	}

	return coins, nil
}

// Chart fetches the 7-day price series for a coin.
func (c *Client) Chart(ctx context.Context, coinID string) ([]entity.ChartPoint, error) {
	var points []entity.ChartPoint
	if err := c.doJSON(ctx, http.MethodGet, "/api/coins/"+coinID+"/chart", nil, &points); err != nil {
		return nil, err
	}

	return points, nil
}

// Watchlist fetches the user's watched coins.
func (c *Client) Watchlist(ctx context.Context) ([]entity.Coin, error) {
	var coins []entity.Coin
	if err := c.doJSON(ctx, http.MethodGet, "/api/watchlist", nil, &coins); err != nil {
		return nil, err
	}

	return coins, nil
}

// Watch follows a coin.
func (c *Client) Watch(ctx context.Context, coinID string) (*entity.Coin, error) {
	body := map[string]string{"coinId": coinID}
	coin := new(entity.Coin)
	if err := c.doJSON(ctx, http.MethodPost, "/api/watchlist", body, coin); err != nil {
		return nil, err
	}

	return coin, nil
}

// Unwatch unfollows a coin.
func (c *Client) Unwatch(ctx context.Context, coinID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/watchlist/"+coinID, nil, nil)
}

// Portfolio fetches the demo portfolio snapshot.
func (c *Client) Portfolio(ctx context.Context) (*entity.PortfolioSnapshot, error) {
	snapshot := new(entity.PortfolioSnapshot)
	if err := c.doJSON(ctx, http.MethodGet, "/api/portfolio", nil, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	result := new(AuthResult)
	if err := c.doJSON(ctx, http.MethodPost, path, body, result); err != nil {
		return nil, err
	}

	if err := c.holder.Persist(result.Token); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	return result, nil
}

// doJSON performs one request, attaching the bearer token when a session is
// held, and decodes either the success payload or the {"message"} error body.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.holder.Token(); err == nil {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    body.Message,
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return errors.Wrap(ErrUnauthorized, apiErr.Message)
	}

	return apiErr
}
