package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"talentbase/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// Remote is the remote authority the coordinator pushes to and pulls from.
type Remote interface {
	// Ping checks remote reachability.
	Ping(ctx context.Context) error

	// Push transmits the full local snapshot in wire form.
	Push(ctx context.Context, ds *Dataset) error

	// Pull fetches the full remote snapshot in wire form.
	Pull(ctx context.Context) (*Dataset, error)
}

// HTTPClient talks JSON over HTTP to the remote sync endpoint, carrying a
// bearer token when one is configured.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient returns a client for the given endpoint. timeout caps each
// request; sync has no cancellation semantics of its own, so the transport
// boundary is where callers impose one.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *HTTPClient) Push(ctx context.Context, ds *Dataset) error {
	body, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/sync", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *HTTPClient) Pull(ctx context.Context) (*Dataset, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/sync", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var ds Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: bad pull payload: %v", common.ErrRemoteUnavailable, err)
	}
	return &ds, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if err := c.checkToken(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRemoteUnavailable, err)
	}
	return resp, nil
}

// checkToken inspects the bearer token's exp claim locally so an expired
// token fails fast instead of burning a network round trip. The signature is
// not verified here; that is the server's job.
func (c *HTTPClient) checkToken() error {
	if c.token == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, claims); err != nil {
		// Opaque (non-JWT) tokens are passed through untouched.
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if exp.Before(time.Now()) {
		return fmt.Errorf("%w: access token expired", common.ErrRemoteUnavailable)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: %s: %s", common.ErrRemoteUnavailable, resp.Status, bytes.TrimSpace(b))
}
