package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	requestTimeout = 30 * time.Second
	maxBodySize    = 16 << 20 // 响应体上限
)

var (
	// ErrNetwork covers connection failures, timeouts and non-success statuses.
	ErrNetwork = errors.New("network error")
	// ErrParse means the body is not JSON or lacks a "data" array.
	ErrParse = errors.New("parse error")
)

// Position is one raw record from the unhealthy_positions endpoint. Numeric
// fields stay undecoded because the API sends them as strings or numbers.
type Position struct {
	AccountID    AccountID       `json:"account_id"`
	AccountKind  string          `json:"account_kind,omitempty"`
	HealthFactor json.RawMessage `json:"health_factor"`
	TotalDebt    json.RawMessage `json:"total_debt"`
}

// AccountID accepts both JSON strings and numbers.
type AccountID string

func (a *AccountID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = AccountID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("account_id must be a string or number: %w", err)
	}
	*a = AccountID(n.String())
	return nil
}

type positionsResponse struct {
	Data *[]Position `json:"data"`
}

// Client fetches position lists one request at a time.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient returns a Client whose requests are spaced by limit.
func NewClient(limit rate.Limit) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// FetchPositions GETs url and returns the "data" array in response order.
func (c *Client) FetchPositions(ctx context.Context, url string) ([]Position, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrNetwork, err)
	}

	var payload positionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrParse, err)
	}
	if payload.Data == nil {
		return nil, fmt.Errorf("%w: response has no data array", ErrParse)
	}

	return *payload.Data, nil
}
