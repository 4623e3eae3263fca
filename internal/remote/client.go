// Package remote is the client for the spreadsheet-backed platform API.
// The backend is an Apps-Script web app over the platform sheet: fire
// and forget GET calls, JSON bodies, no transactions. Callers own the
// failure policy: the stat reconciler logs and queues, the token
// ledger compensates.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrRejected is returned when the backend answered but refused the
// mutation (success=false), as opposed to a transport failure.
var ErrRejected = errors.New("remote rejected request")

// Client talks to the platform API.
type Client struct {
	apiURL  string
	dataURL string
	http    *http.Client
}

// New creates a client for the given endpoints. apiURL is the mutation
// endpoint; dataURL is the published question-feed base.
func New(apiURL, dataURL string) *Client {
	return &Client{
		apiURL:  apiURL,
		dataURL: dataURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// apiResponse is the uniform response envelope of the script endpoint.
type apiResponse struct {
	Success bool   `json:"success"`
	Tokens  int    `json:"tokens"`
	Error   string `json:"error"`
}

// SubmitStatDelta sends a finished session's aggregate to the backend.
// The mutation is additive on the remote side; there is no rollback
// path, so failures must be queued for replay by the caller.
func (c *Client) SubmitStatDelta(ctx context.Context, userID string, attempted, correct int) error {
	_, err := c.call(ctx, url.Values{
		"action":    {"addStats"},
		"user":      {userID},
		"attempted": {strconv.Itoa(attempted)},
		"correct":   {strconv.Itoa(correct)},
	})
	return err
}

// SubmitTokenDebit charges amount tokens and returns the authoritative
// post-debit balance. The server's number is the source of truth; the
// caller reconciles the local balance to it.
func (c *Client) SubmitTokenDebit(ctx context.Context, userID string, amount int) (int, error) {
	resp, err := c.call(ctx, url.Values{
		"action": {"spendTokens"},
		"user":   {userID},
		"amount": {strconv.Itoa(amount)},
	})
	if err != nil {
		return 0, err
	}
	return resp.Tokens, nil
}

// PoolURL resolves the CSV feed URL for a question category.
func (c *Client) PoolURL(category string) string {
	return fmt.Sprintf("%s?category=%s", c.dataURL, url.QueryEscape(category))
}

func (c *Client) call(ctx context.Context, params url.Values) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call api: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned %s", httpResp.Status)
	}

	var resp apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !resp.Success {
		if resp.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrRejected, resp.Error)
		}
		return nil, ErrRejected
	}
	return &resp, nil
}
