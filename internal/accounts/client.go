// Package accounts is the HTTP client for the external accounts service. It
// answers exactly one question — does a member currently hold active
// accounts — and keeps "the service said no accounts" strictly separate from
// "the service could not answer". Collapsing the two would let a deletion
// through while an active account still exists, which is the one outcome the
// member registry must never allow.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coacandes/member-service/internal/models"
)

const requestTimeout = 5 * time.Second

// Client queries the accounts service for a member's active accounts.
// Every call is a single attempt with a fixed timeout: no retries, no
// caller-supplied deadline override, no caching of results.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// ActiveAccounts fetches the member's active accounts. The endpoint already
// filters to active accounts, so no status filtering happens here. A 404 is
// a valid answer meaning the member has none.
func (c *Client) ActiveAccounts(ctx context.Context, memberID string) ([]models.AccountSummary, error) {
	url := fmt.Sprintf("%s/cuentas/socio/%s", c.baseURL, memberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrAccountsProtocol, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Connection refused, timeout, DNS failure. Never reported as
		// "no accounts".
		return nil, fmt.Errorf("%w: %v", models.ErrAccountsUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []models.AccountSummary{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d from %s", models.ErrAccountsProtocol, resp.StatusCode, url)
	}

	var summaries []models.AccountSummary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrAccountsProtocol, err)
	}

	return summaries, nil
}

// HasActiveAccounts reports whether the member holds at least one active
// account. Any error means the answer is unknown, and the caller must treat
// unknown as "do not proceed".
func (c *Client) HasActiveAccounts(ctx context.Context, memberID string) (bool, error) {
	summaries, err := c.ActiveAccounts(ctx, memberID)
	if err != nil {
		return false, err
	}
	return len(summaries) > 0, nil
}
