// Package meta is a minimal Marketing API adapter: it lists the ad
// accounts reachable with the configured token and renames individual
// accounts. It is the single production implementation of the updater's
// listing/renaming interfaces.
package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultAPIVersion is the Graph API version used when none is configured.
const DefaultAPIVersion = "v19.0"

// accountStatusActive is the account_status value for active accounts.
// All other statuses (disabled, unsettled, closed, ...) are excluded.
const accountStatusActive = 1

// AdAccount is one billing/management entity in Ads Manager.
type AdAccount struct {
	ID   string
	Name string
}

// Client talks to the Marketing API over HTTP. One authenticated client
// is shared for all calls within a run; it is not safe for concurrent
// use only in the sense that nothing here needs it to be.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         *zap.Logger
}

// NewClient creates a Marketing API client for the given token.
// version selects the Graph API version (e.g. "v19.0"); empty means
// DefaultAPIVersion. baseURL overrides the Graph host entirely and is
// mainly for tests and sandboxes; empty means the production host.
func NewClient(accessToken, version, baseURL string, log *zap.Logger) *Client {
	if version == "" {
		version = DefaultAPIVersion
	}
	if baseURL == "" {
		baseURL = "https://graph.facebook.com/" + version
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// ListAdAccounts retrieves every ad account accessible to the current
// user and filters to active ones. Listing order is the API's order.
func (c *Client) ListAdAccounts(ctx context.Context) ([]AdAccount, error) {
	endpoint := c.baseURL + "/me/adaccounts?fields=id,name,account_status"

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adaccounts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("adaccounts returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result adAccountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	accounts := make([]AdAccount, 0, len(result.Data))
	for _, a := range result.Data {
		if a.AccountStatus != accountStatusActive {
			continue
		}
		accounts = append(accounts, AdAccount{ID: a.ID, Name: a.Name})
	}

	c.log.Debug("listed ad accounts",
		zap.Int("total", len(result.Data)),
		zap.Int("active", len(accounts)))

	return accounts, nil
}

// RenameAdAccount sets a new display name on one ad account
// (accountID format: act_XXXXXXXXX).
func (c *Client) RenameAdAccount(ctx context.Context, accountID, newName string) error {
	form := url.Values{}
	form.Set("name", newName)
	form.Set("access_token", c.accessToken)

	endpoint := c.baseURL + "/" + accountID
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rename request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("rename returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	c.log.Debug("renamed ad account",
		zap.String("account_id", accountID),
		zap.String("name", newName))

	return nil
}

// =============================================================================
// GRAPH API TYPES
// =============================================================================

type adAccountsResponse struct {
	Data []adAccountData `json:"data"`
}

type adAccountData struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}
