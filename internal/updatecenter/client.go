package updatecenter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ppiankov/plugintriage/internal/models"
)

// DefaultURL is the update center snapshot fetched when no override is
// configured.
const DefaultURL = "https://mirrors.updates.jenkins.io/current/update-center.actual.json"

// Client fetches the update center snapshot.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates a client for the given snapshot URL.
func New(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes the snapshot. Any failure (transport,
// non-200 status, non-JSON body) is terminal for the run.
func (c *Client) Fetch(ctx context.Context) (*models.UpdateCenter, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch update center: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("update center returned HTTP %d", resp.StatusCode)
	}

	var uc models.UpdateCenter
	if err := json.NewDecoder(resp.Body).Decode(&uc); err != nil {
		return nil, fmt.Errorf("decode update center: %w", err)
	}

	return &uc, nil
}
