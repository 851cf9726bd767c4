package clashroyale

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"royalestats/internal/domain"
)

const requestTimeout = 10 * time.Second

// Client issues read requests against the Clash Royale public API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// NormalizeTag strips surrounding whitespace and a single leading '#'.
// Player tags are stored and sent upstream without the '#'.
func NormalizeTag(tag string) string {
	return strings.TrimPrefix(strings.TrimSpace(tag), "#")
}

// GetPlayer fetches the public profile for a player tag. The tag may carry a
// leading '#'; the upstream path wants it URL-encoded as %23. A single
// attempt is made, no retries.
func (c *Client) GetPlayer(ctx context.Context, tag string) (*domain.PlayerStats, error) {
	if c.apiKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}

	url := fmt.Sprintf("%s/players/%%23%s", c.baseURL, NormalizeTag(tag))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var stats domain.PlayerStats
		if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
			return nil, &domain.UpstreamError{Err: err}
		}
		return &stats, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrPlayerNotFound
	case resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrUpstreamAuth
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &domain.UpstreamError{}
	default:
		return nil, &domain.UpstreamError{Status: resp.StatusCode}
	}
}
