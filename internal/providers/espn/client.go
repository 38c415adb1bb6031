package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nfl-games-service/internal/domain/games"
	"nfl-games-service/internal/providers"
)

// Config controls how the ESPN client reaches the scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches games from the ESPN NFL scoreboard and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchGames retrieves the scoreboard for the given date (YYYY-MM-DD, empty
// means today in the configured timezone).
func (c *Client) FetchGames(ctx context.Context, date string, tz string) ([]games.Game, error) {
	loc := c.loc
	if tz != "" {
		if override := providers.ResolveTimezone(tz); override != nil {
			loc = override
		}
	}

	req, err := c.buildRequest(ctx, date, loc)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimitError(resp)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, decodeErr
	}

	all := make([]games.Game, 0, len(payload.Events))
	for _, e := range payload.Events {
		all = append(all, mapEvent(e))
	}
	return all, nil
}

func (c *Client) buildRequest(ctx context.Context, date string, loc *time.Location) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scoreboard", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("dates", c.resolveDate(date, loc))
	req.URL.RawQuery = q.Encode()

	return req, nil
}

// resolveDate returns the ESPN query format YYYYMMDD.
func (c *Client) resolveDate(date string, loc *time.Location) string {
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			return parsed.Format("20060102")
		}
	}
	return c.now().In(loc).Format("20060102")
}

func rateLimitError(resp *http.Response) error {
	rl := &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Message:    "espn scoreboard rate limited",
	}
	if raw := resp.Header.Get("Retry-After"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			rl.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return rl
}
