package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
)

// Bet9jaClient fetches odds from bet9ja. Like sportybet it discovers a
// listing first, then fetches per-event odds dictionaries under the shared
// fetch semaphore.
type Bet9jaClient struct {
	http    *sourceHTTPClient
	baseURL string
}

// NewBet9jaClient creates a client rooted at baseURL.
func NewBet9jaClient(baseURL string, cfg HTTPClientConfig, logger *logrus.Logger) *Bet9jaClient {
	return &Bet9jaClient{
		http:    newSourceHTTPClient(models.PlatformBet9ja, cfg, logger),
		baseURL: baseURL,
	}
}

// Bet9jaSummary is one listing row from the upcoming feed.
type Bet9jaSummary struct {
	EventID       string `json:"ID"`
	HomeTeam      string `json:"HomeTeam"`
	AwayTeam      string `json:"AwayTeam"`
	KickoffMillis int64  `json:"StartDate"`
}

// FetchEventSummaries discovers upcoming events, optionally narrowed to a
// tournament (bet9ja calls them groups).
func (c *Bet9jaClient) FetchEventSummaries(ctx context.Context, tournamentID string) ([]Bet9jaSummary, error) {
	u := c.baseURL + "/feapi/PalimpsestAjax/GetUpcomingEvents?sportId=1"
	if tournamentID != "" {
		u += "&groupId=" + url.QueryEscape(tournamentID)
	}

	var resp struct {
		Data []Bet9jaSummary `json:"D"`
	}
	if err := c.http.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchEvent fetches one event's odds dictionary.
func (c *Bet9jaClient) FetchEvent(ctx context.Context, eventID string) (*normalize.Bet9jaEvent, error) {
	u := fmt.Sprintf("%s/feapi/PalimpsestAjax/GetEvent?eventId=%s", c.baseURL, url.QueryEscape(eventID))

	var resp struct {
		Data normalize.Bet9jaEvent `json:"D"`
	}
	if err := c.http.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.Data.EventID == "" {
		return nil, parseError(models.PlatformBet9ja, nil,
			fmt.Sprintf("event %s came back empty", eventID))
	}
	return &resp.Data, nil
}

// FetchEventsDetails fetches every listed event's odds under the fetch
// semaphore. Successes survive individual failures.
func (c *Bet9jaClient) FetchEventsDetails(ctx context.Context, eventIDs []string) ([]normalize.Bet9jaEvent, []error) {
	return fetchAll(ctx, eventIDs, func(ctx context.Context, id string) (normalize.Bet9jaEvent, error) {
		ev, err := c.FetchEvent(ctx, id)
		if err != nil {
			return normalize.Bet9jaEvent{}, err
		}
		return *ev, nil
	})
}

// CheckHealth probes the platform and reports latency.
func (c *Bet9jaClient) CheckHealth(ctx context.Context) HealthStatus {
	latency, err := c.http.ping(ctx, c.baseURL+"/feapi/PalimpsestAjax/GetUpcomingEvents?sportId=1")
	return HealthStatus{OK: err == nil, LatencyMS: latency, Err: err}
}

// Close releases the underlying connection pool.
func (c *Bet9jaClient) Close() {
	c.http.Close()
}
