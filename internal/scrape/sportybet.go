package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
)

// SportyBetClient fetches odds from sportybet using the two-step pattern:
// listing for event ids, then one detail call per event under the shared
// fetch semaphore.
type SportyBetClient struct {
	http    *sourceHTTPClient
	baseURL string
}

// NewSportyBetClient creates a client rooted at baseURL.
func NewSportyBetClient(baseURL string, cfg HTTPClientConfig, logger *logrus.Logger) *SportyBetClient {
	return &SportyBetClient{
		http:    newSourceHTTPClient(models.PlatformSportyBet, cfg, logger),
		baseURL: baseURL,
	}
}

// sportyBetEnvelope is the common response wrapper; bizCode 10000 is success.
type sportyBetEnvelope[T any] struct {
	BizCode int    `json:"bizCode"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

const sportyBetOK = 10000

// SportyBetSummary is one listing row; detail fetches use EventID.
type SportyBetSummary struct {
	EventID       string `json:"eventId"`
	HomeTeam      string `json:"homeTeamName"`
	AwayTeam      string `json:"awayTeamName"`
	KickoffMillis int64  `json:"estimateStartTime"`
}

// FetchSports lists sportybet's sports.
func (c *SportyBetClient) FetchSports(ctx context.Context) ([]Sport, error) {
	var resp sportyBetEnvelope[[]Sport]
	if err := c.http.getJSON(ctx, c.baseURL+"/api/ng/factsCenter/sports", &resp); err != nil {
		return nil, err
	}
	if resp.BizCode != sportyBetOK {
		return nil, parseError(models.PlatformSportyBet, nil,
			fmt.Sprintf("listing rejected with bizCode %d: %s", resp.BizCode, resp.Message))
	}
	return resp.Data, nil
}

// FetchEventSummaries discovers upcoming events for the optional tournament.
func (c *SportyBetClient) FetchEventSummaries(ctx context.Context, tournamentID string) ([]SportyBetSummary, error) {
	u := c.baseURL + "/api/ng/factsCenter/pcUpcomingEvents?sportId=sr%3Asport%3A1"
	if tournamentID != "" {
		u += "&tournamentId=" + url.QueryEscape(tournamentID)
	}

	var resp sportyBetEnvelope[struct {
		Events []SportyBetSummary `json:"events"`
	}]
	if err := c.http.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.BizCode != sportyBetOK {
		return nil, parseError(models.PlatformSportyBet, nil,
			fmt.Sprintf("listing rejected with bizCode %d: %s", resp.BizCode, resp.Message))
	}
	return resp.Data.Events, nil
}

// FetchEvent fetches one event's full market payload.
func (c *SportyBetClient) FetchEvent(ctx context.Context, eventID string) (*normalize.SportyBetEvent, error) {
	u := c.baseURL + "/api/ng/factsCenter/event?eventId=" + url.QueryEscape(eventID)

	var resp sportyBetEnvelope[normalize.SportyBetEvent]
	if err := c.http.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.BizCode != sportyBetOK {
		return nil, parseError(models.PlatformSportyBet, nil,
			fmt.Sprintf("event %s rejected with bizCode %d: %s", eventID, resp.BizCode, resp.Message))
	}
	return &resp.Data, nil
}

// FetchEventsDetails fetches every listed event's detail under the fetch
// semaphore. Successes survive individual failures.
func (c *SportyBetClient) FetchEventsDetails(ctx context.Context, eventIDs []string) ([]normalize.SportyBetEvent, []error) {
	return fetchAll(ctx, eventIDs, func(ctx context.Context, id string) (normalize.SportyBetEvent, error) {
		ev, err := c.FetchEvent(ctx, id)
		if err != nil {
			return normalize.SportyBetEvent{}, err
		}
		return *ev, nil
	})
}

// CheckHealth probes the platform and reports latency.
func (c *SportyBetClient) CheckHealth(ctx context.Context) HealthStatus {
	latency, err := c.http.ping(ctx, c.baseURL+"/api/ng/factsCenter/sports")
	return HealthStatus{OK: err == nil, LatencyMS: latency, Err: err}
}

// Close releases the underlying connection pool.
func (c *SportyBetClient) Close() {
	c.http.Close()
}
