package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
)

// ReferenceClient fetches odds from the reference bookmaker. Its listing
// endpoint already embeds full market payloads, so there is no per-event
// detail step.
type ReferenceClient struct {
	http    *sourceHTTPClient
	baseURL string
}

// NewReferenceClient creates a client rooted at baseURL.
func NewReferenceClient(baseURL string, cfg HTTPClientConfig, logger *logrus.Logger) *ReferenceClient {
	return &ReferenceClient{
		http:    newSourceHTTPClient(models.PlatformReference, cfg, logger),
		baseURL: baseURL,
	}
}

// Sport is a sport listing entry common to discovery responses.
type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FetchSports lists the sports the reference platform offers.
func (c *ReferenceClient) FetchSports(ctx context.Context) ([]Sport, error) {
	var resp struct {
		Sports []Sport `json:"sports"`
	}
	if err := c.http.getJSON(ctx, c.baseURL+"/api/sports", &resp); err != nil {
		return nil, err
	}
	return resp.Sports, nil
}

// FetchEvents returns upcoming events with full market payloads in one call.
// Optional sport and tournament filters narrow the listing.
func (c *ReferenceClient) FetchEvents(ctx context.Context, sportID, tournamentID string) ([]normalize.ReferenceEvent, error) {
	q := url.Values{}
	if sportID != "" {
		q.Set("sportId", sportID)
	}
	if tournamentID != "" {
		q.Set("tournamentId", tournamentID)
	}

	u := c.baseURL + "/api/events/upcoming"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var resp struct {
		Events []normalize.ReferenceEvent `json:"events"`
	}
	if err := c.http.getJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

// FetchEvent fetches one event by its external id.
func (c *ReferenceClient) FetchEvent(ctx context.Context, eventID string) (*normalize.ReferenceEvent, error) {
	var ev normalize.ReferenceEvent
	u := fmt.Sprintf("%s/api/events/%s", c.baseURL, url.PathEscape(eventID))
	if err := c.http.getJSON(ctx, u, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// CheckHealth probes the platform and reports latency.
func (c *ReferenceClient) CheckHealth(ctx context.Context) HealthStatus {
	latency, err := c.http.ping(ctx, c.baseURL+"/api/sports")
	return HealthStatus{OK: err == nil, LatencyMS: latency, Err: err}
}

// Close releases the underlying connection pool.
func (c *ReferenceClient) Close() {
	c.http.Close()
}
