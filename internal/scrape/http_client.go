package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/odds-radar/internal/models"
)

// HTTPClientConfig holds configuration for source HTTP clients.
type HTTPClientConfig struct {
	Timeout         time.Duration
	MaxRetries      int
	RetryWaitMin    time.Duration
	RetryWaitMax    time.Duration
	RequestInterval time.Duration // inter-request pause for rate limiting
	UserAgent       string
}

// DefaultHTTPClientConfig returns the retry and pacing defaults: exponential
// backoff starting at 1s, doubling, capped at 10s, 3 attempts, ~50ms between
// requests.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:         15 * time.Second,
		MaxRetries:      3,
		RetryWaitMin:    1 * time.Second,
		RetryWaitMax:    10 * time.Second,
		RequestInterval: 50 * time.Millisecond,
		UserAgent:       "odds-radar/1.0",
	}
}

// sourceHTTPClient wraps retryablehttp.Client with rate limiting. One lives
// inside each source client and is kept alive across runs.
type sourceHTTPClient struct {
	platform models.Platform
	client   *retryablehttp.Client
	limiter  *rate.Limiter
	cfg      HTTPClientConfig
	logger   *logrus.Entry
}

func newSourceHTTPClient(platform models.Platform, cfg HTTPClientConfig, logger *logrus.Logger) *sourceHTTPClient {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.CheckRetry = transientRetryPolicy
	// Hand back the final response when retries exhaust, so a persistent
	// 429 or 5xx is classified by status instead of surfacing as a
	// "giving up" transport error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	return &sourceHTTPClient{
		platform: platform,
		client:   retryClient,
		limiter:  rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		cfg:      cfg,
		logger:   logger.WithField("platform", platform),
	}
}

// getJSON fetches url and decodes the body into out. Transport failures come
// back already classified; a decode failure is a parse error.
func (c *sourceHTTPClient) getJSON(ctx context.Context, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return classifyError(c.platform, err, "rate limiter wait")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return classifyError(c.platform, err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return classifyError(c.platform, err, fmt.Sprintf("GET %s", url))
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"url":        url,
		"status":     resp.StatusCode,
		"elapsed_ms": time.Since(start).Milliseconds(),
	}).Debug("source request")

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return statusError(c.platform, resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return parseError(c.platform, err, fmt.Sprintf("decoding response from %s", url))
	}
	return nil
}

// ping issues one request without retries and reports the round-trip latency.
func (c *sourceHTTPClient) ping(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, classifyError(c.platform, err, "building health request")
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	start := time.Now()
	resp, err := c.client.HTTPClient.Do(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return latency, classifyError(c.platform, err, fmt.Sprintf("GET %s", url))
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode >= 500 {
		return latency, statusError(c.platform, resp.StatusCode, url)
	}
	return latency, nil
}

// Close releases idle connections. The HTTP pool is otherwise kept alive
// across runs.
func (c *sourceHTTPClient) Close() {
	c.client.HTTPClient.CloseIdleConnections()
}

// transientRetryPolicy retries transient network errors and 429 plus server
// errors. Other 4xx responses fail immediately.
func transientRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}
	return false, nil
}

// HealthStatus is one source's reachability probe result.
type HealthStatus struct {
	OK        bool  `json:"ok"`
	LatencyMS int64 `json:"latency_ms"`
	Err       error `json:"-"`
}
