package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/models"
)

func testHTTPConfig() HTTPClientConfig {
	cfg := DefaultHTTPClientConfig()
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.RequestInterval = time.Microsecond
	return cfg
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestGetJSONRetriesOn429(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"value":42}`))
	}))
	defer srv.Close()

	c := newSourceHTTPClient(models.PlatformSportyBet, testHTTPConfig(), testLogger())
	defer c.Close()

	var out struct {
		Value int `json:"value"`
	}
	err := c.getJSON(context.Background(), srv.URL, &out)
	require.NoError(t, err)
	require.Equal(t, 42, out.Value)
	require.Equal(t, int32(3), calls.Load())
}

func TestGetJSONDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newSourceHTTPClient(models.PlatformBet9ja, testHTTPConfig(), testLogger())
	defer c.Close()

	err := c.getJSON(context.Background(), srv.URL, &struct{}{})
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	require.Equal(t, models.ErrorNetwork, srcErr.Type)
}

func TestGetJSONRateLimitExhaustion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newSourceHTTPClient(models.PlatformSportyBet, testHTTPConfig(), testLogger())
	defer c.Close()

	err := c.getJSON(context.Background(), srv.URL, &struct{}{})
	require.Error(t, err)

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	require.Equal(t, models.ErrorRateLimit, srcErr.Type)
}

func TestGetJSONParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := newSourceHTTPClient(models.PlatformReference, testHTTPConfig(), testLogger())
	defer c.Close()

	err := c.getJSON(context.Background(), srv.URL, &struct{}{})
	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	require.Equal(t, models.ErrorParse, srcErr.Type)
}

func TestPingReportsLatency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newSourceHTTPClient(models.PlatformReference, testHTTPConfig(), testLogger())
	defer c.Close()

	latency, err := c.ping(context.Background(), srv.URL)
	require.NoError(t, err)
	require.GreaterOrEqual(t, latency, int64(0))
}

func TestFetchAllBoundsConcurrency(t *testing.T) {
	var (
		mu       sync.Mutex
		inFlight int
		peak     int
	)

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = "ev"
	}

	got, errs := fetchAll(context.Background(), ids, func(ctx context.Context, id string) (string, error) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(2 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return id, nil
	})
	require.Empty(t, errs)
	require.Len(t, got, 50)
	require.LessOrEqual(t, peak, maxConcurrentFetches)
}

func TestFetchAllKeepsSuccessesOnPartialFailure(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	bad := errors.New("boom")

	got, errs := fetchAll(context.Background(), ids, func(ctx context.Context, id string) (string, error) {
		if id == "b" || id == "d" {
			return "", bad
		}
		return id, nil
	})
	require.Equal(t, []string{"a", "c"}, got)
	require.Len(t, errs, 2)
}

func TestFetchAllStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ids := []string{"a", "b"}
	got, errs := fetchAll(ctx, ids, func(ctx context.Context, id string) (string, error) {
		return id, nil
	})
	require.Empty(t, got)
	require.Len(t, errs, 2)
}
