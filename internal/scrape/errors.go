// Package scrape holds the HTTP facades for the odds sources. Clients return
// raw payloads only; normalization is the normalize package's job.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/yourusername/odds-radar/internal/models"
)

// SourceError classifies a failed source interaction so the orchestrator can
// persist it under the right taxonomy bucket.
type SourceError struct {
	Platform models.Platform
	Type     models.ErrorType
	Message  string
	Err      error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Platform, e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Platform, e.Type, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// classifyError wraps a transport or decode failure into a SourceError.
// Deadline and cancellation map to timeout, net errors to network; everything
// else the caller tags explicitly.
func classifyError(platform models.Platform, err error, message string) *SourceError {
	typ := models.ErrorNetwork
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		typ = models.ErrorTimeout
	case errors.Is(err, context.Canceled):
		typ = models.ErrorTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		typ = models.ErrorTimeout
	}
	return &SourceError{Platform: platform, Type: typ, Message: message, Err: err}
}

func parseError(platform models.Platform, err error, message string) *SourceError {
	return &SourceError{Platform: platform, Type: models.ErrorParse, Message: message, Err: err}
}

func rateLimitError(platform models.Platform, message string) *SourceError {
	return &SourceError{Platform: platform, Type: models.ErrorRateLimit, Message: message}
}

func statusError(platform models.Platform, status int, url string) *SourceError {
	if status == 429 {
		return rateLimitError(platform, fmt.Sprintf("rate limited after retries: GET %s", url))
	}
	return &SourceError{
		Platform: platform,
		Type:     models.ErrorNetwork,
		Message:  fmt.Sprintf("unexpected status %d: GET %s", status, url),
	}
}
