// Package normalize converts each source's raw odds payload into the
// canonical MappedMarket representation using the market mapping registry.
package normalize

import (
	"fmt"

	"github.com/yourusername/odds-radar/internal/models"
)

// Mapping error codes. These are stable identifiers; they end up in scrape
// error rows and API problem documents as-is.
const (
	CodeUnknownMarket       = "UnknownMarket"
	CodeUnknownParamMarket  = "UnknownParamMarket"
	CodeUnsupportedPlatform = "UnsupportedPlatform"
	CodeNoMatchingOutcomes  = "NoMatchingOutcomes"
	CodeInvalidSpecifier    = "InvalidSpecifier"
	CodeInvalidOddsValue    = "InvalidOddsValue"
	CodeInvalidKeyFormat    = "InvalidKeyFormat"
	CodeUnsupportedSport    = "UnsupportedSport"
)

// MappingError is a structured per-market normalization failure. Normalizers
// never return silent nulls: a market that cannot be mapped produces one of
// these, and the caller decides whether the rest of the batch persists.
type MappingError struct {
	Platform models.Platform
	Code     string
	Key      string // offending market id / odds key
	Message  string
	Err      error
}

func (e *MappingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %s (%v)", e.Platform, e.Code, e.Key, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s: %s", e.Platform, e.Code, e.Key, e.Message)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

func newMappingError(platform models.Platform, code, key, message string) *MappingError {
	return &MappingError{Platform: platform, Code: code, Key: key, Message: message}
}
