package models

import "fmt"

// Platform identifies an odds source. The reference platform provides the
// canonical market taxonomy; the others are competitors compared against it.
type Platform string

const (
	PlatformReference Platform = "reference"
	PlatformSportyBet Platform = "sportybet"
	PlatformBet9ja    Platform = "bet9ja"
)

// AllPlatforms lists every supported platform in fan-out order.
var AllPlatforms = []Platform{PlatformReference, PlatformSportyBet, PlatformBet9ja}

// ParsePlatform validates a platform string from an API request or CLI flag.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformReference, PlatformSportyBet, PlatformBet9ja:
		return Platform(s), nil
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

// BookmakerSlug returns the bookmaker slug a platform scrapes for.
func (p Platform) BookmakerSlug() string {
	switch p {
	case PlatformReference:
		return "betpawa"
	default:
		return string(p)
	}
}

// BookmakerRole distinguishes the reference bookmaker from competitors.
type BookmakerRole string

const (
	RoleReference  BookmakerRole = "reference"
	RoleCompetitor BookmakerRole = "competitor"
)

// Role returns the bookmaker role implied by the platform.
func (p Platform) Role() BookmakerRole {
	if p == PlatformReference {
		return RoleReference
	}
	return RoleCompetitor
}
