package normalize

import (
	"fmt"

	"github.com/yourusername/odds-radar/internal/markets"
	"github.com/yourusername/odds-radar/internal/models"
)

// buildMapped assembles a MappedMarket from resolved outcomes, validating
// odds and computing the margin at ingest. A market with any non-positive
// odds is rejected rather than stored with a meaningless margin.
func buildMapped(platform models.Platform, def *markets.MarketDefinition, line *float64, variant *string, outcomes []models.Outcome, key string) (MappedMarket, *MappingError) {
	if len(outcomes) == 0 {
		return MappedMarket{}, newMappingError(platform, CodeNoMatchingOutcomes, key,
			fmt.Sprintf("no outcomes resolved for market %s", def.CanonicalID))
	}

	for _, o := range outcomes {
		if o.Odds <= 0 {
			return MappedMarket{}, newMappingError(platform, CodeInvalidOddsValue, key,
				fmt.Sprintf("non-positive odds %v for outcome %q", o.Odds, o.Name))
		}
	}

	return MappedMarket{
		CanonicalID:         def.CanonicalID,
		ReferenceMarketID:   def.ReferenceMarketID,
		ReferenceMarketName: def.DisplayName,
		Line:                line,
		Variant:             variant,
		Outcomes:            outcomes,
		Margin:              models.Overround(outcomes),
	}, nil
}
