package normalize

import (
	"fmt"

	"github.com/yourusername/odds-radar/internal/markets"
	"github.com/yourusername/odds-radar/internal/models"
)

// ReferenceNormalizer maps the reference platform's own market payloads onto
// the canonical taxonomy. The reference naming *is* the canonical naming, so
// this normalizer mostly validates and attaches registry metadata.
type ReferenceNormalizer struct {
	registry *markets.Registry
}

// NewReferenceNormalizer creates a normalizer over the given registry.
func NewReferenceNormalizer(registry *markets.Registry) *ReferenceNormalizer {
	return &ReferenceNormalizer{registry: registry}
}

// Normalize converts a raw reference event into mapped markets. Unmappable
// markets come back as structured errors alongside the successes; the
// function is pure, so normalizing the same event twice yields equal output.
func (n *ReferenceNormalizer) Normalize(ev *ReferenceEvent) ([]MappedMarket, []*MappingError) {
	var (
		mapped []MappedMarket
		errs   []*MappingError
	)

	for _, raw := range ev.Markets {
		m, err := n.normalizeMarket(&raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		mapped = append(mapped, m)
	}

	return mapped, errs
}

func (n *ReferenceNormalizer) normalizeMarket(raw *ReferenceMarket) (MappedMarket, *MappingError) {
	def, ok := n.registry.FindByReferenceID(raw.MarketID)
	if !ok {
		code := CodeUnknownMarket
		if raw.Specifier != "" {
			code = CodeUnknownParamMarket
		}
		return MappedMarket{}, newMappingError(models.PlatformReference, code, raw.MarketID,
			fmt.Sprintf("reference market %q (%s) not in registry", raw.MarketID, raw.MarketName))
	}

	var line *float64
	if raw.Specifier != "" {
		if !def.HasSpecifier() {
			return MappedMarket{}, newMappingError(models.PlatformReference, CodeInvalidSpecifier, raw.MarketID,
				fmt.Sprintf("specifier %q on non-specifier market %s", raw.Specifier, def.CanonicalID))
		}
		f, err := parseLine(raw.Specifier)
		if err != nil {
			return MappedMarket{}, newMappingError(models.PlatformReference, CodeInvalidSpecifier, raw.MarketID, err.Error())
		}
		line = &f
	} else if def.HasSpecifier() {
		return MappedMarket{}, newMappingError(models.PlatformReference, CodeInvalidSpecifier, raw.MarketID,
			fmt.Sprintf("specifier market %s arrived without a line", def.CanonicalID))
	}

	outcomes := make([]models.Outcome, 0, len(raw.Prices))
	for i, price := range raw.Prices {
		outDef, ok := def.OutcomeByReferenceName(price.Name)
		if !ok {
			outDef, ok = def.OutcomeByPosition(i + 1)
		}
		if !ok {
			return MappedMarket{}, newMappingError(models.PlatformReference, CodeNoMatchingOutcomes, raw.MarketID,
				fmt.Sprintf("outcome %q not in mapping for %s", price.Name, def.CanonicalID))
		}
		outcomes = append(outcomes, models.Outcome{
			Name:   outDef.ReferenceName,
			Odds:   price.Odds,
			Active: !price.Suspended,
		})
	}

	return buildMapped(models.PlatformReference, def, line, nil, outcomes, raw.MarketID)
}
