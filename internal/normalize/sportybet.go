package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/yourusername/odds-radar/internal/markets"
	"github.com/yourusername/odds-radar/internal/models"
)

// supportedSports limits normalization to sports present in the canonical
// taxonomy. Sportybet listings mix sports freely.
var supportedSports = map[string]bool{
	"":         true, // older payloads omit the field
	"football": true,
	"soccer":   true,
}

// SportyBetNormalizer maps sportybet market payloads onto the canonical
// taxonomy, decoding pipe-delimited specifier strings along the way.
type SportyBetNormalizer struct {
	registry *markets.Registry
}

// NewSportyBetNormalizer creates a normalizer over the given registry.
func NewSportyBetNormalizer(registry *markets.Registry) *SportyBetNormalizer {
	return &SportyBetNormalizer{registry: registry}
}

// Normalize converts a raw sportybet event into mapped markets. A handicap
// pair specifier expands into one mapped market per half-line.
func (n *SportyBetNormalizer) Normalize(ev *SportyBetEvent) ([]MappedMarket, []*MappingError) {
	if !supportedSports[strings.ToLower(ev.SportName)] {
		return nil, []*MappingError{newMappingError(models.PlatformSportyBet, CodeUnsupportedSport, ev.EventID,
			fmt.Sprintf("sport %q is not mapped", ev.SportName))}
	}

	var (
		mapped []MappedMarket
		errs   []*MappingError
	)

	for _, raw := range ev.Markets {
		ms, err := n.normalizeMarket(&raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		mapped = append(mapped, ms...)
	}

	return mapped, errs
}

func (n *SportyBetNormalizer) normalizeMarket(raw *SportyBetMarket) ([]MappedMarket, *MappingError) {
	def, ok := n.registry.FindBySportyBetID(raw.MarketID)
	if !ok {
		code := CodeUnknownMarket
		if raw.Specifier != "" {
			code = CodeUnknownParamMarket
		}
		return nil, newMappingError(models.PlatformSportyBet, code, raw.MarketID,
			fmt.Sprintf("sportybet market %q (%s) not in registry", raw.MarketID, raw.Desc))
	}

	spec, err := ParseSpecifier(raw.Specifier)
	if err != nil {
		return nil, newMappingError(models.PlatformSportyBet, CodeInvalidSpecifier, raw.MarketID, err.Error())
	}
	if def.HasSpecifier() && !spec.HasLine() {
		return nil, newMappingError(models.PlatformSportyBet, CodeInvalidSpecifier, raw.MarketID,
			fmt.Sprintf("specifier market %s arrived without a line", def.CanonicalID))
	}

	outcomes, merr := n.resolveOutcomes(def, raw)
	if merr != nil {
		return nil, merr
	}

	if !def.HasSpecifier() {
		m, merr := buildMapped(models.PlatformSportyBet, def, nil, spec.Variant, outcomes, raw.MarketID)
		if merr != nil {
			return nil, merr
		}
		return []MappedMarket{m}, nil
	}

	// One mapped market per half-line; a plain total yields exactly one.
	var out []MappedMarket
	for _, l := range spec.Lines() {
		line := l
		m, merr := buildMapped(models.PlatformSportyBet, def, &line, spec.Variant, outcomes, raw.MarketID)
		if merr != nil {
			return nil, merr
		}
		out = append(out, m)
	}
	return out, nil
}

func (n *SportyBetNormalizer) resolveOutcomes(def *markets.MarketDefinition, raw *SportyBetMarket) ([]models.Outcome, *MappingError) {
	outcomes := make([]models.Outcome, 0, len(raw.Outcomes))
	for i, o := range raw.Outcomes {
		outDef, ok := def.OutcomeBySportyBetDesc(o.Desc)
		if !ok {
			outDef, ok = def.OutcomeByPosition(i + 1)
		}
		if !ok {
			return nil, newMappingError(models.PlatformSportyBet, CodeNoMatchingOutcomes, raw.MarketID,
				fmt.Sprintf("outcome %q not in mapping for %s", o.Desc, def.CanonicalID))
		}

		odds, err := decimal.NewFromString(strings.TrimSpace(o.Odds))
		if err != nil {
			return nil, newMappingError(models.PlatformSportyBet, CodeInvalidOddsValue, raw.MarketID,
				fmt.Sprintf("unparseable odds %q for outcome %q", o.Odds, o.Desc))
		}
		f, _ := odds.Float64()

		outcomes = append(outcomes, models.Outcome{
			Name:   outDef.ReferenceName,
			Odds:   f,
			Active: o.IsActive == 1,
		})
	}
	return outcomes, nil
}
