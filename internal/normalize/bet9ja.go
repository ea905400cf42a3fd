package normalize

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/yourusername/odds-radar/internal/markets"
	"github.com/yourusername/odds-radar/internal/models"
)

// bet9jaKeyPattern decomposes a composed odds key into market prefix,
// optional parameter and outcome suffix, e.g. "S_OU@2.5_O" ->
// ("OU", "2.5", "O") and "S_1X2_1" -> ("1X2", "", "1").
var bet9jaKeyPattern = regexp.MustCompile(`^S_([A-Z0-9_\-]+?)(?:@([^_]+))?_(.+)$`)

// bet9jaGroup is a (market prefix, parameter) bucket of the raw odds map.
type bet9jaGroup struct {
	prefix string
	param  string
}

// Bet9jaNormalizer maps bet9ja's flat odds dictionaries onto the canonical
// taxonomy. Keys are grouped by (market prefix, parameter) before lookup, so
// "S_OU@2.5_O" and "S_OU@2.5_U" land in one market while "S_OU@3.5_*" form
// another.
type Bet9jaNormalizer struct {
	registry *markets.Registry
}

// NewBet9jaNormalizer creates a normalizer over the given registry.
func NewBet9jaNormalizer(registry *markets.Registry) *Bet9jaNormalizer {
	return &Bet9jaNormalizer{registry: registry}
}

// Normalize converts a raw bet9ja event into mapped markets.
func (n *Bet9jaNormalizer) Normalize(ev *Bet9jaEvent) ([]MappedMarket, []*MappingError) {
	return n.NormalizeBatch(ev.Odds)
}

// NormalizeBatch groups and maps a raw odds dictionary. It always returns
// every successfully normalized market together with a structured error per
// failed group; the caller decides whether the successes persist. Iteration
// is key-sorted so the output is deterministic.
func (n *Bet9jaNormalizer) NormalizeBatch(odds map[string]float64) ([]MappedMarket, []*MappingError) {
	groups := make(map[bet9jaGroup]map[string]float64)
	var errs []*MappingError

	keys := make([]string, 0, len(odds))
	for k := range odds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		m := bet9jaKeyPattern.FindStringSubmatch(key)
		if m == nil {
			errs = append(errs, newMappingError(models.PlatformBet9ja, CodeInvalidKeyFormat, key,
				"odds key does not match S_<market>[@param]_<outcome>"))
			continue
		}
		g := bet9jaGroup{prefix: m[1], param: m[2]}
		if groups[g] == nil {
			groups[g] = make(map[string]float64)
		}
		groups[g][m[3]] = odds[key]
	}

	ordered := make([]bet9jaGroup, 0, len(groups))
	for g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].prefix != ordered[j].prefix {
			return ordered[i].prefix < ordered[j].prefix
		}
		return ordered[i].param < ordered[j].param
	})

	var mapped []MappedMarket
	for _, g := range ordered {
		m, err := n.normalizeGroup(g, groups[g])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		mapped = append(mapped, m)
	}

	return mapped, errs
}

func (n *Bet9jaNormalizer) normalizeGroup(g bet9jaGroup, outcomes map[string]float64) (MappedMarket, *MappingError) {
	groupKey := g.prefix
	if g.param != "" {
		groupKey = g.prefix + "@" + g.param
	}

	def, ok := n.registry.FindByBet9jaKey(g.prefix)
	if !ok {
		code := CodeUnknownMarket
		if g.param != "" {
			code = CodeUnknownParamMarket
		}
		return MappedMarket{}, newMappingError(models.PlatformBet9ja, code, groupKey,
			fmt.Sprintf("bet9ja market prefix %q not in registry", g.prefix))
	}

	var (
		line    *float64
		variant *string
	)
	switch {
	case def.HasSpecifier():
		if g.param == "" {
			return MappedMarket{}, newMappingError(models.PlatformBet9ja, CodeInvalidSpecifier, groupKey,
				fmt.Sprintf("specifier market %s arrived without a parameter", def.CanonicalID))
		}
		f, err := parseLine(g.param)
		if err != nil {
			return MappedMarket{}, newMappingError(models.PlatformBet9ja, CodeInvalidSpecifier, groupKey, err.Error())
		}
		line = &f
	case g.param != "":
		v := g.param
		variant = &v
	}

	suffixes := make([]string, 0, len(outcomes))
	for s := range outcomes {
		suffixes = append(suffixes, s)
	}
	sort.Strings(suffixes)

	resolved := make([]models.Outcome, 0, len(suffixes))
	for _, suffix := range suffixes {
		outDef, ok := def.OutcomeByBet9jaSuffix(suffix)
		if !ok {
			return MappedMarket{}, newMappingError(models.PlatformBet9ja, CodeNoMatchingOutcomes, groupKey,
				fmt.Sprintf("suffix %q not in mapping for %s", suffix, def.CanonicalID))
		}
		resolved = append(resolved, models.Outcome{
			Name:   outDef.ReferenceName,
			Odds:   outcomes[suffix],
			Active: true, // bet9ja omits suspended selections from the map
		})
	}

	// Present outcomes in canonical position order, not suffix sort order.
	sort.SliceStable(resolved, func(i, j int) bool {
		a, _ := def.OutcomeByReferenceName(resolved[i].Name)
		b, _ := def.OutcomeByReferenceName(resolved[j].Name)
		if a == nil || b == nil {
			return false
		}
		return a.Position < b.Position
	})

	return buildMapped(models.PlatformBet9ja, def, line, variant, resolved, groupKey)
}
