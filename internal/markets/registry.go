// Package markets holds the canonical market taxonomy and the per-source
// lookup indexes built over it. The table is assembled once at startup and
// never mutated afterwards, so lookups need no locking.
package markets

import (
	"fmt"
	"strings"
)

// OutcomeDefinition cross-references one outcome across the three sources.
// Position is the source-independent ordinal used as the last-resort match
// when no display field lines up.
type OutcomeDefinition struct {
	CanonicalID   string
	ReferenceName string // reference outcome name, empty when unsupported
	SportyBetDesc string // sportybet outcome description
	Bet9jaSuffix  string // bet9ja key outcome suffix
	Position      int
}

// MarketDefinition is one canonical market with its per-source identifiers.
// Any source id may be empty, meaning the market is unsupported there.
type MarketDefinition struct {
	CanonicalID       string
	DisplayName       string
	ReferenceMarketID string
	SportyBetMarketID string
	Bet9jaKey         string // key prefix, not the full composed key
	Outcomes          []OutcomeDefinition

	OverUnder bool
	Handicap  bool
	Variant   bool
	TimeBased bool
	Composite bool
}

// HasSpecifier reports whether the market's identity includes a numeric line.
func (m *MarketDefinition) HasSpecifier() bool {
	return m.OverUnder || m.Handicap
}

// OutcomeByReferenceName finds an outcome by its reference display name,
// case-insensitively.
func (m *MarketDefinition) OutcomeByReferenceName(name string) (*OutcomeDefinition, bool) {
	return m.outcomeBy(name, func(o *OutcomeDefinition) string { return o.ReferenceName })
}

// OutcomeBySportyBetDesc finds an outcome by its sportybet description.
func (m *MarketDefinition) OutcomeBySportyBetDesc(desc string) (*OutcomeDefinition, bool) {
	return m.outcomeBy(desc, func(o *OutcomeDefinition) string { return o.SportyBetDesc })
}

// OutcomeByBet9jaSuffix finds an outcome by its bet9ja key suffix.
func (m *MarketDefinition) OutcomeByBet9jaSuffix(suffix string) (*OutcomeDefinition, bool) {
	return m.outcomeBy(suffix, func(o *OutcomeDefinition) string { return o.Bet9jaSuffix })
}

// OutcomeByPosition finds an outcome by ordinal position.
func (m *MarketDefinition) OutcomeByPosition(pos int) (*OutcomeDefinition, bool) {
	for i := range m.Outcomes {
		if m.Outcomes[i].Position == pos {
			return &m.Outcomes[i], true
		}
	}
	return nil, false
}

func (m *MarketDefinition) outcomeBy(key string, field func(*OutcomeDefinition) string) (*OutcomeDefinition, bool) {
	if key == "" {
		return nil, false
	}
	for i := range m.Outcomes {
		if v := field(&m.Outcomes[i]); v != "" && strings.EqualFold(v, key) {
			return &m.Outcomes[i], true
		}
	}
	return nil, false
}

// Registry exposes O(1) lookups over the canonical market table by any
// source identifier.
type Registry struct {
	defs        []MarketDefinition
	byCanonical map[string]*MarketDefinition
	byReference map[string]*MarketDefinition
	bySportyBet map[string]*MarketDefinition
	byBet9ja    map[string]*MarketDefinition
}

// NewRegistry builds the lookup indexes over the static canonical table in a
// single pass. Markets missing a source id are simply absent from that index.
func NewRegistry() (*Registry, error) {
	return newRegistry(canonicalMarkets)
}

func newRegistry(defs []MarketDefinition) (*Registry, error) {
	r := &Registry{
		defs:        defs,
		byCanonical: make(map[string]*MarketDefinition, len(defs)),
		byReference: make(map[string]*MarketDefinition, len(defs)),
		bySportyBet: make(map[string]*MarketDefinition, len(defs)),
		byBet9ja:    make(map[string]*MarketDefinition, len(defs)),
	}

	for i := range r.defs {
		def := &r.defs[i]
		if def.CanonicalID == "" {
			return nil, fmt.Errorf("market %q has no canonical id", def.DisplayName)
		}
		if _, dup := r.byCanonical[def.CanonicalID]; dup {
			return nil, fmt.Errorf("duplicate canonical market id %q", def.CanonicalID)
		}
		r.byCanonical[def.CanonicalID] = def

		if def.ReferenceMarketID != "" {
			if _, dup := r.byReference[def.ReferenceMarketID]; dup {
				return nil, fmt.Errorf("duplicate reference market id %q", def.ReferenceMarketID)
			}
			r.byReference[def.ReferenceMarketID] = def
		}
		if def.SportyBetMarketID != "" {
			if _, dup := r.bySportyBet[def.SportyBetMarketID]; dup {
				return nil, fmt.Errorf("duplicate sportybet market id %q", def.SportyBetMarketID)
			}
			r.bySportyBet[def.SportyBetMarketID] = def
		}
		if def.Bet9jaKey != "" {
			if _, dup := r.byBet9ja[def.Bet9jaKey]; dup {
				return nil, fmt.Errorf("duplicate bet9ja key %q", def.Bet9jaKey)
			}
			r.byBet9ja[def.Bet9jaKey] = def
		}
	}

	return r, nil
}

// MustNewRegistry is NewRegistry for process init paths where a broken table
// is unrecoverable.
func MustNewRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// FindByCanonicalID looks a market up by canonical id.
func (r *Registry) FindByCanonicalID(id string) (*MarketDefinition, bool) {
	def, ok := r.byCanonical[id]
	return def, ok
}

// FindByReferenceID looks a market up by the reference platform's market id.
func (r *Registry) FindByReferenceID(id string) (*MarketDefinition, bool) {
	def, ok := r.byReference[id]
	return def, ok
}

// FindBySportyBetID looks a market up by sportybet market id.
func (r *Registry) FindBySportyBetID(id string) (*MarketDefinition, bool) {
	def, ok := r.bySportyBet[id]
	return def, ok
}

// FindByBet9jaKey looks a market up by bet9ja key prefix (the decomposed
// market portion of a full odds key, not the raw key itself).
func (r *Registry) FindByBet9jaKey(prefix string) (*MarketDefinition, bool) {
	def, ok := r.byBet9ja[prefix]
	return def, ok
}

// IsOverUnder reports whether the sportybet market id names an over/under
// market.
func (r *Registry) IsOverUnder(sportyBetID string) bool {
	def, ok := r.bySportyBet[sportyBetID]
	return ok && def.OverUnder
}

// IsHandicap reports whether the sportybet market id names a handicap market.
func (r *Registry) IsHandicap(sportyBetID string) bool {
	def, ok := r.bySportyBet[sportyBetID]
	return ok && def.Handicap
}

// IsVariant reports whether the sportybet market id names a variant market.
func (r *Registry) IsVariant(sportyBetID string) bool {
	def, ok := r.bySportyBet[sportyBetID]
	return ok && def.Variant
}

// IsTimeBased reports whether the sportybet market id names a time-scoped
// market (half, interval).
func (r *Registry) IsTimeBased(sportyBetID string) bool {
	def, ok := r.bySportyBet[sportyBetID]
	return ok && def.TimeBased
}

// All returns a copy of the canonical table.
func (r *Registry) All() []MarketDefinition {
	out := make([]MarketDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Len returns the number of canonical markets.
func (r *Registry) Len() int {
	return len(r.defs)
}
