package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxSpecifierLen bounds parsing cost on hostile or corrupted specifiers.
const maxSpecifierLen = 1000

// Specifier is the decoded parameter set of a sportybet market specifier
// string. Handicap pairs ("1,2") decompose into two half-lines.
type Specifier struct {
	Total    *float64
	Handicap []float64
	Variant  *string
}

// HasLine reports whether the specifier carries any numeric line.
func (s *Specifier) HasLine() bool {
	return s.Total != nil || len(s.Handicap) > 0
}

// Lines returns the numeric lines the specifier expands to: a total produces
// one, a handicap pair produces one per half-line.
func (s *Specifier) Lines() []float64 {
	if s.Total != nil {
		return []float64{*s.Total}
	}
	return s.Handicap
}

// ParseSpecifier decodes a "key=value|key=value" specifier string.
// Recognized keys: total (float), hcp (float or "a,b" pair), variant
// (opaque string). Unrecognized keys are ignored; malformed values are an
// error so the market is dropped rather than mispriced.
func ParseSpecifier(raw string) (*Specifier, error) {
	if len(raw) > maxSpecifierLen {
		return nil, errSpecifierTooLong
	}

	spec := &Specifier{}
	if raw == "" {
		return spec, nil
	}

	for _, pair := range strings.Split(raw, "|") {
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found || value == "" {
			return nil, errMalformedSpecifier(pair)
		}

		switch key {
		case "total":
			f, err := parseLine(value)
			if err != nil {
				return nil, err
			}
			spec.Total = &f
		case "hcp":
			lines, err := parseHandicap(value)
			if err != nil {
				return nil, err
			}
			spec.Handicap = lines
		case "variant":
			v := value
			spec.Variant = &v
		}
	}

	return spec, nil
}

// parseLine parses a single numeric line with decimal precision before
// converting to float64, so "2.5" survives exactly.
func parseLine(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, errMalformedSpecifier(s)
	}
	f, _ := d.Float64()
	return f, nil
}

// parseHandicap parses a handicap value that is either one line or a pair
// "a,b" naming two half-lines.
func parseHandicap(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return nil, errMalformedSpecifier(s)
	}

	lines := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := parseLine(p)
		if err != nil {
			return nil, err
		}
		lines = append(lines, f)
	}
	return lines, nil
}

type specifierError struct{ msg string }

func (e specifierError) Error() string { return e.msg }

var errSpecifierTooLong = specifierError{msg: "specifier exceeds maximum length"}

func errMalformedSpecifier(part string) error {
	return specifierError{msg: "malformed specifier segment: " + part}
}
