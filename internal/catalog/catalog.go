// Package catalog provides the static reference data for every tradable
// instrument in the sample dataset. It is the source of truth for security
// metadata within the server.
package catalog

import (
	"strings"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

// Kind is the instrument class of a security.
type Kind string

const (
	// KindEquity is a listed share.
	KindEquity Kind = "equity"
	// KindBond is a government or corporate bond priced as a percentage of par.
	KindBond Kind = "bond"
)

// Security holds metadata for a single instrument.
type Security struct {
	// ISIN is the unique 12-character instrument identifier.
	ISIN string `json:"isin"`
	// Kind is the instrument class.
	Kind Kind `json:"type"`
	// Name is the issuer or instrument name.
	Name string `json:"name"`
	// Sector is the industry classification.
	Sector string `json:"sector"`
	// Currency is the ISO 4217 trading currency.
	Currency string `json:"currency"`
	// Exchange is the primary listing venue for equities.
	Exchange string `json:"exchange,omitempty"`
	// MarketCap is a size bucket for equities (large, mid, small).
	MarketCap string `json:"market_cap,omitempty"`
	// Maturity is the bond maturity date (YYYY-MM-DD).
	Maturity string `json:"maturity,omitempty"`
	// CreditRating is the bond's credit rating.
	CreditRating string `json:"rating,omitempty"`
	// Yield is the bond's yield to maturity in percent.
	Yield float64 `json:"yield,omitempty"`
}

// All returns a copy of every security in the catalog, in catalog order.
func All() []Security {
	out := make([]Security, len(registry))
	copy(out, registry)

	return out
}

// ByISIN returns the security with the given ISIN, or nil if none exists.
func ByISIN(isin string) *Security {
	i, ok := index[isin]
	if !ok {
		return nil
	}

	s := registry[i]

	return &s
}

// Contains reports whether the catalog lists isin.
func Contains(isin string) bool {
	_, ok := index[isin]

	return ok
}

// ByKind returns all securities of the given kind, in catalog order.
func ByKind(kind Kind) []Security {
	var out []Security

	for _, s := range registry {
		if s.Kind == kind {
			out = append(out, s)
		}
	}

	return out
}

// Lookup validates isin and returns the matching security.
// It fails with a ValidationError for malformed input and a NotFoundError
// when the ISIN is well formed but not listed.
func Lookup(isin string) (Security, error) {
	if err := ValidateISIN(isin); err != nil {
		return Security{}, err
	}

	s := ByISIN(isin)
	if s == nil {
		return Security{}, werrors.NotFound(werrors.KindSecurity, isin)
	}

	return *s, nil
}

// Matches reports whether s matches term: an exact ISIN, or a
// case-insensitive substring of the name or ISIN.
func (s Security) Matches(term string) bool {
	if term == "" {
		return false
	}

	if s.ISIN == term {
		return true
	}

	needle := strings.ToLower(term)

	return strings.Contains(strings.ToLower(s.Name), needle) ||
		strings.Contains(strings.ToLower(s.ISIN), needle)
}

// Search returns all securities matching term, in catalog order.
func Search(term string) []Security {
	var out []Security

	for _, s := range registry {
		if s.Matches(term) {
			out = append(out, s)
		}
	}

	return out
}

// ParseKind parses an instrument kind, accepting the plural forms used by
// advisors ("equities", "bonds", "stocks").
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equity", "equities", "stock", "stocks":
		return KindEquity, true
	case "bond", "bonds":
		return KindBond, true
	default:
		return "", false
	}
}
