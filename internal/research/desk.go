package research

import (
	"maps"

	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
)

// Desk serves recommendations over the security catalog. A Desk is immutable
// after construction and safe for concurrent use.
type Desk struct {
	coverage map[string]Recommendation
}

// NewDesk returns a desk seeded with the default research coverage. Each
// override replaces the coverage for its ISIN.
func NewDesk(overrides ...Recommendation) *Desk {
	coverage := maps.Clone(defaultCoverage)

	for _, r := range overrides {
		r.Covered = true
		coverage[r.ISIN] = r
	}

	return &Desk{coverage: coverage}
}

// Coverage returns the number of covered securities.
func (d *Desk) Coverage() int {
	return len(d.coverage)
}

// Get returns the recommendation for isin.
//
// A malformed ISIN fails with a ValidationError and an ISIN absent from the
// catalog with a NotFoundError. A listed security without coverage yields the
// NEUTRAL default rather than an error.
func (d *Desk) Get(isin string) (Recommendation, error) {
	s, err := catalog.Lookup(isin)
	if err != nil {
		return Recommendation{}, err
	}

	return d.get(s), nil
}

func (d *Desk) get(s catalog.Security) Recommendation {
	r, ok := d.coverage[s.ISIN]
	if !ok {
		return neutral(s)
	}

	return r.withSecurity(s)
}

// Filter narrows a recommendation listing. Zero values match everything.
type Filter struct {
	// ISINs restricts the listing to these securities. When empty, every
	// covered security is listed.
	ISINs  []string
	Rating Rating
	Kind   catalog.Kind
}

// List returns the recommendations matching f, sorted BUY > NEUTRAL > SELL
// and by descending upside within a rating. Explicit ISINs are validated and
// must exist in the catalog.
func (d *Desk) List(f Filter) ([]Recommendation, error) {
	var candidates []Recommendation

	if len(f.ISINs) == 0 {
		for _, s := range catalog.All() {
			if _, ok := d.coverage[s.ISIN]; ok {
				candidates = append(candidates, d.get(s))
			}
		}
	} else {
		seen := make(map[string]bool, len(f.ISINs))

		for _, isin := range f.ISINs {
			if seen[isin] {
				continue
			}

			seen[isin] = true

			r, err := d.Get(isin)
			if err != nil {
				return nil, err
			}

			candidates = append(candidates, r)
		}
	}

	out := make([]Recommendation, 0, len(candidates))

	for _, r := range candidates {
		if f.Rating != "" && r.Rating != f.Rating {
			continue
		}

		if f.Kind != "" && r.SecurityType != f.Kind {
			continue
		}

		out = append(out, r)
	}

	sortRecommendations(out)

	return out, nil
}
