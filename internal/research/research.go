// Package research is the recommendation engine: analyst ratings, rationale
// and price targets keyed by ISIN.
package research

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/money"
)

// Rating is an analyst recommendation.
type Rating string

const (
	RatingBuy     Rating = "BUY"
	RatingSell    Rating = "SELL"
	RatingNeutral Rating = "NEUTRAL"
)

// Ratings lists every rating in priority order.
var Ratings = []Rating{RatingBuy, RatingNeutral, RatingSell}

// ParseRating parses a rating case-insensitively.
func ParseRating(s string) (Rating, bool) {
	switch Rating(strings.ToUpper(strings.TrimSpace(s))) {
	case RatingBuy:
		return RatingBuy, true
	case RatingSell:
		return RatingSell, true
	case RatingNeutral:
		return RatingNeutral, true
	default:
		return "", false
	}
}

// priority orders ratings BUY > NEUTRAL > SELL.
func (r Rating) priority() int {
	switch r {
	case RatingBuy:
		return 3
	case RatingNeutral:
		return 2
	case RatingSell:
		return 1
	default:
		return 0
	}
}

// Recommendation is the active research view on one security.
type Recommendation struct {
	ISIN         string   `json:"isin"`
	Rating       Rating   `json:"rating"`
	Rationale    string   `json:"rationale"`
	TargetPrice  float64  `json:"target_price"`
	CurrentPrice float64  `json:"current_price"`
	Analyst      string   `json:"analyst,omitempty"`
	LastUpdated  string   `json:"last_updated,omitempty"`
	RiskFactors  []string `json:"risk_factors,omitempty"`
	Confidence   string   `json:"confidence,omitempty"`

	// Covered is false when the rating is the NEUTRAL default for a
	// security without research coverage.
	Covered bool `json:"covered"`

	SecurityName string       `json:"security_name,omitempty"`
	SecurityType catalog.Kind `json:"security_type,omitempty"`
	Sector       string       `json:"sector,omitempty"`
}

// UpsidePotential returns the percentage distance from the current price to
// the target, and false when either price is missing.
func (r Recommendation) UpsidePotential() (float64, bool) {
	if r.CurrentPrice <= 0 || r.TargetPrice <= 0 {
		return 0, false
	}

	cur := decimal.NewFromFloat(r.CurrentPrice)
	target := decimal.NewFromFloat(r.TargetPrice)

	return money.Percent(target.Sub(cur).Div(cur).Mul(decimal.NewFromInt(100))), true
}

// withSecurity copies catalog metadata onto r.
func (r Recommendation) withSecurity(s catalog.Security) Recommendation {
	r.SecurityName = s.Name
	r.SecurityType = s.Kind
	r.Sector = s.Sector

	return r
}

// defaultRationale explains the NEUTRAL fallback for uncovered securities.
const defaultRationale = "No active research coverage; defaulting to NEUTRAL"

// neutral returns the default recommendation for an uncovered security.
func neutral(s catalog.Security) Recommendation {
	return Recommendation{
		ISIN:      s.ISIN,
		Rating:    RatingNeutral,
		Rationale: defaultRationale,
		Covered:   false,
	}.withSecurity(s)
}

// sortRecommendations orders recs by rating priority, then upside, then ISIN.
func sortRecommendations(recs []Recommendation) {
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		if c := cmp.Compare(b.Rating.priority(), a.Rating.priority()); c != 0 {
			return c
		}

		ua, _ := a.UpsidePotential()
		ub, _ := b.UpsidePotential()

		if c := cmp.Compare(ub, ua); c != 0 {
			return c
		}

		return cmp.Compare(a.ISIN, b.ISIN)
	})
}

// Summary aggregates a recommendation listing.
type Summary struct {
	TotalRecommendations int                       `json:"total_recommendations"`
	RatingBreakdown      map[Rating]int            `json:"rating_breakdown"`
	SectorBreakdown      map[string]map[Rating]int `json:"sector_breakdown"`
	AvgUpsidePotential   float64                   `json:"avg_upside_potential"`
}

// Summarize computes rating and sector breakdowns and the average upside of recs.
func Summarize(recs []Recommendation) Summary {
	s := Summary{
		TotalRecommendations: len(recs),
		RatingBreakdown:      map[Rating]int{RatingBuy: 0, RatingSell: 0, RatingNeutral: 0},
		SectorBreakdown:      make(map[string]map[Rating]int),
	}

	total := decimal.Zero
	n := 0

	for _, r := range recs {
		s.RatingBreakdown[r.Rating]++

		sector := r.Sector
		if sector == "" {
			sector = "Unknown"
		}

		if s.SectorBreakdown[sector] == nil {
			s.SectorBreakdown[sector] = map[Rating]int{RatingBuy: 0, RatingSell: 0, RatingNeutral: 0}
		}

		s.SectorBreakdown[sector][r.Rating]++

		if up, ok := r.UpsidePotential(); ok {
			total = total.Add(decimal.NewFromFloat(up))
			n++
		}
	}

	if n > 0 {
		s.AvgUpsidePotential = money.Percent(total.Div(decimal.NewFromInt(int64(n))))
	}

	return s
}
