package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
)

// AlignmentStatus classifies an alignment score.
type AlignmentStatus string

const (
	StatusAligned           AlignmentStatus = "ALIGNED"
	StatusNeedsRebalancing  AlignmentStatus = "NEEDS_REBALANCING"
	StatusMajorMisalignment AlignmentStatus = "MAJOR_MISALIGNMENT"
)

// Points awarded per asset class inside its target band.
const (
	cashPoints   = 33
	bondPoints   = 33
	equityPoints = 34

	alignedScore   = 80
	rebalanceScore = 50
)

// Alignment compares a portfolio's asset mix with its owner's risk profile.
type Alignment struct {
	ClientID    string              `json:"client_id"`
	RiskProfile clients.RiskProfile `json:"risk_profile"`
	Current     Mix                 `json:"current_allocation"`
	Target      portfolio.Target    `json:"target_allocation"`
	Score       int                 `json:"alignment_score"`
	// Deviation is the total number of percentage points outside the bands.
	Deviation float64         `json:"deviation"`
	Issues    []string        `json:"issues"`
	Status    AlignmentStatus `json:"recommendation"`
}

// Mix is an asset allocation in percent of the portfolio total.
type Mix struct {
	Cash     float64 `json:"cash"`
	Bonds    float64 `json:"bonds"`
	Equities float64 `json:"equities"`
}

func (m Mix) of(k portfolio.Kind) float64 {
	switch k {
	case portfolio.KindCash:
		return m.Cash
	case portfolio.KindBond:
		return m.Bonds
	default:
		return m.Equities
	}
}

// RiskAlignment scores p against the target bands of c's risk profile. An
// empty portfolio has a zero mix and scores accordingly.
func RiskAlignment(c clients.Client, p portfolio.Portfolio) Alignment {
	target := portfolio.TargetFor(c.RiskProfile)
	mix := p.Mix()

	a := Alignment{
		ClientID:    c.ID,
		RiskProfile: c.RiskProfile,
		Current: Mix{
			Cash:     mix[portfolio.KindCash],
			Bonds:    mix[portfolio.KindBond],
			Equities: mix[portfolio.KindEquity],
		},
		Target: target,
		Issues: []string{},
	}

	deviation := decimal.Zero

	for _, check := range []struct {
		kind   portfolio.Kind
		label  string
		points int
	}{
		{portfolio.KindCash, "Cash", cashPoints},
		{portfolio.KindBond, "Bond", bondPoints},
		{portfolio.KindEquity, "Equity", equityPoints},
	} {
		band := target.Band(check.kind)
		pct := a.Current.of(check.kind)

		if band.Contains(pct) {
			a.Score += check.points

			continue
		}

		deviation = deviation.Add(decimal.NewFromFloat(band.Distance(pct)))
		a.Issues = append(a.Issues, fmt.Sprintf("%s allocation %.1f%% outside target range %s", check.label, pct, band))
	}

	a.Deviation = deviation.Round(2).InexactFloat64()
	a.Status = statusFor(a.Score)

	return a
}

func statusFor(score int) AlignmentStatus {
	switch {
	case score >= alignedScore:
		return StatusAligned
	case score >= rebalanceScore:
		return StatusNeedsRebalancing
	default:
		return StatusMajorMisalignment
	}
}

// pctDecimal converts a percentage to a fraction.
func pctDecimal(pct float64) decimal.Decimal {
	return decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100))
}
