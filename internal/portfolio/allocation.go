package portfolio

import (
	"fmt"

	"github.com/wagiedev/wealth-mcp-go/internal/clients"
)

// Band is a percentage range. Generation draws from [Min, Max).
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether pct lies within the band, bounds included.
func (b Band) Contains(pct float64) bool {
	return pct >= b.Min && pct <= b.Max
}

// Distance returns how many percentage points pct lies outside the band.
func (b Band) Distance(pct float64) float64 {
	switch {
	case pct < b.Min:
		return b.Min - pct
	case pct > b.Max:
		return pct - b.Max
	default:
		return 0
	}
}

func (b Band) String() string {
	return fmt.Sprintf("%g-%g%%", b.Min, b.Max)
}

// Count is an inclusive range of position counts.
type Count struct {
	Min int
	Max int
}

// Allocation is the generation recipe for one risk profile.
type Allocation struct {
	Cash        Band
	Bonds       Band
	EquityCount Count
	BondCount   Count
}

// allocations holds the recipe of every risk profile.
var allocations = map[clients.RiskProfile]Allocation{
	clients.Conservative: {
		Cash:        Band{Min: 15, Max: 25},
		Bonds:       Band{Min: 50, Max: 65},
		EquityCount: Count{Min: 1, Max: 3},
		BondCount:   Count{Min: 2, Max: 5},
	},
	clients.Balanced: {
		Cash:        Band{Min: 5, Max: 15},
		Bonds:       Band{Min: 30, Max: 45},
		EquityCount: Count{Min: 3, Max: 5},
		BondCount:   Count{Min: 2, Max: 4},
	},
	clients.Aggressive: {
		Cash:        Band{Min: 2, Max: 8},
		Bonds:       Band{Min: 10, Max: 25},
		EquityCount: Count{Min: 4, Max: 7},
		BondCount:   Count{Min: 1, Max: 2},
	},
}

// AllocationFor returns the recipe for profile. Profile names are matched
// case-insensitively with "Moderate" read as Balanced; unknown profiles are
// generated as Balanced.
func AllocationFor(profile clients.RiskProfile) Allocation {
	if p, ok := clients.ParseRiskProfile(string(profile)); ok {
		profile = p
	}

	if a, ok := allocations[profile]; ok {
		return a
	}

	return allocations[clients.Balanced]
}

// Target is the expected asset mix of a risk profile, in percent of the
// portfolio total.
type Target struct {
	Cash     Band `json:"cash"`
	Bonds    Band `json:"bonds"`
	Equities Band `json:"equities"`
}

// Band returns the target band for kind k.
func (t Target) Band(k Kind) Band {
	switch k {
	case KindCash:
		return t.Cash
	case KindBond:
		return t.Bonds
	default:
		return t.Equities
	}
}

var targets = map[clients.RiskProfile]Target{
	clients.Conservative: {Cash: Band{15, 25}, Bonds: Band{50, 65}, Equities: Band{15, 30}},
	clients.Balanced:     {Cash: Band{5, 15}, Bonds: Band{30, 45}, Equities: Band{40, 65}},
	clients.Aggressive:   {Cash: Band{2, 8}, Bonds: Band{10, 25}, Equities: Band{65, 85}},
}

// TargetFor returns the target mix for profile, defaulting to Balanced.
func TargetFor(profile clients.RiskProfile) Target {
	if p, ok := clients.ParseRiskProfile(string(profile)); ok {
		profile = p
	}

	if t, ok := targets[profile]; ok {
		return t
	}

	return targets[clients.Balanced]
}
