// Package clients provides the static client registry: identifiers, names,
// declared risk profiles and assets under management.
package clients

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
	"github.com/wagiedev/wealth-mcp-go/internal/money"
)

// RiskProfile is a client's declared risk appetite.
type RiskProfile string

const (
	// Conservative clients favour cash and bonds.
	Conservative RiskProfile = "Conservative"
	// Balanced clients hold a mixed allocation.
	Balanced RiskProfile = "Balanced"
	// Aggressive clients favour equities.
	Aggressive RiskProfile = "Aggressive"
)

// Profiles lists every risk profile from least to most risky.
var Profiles = []RiskProfile{Conservative, Balanced, Aggressive}

// ParseRiskProfile parses a profile name case-insensitively. "Moderate" is
// accepted as an alias of Balanced.
func ParseRiskProfile(s string) (RiskProfile, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conservative":
		return Conservative, true
	case "balanced", "moderate":
		return Balanced, true
	case "aggressive":
		return Aggressive, true
	default:
		return "", false
	}
}

// Status is the relationship status of a client.
type Status string

const (
	StatusActive      Status = "active"
	StatusUnderReview Status = "under_review"
)

// DateLayout is the layout of every date in the registry.
const DateLayout = "2006-01-02"

// Client holds the reference data for one advisory client.
type Client struct {
	ID             string      `json:"client_id"`
	Name           string      `json:"name"`
	RiskProfile    RiskProfile `json:"risk_profile"`
	AUM            money.Money `json:"total_aum"`
	Currency       string      `json:"currency"`
	OnboardingDate string      `json:"onboarding_date"`
	LastReview     string      `json:"last_review"`
	Status         Status      `json:"status"`
	AdvisorNotes   string      `json:"advisor_notes"`
}

// Onboarded returns the onboarding date, or the zero time if it cannot be parsed.
func (c Client) Onboarded() time.Time {
	t, _ := time.Parse(DateLayout, c.OnboardingDate)

	return t
}

var idRegex = regexp.MustCompile(`^BZ-[0-9]{5,7}$`)

// ValidateID checks the client identifier format: "BZ-" followed by 5 to 7 digits.
func ValidateID(id string) error {
	if id == "" {
		return werrors.Missing("client_id")
	}

	if !idRegex.MatchString(id) {
		return werrors.Invalid("client_id", id, "expected BZ- followed by 5 to 7 digits")
	}

	return nil
}

// All returns every client in registry order. The slice is a fresh copy.
func All() []Client {
	out := make([]Client, len(registry))
	copy(out, registry)

	return out
}

// ByID returns the client with the given identifier, or nil.
func ByID(id string) *Client {
	for i := range registry {
		if registry[i].ID == id {
			c := registry[i]

			return &c
		}
	}

	return nil
}

// Lookup validates id and returns the matching client.
func Lookup(id string) (Client, error) {
	if err := ValidateID(id); err != nil {
		return Client{}, err
	}

	c := ByID(id)
	if c == nil {
		return Client{}, werrors.NotFound(werrors.KindClient, id)
	}

	return *c, nil
}

// IDs returns the identifiers of cs, in order.
func IDs(cs []Client) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}

	return out
}

// Filter selects a subset of clients.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterActive      Filter = "active"
	FilterUnderReview Filter = "under_review"
	FilterHighAUM     Filter = "high_aum"
	FilterNewClients  Filter = "new_clients"
)

// HighAUMThreshold is the AUM above which a client counts as high AUM.
var HighAUMThreshold = money.USD(10_000_000)

// NewClientWindow is how recently a client must have been onboarded to count as new.
const NewClientWindow = 90 * 24 * time.Hour

// SortKey orders a client list.
type SortKey string

const (
	SortClientID       SortKey = "client_id"
	SortName           SortKey = "name"
	SortTotalAUM       SortKey = "total_aum"
	SortOnboardingDate SortKey = "onboarding_date"
	SortLastReview     SortKey = "last_review"
)

// Query describes a filtered, sorted and limited client listing.
type Query struct {
	Filter Filter
	Sort   SortKey
	// Limit caps the result size; zero means no limit.
	Limit int
	// AsOf is the reference date for FilterNewClients.
	AsOf time.Time
}

// Select runs q over cs. The result is a new slice; cs is not reordered.
func Select(cs []Client, q Query) []Client {
	out := FilterClients(cs, q.Filter, q.AsOf)
	SortClients(out, q.Sort)

	if q.Limit > 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}

	return out
}

// FilterClients returns the clients of cs matching f. An empty filter keeps all.
func FilterClients(cs []Client, f Filter, asOf time.Time) []Client {
	keep := func(Client) bool { return true }

	switch f {
	case FilterActive:
		keep = func(c Client) bool { return c.Status == StatusActive }
	case FilterUnderReview:
		keep = func(c Client) bool { return c.Status == StatusUnderReview }
	case FilterHighAUM:
		keep = func(c Client) bool { return c.AUM.GreaterThan(HighAUMThreshold) }
	case FilterNewClients:
		cutoff := asOf.Add(-NewClientWindow)
		keep = func(c Client) bool { return c.Onboarded().After(cutoff) }
	}

	out := make([]Client, 0, len(cs))
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}

	return out
}

// SortClients orders cs in place. Amount and date keys sort descending;
// identifier and name keys ascending. Unknown keys keep registry order.
func SortClients(cs []Client, key SortKey) {
	var compare func(a, b Client) int

	switch key {
	case SortName:
		compare = func(a, b Client) int { return strings.Compare(a.Name, b.Name) }
	case SortTotalAUM:
		compare = func(a, b Client) int { return b.AUM.Cmp(a.AUM) }
	case SortOnboardingDate:
		compare = func(a, b Client) int { return strings.Compare(b.OnboardingDate, a.OnboardingDate) }
	case SortLastReview:
		compare = func(a, b Client) int { return strings.Compare(b.LastReview, a.LastReview) }
	case SortClientID:
		compare = func(a, b Client) int { return cmp.Compare(a.ID, b.ID) }
	default:
		return
	}

	slices.SortStableFunc(cs, compare)
}

// ProfileStats aggregates clients sharing a risk profile.
type ProfileStats struct {
	Count    int         `json:"count"`
	TotalAUM money.Money `json:"total_aum"`
}

// Summary aggregates a client listing.
type Summary struct {
	TotalCount           int                          `json:"total_count"`
	TotalAUM             money.Money                  `json:"total_aum"`
	AverageAUM           money.Money                  `json:"average_aum"`
	RiskProfileBreakdown map[RiskProfile]ProfileStats `json:"risk_profile_breakdown"`
}

// Summarize computes totals and the per-profile breakdown of cs.
func Summarize(cs []Client) Summary {
	s := Summary{
		TotalAUM:             money.Zero(money.USDCode),
		AverageAUM:           money.Zero(money.USDCode),
		RiskProfileBreakdown: make(map[RiskProfile]ProfileStats, len(Profiles)),
	}

	for _, c := range cs {
		s.TotalCount++
		s.TotalAUM = s.TotalAUM.Add(c.AUM)

		st := s.RiskProfileBreakdown[c.RiskProfile]
		st.Count++
		st.TotalAUM = st.TotalAUM.Add(c.AUM)
		s.RiskProfileBreakdown[c.RiskProfile] = st
	}

	if s.TotalCount > 0 {
		s.AverageAUM = s.TotalAUM.Div(decimal.NewFromInt(int64(s.TotalCount))).Round()
	}

	return s
}
