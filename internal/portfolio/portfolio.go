// Package portfolio generates and serves the sample holdings of every client:
// equity, bond and cash positions valued in USD.
package portfolio

import (
	"slices"
	"strings"

	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/money"
)

// Kind is the asset class of a position.
type Kind string

const (
	KindEquity Kind = "equity"
	KindBond   Kind = "bond"
	KindCash   Kind = "cash"
)

// Kinds lists every position kind in reporting order.
var Kinds = []Kind{KindEquity, KindBond, KindCash}

// ParseKind parses a position kind. Plurals and "stocks" are accepted.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "equity", "equities", "stock", "stocks":
		return KindEquity, true
	case "bond", "bonds":
		return KindBond, true
	case "cash":
		return KindCash, true
	default:
		return "", false
	}
}

// SecurityKind returns the catalog kind matching k, and false for cash.
func (k Kind) SecurityKind() (catalog.Kind, bool) {
	switch k {
	case KindEquity:
		return catalog.KindEquity, true
	case KindBond:
		return catalog.KindBond, true
	default:
		return "", false
	}
}

// Position is one holding in a client portfolio.
//
// Equity positions carry Shares and Price, bond positions Nominal and
// PricePercent, cash positions Amount. Valuation is always set.
type Position struct {
	Kind   Kind   `json:"type"`
	ISIN   string `json:"isin,omitempty"`
	Name   string `json:"name"`
	Sector string `json:"sector,omitempty"`

	Shares int64       `json:"shares,omitempty"`
	Price  money.Money `json:"price,omitzero"`

	Nominal      money.Money `json:"nominal,omitzero"`
	PricePercent float64     `json:"price_percent,omitempty"`
	Maturity     string      `json:"maturity,omitempty"`
	CreditRating string      `json:"rating,omitempty"`

	Amount   money.Money `json:"amount,omitzero"`
	Currency string      `json:"currency"`

	Valuation money.Money `json:"valuation"`
	// Weight is the valuation as a percentage of the portfolio total.
	Weight float64 `json:"weight"`
}

// IsCash reports whether p is the cash position.
func (p Position) IsCash() bool {
	return p.Kind == KindCash
}

// Portfolio is the ordered list of a client's positions.
type Portfolio []Position

// Total returns the summed valuation of every position.
func (p Portfolio) Total() money.Money {
	total := money.Zero(money.USDCode)
	for _, pos := range p {
		total = total.Add(pos.Valuation)
	}

	return total
}

// TotalByKind returns the summed valuation of positions of kind k.
func (p Portfolio) TotalByKind(k Kind) money.Money {
	total := money.Zero(money.USDCode)

	for _, pos := range p {
		if pos.Kind == k {
			total = total.Add(pos.Valuation)
		}
	}

	return total
}

// Has reports whether p holds at least one position of kind k.
func (p Portfolio) Has(k Kind) bool {
	return slices.ContainsFunc(p, func(pos Position) bool { return pos.Kind == k })
}

// ISINs returns the ISINs of every non-cash position, in order.
func (p Portfolio) ISINs() []string {
	var out []string

	for _, pos := range p {
		if pos.ISIN != "" {
			out = append(out, pos.ISIN)
		}
	}

	return out
}

// FilterKind returns the positions of kind k.
func (p Portfolio) FilterKind(k Kind) Portfolio {
	out := Portfolio{}

	for _, pos := range p {
		if pos.Kind == k {
			out = append(out, pos)
		}
	}

	return out
}

// FilterMinWeight returns the positions weighing at least minWeight percent.
func (p Portfolio) FilterMinWeight(minWeight float64) Portfolio {
	out := Portfolio{}

	for _, pos := range p {
		if pos.Weight >= minWeight {
			out = append(out, pos)
		}
	}

	return out
}

// KindBreakdown summarises the positions of one kind.
type KindBreakdown struct {
	Count      int         `json:"count"`
	Value      money.Money `json:"value"`
	Percentage float64     `json:"percentage"`
}

// Breakdown returns count, value and share of total for every kind.
func (p Portfolio) Breakdown() map[Kind]KindBreakdown {
	total := p.Total()
	out := make(map[Kind]KindBreakdown, len(Kinds))

	for _, k := range Kinds {
		value := p.TotalByKind(k)
		out[k] = KindBreakdown{
			Count:      len(p.FilterKind(k)),
			Value:      value,
			Percentage: money.Percent(value.PercentOf(total)),
		}
	}

	return out
}

// Mix returns the percentage of the total held in each kind.
func (p Portfolio) Mix() map[Kind]float64 {
	out := make(map[Kind]float64, len(Kinds))
	for k, b := range p.Breakdown() {
		out[k] = b.Percentage
	}

	return out
}

// Clone returns a copy of p that shares no position storage with it.
func (p Portfolio) Clone() Portfolio {
	return slices.Clone(p)
}

// reweigh sets every position's weight against the portfolio total.
func (p Portfolio) reweigh() {
	total := p.Total()
	for i := range p {
		p[i].Weight = money.Percent(p[i].Valuation.PercentOf(total))
	}
}
