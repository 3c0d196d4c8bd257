package analytics

import (
	"fmt"
	"slices"

	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	"github.com/wagiedev/wealth-mcp-go/internal/money"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
	"github.com/wagiedev/wealth-mcp-go/internal/research"
)

// Engine runs cross-dataset queries against a Source.
type Engine struct {
	src Source
}

// New returns an Engine over src.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// ClientRef identifies a client in query results.
type ClientRef struct {
	ID          string              `json:"client_id"`
	Name        string              `json:"name"`
	RiskProfile clients.RiskProfile `json:"risk_profile"`
	AUM         money.Money         `json:"total_aum"`
}

func refOf(c clients.Client) ClientRef {
	return ClientRef{ID: c.ID, Name: c.Name, RiskProfile: c.RiskProfile, AUM: c.AUM}
}

// RatedPosition is a position joined with its recommendation.
type RatedPosition struct {
	portfolio.Position

	Recommendation research.Recommendation `json:"recommendation"`
}

// RatingExposure lists the positions of one client carrying a rating.
type RatingExposure struct {
	Client      ClientRef       `json:"client"`
	Positions   []RatedPosition `json:"positions"`
	Exposure    money.Money     `json:"exposure"`
	ExposurePct float64         `json:"exposure_percentage"`
}

// ClientsWithRating returns the clients holding at least one security rated
// rating, with the exposure as a share of the portfolio total.
func (e *Engine) ClientsWithRating(rating research.Rating) ([]RatingExposure, error) {
	var out []RatingExposure

	err := e.each(func(c clients.Client, p portfolio.Portfolio) error {
		var rated []RatedPosition

		exposure := money.Zero(money.USDCode)

		for _, pos := range p {
			if pos.IsCash() {
				continue
			}

			rec, err := e.src.Recommendation(pos.ISIN)
			if err != nil {
				return fmt.Errorf("recommendation for %s held by %s: %w", pos.ISIN, c.ID, err)
			}

			if rec.Rating != rating {
				continue
			}

			rated = append(rated, RatedPosition{Position: pos, Recommendation: rec})
			exposure = exposure.Add(pos.Valuation)
		}

		if len(rated) == 0 {
			return nil
		}

		out = append(out, RatingExposure{
			Client:      refOf(c),
			Positions:   rated,
			Exposure:    exposure,
			ExposurePct: money.Percent(exposure.PercentOf(p.Total())),
		})

		return nil
	})

	return out, err
}

// CashExposure describes a client's cash holding.
type CashExposure struct {
	Client  ClientRef   `json:"client"`
	Cash    money.Money `json:"cash"`
	Total   money.Money `json:"total_value"`
	CashPct float64     `json:"cash_percentage"`
	Excess  money.Money `json:"excess_cash"`
}

// ClientsAboveCash returns the clients whose cash exceeds thresholdPct percent
// of their portfolio total.
func (e *Engine) ClientsAboveCash(thresholdPct float64) ([]CashExposure, error) {
	var out []CashExposure

	err := e.each(func(c clients.Client, p portfolio.Portfolio) error {
		total := p.Total()
		cash := p.TotalByKind(portfolio.KindCash)
		pct := cash.PercentOf(total)

		if pct.InexactFloat64() <= thresholdPct {
			return nil
		}

		threshold := total.Mul(pctDecimal(thresholdPct)).Round()

		out = append(out, CashExposure{
			Client:  refOf(c),
			Cash:    cash,
			Total:   total,
			CashPct: money.Percent(pct),
			Excess:  cash.Sub(threshold),
		})

		return nil
	})

	return out, err
}

// Holding lists the positions of one client matching a security search.
type Holding struct {
	Client    ClientRef            `json:"client"`
	Positions []portfolio.Position `json:"positions"`
	Value     money.Money          `json:"exposure"`
	Weight    float64              `json:"exposure_percentage"`
}

// ClientsHolding returns the clients holding a security matching term: an
// exact ISIN or a case-insensitive substring of the security name or ISIN.
func (e *Engine) ClientsHolding(term string) ([]Holding, error) {
	listed := make(map[string]bool)
	for _, s := range catalog.Search(term) {
		listed[s.ISIN] = true
	}

	var out []Holding

	err := e.each(func(c clients.Client, p portfolio.Portfolio) error {
		h := Holding{Client: refOf(c), Value: money.Zero(money.USDCode)}

		for _, pos := range p {
			if pos.IsCash() {
				continue
			}

			match := listed[pos.ISIN]
			if !match && catalog.ByISIN(pos.ISIN) == nil {
				match = catalog.Security{ISIN: pos.ISIN, Name: pos.Name}.Matches(term)
			}

			if match {
				h.Positions = append(h.Positions, pos)
				h.Value = h.Value.Add(pos.Valuation)
			}
		}

		if len(h.Positions) > 0 {
			h.Weight = money.Percent(h.Value.PercentOf(p.Total()))
			out = append(out, h)
		}

		return nil
	})

	return out, err
}

// KindPresence describes a client's exposure to one position kind.
type KindPresence struct {
	Client      ClientRef                  `json:"client"`
	Has         bool                       `json:"has_asset_type"`
	Positions   []portfolio.Position       `json:"positions"`
	Exposure    money.Money                `json:"total_exposure"`
	ExposurePct float64                    `json:"exposure_percentage"`
	Mix         map[portfolio.Kind]float64 `json:"allocation"`
}

// ClientsByKind returns the clients holding positions of kind, or, with
// exclude set, the clients holding none.
func (e *Engine) ClientsByKind(kind portfolio.Kind, exclude bool) ([]KindPresence, error) {
	var out []KindPresence

	err := e.each(func(c clients.Client, p portfolio.Portfolio) error {
		has := p.Has(kind)
		if has == exclude {
			return nil
		}

		exposure := p.TotalByKind(kind)

		out = append(out, KindPresence{
			Client:      refOf(c),
			Has:         has,
			Positions:   p.FilterKind(kind),
			Exposure:    exposure,
			ExposurePct: money.Percent(exposure.PercentOf(p.Total())),
			Mix:         p.Mix(),
		})

		return nil
	})

	return out, err
}

// ClientsWithoutEquities returns the clients holding no equity positions.
func (e *Engine) ClientsWithoutEquities() ([]KindPresence, error) {
	return e.ClientsByKind(portfolio.KindEquity, true)
}

// Alignments assesses the risk alignment of every client, worst first.
func (e *Engine) Alignments() ([]Alignment, error) {
	var out []Alignment

	err := e.each(func(c clients.Client, p portfolio.Portfolio) error {
		out = append(out, RiskAlignment(c, p))

		return nil
	})

	slices.SortStableFunc(out, func(a, b Alignment) int {
		return a.Score - b.Score
	})

	return out, err
}

// each calls fn with every client and its portfolio, in registry order.
func (e *Engine) each(fn func(clients.Client, portfolio.Portfolio) error) error {
	for _, c := range e.src.Clients() {
		p, err := e.src.Positions(c.ID)
		if err != nil {
			return fmt.Errorf("positions of %s: %w", c.ID, err)
		}

		if err := fn(c, p); err != nil {
			return err
		}
	}

	return nil
}
