package portfolio

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	"github.com/wagiedev/wealth-mcp-go/internal/money"
)

// DefaultSeed is the seed of the published sample dataset.
const DefaultSeed uint64 = 20250719

const (
	minSharePrice = 50
	maxSharePrice = 400
	minBondPrice  = 98
	maxBondPrice  = 104
	jitterLow     = 0.8
	jitterHigh    = 1.2
	bondLot       = 100
)

var hundred = decimal.NewFromInt(100)

// Generator synthesises sample portfolios. Output depends only on the seed
// and the client, never on the order in which clients are generated.
type Generator struct {
	seed uint64
}

// NewGenerator returns a generator for seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{seed: seed}
}

// Seed returns the generator seed.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// rng returns the random stream dedicated to clientID.
func (g *Generator) rng(clientID string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(clientID))

	return rand.New(rand.NewPCG(g.seed, h.Sum64()))
}

// Generate builds the portfolio of c: one cash position followed by equities
// and bonds drawn from the catalog without repeating an ISIN.
func (g *Generator) Generate(c clients.Client) Portfolio {
	r := g.rng(c.ID)
	a := AllocationFor(c.RiskProfile)

	cashPct := percent(uniform(r, a.Cash.Min, a.Cash.Max))
	bondPct := percent(uniform(r, a.Bonds.Min, a.Bonds.Max))
	equityPct := hundred.Sub(cashPct).Sub(bondPct)

	nEquities := between(r, a.EquityCount)
	nBonds := between(r, a.BondCount)

	out := make(Portfolio, 0, 1+nEquities+nBonds)

	cash := c.AUM.Mul(cashPct).Div(hundred).Round()
	out = append(out, Position{
		Kind:      KindCash,
		Name:      "Cash",
		Amount:    cash,
		Currency:  money.USDCode,
		Valuation: cash,
	})

	equities := pick(r, catalog.ByKind(catalog.KindEquity), nEquities)
	for i, alloc := range split(r, c.AUM.Mul(equityPct).Div(hundred), len(equities)) {
		out = append(out, equity(r, equities[i], alloc))
	}

	bonds := pick(r, catalog.ByKind(catalog.KindBond), nBonds)
	for i, alloc := range split(r, c.AUM.Mul(bondPct).Div(hundred), len(bonds)) {
		out = append(out, bond(r, bonds[i], alloc))
	}

	out.reweigh()

	return out
}

func equity(r *rand.Rand, s catalog.Security, alloc money.Money) Position {
	price := money.New(uniform(r, minSharePrice, maxSharePrice), money.USDCode).Round()

	shares := alloc.Decimal().Div(price.Decimal()).Floor().IntPart()
	if shares < 1 {
		shares = 1
	}

	return Position{
		Kind:      KindEquity,
		ISIN:      s.ISIN,
		Name:      s.Name,
		Sector:    s.Sector,
		Shares:    shares,
		Price:     price,
		Currency:  s.Currency,
		Valuation: price.Mul(decimal.NewFromInt(shares)).Round(),
	}
}

func bond(r *rand.Rand, s catalog.Security, alloc money.Money) Position {
	nominal := alloc.Floor(bondLot)
	if !nominal.IsPositive() {
		nominal = money.USD(bondLot)
	}

	pct := percent(uniform(r, minBondPrice, maxBondPrice))

	return Position{
		Kind:         KindBond,
		ISIN:         s.ISIN,
		Name:         s.Name,
		Sector:       s.Sector,
		Nominal:      nominal,
		PricePercent: pct.InexactFloat64(),
		Maturity:     s.Maturity,
		CreditRating: s.CreditRating,
		Currency:     s.Currency,
		Valuation:    nominal.Mul(pct).Div(hundred).Round(),
	}
}

// split divides budget into n allocations. Each of the first n-1 takes a
// jittered 1/n share of what remains; the last takes the remainder.
func split(r *rand.Rand, budget money.Money, n int) []money.Money {
	if n == 0 {
		return nil
	}

	out := make([]money.Money, 0, n)
	remaining := budget
	count := decimal.NewFromInt(int64(n))

	for range n - 1 {
		jitter := decimal.NewFromFloat(uniform(r, jitterLow, jitterHigh))
		alloc := remaining.Mul(jitter).Div(count).Round()
		remaining = remaining.Sub(alloc)
		out = append(out, alloc)
	}

	return append(out, remaining)
}

// pick returns n securities drawn from pool without replacement.
func pick(r *rand.Rand, pool []catalog.Security, n int) []catalog.Security {
	r.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	return pool[:min(n, len(pool))]
}

// uniform returns a value in [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// between returns an integer in [c.Min, c.Max].
func between(r *rand.Rand, c Count) int {
	return c.Min + r.IntN(c.Max-c.Min+1)
}

// percent rounds a generated percentage to two decimals.
func percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
