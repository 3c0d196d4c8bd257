// Package money provides an exact monetary amount type backed by decimal
// arithmetic, with currency-aware rounding and display.
package money

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USDCode is the ISO 4217 code of every amount in the sample dataset.
const USDCode = money.USD

type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal converts any supported numeric value to decimal.Decimal.
func newDecimal[T number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // major unit
	cur   string
}

// New returns value expressed in currency.
func New[T number](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD returns value expressed in US dollars.
func USD[T number](value T) Money {
	return New(value, USDCode)
}

// Zero returns a zero amount in currency.
func Zero(currency string) Money {
	return Money{value: decimal.Zero, cur: currency}
}

// Sum adds all amounts. The result of an empty sum is a zero USD amount.
func Sum(amounts ...Money) Money {
	total := Zero(USDCode)
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}

// fraction returns the number of minor-unit digits for the currency.
func (m Money) fraction() int32 {
	if m.cur == "" {
		return 2
	}

	// money.New is the only way to get a never nil currency.
	return int32(money.New(0, m.cur).Currency().Fraction)
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) Float64() float64            { return m.value.InexactFloat64() }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) IsPositive() bool            { return m.value.IsPositive() }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) GreaterThan(n Money) bool    { return m.value.GreaterThan(n.value) }
func (m Money) Cmp(n Money) int             { return m.value.Cmp(n.value) }
func (m Money) Mul(d decimal.Decimal) Money { return Money{value: m.value.Mul(d), cur: m.cur} }
func (m Money) Div(d decimal.Decimal) Money { return Money{value: m.value.Div(d), cur: m.cur} }

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// cur makes the "" currency weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}

	if b.cur == "" {
		return a.cur
	}

	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}

	return a.cur
}

// Round rounds the amount to the currency's minor unit.
func (m Money) Round() Money {
	return Money{value: m.value.Round(m.fraction()), cur: m.cur}
}

// Floor truncates the amount down to a multiple of step major units.
func (m Money) Floor(step int64) Money {
	s := decimal.NewFromInt(step)

	return Money{value: m.value.Div(s).Floor().Mul(s), cur: m.cur}
}

// PercentOf returns m as a percentage of total, or zero when total is zero.
func (m Money) PercentOf(total Money) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return m.value.Div(total.value).Mul(decimal.NewFromInt(100))
}

// String formats the amount with the currency symbol and grouping, e.g. $1,234.56.
func (m Money) String() string {
	code := m.cur
	if code == "" {
		code = USDCode
	}

	minor := m.value.Shift(m.fraction()).Round(0).IntPart()

	return money.New(minor, code).Display()
}

// MarshalJSON encodes the amount as a bare JSON number rounded to the minor unit.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(m.fraction())), nil
}

// UnmarshalJSON decodes a JSON number. The currency is left weak.
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}

// Percent rounds a percentage to two decimals for reporting.
func Percent(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
