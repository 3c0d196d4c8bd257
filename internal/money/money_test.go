package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		value Money
		want  string
	}{
		{name: "whole dollars", value: USD(2500000), want: "$2,500,000.00"},
		{name: "cents", value: USD(1234.5), want: "$1,234.50"},
		{name: "rounds half cent", value: USD(0.005), want: "$0.01"},
		{name: "zero", value: Zero(USDCode), want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Money{"amount": USD(1234.567)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 1234.57}`, string(data))

	var back struct {
		Amount Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Amount.Decimal().Equal(decimal.RequireFromString("1234.57")))
}

func TestArithmetic(t *testing.T) {
	a := USD(100.10)
	b := USD(0.20)

	assert.True(t, a.Add(b).Equal(USD(100.30)))
	assert.True(t, a.Sub(b).Equal(USD(99.90)))
	assert.True(t, Sum(a, b, USD(1)).Equal(USD(101.30)))
	assert.True(t, Sum().IsZero())
	assert.True(t, USD(10).Mul(decimal.NewFromInt(3)).Equal(USD(30)))
	assert.True(t, USD(1).Div(decimal.NewFromInt(3)).Round().Equal(USD(0.33)))
}

func TestFloor(t *testing.T) {
	assert.True(t, USD(12399.99).Floor(100).Equal(USD(12300)))
	assert.True(t, USD(99).Floor(100).IsZero())
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 25.0, Percent(USD(25).PercentOf(USD(100))))
	assert.Equal(t, 33.33, Percent(USD(1).PercentOf(USD(3))))
	assert.True(t, USD(5).PercentOf(Zero(USDCode)).IsZero())
}

func TestCurrencyMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		USD(1).Add(New(1, "EUR"))
	})
	assert.NotPanics(t, func() {
		USD(1).Add(Money{})
	})
}
