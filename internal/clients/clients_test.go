package clients

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
	"github.com/wagiedev/wealth-mcp-go/internal/money"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 10)

	for i, c := range all {
		assert.NoError(t, ValidateID(c.ID))
		assert.NotEmpty(t, c.Name)
		assert.Contains(t, Profiles, c.RiskProfile)
		assert.True(t, c.AUM.IsPositive(), "client %s must have positive AUM", c.ID)
		assert.False(t, c.Onboarded().IsZero(), "client %s onboarding date must parse", c.ID)

		if i > 0 {
			assert.Less(t, all[i-1].ID, c.ID, "registry must be in identifier order")
		}
	}
}

func TestAll_Idempotent(t *testing.T) {
	a := All()
	b := All()
	require.Equal(t, a, b)

	a[0].Name = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Name, "All() must return independent copies")
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantCode string
	}{
		{name: "five digits", id: "BZ-00001"},
		{name: "seven digits", id: "BZ-9999999"},
		{name: "too short", id: "BZ-1", wantCode: werrors.CodeInvalidFormat},
		{name: "too long", id: "BZ-12345678", wantCode: werrors.CodeInvalidFormat},
		{name: "wrong prefix", id: "XY-00001", wantCode: werrors.CodeInvalidFormat},
		{name: "lowercase prefix", id: "bz-00001", wantCode: werrors.CodeInvalidFormat},
		{name: "empty", id: "", wantCode: werrors.CodeMissingParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantCode == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, werrors.ErrValidation)
			assert.Equal(t, tt.wantCode, werrors.CodeOf(err))
		})
	}
}

func TestLookup(t *testing.T) {
	c, err := Lookup("BZ-00003")
	require.NoError(t, err)
	assert.Equal(t, "Fryderyk Chopin", c.Name)
	assert.Equal(t, Aggressive, c.RiskProfile)

	_, err = Lookup("BZ-9999999")
	require.ErrorIs(t, err, werrors.ErrNotFound)
	assert.Contains(t, err.Error(), "BZ-9999999")

	_, err = Lookup("BZ-1")
	require.ErrorIs(t, err, werrors.ErrValidation)
	assert.Contains(t, err.Error(), "BZ-1")
}

func TestParseRiskProfile(t *testing.T) {
	tests := map[string]RiskProfile{
		"conservative": Conservative,
		"Balanced":     Balanced,
		"moderate":     Balanced,
		" AGGRESSIVE ": Aggressive,
	}

	for in, want := range tests {
		got, ok := ParseRiskProfile(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseRiskProfile("reckless")
	assert.False(t, ok)
}

func TestSelect(t *testing.T) {
	t.Run("default keeps registry order", func(t *testing.T) {
		got := Select(All(), Query{})
		assert.Equal(t, IDs(All()), IDs(got))
	})

	t.Run("under review", func(t *testing.T) {
		got := Select(All(), Query{Filter: FilterUnderReview})
		assert.Equal(t, []string{"BZ-00004"}, IDs(got))
	})

	t.Run("active excludes under review", func(t *testing.T) {
		got := Select(All(), Query{Filter: FilterActive})
		assert.Len(t, got, 9)
		assert.NotContains(t, IDs(got), "BZ-00004")
	})

	t.Run("high aum is empty for the sample book", func(t *testing.T) {
		assert.Empty(t, Select(All(), Query{Filter: FilterHighAUM}))
	})

	t.Run("new clients relative to as-of date", func(t *testing.T) {
		asOf := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
		got := Select(All(), Query{Filter: FilterNewClients, AsOf: asOf})
		assert.ElementsMatch(t, []string{"BZ-00004", "BZ-00008", "BZ-00010"}, IDs(got))
	})

	t.Run("sort by aum descending with limit", func(t *testing.T) {
		got := Select(All(), Query{Sort: SortTotalAUM, Limit: 3})
		assert.Equal(t, []string{"BZ-00009", "BZ-00003", "BZ-00006"}, IDs(got))
	})

	t.Run("sort by name", func(t *testing.T) {
		got := Select(All(), Query{Sort: SortName, Limit: 2})
		assert.Equal(t, []string{"Andrzej Wajda", "Fryderyk Chopin"}, []string{got[0].Name, got[1].Name})
	})

	t.Run("sort by last review descending", func(t *testing.T) {
		got := Select(All(), Query{Sort: SortLastReview, Limit: 1})
		assert.Equal(t, "BZ-00009", got[0].ID)
	})
}

func TestSummarize(t *testing.T) {
	s := Summarize(All())

	assert.Equal(t, 10, s.TotalCount)
	assert.True(t, s.TotalAUM.Equal(money.USD(29_850_000)), s.TotalAUM.String())
	assert.True(t, s.AverageAUM.Equal(money.USD(2_985_000)), s.AverageAUM.String())
	assert.Equal(t, 4, s.RiskProfileBreakdown[Conservative].Count)
	assert.Equal(t, 3, s.RiskProfileBreakdown[Balanced].Count)
	assert.Equal(t, 3, s.RiskProfileBreakdown[Aggressive].Count)
	assert.True(t, s.RiskProfileBreakdown[Aggressive].TotalAUM.Equal(money.USD(16_050_000)))

	empty := Summarize(nil)
	assert.Zero(t, empty.TotalCount)
	assert.True(t, empty.AverageAUM.IsZero())
}
