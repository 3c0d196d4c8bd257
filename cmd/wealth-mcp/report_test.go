package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wealthmcp "github.com/wagiedev/wealth-mcp-go"
)

func TestPortfolioReport(t *testing.T) {
	srv, err := wealthmcp.NewServer()
	require.NoError(t, err)

	md, err := portfolioReport(srv, "BZ-00002")
	require.NoError(t, err)

	client, err := srv.GetClient("BZ-00002")
	require.NoError(t, err)

	positions, err := srv.GetPositions("BZ-00002")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# "+client.Name+" (BZ-00002)"))
	assert.Contains(t, md, "## Risk alignment:")

	for _, p := range positions {
		assert.Contains(t, md, p.Name)

		if !p.IsCash() {
			assert.Contains(t, md, p.ISIN)
		}
	}

	rows := strings.Count(md, "\n| ")
	assert.Equal(t, len(positions)+5, rows, "two header rows, one row per position and three asset classes")
}

func TestPortfolioReport_Errors(t *testing.T) {
	srv, err := wealthmcp.NewServer()
	require.NoError(t, err)

	_, err = portfolioReport(srv, "BZ-2")
	require.ErrorIs(t, err, wealthmcp.ErrValidation)

	_, err = portfolioReport(srv, "BZ-99999")
	require.ErrorIs(t, err, wealthmcp.ErrNotFound)
}

func TestQuantity(t *testing.T) {
	srv, err := wealthmcp.NewServer()
	require.NoError(t, err)

	positions, err := srv.GetPositions("BZ-00001")
	require.NoError(t, err)

	for _, p := range positions {
		q := quantity(p)

		switch p.Kind {
		case wealthmcp.PositionEquity:
			assert.Contains(t, q, " @ $")
		case wealthmcp.PositionBond:
			assert.True(t, strings.HasSuffix(q, "%"), q)
		case wealthmcp.PositionCash:
			assert.Equal(t, p.Amount.String(), q)
		}
	}
}

func TestQueryRun(t *testing.T) {
	srv, err := wealthmcp.NewServer()
	require.NoError(t, err)

	cmd := &queryCmd{threshold: defaultCashThreshold}

	for _, q := range [][]string{{"sell"}, {"cash"}, {"holding", "Apple"}, {"no-equity"}, {"alignment"}} {
		got, status := cmd.run(srv.Analytics(), q)
		assert.Equal(t, 0, int(status), q)
		require.NoError(t, got.err, q)
	}

	_, status := cmd.run(srv.Analytics(), []string{"holding"})
	assert.NotEqual(t, 0, int(status))

	_, status = cmd.run(srv.Analytics(), []string{"weather"})
	assert.NotEqual(t, 0, int(status))
}
