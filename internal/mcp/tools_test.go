package mcp

import (
	"context"
	"testing"
	"time"

	mcpgo "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagiedev/wealth-mcp-go/internal/analytics"
	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
	"github.com/wagiedev/wealth-mcp-go/internal/research"
)

var fixedNow = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	logger := discardLogger()
	book := portfolio.NewBook(portfolio.NewGenerator(portfolio.DefaultSeed), clients.All())
	desk := research.NewDesk()

	r := NewRegistry(logger)
	Register(r, NewBinder(logger), Deps{
		Source: analytics.NewDataset(book, desk),
		Desk:   desk,
		Clock:  func() time.Time { return fixedNow },
	})

	return r
}

func call[T any](t *testing.T, r *Registry, name string, args any) (T, error) {
	t.Helper()

	result, err := r.CallTool(context.Background(), name, args)
	require.NoError(t, err)

	var out T
	err = DecodeResult(result, &out)

	return out, err
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, code, werrors.CodeOf(err), err.Error())
}

func TestRegister_ListTools(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []string{ToolGetClients, ToolGetClientPositions, ToolGetRecommendations}, r.Names())

	for _, tool := range r.ListTools() {
		assert.NotEmpty(t, tool.Description)
		assert.True(t, tool.Annotations.ReadOnlyHint, tool.Name)
	}
}

func TestGetClients(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("defaults to every client in registry order", func(t *testing.T) {
		resp, err := call[ClientsResponse](t, r, ToolGetClients, nil)
		require.NoError(t, err)

		require.Len(t, resp.Clients, 10)
		assert.Equal(t, clients.IDs(clients.All()), clients.IDs(resp.Clients))
		assert.Equal(t, 10, resp.Summary.TotalCount)
		assert.Equal(t, "all", resp.Metadata.FilterApplied)
		assert.Equal(t, "client_id", resp.Metadata.SortBy)
		assert.True(t, fixedNow.Equal(resp.Metadata.Timestamp))

		id, err := ulid.Parse(resp.Metadata.RequestID)
		require.NoError(t, err)
		assert.Equal(t, ulid.Timestamp(fixedNow), id.Time())
	})

	tests := []struct {
		name string
		args map[string]any
		want []string
	}{
		{name: "under review", args: map[string]any{"filter_by": "under_review"}, want: []string{"BZ-00004"}},
		{name: "high aum", args: map[string]any{"filter_by": "high_aum"}, want: []string{}},
		{name: "new clients", args: map[string]any{"filter_by": "new_clients"}, want: []string{"BZ-00004", "BZ-00008", "BZ-00010"}},
		{name: "largest first", args: map[string]any{"sort_by": "total_aum", "limit": 3}, want: []string{"BZ-00009", "BZ-00003", "BZ-00006"}},
		{name: "by name", args: map[string]any{"sort_by": "name", "limit": 2}, want: []string{"BZ-00005", "BZ-00003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := call[ClientsResponse](t, r, ToolGetClients, tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, clients.IDs(resp.Clients))
		})
	}

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := call[ClientsResponse](t, r, ToolGetClients, map[string]any{"filter_by": "vip"})
		requireCode(t, err, werrors.CodeInvalidFormat)
		assert.Contains(t, err.Error(), "filter_by")

		_, err = call[ClientsResponse](t, r, ToolGetClients, map[string]any{"limit": 101})
		requireCode(t, err, werrors.CodeInvalidFormat)

		_, err = call[ClientsResponse](t, r, ToolGetClients, map[string]any{"limit": "ten"})
		requireCode(t, err, werrors.CodeInvalidFormat)
		assert.Contains(t, err.Error(), "limit")
	})
}

func TestGetClientPositions(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("full portfolio", func(t *testing.T) {
		resp, err := call[PositionsResponse](t, r, ToolGetClientPositions, map[string]any{"client_id": "BZ-00001"})
		require.NoError(t, err)

		assert.Equal(t, "BZ-00001", resp.ClientID)
		assert.Equal(t, clients.Conservative, resp.ClientInfo.RiskProfile)
		assert.GreaterOrEqual(t, len(resp.Positions), 3)
		assert.LessOrEqual(t, len(resp.Positions), 10)
		assert.Equal(t, len(resp.Positions), resp.Summary.TotalPositions)
		assert.Equal(t, "all", resp.Metadata.FiltersApplied.AssetType)

		rated := 0
		nonCash := 0

		for _, p := range resp.Positions {
			if p.Kind == portfolio.KindCash {
				assert.Nil(t, p.Recommendation)

				continue
			}

			nonCash++

			if p.Recommendation != nil {
				assert.Equal(t, p.ISIN, p.Recommendation.ISIN)
			}
		}

		for _, n := range resp.Summary.RecommendationSummary {
			rated += n
		}

		assert.Equal(t, nonCash, rated, "every security is counted once")
		assert.NotEmpty(t, resp.Summary.Alignment.Status)
		assert.Equal(t, "BZ-00001", resp.Summary.Alignment.ClientID)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := call[PositionsResponse](t, r, ToolGetClientPositions, map[string]any{"client_id": "BZ-00001"})
		require.NoError(t, err)

		b, err := call[PositionsResponse](t, r, ToolGetClientPositions, map[string]any{"client_id": "BZ-00001"})
		require.NoError(t, err)

		assert.Equal(t, a.Positions, b.Positions)
	})

	t.Run("asset type filter", func(t *testing.T) {
		resp, err := call[PositionsResponse](t, r, ToolGetClientPositions, map[string]any{"client_id": "BZ-00003", "asset_type": "cash"})
		require.NoError(t, err)
		require.Len(t, resp.Positions, 1)
		assert.Equal(t, portfolio.KindCash, resp.Positions[0].Kind)
		assert.Equal(t, 100.0, resp.Summary.AssetBreakdown[portfolio.KindCash].Percentage)
	})

	t.Run("min weight filter", func(t *testing.T) {
		resp, err := call[PositionsResponse](t, r, ToolGetClientPositions, map[string]any{"client_id": "BZ-00003", "min_weight": 0.1})
		require.NoError(t, err)

		for _, p := range resp.Positions {
			assert.GreaterOrEqual(t, p.Weight, 10.0)
		}
	})

	errorCases := []struct {
		name string
		args map[string]any
		code string
	}{
		{name: "missing client", args: map[string]any{}, code: werrors.CodeMissingParameter},
		{name: "malformed client", args: map[string]any{"client_id": "BZ-1"}, code: werrors.CodeInvalidFormat},
		{name: "unknown client", args: map[string]any{"client_id": "BZ-99999"}, code: werrors.CodeClientNotFound},
		{name: "bad asset type", args: map[string]any{"client_id": "BZ-00001", "asset_type": "crypto"}, code: werrors.CodeInvalidFormat},
		{name: "weight above one", args: map[string]any{"client_id": "BZ-00001", "min_weight": 1.5}, code: werrors.CodeInvalidFormat},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call[PositionsResponse](t, r, ToolGetClientPositions, tt.args)
			requireCode(t, err, tt.code)
		})
	}
}

func TestGetRecommendations(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("single isin", func(t *testing.T) {
		resp, err := call[RecommendationsResponse](t, r, ToolGetRecommendations, map[string]any{"isin": "US0378331005"})
		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 1)

		rec := resp.Recommendations[0]
		assert.Equal(t, research.RatingBuy, rec.Rating)
		assert.Equal(t, "Apple Inc.", rec.SecurityName)
		require.NotNil(t, rec.Upside)
		assert.Equal(t, 6.16, *rec.Upside)
		assert.True(t, resp.Summary.FiltersApplied.SpecificISINs)
		assert.Equal(t, 20, resp.Metadata.ResearchCoverage)
	})

	t.Run("uncovered security defaults to neutral", func(t *testing.T) {
		resp, err := call[RecommendationsResponse](t, r, ToolGetRecommendations, map[string]any{"isin": "US4781601046"})
		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 1)
		assert.Equal(t, research.RatingNeutral, resp.Recommendations[0].Rating)
		assert.False(t, resp.Recommendations[0].Covered)
		assert.Nil(t, resp.Recommendations[0].Upside)
	})

	t.Run("all covered", func(t *testing.T) {
		resp, err := call[RecommendationsResponse](t, r, ToolGetRecommendations, nil)
		require.NoError(t, err)
		assert.Len(t, resp.Recommendations, 20)
		assert.Equal(t, 20, resp.Summary.TotalRecommendations)
		assert.Equal(t, research.RatingBuy, resp.Recommendations[0].Rating)
	})

	t.Run("filters", func(t *testing.T) {
		resp, err := call[RecommendationsResponse](t, r, ToolGetRecommendations,
			map[string]any{"rating_filter": "SELL", "asset_type": "equity"})
		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 2)

		for _, rec := range resp.Recommendations {
			assert.Equal(t, research.RatingSell, rec.Rating)
		}
	})

	t.Run("bond filter", func(t *testing.T) {
		resp, err := call[RecommendationsResponse](t, r, ToolGetRecommendations,
			map[string]any{"asset_type": "bond"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Recommendations)

		for _, rec := range resp.Recommendations {
			assert.Equal(t, catalog.KindBond, rec.SecurityType)
		}
	})

	t.Run("isin list", func(t *testing.T) {
		resp, err := call[RecommendationsResponse](t, r, ToolGetRecommendations,
			map[string]any{"isins": []string{"US88160R1014", "US0378331005"}})
		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 2)
		assert.Equal(t, "US0378331005", resp.Recommendations[0].ISIN)
	})

	errorCases := []struct {
		name string
		args map[string]any
		code string
	}{
		{name: "unlisted", args: map[string]any{"isin": "DE0007164600"}, code: werrors.CodeSecurityNotFound},
		{name: "malformed", args: map[string]any{"isin": "XX"}, code: werrors.CodeInvalidFormat},
		{name: "bad check digit", args: map[string]any{"isin": "US0378331006"}, code: werrors.CodeInvalidFormat},
		{name: "malformed in list", args: map[string]any{"isins": []string{"US0378331005", "nope"}}, code: werrors.CodeInvalidFormat},
		{name: "bad rating", args: map[string]any{"rating_filter": "HOLD"}, code: werrors.CodeInvalidFormat},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := call[RecommendationsResponse](t, r, ToolGetRecommendations, tt.args)
			requireCode(t, err, tt.code)
		})
	}
}

func TestInstall_InMemoryTransport(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)

	server := mcpgo.NewServer(&mcpgo.Implementation{Name: "wealth-test", Version: "0.0.1"}, nil)
	r.Install(server)

	serverTransport, clientTransport := mcpgo.NewInMemoryTransports()

	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	defer ss.Close()

	client := mcpgo.NewClient(&mcpgo.Implementation{Name: "test-client", Version: "0.0.1"}, nil)

	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	defer cs.Close()

	listed, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	require.Len(t, listed.Tools, 3)

	result, err := cs.CallTool(ctx, &mcpgo.CallToolParams{
		Name:      ToolGetClientPositions,
		Arguments: map[string]any{"client_id": "BZ-00002"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var resp PositionsResponse
	require.NoError(t, DecodeResult(result, &resp))
	assert.Equal(t, "BZ-00002", resp.ClientID)

	failed, err := cs.CallTool(ctx, &mcpgo.CallToolParams{
		Name:      ToolGetClientPositions,
		Arguments: map[string]any{"client_id": "BZ-99999"},
	})
	require.NoError(t, err)
	require.True(t, failed.IsError)
	requireCode(t, DecodeResult(failed, nil), werrors.CodeClientNotFound)
}
