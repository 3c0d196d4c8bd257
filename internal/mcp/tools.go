package mcp

import (
	"context"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/wealth-mcp-go/internal/analytics"
	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
	"github.com/wagiedev/wealth-mcp-go/internal/money"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
	"github.com/wagiedev/wealth-mcp-go/internal/research"
)

// Tool names.
const (
	ToolGetClients         = "get_clients"
	ToolGetClientPositions = "get_client_positions"
	ToolGetRecommendations = "get_recommendations"
)

// Deps are the collaborators of the wealth tools.
type Deps struct {
	Source analytics.Source
	Desk   *research.Desk
	// Clock stamps responses; time.Now when nil.
	Clock func() time.Time
}

// Metadata is attached to every successful response.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

type tools struct {
	Deps
}

func (t *tools) metadata() Metadata {
	now := t.Clock().UTC()

	return Metadata{
		Timestamp: now,
		RequestID: ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
	}
}

// Register adds the wealth tools to r.
func Register(r *Registry, b *Binder, d Deps) {
	if d.Clock == nil {
		d.Clock = time.Now
	}

	t := &tools{Deps: d}

	r.AddTool(NewTool(ToolGetClients,
		"Retrieve the clients managed by the advisor with IDs, names, risk profiles and assets under management.",
		ObjectSchema(
			Property{Name: "filter_by", Schema: String(
				"Optional filter: active, under_review, high_aum (over 10M USD) or new_clients (onboarded in the last 90 days)",
				"all", "active", "under_review", "high_aum", "new_clients")},
			Property{Name: "sort_by", Schema: String(
				"Sort order; amounts and dates sort newest or largest first",
				"client_id", "name", "total_aum", "onboarding_date", "last_review")},
			Property{Name: "limit", Schema: Integer("Maximum number of clients to return", 1, 100)},
		),
	), Handler(b, ToolGetClients, t.getClients))

	r.AddTool(NewTool(ToolGetClientPositions,
		"Retrieve the equity, bond and cash positions of one client with valuations, weights, recommendations and risk alignment.",
		ObjectSchema(
			Property{Name: "client_id", Schema: Pattern("Client identifier in format BZ-xxxxx", `^BZ-[0-9]{5,7}$`), Required: true},
			Property{Name: "asset_type", Schema: String("Filter by asset type", "all", "equity", "bond", "cash")},
			Property{Name: "min_weight", Schema: Number("Minimum position weight as a fraction of the portfolio (0.05 = 5%)", 0, 1)},
		),
	), Handler(b, ToolGetClientPositions, t.getClientPositions))

	r.AddTool(NewTool(ToolGetRecommendations,
		"Get BUY/SELL/NEUTRAL analyst recommendations for one ISIN, a list of ISINs, or every covered security.",
		ObjectSchema(
			Property{Name: "isin", Schema: Pattern("A single ISIN", `^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)},
			Property{Name: "isins", Schema: Array("ISINs to look up; all covered securities when empty",
				Pattern("ISIN", `^[A-Z]{2}[A-Z0-9]{9}[0-9]$`))},
			Property{Name: "rating_filter", Schema: String("Filter by rating", "all", "BUY", "SELL", "NEUTRAL")},
			Property{Name: "asset_type", Schema: String("Filter by security type", "all", "equity", "bond")},
		),
	), Handler(b, ToolGetRecommendations, t.getRecommendations))
}

// GetClientsInput are the arguments of get_clients.
type GetClientsInput struct {
	FilterBy string `json:"filter_by" validate:"omitempty,oneof=all active under_review high_aum new_clients"`
	SortBy   string `json:"sort_by" validate:"omitempty,oneof=client_id name total_aum onboarding_date last_review"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// ClientsResponse is the result of get_clients.
type ClientsResponse struct {
	Clients  []clients.Client `json:"clients"`
	Summary  clients.Summary  `json:"summary"`
	Metadata ClientsMetadata  `json:"metadata"`
}

// ClientsMetadata describes how a client listing was produced.
type ClientsMetadata struct {
	Metadata

	FilterApplied string `json:"filter_applied"`
	SortBy        string `json:"sort_by"`
}

func (t *tools) getClients(_ context.Context, in GetClientsInput) (any, error) {
	meta := t.metadata()

	filter := clients.Filter(in.FilterBy)
	if filter == "" {
		filter = clients.FilterAll
	}

	sortBy := clients.SortKey(in.SortBy)
	if sortBy == "" {
		sortBy = clients.SortClientID
	}

	list := clients.Select(t.Source.Clients(), clients.Query{
		Filter: filter,
		Sort:   sortBy,
		Limit:  in.Limit,
		AsOf:   meta.Timestamp,
	})

	return ClientsResponse{
		Clients: list,
		Summary: clients.Summarize(list),
		Metadata: ClientsMetadata{
			Metadata:      meta,
			FilterApplied: string(filter),
			SortBy:        string(sortBy),
		},
	}, nil
}

// GetClientPositionsInput are the arguments of get_client_positions.
type GetClientPositionsInput struct {
	ClientID  string  `json:"client_id" validate:"required,client_id"`
	AssetType string  `json:"asset_type" validate:"omitempty,oneof=all equity bond cash"`
	MinWeight float64 `json:"min_weight" validate:"gte=0,lte=1"`
}

// PositionView is a position with its recommendation, when covered.
type PositionView struct {
	portfolio.Position

	Recommendation *research.Recommendation `json:"recommendation,omitempty"`
}

// ClientInfo is the client context of a positions response.
type ClientInfo struct {
	RiskProfile clients.RiskProfile `json:"risk_profile"`
	TotalAUM    money.Money         `json:"total_aum"`
	LastReview  string              `json:"last_review"`
	Status      clients.Status      `json:"status"`
}

// PositionsSummary aggregates a positions response.
//
// RecommendationSummary counts positions per rating, with NO_RATING for
// securities without research coverage.
type PositionsSummary struct {
	TotalPositions        int                                        `json:"total_positions"`
	TotalValue            money.Money                                `json:"total_value"`
	AssetBreakdown        map[portfolio.Kind]portfolio.KindBreakdown `json:"asset_breakdown"`
	RecommendationSummary map[string]int                             `json:"recommendation_summary"`
	Alignment             analytics.Alignment                        `json:"alignment_with_risk_profile"`
}

// PositionsMetadata describes how a positions listing was produced.
type PositionsMetadata struct {
	Metadata

	FiltersApplied PositionFilters `json:"filters_applied"`
}

// PositionFilters echoes the filters of a positions request.
type PositionFilters struct {
	AssetType string  `json:"asset_type"`
	MinWeight float64 `json:"min_weight"`
}

// PositionsResponse is the result of get_client_positions.
type PositionsResponse struct {
	ClientID   string            `json:"client_id"`
	ClientName string            `json:"client_name"`
	ClientInfo ClientInfo        `json:"client_info"`
	Positions  []PositionView    `json:"positions"`
	Summary    PositionsSummary  `json:"summary"`
	Metadata   PositionsMetadata `json:"metadata"`
}

// NoRating labels positions without research coverage.
const NoRating = "NO_RATING"

func (t *tools) getClientPositions(_ context.Context, in GetClientPositionsInput) (any, error) {
	registry := t.Source.Clients()

	idx := slices.IndexFunc(registry, func(c clients.Client) bool { return c.ID == in.ClientID })
	if idx < 0 {
		return nil, werrors.NotFound(werrors.KindClient, in.ClientID)
	}

	client := registry[idx]

	all, err := t.Source.Positions(client.ID)
	if err != nil {
		return nil, err
	}

	assetType := in.AssetType
	if assetType == "" {
		assetType = "all"
	}

	selected := all
	if kind, ok := portfolio.ParseKind(assetType); ok {
		selected = selected.FilterKind(kind)
	}

	if in.MinWeight > 0 {
		selected = selected.FilterMinWeight(in.MinWeight * 100)
	}

	summary := map[string]int{
		string(research.RatingBuy):     0,
		string(research.RatingSell):    0,
		string(research.RatingNeutral): 0,
		NoRating:                       0,
	}

	views := make([]PositionView, 0, len(selected))

	for _, pos := range selected {
		view := PositionView{Position: pos}

		if !pos.IsCash() {
			rec, err := t.Source.Recommendation(pos.ISIN)
			if err != nil {
				return nil, err
			}

			if rec.Covered {
				view.Recommendation = &rec
				summary[string(rec.Rating)]++
			} else {
				summary[NoRating]++
			}
		}

		views = append(views, view)
	}

	return PositionsResponse{
		ClientID:   client.ID,
		ClientName: client.Name,
		ClientInfo: ClientInfo{
			RiskProfile: client.RiskProfile,
			TotalAUM:    client.AUM,
			LastReview:  client.LastReview,
			Status:      client.Status,
		},
		Positions: views,
		Summary: PositionsSummary{
			TotalPositions:        len(selected),
			TotalValue:            selected.Total(),
			AssetBreakdown:        selected.Breakdown(),
			RecommendationSummary: summary,
			Alignment:             analytics.RiskAlignment(client, all),
		},
		Metadata: PositionsMetadata{
			Metadata:       t.metadata(),
			FiltersApplied: PositionFilters{AssetType: assetType, MinWeight: in.MinWeight},
		},
	}, nil
}

// GetRecommendationsInput are the arguments of get_recommendations.
type GetRecommendationsInput struct {
	ISIN         string   `json:"isin" validate:"omitempty,isin"`
	ISINs        []string `json:"isins" validate:"omitempty,max=50,dive,isin"`
	RatingFilter string   `json:"rating_filter" validate:"omitempty,oneof=all BUY SELL NEUTRAL"`
	AssetType    string   `json:"asset_type" validate:"omitempty,oneof=all equity bond"`
}

// RecommendationView is a recommendation with its upside, when priced.
type RecommendationView struct {
	research.Recommendation

	Upside *float64 `json:"upside_potential,omitempty"`
}

// RecommendationFilters echoes the filters of a recommendations request.
type RecommendationFilters struct {
	SpecificISINs bool   `json:"specific_isins"`
	RatingFilter  string `json:"rating_filter"`
	AssetType     string `json:"asset_type"`
}

// RecommendationsSummary aggregates a recommendations response.
type RecommendationsSummary struct {
	research.Summary

	FiltersApplied RecommendationFilters `json:"filters_applied"`
}

// RecommendationsMetadata describes the research dataset.
type RecommendationsMetadata struct {
	Metadata

	ResearchCoverage int `json:"research_coverage"`
}

// RecommendationsResponse is the result of get_recommendations.
type RecommendationsResponse struct {
	Recommendations []RecommendationView    `json:"recommendations"`
	Summary         RecommendationsSummary  `json:"summary"`
	Metadata        RecommendationsMetadata `json:"metadata"`
}

func (t *tools) getRecommendations(_ context.Context, in GetRecommendationsInput) (any, error) {
	isins := in.ISINs
	if in.ISIN != "" {
		isins = append([]string{in.ISIN}, isins...)
	}

	filter := research.Filter{ISINs: isins}

	rating := in.RatingFilter
	if rating == "" {
		rating = "all"
	}

	if r, ok := research.ParseRating(rating); ok {
		filter.Rating = r
	}

	assetType := in.AssetType
	if assetType == "" {
		assetType = "all"
	}

	if kind, ok := catalog.ParseKind(assetType); ok {
		filter.Kind = kind
	}

	recs, err := t.Desk.List(filter)
	if err != nil {
		return nil, err
	}

	views := make([]RecommendationView, 0, len(recs))

	for _, r := range recs {
		view := RecommendationView{Recommendation: r}
		if up, ok := r.UpsidePotential(); ok {
			view.Upside = &up
		}

		views = append(views, view)
	}

	return RecommendationsResponse{
		Recommendations: views,
		Summary: RecommendationsSummary{
			Summary: research.Summarize(recs),
			FiltersApplied: RecommendationFilters{
				SpecificISINs: len(isins) > 0,
				RatingFilter:  rating,
				AssetType:     assetType,
			},
		},
		Metadata: RecommendationsMetadata{
			Metadata:         t.metadata(),
			ResearchCoverage: t.Desk.Coverage(),
		},
	}, nil
}
