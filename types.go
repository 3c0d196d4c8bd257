package wealthmcp

import (
	"github.com/wagiedev/wealth-mcp-go/internal/analytics"
	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
	"github.com/wagiedev/wealth-mcp-go/internal/research"
)

// Re-export types from internal packages

// ===== Securities =====

// Security holds the metadata of one instrument.
type Security = catalog.Security

// SecurityKind is the instrument class of a security.
type SecurityKind = catalog.Kind

const (
	// SecurityEquity is a listed share.
	SecurityEquity = catalog.KindEquity
	// SecurityBond is a bond priced as a percentage of par.
	SecurityBond = catalog.KindBond
)

// ===== Clients =====

// Client holds the reference data of one advisory client.
type Client = clients.Client

// RiskProfile is a client's declared risk appetite.
type RiskProfile = clients.RiskProfile

const (
	Conservative = clients.Conservative
	Balanced     = clients.Balanced
	Aggressive   = clients.Aggressive
)

// ===== Positions =====

// Position is one holding in a client portfolio.
type Position = portfolio.Position

// Portfolio is the ordered list of a client's positions.
type Portfolio = portfolio.Portfolio

// PositionKind is the asset class of a position.
type PositionKind = portfolio.Kind

const (
	PositionEquity = portfolio.KindEquity
	PositionBond   = portfolio.KindBond
	PositionCash   = portfolio.KindCash
)

// ===== Research =====

// Recommendation is the research view on one security.
type Recommendation = research.Recommendation

// Rating is an analyst recommendation.
type Rating = research.Rating

const (
	RatingBuy     = research.RatingBuy
	RatingSell    = research.RatingSell
	RatingNeutral = research.RatingNeutral
)

// ===== Analytics =====

// Engine runs cross-dataset advisor queries.
type Engine = analytics.Engine

// Source supplies the dataset an Engine queries.
type Source = analytics.Source

// Alignment compares a portfolio's asset mix with its risk profile.
type Alignment = analytics.Alignment

// AlignmentStatus classifies an alignment score.
type AlignmentStatus = analytics.AlignmentStatus

const (
	StatusAligned           = analytics.StatusAligned
	StatusNeedsRebalancing  = analytics.StatusNeedsRebalancing
	StatusMajorMisalignment = analytics.StatusMajorMisalignment
)
