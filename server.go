package wealthmcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/wealth-mcp-go/internal/analytics"
	"github.com/wagiedev/wealth-mcp-go/internal/catalog"
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	internalmcp "github.com/wagiedev/wealth-mcp-go/internal/mcp"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
	"github.com/wagiedev/wealth-mcp-go/internal/research"
)

// Server owns the generated dataset and the MCP tools serving it. A Server is
// immutable after NewServer returns and safe for concurrent use.
type Server struct {
	logger *slog.Logger
	seed   uint64

	book     *portfolio.Book
	desk     *research.Desk
	engine   *analytics.Engine
	registry *internalmcp.Registry
	mcp      *mcp.Server
}

// NewServer generates the sample portfolios and registers the tools.
func NewServer(opts ...Option) (*Server, error) {
	o := applyOptions(opts)

	overrides := make([]research.Recommendation, 0, len(o.recommendations))

	for _, r := range o.recommendations {
		if _, err := catalog.Lookup(r.ISIN); err != nil {
			return nil, fmt.Errorf("recommendation override: %w", err)
		}

		rating, ok := research.ParseRating(string(r.Rating))
		if !ok {
			return nil, fmt.Errorf("recommendation override for %s: unknown rating %q", r.ISIN, r.Rating)
		}

		r.Rating = rating
		overrides = append(overrides, r)
	}

	book := portfolio.NewBook(portfolio.NewGenerator(o.seed), clients.All())
	desk := research.NewDesk(overrides...)
	source := analytics.NewDataset(book, desk)

	registry := internalmcp.NewRegistry(o.logger)
	internalmcp.Register(registry, internalmcp.NewBinder(o.logger), internalmcp.Deps{
		Source: source,
		Desk:   desk,
		Clock:  o.clock,
	})

	server := mcp.NewServer(&mcp.Implementation{Name: o.name, Version: o.version}, nil)
	registry.Install(server)

	o.logger.Debug("wealth server ready",
		slog.Uint64("seed", o.seed),
		slog.Int("clients", len(clients.All())),
		slog.Int("research_coverage", desk.Coverage()),
		slog.Any("tools", registry.Names()),
	)

	return &Server{
		logger:   o.logger,
		seed:     o.seed,
		book:     book,
		desk:     desk,
		engine:   analytics.New(source),
		registry: registry,
		mcp:      server,
	}, nil
}

// Seed returns the portfolio generation seed.
func (s *Server) Seed() uint64 {
	return s.seed
}

// MCP returns the underlying SDK server with every tool installed.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves the tools over t until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.logger.InfoContext(ctx, "serving MCP tools", slog.Any("tools", s.registry.Names()))

	return s.mcp.Run(ctx, t)
}

// ListTools returns the tool definitions.
func (s *Server) ListTools() []*mcp.Tool {
	return s.registry.ListTools()
}

// CallTool invokes a tool directly, without a transport. Tool failures are
// reported inside the result with IsError set.
func (s *Server) CallTool(ctx context.Context, name string, args any) (*mcp.CallToolResult, error) {
	return s.registry.CallTool(ctx, name, args)
}

// Analytics returns the cross-dataset query engine.
func (s *Server) Analytics() *Engine {
	return s.engine
}

// ListClients returns every client in registry order.
func (s *Server) ListClients() []Client {
	return clients.All()
}

// GetClient returns the client with the given identifier.
func (s *Server) GetClient(id string) (Client, error) {
	return clients.Lookup(id)
}

// GetPositions returns a copy of the portfolio of client id.
func (s *Server) GetPositions(id string) (Portfolio, error) {
	return s.book.Positions(id)
}

// GetRecommendation returns the research view on isin. Listed securities
// without coverage yield a NEUTRAL default.
func (s *Server) GetRecommendation(isin string) (Recommendation, error) {
	return s.desk.Get(isin)
}

// GetRecommendations lists the covered recommendations, best first.
func (s *Server) GetRecommendations() []Recommendation {
	recs, _ := s.desk.List(research.Filter{})

	return recs
}

// Securities returns the security catalog.
func (s *Server) Securities() []Security {
	return catalog.All()
}

// RiskAlignment assesses the risk alignment of client id.
func (s *Server) RiskAlignment(id string) (Alignment, error) {
	c, err := clients.Lookup(id)
	if err != nil {
		return Alignment{}, err
	}

	p, err := s.book.Positions(id)
	if err != nil {
		return Alignment{}, err
	}

	return analytics.RiskAlignment(c, p), nil
}
