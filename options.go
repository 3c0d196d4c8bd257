package wealthmcp

import (
	"io"
	"log/slog"
	"time"

	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
	"github.com/wagiedev/wealth-mcp-go/internal/research"
)

// Default server identity reported to MCP hosts.
const (
	DefaultName    = "wealth-management"
	DefaultVersion = "1.0.0"
)

// DefaultSeed is the seed of the published sample portfolios.
const DefaultSeed = portfolio.DefaultSeed

// Option configures a Server using the functional options pattern.
type Option func(*options)

type options struct {
	logger          *slog.Logger
	seed            uint64
	clock           func() time.Time
	name            string
	version         string
	recommendations []research.Recommendation
}

// applyOptions applies functional options over the defaults.
func applyOptions(opts []Option) *options {
	o := &options{
		logger:  NopLogger(),
		seed:    DefaultSeed,
		clock:   time.Now,
		name:    DefaultName,
		version: DefaultVersion,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// NopLogger returns a logger that discards all output.
// Use this when you want silent operation with no logging overhead.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSeed sets the portfolio generation seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithClock sets the time source used for response timestamps and the
// new-client filter.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithName sets the server name reported to MCP hosts.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithVersion sets the server version reported to MCP hosts.
func WithVersion(version string) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithRecommendations overrides the research coverage for the given ISINs.
// Every ISIN must be listed in the security catalog.
func WithRecommendations(recs ...Recommendation) Option {
	return func(o *options) {
		o.recommendations = append(o.recommendations, recs...)
	}
}
