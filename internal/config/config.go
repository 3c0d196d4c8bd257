package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
)

// EnvPrefix prefixes every configuration variable.
const EnvPrefix = "WEALTH_MCP_"

// Environment variables.
const (
	EnvName      = EnvPrefix + "NAME"
	EnvVersion   = EnvPrefix + "VERSION"
	EnvSeed      = EnvPrefix + "SEED"
	EnvTransport = EnvPrefix + "TRANSPORT"
	EnvHTTPAddr  = EnvPrefix + "HTTP_ADDR"
	EnvLogLevel  = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat = EnvPrefix + "LOG_FORMAT"
)

// Defaults.
const (
	DefaultName     = "wealth-management"
	DefaultVersion  = "1.0.0"
	DefaultHTTPAddr = "127.0.0.1:8765"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the runtime configuration of the server binary.
type Config struct {
	Name      string
	Version   string
	Seed      uint64
	Transport Transport
	HTTPAddr  string
	LogLevel  slog.Level
	LogFormat string
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Name:      DefaultName,
		Version:   DefaultVersion,
		Seed:      portfolio.DefaultSeed,
		Transport: TransportStdio,
		HTTPAddr:  DefaultHTTPAddr,
		LogLevel:  slog.LevelInfo,
		LogFormat: LogFormatText,
	}
}

// Load reads the given dotenv files, or ".env" when none are given, and then
// builds the configuration from the process environment. Missing dotenv files
// are ignored; variables already set in the environment take precedence.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds the configuration from lookup, starting from Default.
// Invalid values fail with an error naming the variable.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)

		return v, ok && v != ""
	}

	if v, ok := get(EnvName); ok {
		cfg.Name = v
	}

	if v, ok := get(EnvVersion); ok {
		cfg.Version = v
	}

	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvSeed, err)
		}

		cfg.Seed = seed
	}

	if v, ok := get(EnvTransport); ok {
		cfg.Transport = NormalizeTransport(v)
		if !cfg.Transport.Valid() {
			return nil, fmt.Errorf("%s: unsupported transport %q", EnvTransport, v)
		}
	}

	if v, ok := get(EnvHTTPAddr); ok {
		cfg.HTTPAddr = v
	}

	if v, ok := get(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if v, ok := get(EnvLogFormat); ok {
		switch f := strings.ToLower(v); f {
		case LogFormatText, LogFormatJSON:
			cfg.LogFormat = f
		default:
			return nil, fmt.Errorf("%s: unsupported log format %q", EnvLogFormat, v)
		}
	}

	return cfg, nil
}

// Logger builds a slog logger writing to w in the configured format and level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}

	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
