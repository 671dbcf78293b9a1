// Package mcp parses MCP command flags and launches the stdio bridge.
package mcp

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/louisbranch/cosmos/internal/platform/cmd"
	mcpservice "github.com/louisbranch/cosmos/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Addr        string        `env:"COSMOS_MCP_MOVIE_ADDR"   envDefault:"localhost:50051"`
	DialTimeout time.Duration `env:"COSMOS_MCP_DIAL_TIMEOUT" envDefault:"5s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "movie server address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{MovieAddr: cfg.Addr, DialTimeout: cfg.DialTimeout})
	})
}
