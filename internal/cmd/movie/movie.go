// Package movie parses movie service flags and launches the service.
package movie

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/cosmos/internal/platform/cmd"
	server "github.com/louisbranch/cosmos/internal/services/movie/app"
)

// Config holds movie command configuration.
type Config struct {
	Port int `env:"COSMOS_MOVIE_PORT" envDefault:"50051"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The movie gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the movie gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMovie, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
