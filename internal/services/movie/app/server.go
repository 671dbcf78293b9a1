// Package server wires the movie catalog runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"path/filepath"
	"strings"

	moviev1 "github.com/louisbranch/cosmos/api/movie/v1"
	"github.com/louisbranch/cosmos/internal/platform/config"
	"github.com/louisbranch/cosmos/internal/platform/grpc/grpcmeta"
	movieservice "github.com/louisbranch/cosmos/internal/services/movie/api/grpc/movie"
	"github.com/louisbranch/cosmos/internal/services/movie/catalog"
	"github.com/louisbranch/cosmos/internal/services/movie/storage"
	moviesqlite "github.com/louisbranch/cosmos/internal/services/movie/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Env holds the movie server environment.
type Env struct {
	CatalogPath string `env:"COSMOS_MOVIE_CATALOG_PATH"`
}

// LoadEnv reads the movie server environment.
func LoadEnv() (Env, error) {
	var cfg Env
	if err := config.ParseEnv(&cfg); err != nil {
		return Env{}, err
	}
	cfg.CatalogPath = strings.TrimSpace(cfg.CatalogPath)
	return cfg, nil
}

// Server hosts the movie gRPC API.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	catalog    *catalog.Catalog
}

// New creates a configured movie server listening on the provided port.
func New(ctx context.Context, port int) (*Server, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured movie server for the provided address,
// loading its catalog from the environment.
func NewWithAddr(ctx context.Context, addr string) (*Server, error) {
	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	return NewWithEnv(ctx, addr, env)
}

// NewWithEnv creates a configured movie server with explicit settings.
func NewWithEnv(ctx context.Context, addr string, env Env) (*Server, error) {
	cat, err := LoadCatalog(ctx, env.CatalogPath)
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcmeta.UnaryServerInterceptor(grpcmeta.Options{})),
		grpc.ChainStreamInterceptor(grpcmeta.StreamServerInterceptor(grpcmeta.Options{})),
	)
	healthServer := health.NewServer()
	moviev1.RegisterMovieServiceServer(grpcServer, movieservice.NewService(cat))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(moviev1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		catalog:    cat,
	}, nil
}

// LoadCatalog resolves the catalog source: the embedded dataset when path is
// empty, a SQLite database for .db and .sqlite paths, otherwise a JSON or
// YAML document.
func LoadCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Embedded()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return loadSQLiteCatalog(ctx, path)
	default:
		return catalog.LoadFile(path)
	}
}

func loadSQLiteCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	store, err := moviesqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open movie sqlite store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close movie store: %v", err)
		}
	}()

	return catalogFromReader(ctx, store, path)
}

// catalogFromReader builds a catalog from every movie reader returns; source
// names the origin in errors.
func catalogFromReader(ctx context.Context, reader storage.MovieReader, source string) (*catalog.Catalog, error) {
	movies, err := reader.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	cat, err := catalog.New(movies)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return cat, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a movie server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(ctx, port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("movie server listening at %v with %d movies", s.listener.Addr(), s.catalog.Len())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases movie server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
