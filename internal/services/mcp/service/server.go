package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	moviev1 "github.com/louisbranch/cosmos/api/movie/v1"
	"github.com/louisbranch/cosmos/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/cosmos/internal/platform/grpc"
	"github.com/louisbranch/cosmos/internal/platform/timeouts"
	"github.com/louisbranch/cosmos/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	serverName    = "cosmos-movie"
	serverVersion = "0.1.0"
)

// Config configures the MCP bridge.
type Config struct {
	// MovieAddr is the movie gRPC server address.
	MovieAddr string
	// DialTimeout bounds the initial health wait.
	DialTimeout time.Duration
}

// Server exposes movie catalog tools over MCP.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// New creates an MCP server whose tools call the movie service on conn.
// The server owns conn and closes it when serving ends.
func New(conn *grpc.ClientConn) (*Server, error) {
	if conn == nil {
		return nil, errors.New("movie gRPC connection is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	client := moviev1.NewMovieServiceClient(conn)
	mcp.AddTool(mcpServer, domain.MovieSearchTool(), domain.MovieSearchHandler(client))
	mcp.AddTool(mcpServer, domain.MovieGetTool(), domain.MovieGetHandler(client))
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

// Run dials the movie server and serves MCP on stdio until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport runs the MCP session and then closes the gRPC
// connection on every exit path.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	server, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

// connect dials the movie server and builds the MCP server around the
// connection.
func connect(ctx context.Context, cfg Config) (*Server, error) {
	conn, err := dialMovieGRPC(ctx, cfg)
	if err != nil {
		return nil, err
	}
	server, err := New(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return server, nil
}

func dialMovieGRPC(ctx context.Context, cfg Config) (*grpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	addr := discovery.OrDefaultGRPCAddr(cfg.MovieAddr, discovery.ServiceMovie)
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = timeouts.GRPCDial
	}
	logf := func(format string, args ...any) {
		log.Printf("movie %s", fmt.Sprintf(format, args...))
	}

	conn, err := platformgrpc.DialWithHealth(ctx, addr, timeout, logf)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) && dialErr.Stage == platformgrpc.DialStageConnect {
			return nil, fmt.Errorf("connect to movie server at %s: %w", addr, dialErr.Err)
		}
		return nil, fmt.Errorf("movie server at %s is not serving: %w", addr, err)
	}
	return conn, nil
}
