package domain

import (
	"context"
	"errors"
	"fmt"
	"io"

	moviev1 "github.com/louisbranch/cosmos/api/movie/v1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Movie is one catalog entry in tool results.
type Movie struct {
	ID   string `json:"id" jsonschema:"movie identifier"`
	Name string `json:"name" jsonschema:"movie title with release year"`
}

// MovieSearchInput represents the MCP tool input for searching movies.
type MovieSearchInput struct {
	Query string `json:"query" jsonschema:"case-insensitive text contained in the movie title"`
}

// MovieSearchResult represents the MCP tool output for searching movies.
type MovieSearchResult struct {
	Movies []Movie `json:"movies" jsonschema:"matching movies in catalog order"`
}

// MovieGetInput represents the MCP tool input for fetching one movie.
type MovieGetInput struct {
	ID string `json:"id" jsonschema:"movie identifier"`
}

// MovieSearchTool defines the MCP tool schema for searching movies.
func MovieSearchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "movie_search",
		Description: "Finds catalog movies whose title contains the query, ignoring case",
	}
}

// MovieGetTool defines the MCP tool schema for fetching one movie.
func MovieGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "movie_get",
		Description: "Returns the catalog movie with the given id",
	}
}

// MovieSearchHandler drains a GetMovies stream into one result.
func MovieSearchHandler(client moviev1.MovieServiceClient) mcp.ToolHandlerFor[MovieSearchInput, MovieSearchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MovieSearchInput) (*mcp.CallToolResult, MovieSearchResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		callCtx, requestID := newOutgoingContext(runCtx)
		stream, err := client.GetMovies(callCtx, &moviev1.MoviesQuery{Query: input.Query})
		if err != nil {
			return nil, MovieSearchResult{}, fmt.Errorf("movie search failed: %s", errorMessage(err))
		}

		result := MovieSearchResult{Movies: []Movie{}}
		for {
			movie, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, MovieSearchResult{}, fmt.Errorf("movie search failed: %s", errorMessage(err))
			}
			result.Movies = append(result.Movies, Movie{ID: movie.GetId(), Name: movie.GetName()})
		}

		header, _ := stream.Header()
		return resultWithRequestID(responseRequestID(requestID, header)), result, nil
	}
}

// MovieGetHandler looks up one movie by id.
func MovieGetHandler(client moviev1.MovieServiceClient) mcp.ToolHandlerFor[MovieGetInput, Movie] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MovieGetInput) (*mcp.CallToolResult, Movie, error) {
		runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		callCtx, requestID := newOutgoingContext(runCtx)
		var header metadata.MD
		movie, err := client.GetMovie(callCtx, &moviev1.MovieQuery{Id: input.ID}, grpc.Header(&header))
		if err != nil {
			return nil, Movie{}, fmt.Errorf("movie get failed: %s", errorMessage(err))
		}
		return resultWithRequestID(responseRequestID(requestID, header)), Movie{ID: movie.GetId(), Name: movie.GetName()}, nil
	}
}
