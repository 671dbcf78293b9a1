package movie

import (
	"context"
	"errors"
	"fmt"
	"iter"

	moviev1 "github.com/louisbranch/cosmos/api/movie/v1"
	apperrors "github.com/louisbranch/cosmos/internal/platform/errors"
	"github.com/louisbranch/cosmos/internal/platform/requestctx"
	"github.com/louisbranch/cosmos/internal/services/movie/catalog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SearchMatchesAttribute counts movies streamed by one search call.
const SearchMatchesAttribute = attribute.Key("movie.search.matches")

// Catalog is the read-only movie set the service queries.
type Catalog interface {
	Search(query string) iter.Seq[catalog.Movie]
	Lookup(id string) (catalog.Movie, error)
}

// Service exposes movie.v1 gRPC operations.
type Service struct {
	moviev1.UnimplementedMovieServiceServer
	catalog Catalog
}

// NewService creates a movie service backed by a catalog.
func NewService(cat Catalog) *Service {
	return &Service{catalog: cat}
}

// GetMovies streams every catalog movie whose name contains the query.
func (s *Service) GetMovies(in *moviev1.MoviesQuery, stream moviev1.MovieService_GetMoviesServer) error {
	ctx := stream.Context()
	if in.GetQuery() == "" {
		return apperrors.New(apperrors.CodeMovieQueryRequired, "movie query is required").
			ToGRPCStatus(requestctx.LocaleFromContext(ctx))
	}
	if s == nil || s.catalog == nil {
		return status.Error(codes.Internal, "movie catalog is not configured")
	}

	var matches int
	defer func() {
		trace.SpanFromContext(ctx).SetAttributes(SearchMatchesAttribute.Int(matches))
	}()
	for movie := range s.catalog.Search(in.GetQuery()) {
		if err := stream.Send(movieToProto(movie)); err != nil {
			return err
		}
		matches++
	}
	return nil
}

// GetMovie returns the catalog movie with the requested id.
func (s *Service) GetMovie(ctx context.Context, in *moviev1.MovieQuery) (*moviev1.Movie, error) {
	id := in.GetId()
	if id == "" {
		return nil, apperrors.New(apperrors.CodeMovieIDRequired, "movie id is required").
			ToGRPCStatus(requestctx.LocaleFromContext(ctx))
	}
	if s == nil || s.catalog == nil {
		return nil, status.Error(codes.Internal, "movie catalog is not configured")
	}

	movie, err := s.catalog.Lookup(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, apperrors.WithMetadata(apperrors.CodeMovieNotFound, "movie not found",
				map[string]string{"MovieID": id}).ToGRPCStatus(requestctx.LocaleFromContext(ctx))
		}
		return nil, apperrors.Wrap(apperrors.CodeUnknown, fmt.Sprintf("lookup movie: %v", err), err).
			ToGRPCStatus(requestctx.LocaleFromContext(ctx))
	}
	return movieToProto(movie), nil
}

func movieToProto(movie catalog.Movie) *moviev1.Movie {
	return &moviev1.Movie{Id: movie.ID, Name: movie.Name}
}
