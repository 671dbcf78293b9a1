// Package storage defines the contracts for durable movie catalog sources.
package storage

import (
	"context"

	"github.com/louisbranch/cosmos/internal/services/movie/catalog"
)

// MovieReader lists every stored movie in catalog order.
type MovieReader interface {
	ListMovies(ctx context.Context) ([]catalog.Movie, error)
}

// MovieWriter replaces the stored catalog. Only offline tooling writes.
type MovieWriter interface {
	ReplaceMovies(ctx context.Context, movies []catalog.Movie) error
}
