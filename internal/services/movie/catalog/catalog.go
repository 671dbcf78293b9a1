// Package catalog holds the immutable, ordered movie catalog.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrNotFound indicates no movie carries the requested identifier.
	ErrNotFound = errors.New("movie not found")
	// ErrEmpty indicates a catalog definition without movies.
	ErrEmpty = errors.New("catalog has no movies")
	// ErrInvalidMovie indicates a movie without an id or name.
	ErrInvalidMovie = errors.New("movie id and name are required")
	// ErrDuplicateID indicates two movies share an identifier.
	ErrDuplicateID = errors.New("movie id is not unique")
)

// Movie is one catalog entry.
type Movie struct {
	ID   string
	Name string
}

// Catalog is an ordered, read-only set of movies.
//
// A Catalog never changes after New returns, so one value can serve any
// number of concurrent readers.
type Catalog struct {
	movies []Movie
	// folded holds the case-folded name of movies[i].
	folded []string
}

// New builds a catalog from movies, keeping their order.
func New(movies []Movie) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, ErrEmpty
	}
	fold := cases.Fold()
	c := &Catalog{
		movies: make([]Movie, len(movies)),
		folded: make([]string, len(movies)),
	}
	seen := make(map[string]int, len(movies))
	for i, movie := range movies {
		if movie.ID == "" || movie.Name == "" {
			return nil, fmt.Errorf("movie %d: %w", i, ErrInvalidMovie)
		}
		if first, ok := seen[movie.ID]; ok {
			return nil, fmt.Errorf("movie %d: %w: %q first seen at %d", i, ErrDuplicateID, movie.ID, first)
		}
		seen[movie.ID] = i
		c.movies[i] = movie
		c.folded[i] = fold.String(movie.Name)
	}
	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}

// Movies returns a copy of the catalog in order.
func (c *Catalog) Movies() []Movie {
	if c == nil {
		return nil
	}
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Search yields, in catalog order, every movie whose name contains query
// under Unicode case folding. The query is matched literally with no
// trimming. An empty query matches every movie; callers that treat it as
// invalid must check before searching.
//
// The returned sequence scans the catalog afresh on each iteration.
func (c *Catalog) Search(query string) iter.Seq[Movie] {
	needle := cases.Fold().String(query)
	return func(yield func(Movie) bool) {
		if c == nil {
			return
		}
		for i, name := range c.folded {
			if !strings.Contains(name, needle) {
				continue
			}
			if !yield(c.movies[i]) {
				return
			}
		}
	}
}

// Lookup returns the movie whose ID equals id exactly.
func (c *Catalog) Lookup(id string) (Movie, error) {
	if c != nil {
		for _, movie := range c.movies {
			if movie.ID == id {
				return movie, nil
			}
		}
	}
	return Movie{}, ErrNotFound
}
