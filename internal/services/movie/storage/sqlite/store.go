// Package sqlite provides a SQLite-backed movie catalog source.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/cosmos/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/cosmos/internal/services/movie/catalog"
	"github.com/louisbranch/cosmos/internal/services/movie/storage"
	"github.com/louisbranch/cosmos/internal/services/movie/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	_ storage.MovieReader = (*Store)(nil)
	_ storage.MovieWriter = (*Store)(nil)
)

// Store reads and replaces the movie catalog in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite movie store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListMovies returns every stored movie ordered by position.
func (s *Store) ListMovies(ctx context.Context) ([]catalog.Movie, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, name FROM movies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []catalog.Movie
	for rows.Next() {
		var movie catalog.Movie
		if err := rows.Scan(&movie.ID, &movie.Name); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

// ReplaceMovies swaps the stored catalog for movies in one transaction,
// recording their order.
func (s *Store) ReplaceMovies(ctx context.Context, movies []catalog.Movie) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace movies: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM movies`); err != nil {
		return fmt.Errorf("clear movies: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (position, id, name) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert movie: %w", err)
	}
	defer stmt.Close()

	for i, movie := range movies {
		if _, err := stmt.ExecContext(ctx, i, movie.ID, movie.Name); err != nil {
			if isConstraintUnique(err) {
				return fmt.Errorf("insert movie %q: %w", movie.ID, catalog.ErrDuplicateID)
			}
			return fmt.Errorf("insert movie %q: %w", movie.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace movies: %w", err)
	}
	return nil
}

func isConstraintUnique(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
