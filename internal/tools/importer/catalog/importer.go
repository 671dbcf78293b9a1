// Package catalogimporter loads a movie catalog document into SQLite.
package catalogimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/cosmos/internal/platform/config"
	"github.com/louisbranch/cosmos/internal/services/movie/catalog"
	"github.com/louisbranch/cosmos/internal/services/movie/storage"
	moviesqlite "github.com/louisbranch/cosmos/internal/services/movie/storage/sqlite"
)

// Config holds configuration for the catalog importer.
type Config struct {
	In     string
	Out    string
	DryRun bool
}

// ParseConfig parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.In, "in", "", "catalog document (.json, .yaml or .yml)")
	fs.StringVar(&cfg.Out, "out", "", "SQLite database path")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate without writing to the database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	required := []string{"in"}
	if !cfg.DryRun {
		required = append(required, "out")
	}
	if err := config.RequireFlags(fs, required...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the input document and replaces the database contents with it.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	in := strings.TrimSpace(cfg.In)
	if in == "" {
		return errors.New("in is required")
	}
	cat, err := catalog.LoadFile(in)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d movie(s) from %s\n", cat.Len(), in)
		return err
	}

	dbPath := strings.TrimSpace(cfg.Out)
	if dbPath == "" {
		return errors.New("out is required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := moviesqlite.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open movie store: %w", err)
	}
	defer store.Close()

	if err := importMovies(ctx, store, cat); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "imported %d movie(s) into %s\n", cat.Len(), dbPath)
	return err
}

func importMovies(ctx context.Context, writer storage.MovieWriter, cat *catalog.Catalog) error {
	if err := writer.ReplaceMovies(ctx, cat.Movies()); err != nil {
		return fmt.Errorf("import movies: %w", err)
	}
	return nil
}
