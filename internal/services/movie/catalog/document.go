package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DocumentVersion is the only supported catalog document version.
const DocumentVersion = 1

// ErrUnsupportedFormat indicates a catalog file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

//go:embed data/movies.v1.json
var embeddedMoviesJSON []byte

var (
	loadEmbeddedOnce sync.Once
	embeddedCatalog  *Catalog
	embeddedErr      error
)

type document struct {
	Version int             `json:"version" yaml:"version"`
	Movies  []movieDocument `json:"movies" yaml:"movies"`
}

type movieDocument struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	loadEmbeddedOnce.Do(func() {
		embeddedCatalog, embeddedErr = ParseJSON(embeddedMoviesJSON)
		if embeddedErr != nil {
			embeddedErr = fmt.Errorf("load embedded catalog: %w", embeddedErr)
		}
	})
	return embeddedCatalog, embeddedErr
}

// ParseJSON decodes a JSON catalog document.
func ParseJSON(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog json: %w", err)
	}
	return doc.catalog()
}

// ParseYAML decodes a YAML catalog document. Unknown keys are rejected.
func ParseYAML(data []byte) (*Catalog, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}
	return doc.catalog()
}

// LoadFile reads a catalog document, picking the decoder from the extension.
func LoadFile(path string) (*Catalog, error) {
	var parse func([]byte) (*Catalog, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parse = ParseJSON
	case ".yaml", ".yml":
		parse = ParseYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

func (d document) catalog() (*Catalog, error) {
	if d.Version != DocumentVersion {
		return nil, fmt.Errorf("catalog version %d is not supported", d.Version)
	}
	movies := make([]Movie, 0, len(d.Movies))
	for _, entry := range d.Movies {
		movies = append(movies, Movie{ID: entry.ID, Name: entry.Name})
	}
	return New(movies)
}
