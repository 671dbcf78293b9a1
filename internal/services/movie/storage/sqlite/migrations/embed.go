package migrations

import "embed"

// FS contains embedded SQLite migrations for movie catalog storage.
//
//go:embed *.sql
var FS embed.FS
