// Package migrations embeds the SQL migrations for the brief store.
package migrations

import "embed"

// FS holds the migration files, applied in version order on open.
//
//go:embed *.sql
var FS embed.FS
