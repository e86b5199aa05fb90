// Package schemas embeds the SQL migrations of the vocab_entries store.
package schemas

import "embed"

// Migrations holds migrations/*.sql, applied in file name order by database.Migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
