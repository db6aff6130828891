// Package db embeds the SQL migrations so a deployed binary carries its own
// schema.
package db

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
