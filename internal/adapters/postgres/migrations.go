package postgres

import "embed"

// MigrationsFS holds both migration sets: migrations/domain for the cliente
// store and migrations/identity for the user store.
//
//go:embed migrations/domain/*.sql migrations/identity/*.sql
var MigrationsFS embed.FS
