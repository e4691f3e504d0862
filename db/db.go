// Package db embeds the PostgreSQL schema migrations applied by pg.Migrate.
package db

import "embed"

// Migrations holds the goose SQL files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
