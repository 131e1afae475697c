package migrations

import "github.com/uptrace/bun/migrate"

// DbMigrations - registry of catalog schema migrations
var DbMigrations = migrate.NewMigrations()
