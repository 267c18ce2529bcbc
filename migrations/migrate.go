// Package migrations holds the embedded goose migrations of the employee
// registry. The DDL differs between the supported engines (identity columns
// versus AUTOINCREMENT), so each engine gets its own migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for the given engine ("pgx" or
// "sqlite3", matching the database/sql driver names).
func Migrate(db *sql.DB, engine string) error {
	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch engine {
	case "pgx":
		dialect, dir = "pgx", "postgres"
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported engine %q", engine)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
