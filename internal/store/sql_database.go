package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/employee-registry/internal/config"
	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/migrations"
)

// Database engine identifiers. They double as database/sql driver names and
// select the migration dialect.
const (
	EnginePostgres = "pgx"
	EngineSQLite   = "sqlite3"
)

// DB wraps *sql.DB with the pieces that differ between the supported engines:
// the placeholder format used by the query builder, the driver-error
// classifier, and the migration dialect.
type DB struct {
	*sql.DB

	engine     string
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	logger     *logger.Logger
}

// NewConnect opens a database connection for the engine implied by the DSN:
// a "postgres://" or "postgresql://" URI selects PostgreSQL, any other value
// is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded goose migrations for the connection's engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}
