package journal

import (
	"context"
	"database/sql"
	"distance-matrix-client/internal/platform/db"
	"errors"
	"fmt"
)

var postgresSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS matrix_results (
		id BIGSERIAL PRIMARY KEY,
		query_id TEXT NOT NULL,
		queried_at TIMESTAMPTZ NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL,
		status TEXT NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_matrix_results_query_id
	ON matrix_results(query_id);
	`,
}

var sqliteSchema = []string{
	`
	CREATE TABLE IF NOT EXISTS matrix_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query_id TEXT NOT NULL,
		queried_at TIMESTAMP NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		mode TEXT NOT NULL,
		status TEXT NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_matrix_results_query_id
	ON matrix_results(query_id);
	`,
}

// InitSchema creates the matrix_results table for the given driver.
func InitSchema(ctx context.Context, conn *sql.DB, driver string) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch driver {
	case db.DriverPostgres:
		statements = postgresSchema
	case db.DriverSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("init schema: unsupported driver %q", driver)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
