package journal

import (
	"context"
	"database/sql"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/platform/obs"
	"distance-matrix-client/internal/ports"
	"errors"
	"fmt"
	"time"
)

// SQLResultJournal is the Postgres (pgx) backed query journal.
type SQLResultJournal struct {
	DB  *sql.DB
	now func() time.Time
}

func NewSQLResultJournal(db *sql.DB) *SQLResultJournal {
	return &SQLResultJournal{DB: db, now: time.Now}
}

func (s *SQLResultJournal) Record(
	ctx context.Context,
	opts domain.Options,
	resp *domain.MatrixResponse,
) (err error) {
	defer obs.Time(ctx, "journal.Record")(&err)

	if s.DB == nil {
		return errors.New("result journal: db is nil")
	}

	rows, err := entries(opts, resp, s.now().UTC())
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record matrix results: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO matrix_results (
		query_id, queried_at, origin, destination, mode, status, distance_meters, duration_seconds
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`)
	if err != nil {
		return fmt.Errorf("record matrix results: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range rows {
		if _, err := stmt.ExecContext(ctx,
			e.QueryID, e.QueriedAt, e.Origin, e.Destination, e.Mode, e.Status, e.DistanceMeters, e.DurationSeconds,
		); err != nil {
			return fmt.Errorf("record matrix results %q -> %q: %w", e.Origin, e.Destination, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record matrix results commit: %w", err)
	}

	return nil
}

func (s *SQLResultJournal) Recent(ctx context.Context, limit int) (_ []ports.JournalEntry, err error) {
	defer obs.Time(ctx, "journal.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("result journal: db is nil")
	}
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT query_id, queried_at, origin, destination, mode, status, distance_meters, duration_seconds
	FROM matrix_results
	ORDER BY id DESC
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent: query matrix_results table: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}
