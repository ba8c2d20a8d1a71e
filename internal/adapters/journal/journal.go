// Package journal stores answered matrix queries, one row per element.
// The journal is write-mostly history; nothing reads it to answer a query.
package journal

import (
	"database/sql"
	"distance-matrix-client/internal/domain"
	"distance-matrix-client/internal/platform/db"
	"distance-matrix-client/internal/ports"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns the journal implementation for driver.
func New(driver string, conn *sql.DB) (ports.ResultJournal, error) {
	switch driver {
	case db.DriverPostgres:
		return NewSQLResultJournal(conn), nil
	case db.DriverSQLite:
		return NewSqliteResultJournal(conn), nil
	default:
		return nil, fmt.Errorf("journal: unsupported driver %q", driver)
	}
}

// entries flattens resp into rows sharing one new query id. Locations are
// named as requested; the resolved addresses are used when the request
// has fewer names than the response has rows or elements.
func entries(opts domain.Options, resp *domain.MatrixResponse, at time.Time) ([]ports.JournalEntry, error) {
	if resp == nil {
		return nil, errors.New("record: response is nil")
	}

	queryID := uuid.NewString()
	origins := splitLocations(opts.Origins)
	destinations := splitLocations(opts.Destinations)

	var out []ports.JournalEntry
	for i, row := range resp.Rows {
		for j, el := range row.Elements {
			e := ports.JournalEntry{
				QueryID:     queryID,
				QueriedAt:   at,
				Origin:      locationName(origins, resp.OriginAddresses, i),
				Destination: locationName(destinations, resp.DestinationAddresses, j),
				Mode:        string(opts.Mode),
				Status:      el.Status,
			}
			if el.Distance != nil {
				e.DistanceMeters = int(math.Round(el.Distance.Value))
			}
			if el.Duration != nil {
				e.DurationSeconds = int(math.Round(el.Duration.Value))
			}
			out = append(out, e)
		}
	}

	return out, nil
}

func splitLocations(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, domain.LocationSeparator)
}

func locationName(requested, resolved []string, i int) string {
	if i < len(requested) {
		return requested[i]
	}
	if i < len(resolved) {
		return resolved[i]
	}
	return ""
}

func checkLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("recent: limit must be positive, got %d", limit)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]ports.JournalEntry, error) {
	var out []ports.JournalEntry
	for rows.Next() {
		var e ports.JournalEntry
		if err := rows.Scan(
			&e.QueryID,
			&e.QueriedAt,
			&e.Origin,
			&e.Destination,
			&e.Mode,
			&e.Status,
			&e.DistanceMeters,
			&e.DurationSeconds,
		); err != nil {
			return nil, fmt.Errorf("recent: scan rows: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent: row iteration: %w", err)
	}
	return out, nil
}
