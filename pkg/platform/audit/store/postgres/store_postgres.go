// Package postgres persists audit events for querying. Pairs with the Kafka
// sink through a TeeStore: Kafka gets the stream, postgres answers reads.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	audit "apptrust/pkg/platform/audit"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Schema returns the DDL for the audit table. Applied at startup.
func Schema() string {
	return `
CREATE TABLE IF NOT EXISTS audit_events (
	event_id   TEXT PRIMARY KEY,
	category   TEXT NOT NULL,
	ts         TIMESTAMPTZ NOT NULL,
	package    TEXT NOT NULL,
	action     TEXT NOT NULL,
	verdict    TEXT NOT NULL DEFAULT '',
	reason     TEXT NOT NULL DEFAULT '',
	request_id TEXT NOT NULL DEFAULT '',
	actor      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS audit_events_package_idx ON audit_events (package, ts);
`
}

// Append inserts one audit event. Duplicate event IDs are ignored so replays
// stay idempotent.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	query := `
		INSERT INTO audit_events (event_id, category, ts, package, action, verdict, reason, request_id, actor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (event_id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		event.EventID,
		string(event.Category),
		event.Timestamp,
		event.Package,
		event.Action,
		event.Verdict,
		event.Reason,
		event.RequestID,
		event.Actor,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("insert audit event: %s: %w", pqErr.Code.Name(), err)
		}
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByPackage returns the recorded events for a package, oldest first.
func (s *Store) ListByPackage(ctx context.Context, pkg string) ([]audit.Event, error) {
	query := `
		SELECT event_id, category, ts, package, action, verdict, reason, request_id, actor
		FROM audit_events
		WHERE package = $1
		ORDER BY ts
	`
	rows, err := s.db.QueryContext(ctx, query, pkg)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var e audit.Event
		var category string
		if err := rows.Scan(&e.EventID, &category, &e.Timestamp, &e.Package,
			&e.Action, &e.Verdict, &e.Reason, &e.RequestID, &e.Actor); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Category = audit.EventCategory(category)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Health verifies database connectivity.
func (s *Store) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
