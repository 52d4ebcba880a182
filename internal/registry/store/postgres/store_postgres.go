package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"apptrust/internal/registry/models"
	"apptrust/pkg/platform/sentinel"
)

// Store persists the package index in PostgreSQL.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Schema returns the DDL for the package index. Applied by migrations in
// deployment; integration tests execute it directly.
func Schema() string {
	return `
		CREATE TABLE IF NOT EXISTS packages (
			package_name        TEXT PRIMARY KEY,
			signatures          TEXT[] NOT NULL DEFAULT '{}',
			past_signatures     TEXT[] NOT NULL DEFAULT '{}',
			privileged          BOOLEAN NOT NULL DEFAULT FALSE,
			shared_user_id      TEXT NOT NULL DEFAULT '',
			granted_permissions TEXT[] NOT NULL DEFAULT '{}',
			installed_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
}

func (s *Store) Get(ctx context.Context, packageName string) (*models.PackageRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT package_name, signatures, past_signatures, privileged,
		       shared_user_id, granted_permissions, installed_at
		FROM packages
		WHERE package_name = $1
	`, packageName)

	var record models.PackageRecord
	err := row.Scan(
		&record.PackageName,
		pq.Array(&record.Signatures),
		pq.Array(&record.PastSignatures),
		&record.Privileged,
		&record.SharedUserID,
		pq.Array(&record.GrantedPermissions),
		&record.InstalledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get package %s: %w", packageName, err)
	}
	return &record, nil
}

func (s *Store) Put(ctx context.Context, record models.PackageRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO packages (package_name, signatures, past_signatures, privileged,
		                      shared_user_id, granted_permissions, installed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (package_name) DO UPDATE SET
			signatures          = EXCLUDED.signatures,
			past_signatures     = EXCLUDED.past_signatures,
			privileged          = EXCLUDED.privileged,
			shared_user_id      = EXCLUDED.shared_user_id,
			granted_permissions = EXCLUDED.granted_permissions,
			installed_at        = EXCLUDED.installed_at
	`,
		record.PackageName,
		pq.Array(record.Signatures),
		pq.Array(record.PastSignatures),
		record.Privileged,
		record.SharedUserID,
		pq.Array(record.GrantedPermissions),
		record.InstalledAt,
	)
	if err != nil {
		return fmt.Errorf("put package %s: %w", record.PackageName, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, packageName string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM packages WHERE package_name = $1`, packageName)
	if err != nil {
		return fmt.Errorf("delete package %s: %w", packageName, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete package %s: %w", packageName, err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]models.PackageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT package_name, signatures, past_signatures, privileged,
		       shared_user_id, granted_permissions, installed_at
		FROM packages
		ORDER BY package_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var records []models.PackageRecord
	for rows.Next() {
		var record models.PackageRecord
		if err := rows.Scan(
			&record.PackageName,
			pq.Array(&record.Signatures),
			pq.Array(&record.PastSignatures),
			&record.Privileged,
			&record.SharedUserID,
			pq.Array(&record.GrantedPermissions),
			&record.InstalledAt,
		); err != nil {
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}
	return records, nil
}

func (s *Store) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
