package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/domain/repository"
)

type osResultRepo struct {
	db *sql.DB
}

// NewOSPermissionResultRepository creates a new SQLite-backed OS result log.
func NewOSPermissionResultRepository(db *sql.DB) repository.OSPermissionResultRepository {
	return &osResultRepo{db: db}
}

func (r *osResultRepo) Save(ctx context.Context, result entity.OSPermissionResult) error {
	receivedAt := result.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO os_permission_results (request_code, capability, status, received_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for capability, status := range result.Statuses {
		if _, err := stmt.ExecContext(ctx, result.RequestCode, string(capability), string(status), receivedAt.UnixNano()); err != nil {
			return fmt.Errorf("insert %s result: %w", capability, err)
		}
	}
	return tx.Commit()
}

func (r *osResultRepo) Latest(ctx context.Context) (*entity.OSPermissionResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT request_code, capability, status, received_at
		FROM os_permission_results
		WHERE received_at = (SELECT MAX(received_at) FROM os_permission_results)
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var result *entity.OSPermissionResult
	for rows.Next() {
		var (
			code               int
			capability, status string
			receivedAt         int64
		)
		if err := rows.Scan(&code, &capability, &status, &receivedAt); err != nil {
			return nil, err
		}
		if result == nil {
			result = &entity.OSPermissionResult{
				RequestCode: code,
				Statuses:    make(map[entity.Capability]entity.OSPermissionStatus),
				ReceivedAt:  time.Unix(0, receivedAt),
			}
		}
		result.Statuses[entity.Capability(capability)] = entity.OSPermissionStatus(status)
	}
	return result, rows.Err()
}
