package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/domain/repository"
	"github.com/bnema/bridgehost/internal/logging"
)

const resourceSeparator = ","

type grantRepo struct {
	db *sql.DB
}

// NewGrantRepository creates a new SQLite-backed grant log.
func NewGrantRepository(db *sql.DB) repository.GrantRepository {
	return &grantRepo{db: db}
}

func (r *grantRepo) Record(ctx context.Context, record *entity.GrantRecord) error {
	if record == nil {
		return errors.New("cannot record nil grant")
	}
	log := logging.FromContext(ctx)
	log.Debug().
		Str("origin", record.Origin).
		Str("decision", string(record.Decision)).
		Msg("recording grant")

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO media_grants (origin, requested, granted, decision, policy_mode, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.Origin,
		joinResources(record.Requested),
		joinResources(record.Granted),
		string(record.Decision),
		string(record.PolicyMode),
		createdAt.UnixMilli(),
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id
	record.CreatedAt = time.UnixMilli(createdAt.UnixMilli())
	return nil
}

func (r *grantRepo) List(ctx context.Context, filter repository.GrantFilter) ([]*entity.GrantRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	query := `SELECT id, origin, requested, granted, decision, policy_mode, created_at FROM media_grants`
	args := []any{}
	if filter.Origin != "" {
		query += ` WHERE origin = ?`
		args = append(args, filter.Origin)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []*entity.GrantRecord
	for rows.Next() {
		var (
			rec                entity.GrantRecord
			requested, granted string
			decision, policy   string
			createdAtMillis    int64
		)
		if err := rows.Scan(&rec.ID, &rec.Origin, &requested, &granted, &decision, &policy, &createdAtMillis); err != nil {
			return nil, err
		}
		rec.Requested = splitResources(requested)
		rec.Granted = splitResources(granted)
		rec.Decision = entity.GrantDecision(decision)
		rec.PolicyMode = entity.PolicyMode(policy)
		rec.CreatedAt = time.UnixMilli(createdAtMillis)
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *grantRepo) Purge(ctx context.Context, origin string) (int64, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Msg("purging grants")

	var (
		res sql.Result
		err error
	)
	if origin == "" {
		res, err = r.db.ExecContext(ctx, `DELETE FROM media_grants`)
	} else {
		res, err = r.db.ExecContext(ctx, `DELETE FROM media_grants WHERE origin = ?`, origin)
	}
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func joinResources(resources []entity.MediaResource) string {
	return strings.Join(entity.MediaResourcesToStrings(resources), resourceSeparator)
}

func splitResources(s string) []entity.MediaResource {
	if s == "" {
		return nil
	}
	return entity.MediaResourcesFromStrings(strings.Split(s, resourceSeparator))
}
