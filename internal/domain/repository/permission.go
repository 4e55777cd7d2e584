package repository

import (
	"context"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// GrantFilter narrows grant log queries. Zero values mean "no filter".
type GrantFilter struct {
	Origin string
	Limit  int
}

// GrantRepository stores the log of in-page media permission decisions.
type GrantRepository interface {
	// Record appends a decision to the log and sets its ID.
	Record(ctx context.Context, record *entity.GrantRecord) error

	// List returns decisions, newest first.
	List(ctx context.Context, filter GrantFilter) ([]*entity.GrantRecord, error)

	// Purge deletes decisions for an origin, or every decision when origin is empty.
	// Returns the number of rows removed.
	Purge(ctx context.Context, origin string) (int64, error)
}

// OSPermissionResultRepository stores answers to OS runtime permission requests.
type OSPermissionResultRepository interface {
	// Save stores one result, one row per capability.
	Save(ctx context.Context, result entity.OSPermissionResult) error

	// Latest returns the most recent result, or nil if none was recorded.
	Latest(ctx context.Context) (*entity.OSPermissionResult, error)
}
