package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/domain/repository"
)

// DefaultGrantListLimit caps grant listings when no limit is given.
const DefaultGrantListLimit = 200

// ListGrantsUseCase reads and purges the grant log.
type ListGrantsUseCase struct {
	grants repository.GrantRepository
}

// NewListGrantsUseCase creates the use case.
func NewListGrantsUseCase(grants repository.GrantRepository) *ListGrantsUseCase {
	return &ListGrantsUseCase{grants: grants}
}

// List returns grants for origin (all when empty), newest first.
func (uc *ListGrantsUseCase) List(ctx context.Context, origin string, limit int) ([]*entity.GrantRecord, error) {
	if limit <= 0 {
		limit = DefaultGrantListLimit
	}
	filter := repository.GrantFilter{Limit: limit}
	if origin != "" {
		normalized, err := entity.NormalizeOrigin(origin)
		if err != nil {
			return nil, err
		}
		filter.Origin = normalized
	}

	records, err := uc.grants.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	return records, nil
}

// Purge deletes grants for origin, or all grants when origin is empty.
func (uc *ListGrantsUseCase) Purge(ctx context.Context, origin string) (int64, error) {
	if origin != "" {
		normalized, err := entity.NormalizeOrigin(origin)
		if err != nil {
			return 0, err
		}
		origin = normalized
	}

	n, err := uc.grants.Purge(ctx, origin)
	if err != nil {
		return 0, fmt.Errorf("purge grants: %w", err)
	}
	return n, nil
}
