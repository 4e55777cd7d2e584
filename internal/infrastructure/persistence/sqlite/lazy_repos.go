package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/domain/repository"
)

// LazyGrantRepository opens the database on the first recorded grant.
type LazyGrantRepository struct {
	provider port.DatabaseProvider
	repo     repository.GrantRepository
	once     sync.Once
	initErr  error
}

// NewLazyGrantRepository creates a lazy-loading grant log.
func NewLazyGrantRepository(provider port.DatabaseProvider) repository.GrantRepository {
	return &LazyGrantRepository{provider: provider}
}

func (r *LazyGrantRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewGrantRepository(db)
	})
	return r.initErr
}

func (r *LazyGrantRepository) Record(ctx context.Context, record *entity.GrantRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, record)
}

func (r *LazyGrantRepository) List(ctx context.Context, filter repository.GrantFilter) ([]*entity.GrantRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx, filter)
}

func (r *LazyGrantRepository) Purge(ctx context.Context, origin string) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.Purge(ctx, origin)
}

// LazyOSPermissionResultRepository opens the database on the first saved result.
type LazyOSPermissionResultRepository struct {
	provider port.DatabaseProvider
	repo     repository.OSPermissionResultRepository
	once     sync.Once
	initErr  error
}

// NewLazyOSPermissionResultRepository creates a lazy-loading OS result log.
func NewLazyOSPermissionResultRepository(provider port.DatabaseProvider) repository.OSPermissionResultRepository {
	return &LazyOSPermissionResultRepository{provider: provider}
}

func (r *LazyOSPermissionResultRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewOSPermissionResultRepository(db)
	})
	return r.initErr
}

func (r *LazyOSPermissionResultRepository) Save(ctx context.Context, result entity.OSPermissionResult) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, result)
}

func (r *LazyOSPermissionResultRepository) Latest(ctx context.Context) (*entity.OSPermissionResult, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Latest(ctx)
}

// LazyRepositories holds the lazy-loaded repositories sharing one provider.
type LazyRepositories struct {
	Grants    repository.GrantRepository
	OSResults repository.OSPermissionResultRepository
}

// NewLazyRepositories creates all lazy repositories from a database provider.
func NewLazyRepositories(provider port.DatabaseProvider) *LazyRepositories {
	return &LazyRepositories{
		Grants:    NewLazyGrantRepository(provider),
		OSResults: NewLazyOSPermissionResultRepository(provider),
	}
}
