// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/domain/repository"
	"github.com/bnema/bridgehost/internal/logging"
)

// GrantMediaRequestUseCase decides in-page media requests raised by the web surface.
// With the default policy every requested resource is granted, whatever the origin.
// The grant itself always runs on the UI thread.
type GrantMediaRequestUseCase struct {
	ui       port.UIThread
	grantLog repository.GrantRepository

	policyMu sync.RWMutex
	policy   entity.GrantPolicy

	now func() time.Time
}

// NewGrantMediaRequestUseCase creates the use case. grantLog may be nil.
func NewGrantMediaRequestUseCase(
	ui port.UIThread,
	grantLog repository.GrantRepository,
	policy entity.GrantPolicy,
) *GrantMediaRequestUseCase {
	return &GrantMediaRequestUseCase{
		ui:       ui,
		grantLog: grantLog,
		policy:   policy,
		now:      time.Now,
	}
}

// SetPolicy swaps the grant policy. Used on config reload.
func (uc *GrantMediaRequestUseCase) SetPolicy(policy entity.GrantPolicy) {
	uc.policyMu.Lock()
	defer uc.policyMu.Unlock()
	uc.policy = policy
}

// Policy returns the active grant policy.
func (uc *GrantMediaRequestUseCase) Policy() entity.GrantPolicy {
	uc.policyMu.RLock()
	defer uc.policyMu.RUnlock()
	return uc.policy
}

// Handle processes one in-page request. It matches port.PermissionRequestHandler
// and may be called from any goroutine.
func (uc *GrantMediaRequestUseCase) Handle(ctx context.Context, request port.MediaPermissionRequest) {
	origin := request.Origin()
	requested := request.Resources()
	policy := uc.Policy()

	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("origin", origin).
		Strs("resources", entity.MediaResourcesToStrings(requested)).
		Str("policy", string(policy.Mode)).
		Logger()

	granted := policy.Evaluate(origin, requested)
	decision := entity.DecisionFor(requested, granted)
	if len(requested) == 0 {
		// Nothing named; granting the empty set still answers the request.
		decision = entity.GrantAllowed
	}

	uc.ui.RunOnUIThread(func() {
		if decision == entity.GrantRefused {
			request.Deny()
			return
		}
		request.Grant(granted)
	})

	log.Debug().
		Strs("granted", entity.MediaResourcesToStrings(granted)).
		Str("decision", string(decision)).
		Msg("in-page media request answered")

	recordOrigin := origin
	if normalized, err := entity.NormalizeOrigin(origin); err == nil {
		recordOrigin = normalized
	}
	uc.record(ctx, &entity.GrantRecord{
		Origin:     recordOrigin,
		Requested:  requested,
		Granted:    granted,
		Decision:   decision,
		PolicyMode: policy.Mode,
		CreatedAt:  uc.now(),
	})
}

func (uc *GrantMediaRequestUseCase) record(ctx context.Context, record *entity.GrantRecord) {
	if uc.grantLog == nil {
		return
	}
	if err := uc.grantLog.Record(ctx, record); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("origin", record.Origin).
			Msg("failed to record media grant")
	}
}
