package usecase

import (
	"context"

	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/domain/repository"
	"github.com/bnema/bridgehost/internal/logging"
)

// RecordOSPermissionResultUseCase stores the OS answer to the batched request.
// It only observes: in-page grants are not affected by the outcome.
type RecordOSPermissionResultUseCase struct {
	results repository.OSPermissionResultRepository
}

// NewRecordOSPermissionResultUseCase creates the use case. results may be nil.
func NewRecordOSPermissionResultUseCase(results repository.OSPermissionResultRepository) *RecordOSPermissionResultUseCase {
	return &RecordOSPermissionResultUseCase{results: results}
}

// Execute logs the result and persists it.
func (uc *RecordOSPermissionResultUseCase) Execute(ctx context.Context, result entity.OSPermissionResult) {
	log := logging.FromContext(ctx).With().
		Str("component", "os-permissions").
		Int("request_code", result.RequestCode).
		Logger()

	if result.RequestCode != entity.MediaPermissionsRequestCode {
		log.Debug().Msg("ignoring result for foreign request code")
		return
	}

	if denied := result.Denied(); len(denied) > 0 {
		names := make([]string, len(denied))
		for i, c := range denied {
			names[i] = string(c)
		}
		log.Warn().Strs("denied", names).Msg("os denied media permissions; in-page capture will fail")
	} else {
		log.Info().Msg("os granted media permissions")
	}

	if uc.results == nil {
		return
	}
	if err := uc.results.Save(ctx, result); err != nil {
		log.Warn().Err(err).Msg("failed to record os permission result")
	}
}
