package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/logging"
)

// ErrPermissionRequestTimeout is returned when the OS answer does not arrive in time.
var ErrPermissionRequestTimeout = errors.New("timed out waiting for os permission result")

// EnsureOSPermissionsOutput reports what the check found.
type EnsureOSPermissionsOutput struct {
	// Missing lists capabilities that were not granted, in check order.
	Missing []entity.Capability
	// Requested is true when the combined OS request was issued.
	Requested bool
}

// CapabilityStatus is one row of a status check.
type CapabilityStatus struct {
	Capability entity.Capability
	Status     entity.OSPermissionStatus
	Err        error
}

// EnsureOSPermissionsUseCase checks camera and microphone and, if either is missing,
// asks the OS for both in a single request.
type EnsureOSPermissionsUseCase struct {
	gateway port.OSPermissionGateway
}

// NewEnsureOSPermissionsUseCase creates the use case.
func NewEnsureOSPermissionsUseCase(gateway port.OSPermissionGateway) *EnsureOSPermissionsUseCase {
	return &EnsureOSPermissionsUseCase{gateway: gateway}
}

// Check queries the OS status of every media capability without requesting anything.
// A failed query is reported with OSPermissionUnknown and its error.
func (uc *EnsureOSPermissionsUseCase) Check(ctx context.Context) []CapabilityStatus {
	log := logging.FromContext(ctx).With().Str("component", "os-permissions").Logger()

	capabilities := entity.MediaCapabilities()
	statuses := make([]CapabilityStatus, 0, len(capabilities))
	for _, capability := range capabilities {
		status, err := uc.gateway.Status(ctx, capability)
		if err != nil {
			log.Warn().Err(err).Str("capability", string(capability)).Msg("status query failed, treating as not granted")
			status = entity.OSPermissionUnknown
		} else {
			log.Debug().Str("capability", string(capability)).Str("status", string(status)).Msg("os permission status")
		}
		statuses = append(statuses, CapabilityStatus{Capability: capability, Status: status, Err: err})
	}
	return statuses
}

// Execute runs the check. A status error counts as not granted.
// The request's outcome is not awaited.
func (uc *EnsureOSPermissionsUseCase) Execute(ctx context.Context) (*EnsureOSPermissionsOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "os-permissions").Logger()
	out := &EnsureOSPermissionsOutput{}

	for _, s := range uc.Check(ctx) {
		if !s.Status.IsGranted() {
			out.Missing = append(out.Missing, s.Capability)
		}
	}

	if len(out.Missing) == 0 {
		log.Debug().Msg("camera and microphone already granted")
		return out, nil
	}

	if err := uc.gateway.Request(ctx, entity.MediaCapabilities(), entity.MediaPermissionsRequestCode); err != nil {
		return out, fmt.Errorf("request os permissions: %w", err)
	}
	out.Requested = true

	log.Info().
		Int("request_code", entity.MediaPermissionsRequestCode).
		Int("missing", len(out.Missing)).
		Msg("requested camera and microphone permissions")
	return out, nil
}

// ExecuteAndWait runs Execute and, when a request was issued, blocks until the
// matching result arrives, ctx is done, or timeout elapses.
// The result is nil when no request was needed.
func (uc *EnsureOSPermissionsUseCase) ExecuteAndWait(
	ctx context.Context,
	timeout time.Duration,
) (*EnsureOSPermissionsOutput, *entity.OSPermissionResult, error) {
	// Subscribe first: the portal may answer before Request returns.
	results := make(chan entity.OSPermissionResult, 1)
	unsubscribe := uc.gateway.OnResult(func(r entity.OSPermissionResult) {
		if r.RequestCode != entity.MediaPermissionsRequestCode {
			return
		}
		select {
		case results <- r:
		default:
		}
	})
	defer unsubscribe()

	out, err := uc.Execute(ctx)
	if err != nil || !out.Requested {
		return out, nil, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-results:
		return out, &r, nil
	case <-timer.C:
		return out, nil, ErrPermissionRequestTimeout
	case <-ctx.Done():
		return out, nil, ctx.Err()
	}
}
