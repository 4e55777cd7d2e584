package port

import (
	"context"
	"errors"

	"github.com/bnema/bridgehost/internal/domain/entity"
)

// ErrGatewayUnavailable is returned when the OS permission backend cannot be reached.
var ErrGatewayUnavailable = errors.New("os permission gateway unavailable")

// OSPermissionGateway is the OS runtime permission API.
// Status queries are synchronous. Request returns as soon as the OS accepted the
// request; the user's answer arrives later through the OnResult subscribers.
type OSPermissionGateway interface {
	// Status returns the current OS grant state for a capability.
	Status(ctx context.Context, capability entity.Capability) (entity.OSPermissionStatus, error)

	// Request asks the OS to show its permission dialog for all capabilities at once.
	// requestCode is echoed back in the matching OSPermissionResult.
	Request(ctx context.Context, capabilities []entity.Capability, requestCode int) error

	// OnResult subscribes to request results. Returns an unsubscribe function.
	OnResult(handler func(entity.OSPermissionResult)) (unsubscribe func())
}

// MediaPermissionRequest is an in-page request for media capture, raised by the web surface.
// Exactly one of Grant or Deny must be called, on the UI thread.
type MediaPermissionRequest interface {
	// Origin is the URI of the page that made the request.
	Origin() string

	// Resources lists what the page asked for.
	Resources() []entity.MediaResource

	// Grant allows the given resources.
	Grant(resources []entity.MediaResource)

	// Deny refuses the request.
	Deny()
}

// PermissionRequestHandler receives in-page media requests.
// It may be invoked from any goroutine.
type PermissionRequestHandler func(ctx context.Context, request MediaPermissionRequest)
