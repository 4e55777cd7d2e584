package webkit

import (
	"sync"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/domain/entity"
)

// mediaRequest adapts one engine permission request to port.MediaPermissionRequest.
// WebKit answers a request as a whole, so a grant covering fewer resources than
// requested is turned into a deny.
type mediaRequest struct {
	origin    string
	resources []entity.MediaResource
	allow     func()
	deny      func()
	once      sync.Once
}

var _ port.MediaPermissionRequest = (*mediaRequest)(nil)

func newMediaRequest(origin string, resources []entity.MediaResource, allow, deny func()) *mediaRequest {
	return &mediaRequest{origin: origin, resources: resources, allow: allow, deny: deny}
}

func (r *mediaRequest) Origin() string { return r.origin }

func (r *mediaRequest) Resources() []entity.MediaResource {
	out := make([]entity.MediaResource, len(r.resources))
	copy(out, r.resources)
	return out
}

func (r *mediaRequest) Grant(resources []entity.MediaResource) {
	r.once.Do(func() {
		if coversAll(resources, r.resources) {
			r.allow()
			return
		}
		r.deny()
	})
}

func (r *mediaRequest) Deny() {
	r.once.Do(r.deny)
}

func coversAll(granted, requested []entity.MediaResource) bool {
	set := make(map[entity.MediaResource]struct{}, len(granted))
	for _, g := range granted {
		set[g] = struct{}{}
	}
	for _, r := range requested {
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}

// handlerSlot holds the installed permission handler. Nil means deny.
type handlerSlot struct {
	mu      sync.RWMutex
	handler port.PermissionRequestHandler
}

func (s *handlerSlot) set(handler port.PermissionRequestHandler) {
	s.mu.Lock()
	s.handler = handler
	s.mu.Unlock()
}

func (s *handlerSlot) get() port.PermissionRequestHandler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handler
}
