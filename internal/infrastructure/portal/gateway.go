// Package portal implements OS runtime permissions over the XDG Desktop Portal.
package portal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/domain/entity"
	"github.com/bnema/bridgehost/internal/logging"
)

const (
	portalDest   = "org.freedesktop.portal.Desktop"
	portalPath   = "/org/freedesktop/portal/desktop"
	deviceIface  = "org.freedesktop.portal.Device"
	requestIface = "org.freedesktop.portal.Request"

	storeDest  = "org.freedesktop.impl.portal.PermissionStore"
	storePath  = "/org/freedesktop/impl/portal/PermissionStore"
	storeIface = "org.freedesktop.impl.portal.PermissionStore"
	storeTable = "devices"

	errNotFound = "org.freedesktop.portal.Error.NotFound"

	// Response codes of org.freedesktop.portal.Request.Response.
	responseSuccess   = 0
	responseCancelled = 1
)

// Compile-time interface check.
var _ port.OSPermissionGateway = (*Gateway)(nil)

type pendingRequest struct {
	code         int
	capabilities []entity.Capability
}

// Gateway queries the portal permission store and requests device access.
// A Gateway without a bus connection reports ErrGatewayUnavailable.
type Gateway struct {
	appID string
	log   zerolog.Logger

	mu          sync.Mutex
	conn        *dbus.Conn
	pending     map[dbus.ObjectPath]pendingRequest
	subscribers map[uint64]func(entity.OSPermissionResult)
	nextSubID   uint64
	tokenSeq    atomic.Uint64

	signals   chan *dbus.Signal
	stop      chan struct{}
	closeOnce sync.Once
	now       func() time.Time
}

// New connects to the session bus. Returns a degraded gateway if D-Bus is unavailable.
// appID is the key used in the permission store ("" for unsandboxed apps).
func New(ctx context.Context, appID string) *Gateway {
	log := logging.FromContext(ctx).With().Str("component", "portal").Logger()
	g := newGateway(appID, log)

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("cannot connect to D-Bus session bus")
		return g
	}

	matchRule := fmt.Sprintf("type='signal',interface='%s',member='Response'", requestIface)
	if err := conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		log.Debug().Err(err).Msg("failed to add portal response match")
		_ = conn.Close()
		return g
	}

	g.mu.Lock()
	g.conn = conn
	g.mu.Unlock()
	conn.Signal(g.signals)
	go g.watch()

	log.Debug().Str("app_id", appID).Msg("portal permission gateway ready")
	return g
}

func newGateway(appID string, log zerolog.Logger) *Gateway {
	return &Gateway{
		appID:       appID,
		log:         log,
		pending:     make(map[dbus.ObjectPath]pendingRequest),
		subscribers: make(map[uint64]func(entity.OSPermissionResult)),
		signals:     make(chan *dbus.Signal, 8),
		stop:        make(chan struct{}),
		now:         time.Now,
	}
}

// Available reports whether the gateway is connected to the session bus.
func (g *Gateway) Available() bool {
	return g.bus() != nil
}

// bus returns the connection, or nil once closed.
func (g *Gateway) bus() *dbus.Conn {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn
}

// Status looks the capability up in the portal permission store.
// A missing table or entry means the user was never asked.
func (g *Gateway) Status(ctx context.Context, capability entity.Capability) (entity.OSPermissionStatus, error) {
	conn := g.bus()
	if conn == nil {
		return entity.OSPermissionUnknown, port.ErrGatewayUnavailable
	}

	var (
		permissions map[string][]string
		data        dbus.Variant
	)
	obj := conn.Object(storeDest, storePath)
	err := obj.CallWithContext(ctx, storeIface+".Lookup", 0, storeTable, string(capability)).
		Store(&permissions, &data)
	if err != nil {
		if isNotFound(err) {
			return entity.OSPermissionNotDetermined, nil
		}
		return entity.OSPermissionUnknown, fmt.Errorf("permission store lookup %s: %w", capability, err)
	}

	return statusFromStore(permissions, g.appID), nil
}

// Request asks the Device portal for every capability in one call.
// The user's answer is delivered to OnResult subscribers.
func (g *Gateway) Request(ctx context.Context, capabilities []entity.Capability, requestCode int) error {
	conn := g.bus()
	if conn == nil {
		return port.ErrGatewayUnavailable
	}
	if len(capabilities) == 0 {
		return errors.New("no capabilities to request")
	}

	devices := make([]string, len(capabilities))
	for i, c := range capabilities {
		devices[i] = string(c)
	}

	token := fmt.Sprintf("bridgehost%d", g.tokenSeq.Add(1))
	names := conn.Names()
	if len(names) == 0 {
		return errors.New("session bus connection has no unique name")
	}
	expected := requestHandlePath(names[0], token)

	// Register before calling so a fast Response is not lost.
	g.mu.Lock()
	g.pending[expected] = pendingRequest{code: requestCode, capabilities: capabilities}
	g.mu.Unlock()

	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
	}

	var handle dbus.ObjectPath
	obj := conn.Object(portalDest, portalPath)
	err := obj.CallWithContext(ctx, deviceIface+".AccessDevice", 0,
		uint32(os.Getpid()),
		devices,
		options,
	).Store(&handle)
	if err != nil {
		g.mu.Lock()
		delete(g.pending, expected)
		g.mu.Unlock()
		return fmt.Errorf("portal access device: %w", err)
	}

	if handle != expected {
		// Older portals ignore handle_token.
		g.mu.Lock()
		if req, ok := g.pending[expected]; ok {
			delete(g.pending, expected)
			g.pending[handle] = req
		}
		g.mu.Unlock()
	}

	g.log.Debug().
		Str("handle", string(handle)).
		Strs("devices", devices).
		Int("request_code", requestCode).
		Msg("device access requested")
	return nil
}

// OnResult subscribes to request results.
func (g *Gateway) OnResult(handler func(entity.OSPermissionResult)) func() {
	g.mu.Lock()
	id := g.nextSubID
	g.nextSubID++
	g.subscribers[id] = handler
	g.mu.Unlock()

	return func() {
		g.mu.Lock()
		delete(g.subscribers, id)
		g.mu.Unlock()
	}
}

func (g *Gateway) watch() {
	for {
		select {
		case sig, ok := <-g.signals:
			if !ok || sig == nil {
				return
			}
			g.handleSignal(sig)
		case <-g.stop:
			return
		}
	}
}

// handleSignal resolves a pending request from a Response signal.
func (g *Gateway) handleSignal(sig *dbus.Signal) {
	if sig.Name != requestIface+".Response" || len(sig.Body) == 0 {
		return
	}
	response, ok := sig.Body[0].(uint32)
	if !ok {
		return
	}

	g.mu.Lock()
	req, found := g.pending[sig.Path]
	if found {
		delete(g.pending, sig.Path)
	}
	subscribers := make([]func(entity.OSPermissionResult), 0, len(g.subscribers))
	for _, s := range g.subscribers {
		subscribers = append(subscribers, s)
	}
	g.mu.Unlock()

	if !found {
		return
	}

	result := resultFromResponse(req, response, g.now())
	g.log.Debug().
		Str("handle", string(sig.Path)).
		Uint32("response", response).
		Msg("device access answered")

	for _, s := range subscribers {
		s(result)
	}
}

// Close releases the bus connection and stops the watcher.
func (g *Gateway) Close() error {
	var err error
	g.closeOnce.Do(func() {
		close(g.stop)
		g.mu.Lock()
		conn := g.conn
		g.conn = nil
		g.mu.Unlock()
		if conn != nil {
			conn.RemoveSignal(g.signals)
			err = conn.Close()
		}
	})
	return err
}

func isNotFound(err error) bool {
	var byValue dbus.Error
	if errors.As(err, &byValue) {
		return byValue.Name == errNotFound
	}
	var byPointer *dbus.Error
	if errors.As(err, &byPointer) {
		return byPointer.Name == errNotFound
	}
	return false
}

func statusFromStore(permissions map[string][]string, appID string) entity.OSPermissionStatus {
	values, ok := permissions[appID]
	if !ok || len(values) == 0 {
		return entity.OSPermissionNotDetermined
	}
	switch values[0] {
	case "yes":
		return entity.OSPermissionGranted
	case "no":
		return entity.OSPermissionDenied
	case "ask":
		return entity.OSPermissionNotDetermined
	default:
		return entity.OSPermissionUnknown
	}
}

// requestHandlePath builds the object path the portal will use for a request,
// per the org.freedesktop.portal.Request contract.
func requestHandlePath(uniqueName, token string) dbus.ObjectPath {
	sender := strings.TrimPrefix(uniqueName, ":")
	sender = strings.ReplaceAll(sender, ".", "_")
	return dbus.ObjectPath(portalPath + "/request/" + sender + "/" + token)
}

func resultFromResponse(req pendingRequest, response uint32, at time.Time) entity.OSPermissionResult {
	status := entity.OSPermissionUnknown
	switch response {
	case responseSuccess:
		status = entity.OSPermissionGranted
	case responseCancelled:
		status = entity.OSPermissionDenied
	}

	statuses := make(map[entity.Capability]entity.OSPermissionStatus, len(req.capabilities))
	for _, c := range req.capabilities {
		statuses[c] = status
	}
	return entity.OSPermissionResult{
		RequestCode: req.code,
		Statuses:    statuses,
		ReceivedAt:  at,
	}
}
