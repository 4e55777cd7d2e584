// Package idle inhibits session idle and suspend through the XDG Desktop Portal
// while the host page is capturing.
package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/bnema/bridgehost/internal/application/port"
	"github.com/bnema/bridgehost/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags from the portal documentation.
	flagSuspend = 4
	flagIdle    = 8
)

var _ port.IdleInhibitor = (*PortalInhibitor)(nil)

// inhibitBus is the D-Bus surface the inhibitor needs.
type inhibitBus interface {
	// inhibit calls Inhibit and returns the request handle.
	inhibit(reason string, flags uint32) (dbus.ObjectPath, error)
	// closeRequest calls Request.Close on handle.
	closeRequest(handle dbus.ObjectPath)
	// watchResponse calls done once the portal answers handle. Returns a stop func.
	watchResponse(handle dbus.ObjectPath, done func()) func()
	close() error
}

// PortalInhibitor implements port.IdleInhibitor over org.freedesktop.portal.Inhibit.
// Works on Wayland with any compositor that ships a portal backend.
type PortalInhibitor struct {
	mu sync.Mutex

	bus       inhibitBus
	handle    dbus.ObjectPath
	refcount  int
	completed bool // portal already sent Response; the Request object is gone
	stopWatch func()
}

// NewPortalInhibitor connects to the session bus. Without a bus or portal the
// inhibitor still works as a refcounter and never inhibits anything.
func NewPortalInhibitor(ctx context.Context) *PortalInhibitor {
	log := logging.FromContext(ctx).With().Str("component", "idle").Logger()

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("cannot connect to D-Bus session bus")
		return &PortalInhibitor{}
	}

	var version uint32
	err = conn.Object(portalDest, portalPath).
		Call("org.freedesktop.DBus.Properties.Get", 0, portalInterface, "version").
		Store(&version)
	if err != nil {
		log.Debug().Err(err).Msg("inhibit portal not available")
		_ = conn.Close()
		return &PortalInhibitor{}
	}

	log.Debug().Uint32("version", version).Msg("inhibit portal available")
	return &PortalInhibitor{bus: &dbusInhibitBus{conn: conn}}
}

func newWithBus(bus inhibitBus) *PortalInhibitor {
	return &PortalInhibitor{bus: bus}
}

// Supported reports whether the portal was reachable.
func (p *PortalInhibitor) Supported() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bus != nil
}

// Inhibit increments the refcount. The first call asks the portal.
func (p *PortalInhibitor) Inhibit(ctx context.Context, reason string) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.refcount++
	if p.refcount > 1 || p.bus == nil {
		log.Debug().Int("refcount", p.refcount).Bool("supported", p.bus != nil).Msg("idle inhibit")
		return nil
	}

	handle, err := p.bus.inhibit(reason, flagIdle|flagSuspend)
	if err != nil {
		p.refcount--
		return fmt.Errorf("portal inhibit: %w", err)
	}
	p.handle = handle
	p.completed = false

	// Some portals (GNOME) answer at once, which removes the Request object.
	p.stopWatch = p.bus.watchResponse(handle, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.handle == handle {
			p.completed = true
		}
	})

	log.Info().Str("handle", string(handle)).Str("reason", reason).Msg("idle inhibited")
	return nil
}

// Uninhibit decrements the refcount and releases the portal request at zero.
func (p *PortalInhibitor) Uninhibit(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.refcount <= 0 {
		return nil
	}
	p.refcount--
	if p.refcount > 0 {
		return nil
	}

	if p.handle != "" {
		p.releaseLocked()
		logging.FromContext(ctx).Info().Msg("idle inhibition released")
	}
	return nil
}

// releaseLocked closes the active request unless the portal already did.
func (p *PortalInhibitor) releaseLocked() {
	if p.stopWatch != nil {
		p.stopWatch()
		p.stopWatch = nil
	}
	if p.bus != nil && p.handle != "" && !p.completed {
		p.bus.closeRequest(p.handle)
	}
	p.handle = ""
	p.completed = false
}

// IsInhibited returns true while the refcount is positive.
func (p *PortalInhibitor) IsInhibited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refcount > 0
}

// Close releases any active inhibition and the bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.releaseLocked()
	p.refcount = 0

	if p.bus == nil {
		return nil
	}
	err := p.bus.close()
	p.bus = nil
	return err
}

type dbusInhibitBus struct {
	conn *dbus.Conn
}

func (b *dbusInhibitBus) inhibit(reason string, flags uint32) (dbus.ObjectPath, error) {
	options := map[string]dbus.Variant{"reason": dbus.MakeVariant(reason)}

	// Inhibit(window: s, flags: u, options: a{sv}) -> handle: o
	var handle dbus.ObjectPath
	err := b.conn.Object(portalDest, portalPath).
		Call(portalInterface+".Inhibit", 0, "", flags, options).
		Store(&handle)
	return handle, err
}

func (b *dbusInhibitBus) closeRequest(handle dbus.ObjectPath) {
	_ = b.conn.Object(portalDest, handle).Call(requestIface+".Close", 0).Err
}

func (b *dbusInhibitBus) watchResponse(handle dbus.ObjectPath, done func()) func() {
	opts := []dbus.MatchOption{
		dbus.WithMatchObjectPath(handle),
		dbus.WithMatchInterface(requestIface),
		dbus.WithMatchMember("Response"),
	}
	if err := b.conn.AddMatchSignal(opts...); err != nil {
		return func() {}
	}

	signals := make(chan *dbus.Signal, 1)
	b.conn.Signal(signals)
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case sig, ok := <-signals:
				if !ok {
					return
				}
				if sig.Path == handle && sig.Name == requestIface+".Response" {
					done()
					return
				}
			case <-stop:
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			close(stop)
			b.conn.RemoveSignal(signals)
			_ = b.conn.RemoveMatchSignal(opts...)
		})
	}
}

func (b *dbusInhibitBus) close() error {
	return b.conn.Close()
}
