package cart

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/boardsandcats/storefront/internal/domain/cart"
	"github.com/boardsandcats/storefront/internal/domain/catalog"
)

// DefaultDebounceWindow is how long mutations must pause before the cart is
// pushed to the server.
const DefaultDebounceWindow = 2 * time.Second

// syncState is the one-shot reconciliation guard for the current login
// session. It moves to syncDone after the first reconciliation attempt
// (successful or not) and back to syncPending on logout.
type syncState int

const (
	syncPending syncState = iota
	syncDone
)

// Manager owns the cart for the lifetime of the process. It mirrors every
// mutation to durable local storage synchronously, reconciles the guest cart
// against the server cart once per login, and pushes changes to the server
// with a trailing-edge debounce while authenticated.
//
// Auth state is level-valued: callers report the current flag via
// SetAuthenticated and the manager detects edges itself, so repeated
// observations of the same value never duplicate side effects.
type Manager struct {
	mu      sync.Mutex
	cart    *cart.Cart
	storage cart.Storage
	remote  cart.RemoteService
	log     *zap.Logger
	window  time.Duration

	authenticated bool // last observed auth level
	state         syncState
	timer         *time.Timer
}

// Option configures a Manager.
type Option func(*Manager)

// WithDebounceWindow overrides the debounce window.
func WithDebounceWindow(d time.Duration) Option {
	return func(m *Manager) {
		m.window = d
	}
}

// NewManager creates the cart manager and hydrates it from local storage.
func NewManager(storage cart.Storage, remote cart.RemoteService, log *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		cart:    cart.New(),
		storage: storage,
		remote:  remote,
		log:     log,
		window:  DefaultDebounceWindow,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.hydrate()
	return m
}

func (m *Manager) hydrate() {
	lines, err := m.storage.LoadCart()
	if err != nil {
		m.log.Warn("Could not read local cart, starting empty", zap.Error(err))
		return
	}
	m.cart.ReplaceAll(lines)
}

// Add puts one unit of the product in the cart.
func (m *Manager) Add(p catalog.Product) {
	m.mutate(func(c *cart.Cart) { c.Add(p) })
}

// Remove drops the product from the cart.
func (m *Manager) Remove(productID int64) {
	m.mutate(func(c *cart.Cart) { c.Remove(productID) })
}

// SetQuantity sets the quantity for a product; zero or less removes it.
func (m *Manager) SetQuantity(productID int64, quantity int) {
	m.mutate(func(c *cart.Cart) { c.SetQuantity(productID, quantity) })
}

// Clear empties the cart. Used after logout is handled internally; callers
// use it after a successful checkout.
func (m *Manager) Clear() {
	m.mutate(func(c *cart.Cart) { c.Clear() })
}

// Lines returns the current cart content in display order.
func (m *Manager) Lines() []cart.Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Lines()
}

// Count returns the total unit count.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Count()
}

// Total returns the cart total at current catalog prices.
func (m *Manager) Total() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Total()
}

// IsEmpty reports whether the cart has no lines.
func (m *Manager) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.IsEmpty()
}

// SetAuthenticated observes the current auth level. Side effects run only on
// edges: a rising edge triggers reconciliation at most once per session, a
// falling edge cancels any pending push, clears the cart and re-arms the
// reconciliation guard.
func (m *Manager) SetAuthenticated(ctx context.Context, authenticated bool) {
	m.mu.Lock()
	prev := m.authenticated
	m.authenticated = authenticated
	if prev == authenticated {
		m.mu.Unlock()
		return
	}

	if !authenticated {
		m.cancelTimerLocked()
		m.state = syncPending
		m.cart.Clear()
		m.persistLocked()
		m.mu.Unlock()
		m.log.Info("Logged out, cart cleared")
		return
	}

	if m.state == syncDone {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	m.reconcile(ctx)
}

// Flush pushes the cart immediately, canceling any pending debounce. Used by
// short-lived callers that exit before the window would elapse. A no-op while
// signed out or before the login reconciliation has run.
func (m *Manager) Flush(ctx context.Context) {
	m.mu.Lock()
	if !m.authenticated || m.state != syncDone {
		m.mu.Unlock()
		return
	}
	m.cancelTimerLocked()
	env := cart.NewEnvelope(m.cart.Lines())
	m.mu.Unlock()
	m.push(ctx, env)
}

// Close cancels any pending sync. No final push is attempted.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelTimerLocked()
}

func (m *Manager) mutate(fn func(*cart.Cart)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.cart)
	m.persistLocked()
	m.scheduleSyncLocked()
}

// persistLocked mirrors the cart to local storage synchronously. Local
// persistence is cheap and must survive an immediate process exit, so it is
// never debounced. Failures are absorbed: the in-memory cart stays
// authoritative.
func (m *Manager) persistLocked() {
	if err := m.storage.SaveCart(m.cart.Lines()); err != nil {
		m.log.Warn("Could not persist cart locally", zap.Error(err))
	}
}

// scheduleSyncLocked (re)arms the trailing-edge debounce. The remote push
// only becomes active once the login reconciliation has run.
func (m *Manager) scheduleSyncLocked() {
	if !m.authenticated || m.state != syncDone {
		return
	}
	m.cancelTimerLocked()
	m.timer = time.AfterFunc(m.window, m.pushLatest)
}

func (m *Manager) cancelTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// pushLatest transmits whatever the cart holds when the window elapses, not
// the state at scheduling time.
func (m *Manager) pushLatest() {
	m.mu.Lock()
	if !m.authenticated {
		// logout raced the timer
		m.mu.Unlock()
		return
	}
	env := cart.NewEnvelope(m.cart.Lines())
	m.mu.Unlock()
	m.push(context.Background(), env)
}

func (m *Manager) push(ctx context.Context, env cart.Envelope) {
	if err := m.remote.SaveCart(ctx, env); err != nil {
		m.log.Warn("Cart auto-save failed, will retry on next change", zap.Error(err))
	}
}

// reconcile resolves the guest cart against the server cart at login.
// Whole-cart precedence, never a line-level merge: a non-empty local cart
// overwrites the server cart even if the server copy carries fresher
// price-at-save data; the server cart is adopted only when the local cart is
// empty.
func (m *Manager) reconcile(ctx context.Context) {
	snap, err := m.remote.FetchCart(ctx)

	m.mu.Lock()
	// The guard is set whatever the outcome; a failed reconciliation is not
	// retried until the next logout/login cycle.
	m.state = syncDone

	if err != nil {
		m.mu.Unlock()
		m.log.Warn("Cart reconciliation failed, keeping local cart", zap.Error(err))
		return
	}

	switch {
	case m.cart.IsEmpty() && len(snap.Items) > 0:
		adopted := make([]cart.Line, 0, len(snap.Items))
		for _, it := range snap.Items {
			// priceAtSave and validationMessage are display data, dropped here
			adopted = append(adopted, cart.Line{Product: it.Product, Quantity: it.Quantity})
		}
		m.cart.ReplaceAll(adopted)
		m.persistLocked()
		m.mu.Unlock()
		m.log.Info("Adopted server cart", zap.Int("lines", len(adopted)))
	case !m.cart.IsEmpty():
		env := cart.NewEnvelope(m.cart.Lines())
		m.mu.Unlock()
		m.push(ctx, env)
		m.log.Info("Local cart took precedence over server cart",
			zap.Int("local_lines", len(env.Items)),
			zap.Int("server_lines", len(snap.Items)))
	default:
		m.mu.Unlock()
	}
}
