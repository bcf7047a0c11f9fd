package ui

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	// Packages
	catbot "github.com/zentiph/catbot"
)

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// DefaultTimeout is the inactivity window after which an unclicked
// confirmation expires with no callback invoked and no message sent.
const DefaultTimeout = 15 * time.Second

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Callback runs when the user resolves a confirmation. A non-nil error
// is logged and discarded; it never reaches the user.
type Callback func(ctx context.Context) error

// Confirmation is a single pending yes/no decision. It is created per
// confirmation-worthy action, resolved by at most one button click, and
// expires after a fixed inactivity window otherwise. Exactly one of the
// confirm path, the deny path or expiry ever fires per instance.
type Confirmation struct {
	confirmMsg string
	denyMsg    string
	timeout    time.Duration
	logger     *slog.Logger

	mu        sync.Mutex
	onConfirm Callback
	onDeny    Callback
	onExpire  func()
	retire    []func()

	resolved atomic.Bool
	timer    *time.Timer
}

// Opt modifies how a Confirmation is created.
type Opt func(*Confirmation)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewConfirmation creates a confirmation which replies with
// confirmMessage when confirmed and denyMessage when denied. Both
// replies are ephemeral. The expiry timer starts immediately.
func NewConfirmation(confirmMessage, denyMessage string, opts ...Opt) *Confirmation {
	c := &Confirmation{
		confirmMsg: confirmMessage,
		denyMsg:    denyMessage,
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.timer = time.AfterFunc(c.timeout, c.expire)
	return c
}

// WithTimeout overrides the default inactivity timeout.
func WithTimeout(d time.Duration) Opt {
	return func(c *Confirmation) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to report callback failures.
func WithLogger(logger *slog.Logger) Opt {
	return func(c *Confirmation) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithExpiry sets a hook that runs once if the confirmation expires
// without either button being clicked.
func WithExpiry(fn func()) Opt {
	return func(c *Confirmation) {
		c.onExpire = fn
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OnConfirm sets the callback to run when the user confirms. Passing
// nil clears a previously registered callback. The callback has no
// effect until the confirm button is actually clicked.
func (c *Confirmation) OnConfirm(fn Callback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConfirm = fn
}

// OnDeny sets the callback to run when the user denies. Passing nil
// clears a previously registered callback.
func (c *Confirmation) OnDeny(fn Callback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDeny = fn
}

// OnRetire adds a hook that runs when the confirmation reaches a
// terminal state, whether by click or by expiry. Hooks run exactly
// once, in registration order, after the follow-up message (if any)
// has been sent. Platform adapters register the first hook to disable
// the rendered buttons and unregister click routes; callers may chain
// further hooks to act on the settled outcome.
func (c *Confirmation) OnRetire(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if fn != nil {
		c.retire = append(c.retire, fn)
	}
}

// Resolved reports whether the confirmation has reached a terminal
// state.
func (c *Confirmation) Resolved() bool {
	return c.resolved.Load()
}

// Confirm handles a click on the confirm button. The click interaction
// is acknowledged before the registered callback runs, then the
// confirmation message is sent as an ephemeral follow-up regardless of
// the callback outcome. A click on an already-resolved confirmation
// returns ErrExpired and has no other effect.
func (c *Confirmation) Confirm(ctx context.Context, click Interaction) error {
	c.mu.Lock()
	fn := c.onConfirm
	c.mu.Unlock()
	return c.resolve(ctx, click, fn, c.confirmMsg, "confirm")
}

// Deny handles a click on the deny button. Symmetric with [Confirmation.Confirm].
func (c *Confirmation) Deny(ctx context.Context, click Interaction) error {
	c.mu.Lock()
	fn := c.onDeny
	c.mu.Unlock()
	return c.resolve(ctx, click, fn, c.denyMsg, "deny")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolve runs the shared click sequence: claim the terminal state,
// acknowledge, invoke the callback with its failure contained, send the
// ephemeral follow-up, retire. Transport errors from the acknowledge or
// follow-up calls propagate to the caller; callback errors never do.
// Retirement happens regardless of transport outcome, so click routes
// and rendered buttons never outlive a claimed terminal state.
func (c *Confirmation) resolve(ctx context.Context, click Interaction, fn Callback, message, path string) error {
	if !c.resolved.CompareAndSwap(false, true) {
		return catbot.ErrExpired.With("confirmation already resolved")
	}
	c.timer.Stop()
	defer c.doRetire()

	if err := click.Defer(ctx); err != nil {
		return err
	}

	if fn != nil {
		if err := c.invoke(ctx, fn); err != nil {
			c.logger.Error("confirmation callback failed", "path", path, "user", click.UserID(), "error", err)
		}
	}

	return click.Followup(ctx, message, true)
}

// invoke contains any fault raised by a user-supplied callback,
// converting a panic into an error carrying the stack trace.
func (c *Confirmation) invoke(ctx context.Context, fn Callback) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = catbot.ErrInternal.Withf("callback panic: %v\n%s", r, debug.Stack())
		}
	}()
	return fn(ctx)
}

// expire fires from the inactivity timer. No callback runs and no
// message is sent; the expiry hook and retire hook each run once.
func (c *Confirmation) expire() {
	if !c.resolved.CompareAndSwap(false, true) {
		return
	}
	c.mu.Lock()
	fn := c.onExpire
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
	c.doRetire()
}

func (c *Confirmation) doRetire() {
	c.mu.Lock()
	hooks := c.retire
	c.retire = nil
	c.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}
