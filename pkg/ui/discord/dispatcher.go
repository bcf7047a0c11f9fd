package discord

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	// Packages
	catbot "github.com/zentiph/catbot"
	ui "github.com/zentiph/catbot/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Handler processes one component click. The click argument sends
// responses back through the interaction that delivered the click.
type Handler func(ctx context.Context, click ui.Interaction) error

// Dispatcher routes message-component interactions to handlers by
// custom ID. Widgets register a route per rendered control and remove
// it when they retire; clicks on unknown custom IDs are ignored.
type Dispatcher struct {
	mu     sync.RWMutex
	routes map[string]Handler
	logger *slog.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewDispatcher creates an empty dispatcher. A nil logger falls back
// to the default slog logger.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		routes: make(map[string]Handler),
		logger: logger,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Handle registers a handler for a component custom ID, replacing any
// existing route.
func (d *Dispatcher) Handle(customID string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.routes[customID] = h
}

// Remove unregisters the given custom IDs. Missing IDs are ignored.
func (d *Dispatcher) Remove(customIDs ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range customIDs {
		delete(d.routes, id)
	}
}

// Len returns the number of registered routes.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.routes)
}

// Dispatch routes one click to its handler. Unknown custom IDs and
// clicks on already-resolved widgets are silently dropped; other
// handler errors are logged and swallowed so a bad widget never takes
// down the event loop.
func (d *Dispatcher) Dispatch(ctx context.Context, customID string, click ui.Interaction) {
	d.mu.RLock()
	h := d.routes[customID]
	d.mu.RUnlock()
	if h == nil {
		return
	}
	if err := h(ctx, click); err != nil && !errors.Is(err, catbot.ErrExpired) {
		d.logger.Error("component handler failed", "custom_id", customID, "user", click.UserID(), "error", err)
	}
}
