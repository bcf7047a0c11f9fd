// Package ui implements platform-neutral UI widgets for chat bots.
//
// The [Confirmation] widget presents a yes/no decision to a user and
// routes the outcome to registered callbacks. Platform adapters (see
// pkg/ui/discord) render the widget and deliver button clicks back to
// it as [Interaction] values.
package ui

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACES

// Interaction is a single user-triggered event delivered by the host
// chat platform (e.g. a slash command invocation or a button click).
// It must be acknowledged within the platform's time budget; responses
// are sent back through the same handle.
type Interaction interface {
	// UserID returns a platform-specific unique identifier for the
	// user who triggered the interaction.
	UserID() string

	// Defer acknowledges the interaction without a visible reply,
	// buying time for slow work before a follow-up is sent.
	Defer(ctx context.Context) error

	// Respond sends the initial response to the interaction. When
	// ephemeral is true the response is visible only to the
	// triggering user.
	Respond(ctx context.Context, text string, ephemeral bool) error

	// Followup sends a message after the interaction has been
	// acknowledged. When ephemeral is true the message is visible
	// only to the triggering user.
	Followup(ctx context.Context, text string, ephemeral bool) error
}
