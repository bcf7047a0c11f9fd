package discord

import (
	"context"
	"fmt"

	// Packages
	ui "github.com/zentiph/catbot/pkg/ui"
)

// Report responds to an interaction with a status emoji followed by
// the message, visible only to the triggering user.
func Report(ctx context.Context, i ui.Interaction, status ui.Status, message string) error {
	return i.Respond(ctx, fmt.Sprintf("%s %s", status, message), true)
}

// Restricted wraps a component handler so that only the given user may
// interact with it. Anyone else receives an ephemeral failure report
// and the wrapped handler does not run.
func Restricted(userID string, h Handler) Handler {
	return func(ctx context.Context, click ui.Interaction) error {
		if click.UserID() != userID {
			return Report(ctx, click, ui.StatusFailure, "You can't interact with another user's embed!")
		}
		return h(ctx, click)
	}
}
