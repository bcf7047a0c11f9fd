package discord

import (
	"context"

	// Packages
	discordgo "github.com/bwmarrin/discordgo"
	uuid "github.com/google/uuid"
	ui "github.com/zentiph/catbot/pkg/ui"
)

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	confirmPrefix = "confirm:"
	denyPrefix    = "deny:"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SendConfirmation responds to the triggering interaction with the
// prompt and a Yes/No button row, and returns the confirmation widget
// driving the two buttons. Clicks route through the dispatcher to the
// widget; when the widget retires (click or expiry) both buttons are
// disabled on the rendered message and the routes are removed.
//
// Register callbacks on the returned widget before the user clicks;
// registration after resolution has no effect.
func SendConfirmation(ctx context.Context, d *Dispatcher, i *Interaction, prompt, confirmMessage, denyMessage string, opts ...ui.Opt) (*ui.Confirmation, error) {
	w := ui.NewConfirmation(confirmMessage, denyMessage, opts...)

	confirmID, denyID := confirmRoutes(uuid.NewString())
	d.Handle(confirmID, func(ctx context.Context, click ui.Interaction) error {
		return w.Confirm(ctx, click)
	})
	d.Handle(denyID, func(ctx context.Context, click ui.Interaction) error {
		return w.Deny(ctx, click)
	})

	w.OnRetire(func() {
		d.Remove(confirmID, denyID)
		// Disable both buttons on the rendered message. The widget is
		// already terminal, so a failure here only leaves stale-looking
		// buttons whose routes no longer exist.
		_ = i.EditComponents(context.Background(), confirmButtons(confirmID, denyID, true))
	})

	if err := i.RespondComponents(ctx, prompt, confirmButtons(confirmID, denyID, false)); err != nil {
		d.Remove(confirmID, denyID)
		return nil, err
	}
	return w, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// confirmRoutes derives the two component custom IDs for one widget
// instance from a unique suffix.
func confirmRoutes(id string) (string, string) {
	return confirmPrefix + id, denyPrefix + id
}

// confirmButtons builds the Yes/No action row for one widget instance.
func confirmButtons(confirmID, denyID string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    ui.ConfirmLabel,
					Style:    discordgo.SuccessButton,
					CustomID: confirmID,
					Disabled: disabled,
				},
				discordgo.Button{
					Label:    ui.DenyLabel,
					Style:    discordgo.DangerButton,
					CustomID: denyID,
					Disabled: disabled,
				},
			},
		},
	}
}
