package discord

import (
	"context"

	// Packages
	discordgo "github.com/bwmarrin/discordgo"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Interaction wraps a discordgo interaction and implements
// [ui.Interaction]. One value is created per delivered interaction
// event; it is valid for the lifetime of that event.
type Interaction struct {
	session *discordgo.Session
	inner   *discordgo.Interaction
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewInteraction wraps a raw discordgo interaction.
func NewInteraction(session *discordgo.Session, inner *discordgo.Interaction) *Interaction {
	return &Interaction{session: session, inner: inner}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// UserID returns the Discord user ID of the user who triggered the
// interaction, whether it arrived from a guild or a direct message.
func (x *Interaction) UserID() string {
	if u := x.user(); u != nil {
		return u.ID
	}
	return ""
}

// UserName returns the display name of the triggering user.
func (x *Interaction) UserName() string {
	if u := x.user(); u != nil {
		return u.Username
	}
	return ""
}

// Defer acknowledges the interaction without a visible reply. Component
// clicks are acknowledged as a deferred message update so the original
// message stays in place; other interaction kinds defer a channel
// message response.
func (x *Interaction) Defer(ctx context.Context) error {
	kind := discordgo.InteractionResponseDeferredChannelMessageWithSource
	if x.inner.Type == discordgo.InteractionMessageComponent {
		kind = discordgo.InteractionResponseDeferredMessageUpdate
	}
	return x.session.InteractionRespond(x.inner, &discordgo.InteractionResponse{
		Type: kind,
	}, discordgo.WithContext(ctx))
}

// Respond sends the initial response to the interaction.
func (x *Interaction) Respond(ctx context.Context, text string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Content: text,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return x.session.InteractionRespond(x.inner, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
}

// RespondEmbed sends an embed as the initial response.
func (x *Interaction) RespondEmbed(ctx context.Context, embed *discordgo.MessageEmbed, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return x.session.InteractionRespond(x.inner, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
}

// RespondComponents sends text with message components (e.g. buttons)
// as the initial response.
func (x *Interaction) RespondComponents(ctx context.Context, text string, components []discordgo.MessageComponent) error {
	return x.session.InteractionRespond(x.inner, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    text,
			Components: components,
		},
	}, discordgo.WithContext(ctx))
}

// Followup sends a message after the interaction has been acknowledged.
func (x *Interaction) Followup(ctx context.Context, text string, ephemeral bool) error {
	params := &discordgo.WebhookParams{
		Content: text,
	}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	_, err := x.session.FollowupMessageCreate(x.inner, true, params, discordgo.WithContext(ctx))
	return err
}

// EditComponents replaces the components on the original interaction
// response, e.g. to disable buttons once a widget is resolved.
func (x *Interaction) EditComponents(ctx context.Context, components []discordgo.MessageComponent) error {
	_, err := x.session.InteractionResponseEdit(x.inner, &discordgo.WebhookEdit{
		Components: &components,
	}, discordgo.WithContext(ctx))
	return err
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (x *Interaction) user() *discordgo.User {
	if x.inner.Member != nil && x.inner.Member.User != nil {
		return x.inner.Member.User
	}
	return x.inner.User
}
