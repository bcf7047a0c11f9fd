// Package discord adapts the platform-neutral widgets in pkg/ui to
// the Discord gateway using discordgo. It owns the session lifecycle,
// routes application-command and message-component interactions, and
// renders the confirmation widget as a Yes/No button row.
package discord

import (
	"context"
	"log/slog"
	"sync"

	// Packages
	discordgo "github.com/bwmarrin/discordgo"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Bot wraps a discordgo session together with the interaction routing
// the helper packages need: a component dispatcher for widget clicks
// and a name-keyed table of application-command handlers.
type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
	logger     *slog.Logger

	mu       sync.RWMutex
	commands map[string]CommandHandler
}

// CommandHandler processes one application-command invocation.
type CommandHandler func(ctx context.Context, i *Interaction) error

// BotOpt modifies how a Bot is created.
type BotOpt func(*Bot)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a bot for the given token. The gateway connection is not
// opened until [Bot.Run] is called.
func New(token string, opts ...BotOpt) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	b := &Bot{
		session:  session,
		logger:   slog.Default(),
		commands: make(map[string]CommandHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.dispatcher = NewDispatcher(b.logger)

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteractionCreate)

	return b, nil
}

// WithBotLogger sets the logger for gateway and handler events.
func WithBotLogger(logger *slog.Logger) BotOpt {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithIntents overrides the default gateway intents.
func WithIntents(intents discordgo.Intent) BotOpt {
	return func(b *Bot) {
		b.session.Identify.Intents = intents
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Session returns the underlying discordgo session.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Dispatcher returns the component dispatcher, for registering widget
// click routes.
func (b *Bot) Dispatcher() *Dispatcher {
	return b.dispatcher
}

// HandleCommand registers a handler for an application command by
// name, replacing any existing handler.
func (b *Bot) HandleCommand(name string, h CommandHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.commands[name] = h
}

// RegisterCommands creates the given application commands, scoped to a
// guild when guildID is non-empty and global otherwise. The session
// must be open.
func (b *Bot) RegisterCommands(ctx context.Context, guildID string, commands ...*discordgo.ApplicationCommand) error {
	appID := b.session.State.User.ID
	for _, cmd := range commands {
		if _, err := b.session.ApplicationCommandCreate(appID, guildID, cmd, discordgo.WithContext(ctx)); err != nil {
			return err
		}
	}
	return nil
}

// Open connects to the gateway. Commands can be registered once the
// connection is up.
func (b *Bot) Open() error {
	return b.session.Open()
}

// Close closes the gateway connection.
func (b *Bot) Close() error {
	return b.session.Close()
}

///////////////////////////////////////////////////////////////////////////////
// DISCORDGO HANDLERS

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("gateway ready", "user", r.User.String(), "session", r.SessionID)
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	ctx := context.Background()
	click := NewInteraction(s, ic.Interaction)

	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		name := ic.ApplicationCommandData().Name
		b.mu.RLock()
		h := b.commands[name]
		b.mu.RUnlock()
		if h == nil {
			b.logger.Warn("no handler for command", "command", name)
			return
		}
		if err := h(ctx, click); err != nil {
			b.logger.Error("command handler failed", "command", name, "user", click.UserID(), "error", err)
		}
	case discordgo.InteractionMessageComponent:
		b.dispatcher.Dispatch(ctx, ic.MessageComponentData().CustomID, click)
	}
}
