package main

import (
	"context"
	"fmt"
	"log/slog"

	// Packages
	discordgo "github.com/bwmarrin/discordgo"
	"github.com/zentiph/catbot/pkg/config"
	"github.com/zentiph/catbot/pkg/env"
	"github.com/zentiph/catbot/pkg/info"
	"github.com/zentiph/catbot/pkg/ui"
	discord "github.com/zentiph/catbot/pkg/ui/discord"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type RunCmd struct {
	Token string `name:"token" env:"TOKEN" help:"Bot token (overrides the .env file)" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var botCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "info",
		Description: "Show CatBot's version, uptime and host information",
	},
	{
		Name:        "shutdown",
		Description: "Shut down the bot (owner only)",
	},
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunCmd) Run(g *Globals) error {
	// Load configuration
	cfg := config.New()
	if g.ConfigFile != "" {
		loaded, err := config.Load(g.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Swap in the file-backed logger
	logger, err := newLogger(g.Debug, cfg.LogFile)
	if err != nil {
		return err
	}
	g.logger = logger
	slog.SetDefault(logger)

	// Resolve the token: flag or environment first, .env file otherwise
	token := cmd.Token
	if token == "" {
		e, err := env.Load(g.EnvFile)
		if err != nil {
			return err
		}
		if token, err = e.Token(); err != nil {
			return err
		}
	}

	// Create the bot
	bot, err := discord.New(token, discord.WithBotLogger(logger))
	if err != nil {
		return err
	}

	// Shutting down cancels this context, which unblocks the wait below.
	ctx, stop := context.WithCancel(g.ctx)
	defer stop()

	bot.HandleCommand("info", infoHandler(cfg))
	bot.HandleCommand("shutdown", shutdownHandler(bot, cfg, stop))

	if err := bot.Open(); err != nil {
		return err
	}
	defer bot.Close()

	if err := bot.RegisterCommands(ctx, cfg.GuildID, botCommands...); err != nil {
		return err
	}

	logger.Info("catbot started", "version", info.Version(), "guild", cfg.GuildID)
	<-ctx.Done()
	logger.Info("catbot stopped", "uptime", info.Uptime())
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// HANDLERS

// infoHandler replies with an embed describing the bot's run conditions.
func infoHandler(cfg *config.Config) discord.CommandHandler {
	return func(ctx context.Context, i *discord.Interaction) error {
		embed := &discordgo.MessageEmbed{
			Title: "CatBot",
			Color: cfg.EmbedColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Version", Value: info.Version(), Inline: true},
				{Name: "Go", Value: info.GoVersion(), Inline: true},
				{Name: "discordgo", Value: info.DiscordGoVersion(), Inline: true},
				{Name: "Host", Value: info.Host()},
				{Name: "Uptime", Value: info.Uptime()},
				{Name: "Dependencies", Value: fmt.Sprintf("%d modules", len(info.Dependencies()))},
			},
		}
		return i.RespondEmbed(ctx, embed, true)
	}
}

// shutdownHandler asks for confirmation before stopping the bot. The
// confirm path cancels the run context; the deny path leaves the bot
// running. The cancel is chained onto widget retirement rather than
// run from the callback, so the farewell follow-up is already sent and
// the buttons already disabled before the session starts closing.
func shutdownHandler(bot *discord.Bot, cfg *config.Config, stop context.CancelFunc) discord.CommandHandler {
	return func(ctx context.Context, i *discord.Interaction) error {
		if cfg.OwnerID != "" && i.UserID() != cfg.OwnerID {
			return discord.Report(ctx, i, ui.StatusFailure, "Only the bot owner can shut down the bot.")
		}

		w, err := discord.SendConfirmation(ctx, bot.Dispatcher(), i,
			"Shut down CatBot?", "Shutting down. Goodbye!", "Shutdown cancelled.")
		if err != nil {
			return err
		}

		confirmed := false
		w.OnConfirm(func(context.Context) error {
			confirmed = true
			return nil
		})
		w.OnRetire(func() {
			if confirmed {
				stop()
			}
		})
		return nil
	}
}
