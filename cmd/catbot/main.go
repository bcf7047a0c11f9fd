package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug bool `name:"debug" help:"Enable debug output"`

	// Files
	EnvFile    string `name:"env" default:".env" help:"Path to the .env file"`
	ConfigFile string `name:"config" help:"Path to the YAML configuration file" optional:""`

	// Context
	ctx    context.Context
	logger *slog.Logger
}

type CLI struct {
	Globals

	// Commands
	Run     RunCmd     `cmd:"" help:"Run the bot"`
	Version VersionCmd `cmd:"" help:"Print version and runtime information"`
	Env     EnvCmd     `cmd:"" help:"Manage the .env file"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("CatBot command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Console logger; the run command swaps in a file-backed one once
	// the configuration is loaded.
	logger, err := newLogger(cli.Debug, "")
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.logger = logger
	slog.SetDefault(logger)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
