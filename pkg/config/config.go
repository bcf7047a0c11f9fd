// Package config loads the bot's YAML configuration file.
package config

import (
	"bytes"
	"os"

	// Packages
	catbot "github.com/zentiph/catbot"
	ui "github.com/zentiph/catbot/pkg/ui"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	// DefaultLogFile is where logs are written when no override is given.
	DefaultLogFile = "logs.log"

	// defaultGuildID is the home guild the bot registers its commands in.
	defaultGuildID = "857065913568460801"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the bot's deployment settings.
type Config struct {
	// GuildID is the guild application commands are registered in.
	// Empty registers them globally.
	GuildID string `yaml:"guild_id"`

	// OwnerID is the Discord user allowed to run owner-only commands.
	OwnerID string `yaml:"owner_id"`

	// LogFile is the path logs are written to, alongside the console.
	LogFile string `yaml:"log_file"`

	// EmbedColor overrides the accent color of the bot's embeds.
	EmbedColor int `yaml:"embed_color"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a configuration with default settings. OwnerID is empty
// and must be set before owner-only commands are usable.
func New() *Config {
	return &Config{
		GuildID:    defaultGuildID,
		LogFile:    DefaultLogFile,
		EmbedColor: ui.DefaultEmbedColor,
	}
}

// Load reads a YAML configuration file over the defaults. A missing
// file returns ErrNotFound; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, catbot.ErrNotFound.With(path)
	}

	cfg := New()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, catbot.ErrBadParameter.Withf("parsing %q: %v", path, err)
	}
	return cfg, nil
}
