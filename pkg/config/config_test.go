package config_test

import (
	"os"
	"path/filepath"
	"testing"

	catbot "github.com/zentiph/catbot"
	"github.com/zentiph/catbot/pkg/config"
	"github.com/zentiph/catbot/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catbot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New()
	assert.Equal("857065913568460801", cfg.GuildID)
	assert.Equal(config.DefaultLogFile, cfg.LogFile)
	assert.Equal(ui.DefaultEmbedColor, cfg.EmbedColor)
	assert.Empty(cfg.OwnerID)
}

func TestLoadOverridesDefaults(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "guild_id: \"42\"\nowner_id: \"7\"\nembed_color: 0xFFFFFF\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal("42", cfg.GuildID)
	assert.Equal("7", cfg.OwnerID)
	assert.Equal(ui.WhiteEmbedColor, cfg.EmbedColor)
	// Untouched keys keep their defaults.
	assert.Equal(config.DefaultLogFile, cfg.LogFile)
}

func TestLoadMissingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(err, catbot.ErrNotFound)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	assert := assert.New(t)

	_, err := config.Load(writeConfig(t, "guild_id: \"42\"\nshards: 4\n"))
	assert.ErrorIs(err, catbot.ErrBadParameter)
}
