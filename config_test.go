package blockviz_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/blockviz"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockviz.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := blockviz.DefaultConfig()
	require.NoError(t, cfg.Validate())

	key, err := cfg.Key()
	require.NoError(t, err)
	assert.Equal(t, blockviz.DefaultKey, key)

	layout := cfg.LayoutParams()
	assert.Equal(t, blockviz.TileGrayscale, layout.Tiles)
	assert.Equal(t, blockviz.DefaultLineOptions(), layout.Line)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[window]
width = 800
background = "purple"

[cipher]
key = "000102030405060708090a0b0c0d0e0f"
seed = 9
chaining = "line"
hex_per_block = 32

[layout]
tiles = "rgb"

[scene]
showcase = true
`)

	cfg, err := blockviz.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, uint64(9), cfg.Cipher.Seed)
	assert.True(t, cfg.Scene.Showcase)
	assert.InDelta(t, 0.1, cfg.Controls.PanStep, tol)

	key, err := cfg.Key()
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), key[15])

	layout := cfg.LayoutParams()
	assert.Equal(t, blockviz.TileRGB, layout.Tiles)
	assert.Equal(t, blockviz.LineOptions{HexPerBlock: 32, Chaining: blockviz.ChainPerLine}, layout.Line)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, `
[layout]
tile = "rgb"
`)
	_, err := blockviz.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tile")
}

func TestLoadConfigInvalidValue(t *testing.T) {
	path := writeConfig(t, `
[cipher]
hex_per_block = 40
`)
	_, err := blockviz.LoadConfig(path)
	assert.ErrorContains(t, err, "hex_per_block")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := blockviz.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*blockviz.Config)
	}{
		{"log level", func(c *blockviz.Config) { c.LogLevel = "loud" }},
		{"window size", func(c *blockviz.Config) { c.Window.Height = 0 }},
		{"background", func(c *blockviz.Config) { c.Window.Background = "#12" }},
		{"key hex", func(c *blockviz.Config) { c.Cipher.Key = "zz" }},
		{"key length", func(c *blockviz.Config) { c.Cipher.Key = "0011" }},
		{"chaining", func(c *blockviz.Config) { c.Cipher.Chaining = "message" }},
		{"hex per block", func(c *blockviz.Config) { c.Cipher.HexPerBlock = 0 }},
		{"tiles", func(c *blockviz.Config) { c.Layout.Tiles = "hex" }},
		{"row step", func(c *blockviz.Config) { c.Layout.RowStep = 0 }},
		{"bands", func(c *blockviz.Config) { c.Layout.CBCBand = c.Layout.ECBBand }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := blockviz.DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := blockviz.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = blockviz.ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = blockviz.ParseLevel("verbose")
	assert.Error(t, err)
}
