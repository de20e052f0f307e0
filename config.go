package blockviz

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo configuration, loaded from TOML.
//
// Example:
//
//	log_level = "debug"
//
//	[window]
//	width = 1280
//	height = 720
//	background = "purple"
//
//	[cipher]
//	key = "0102030405060708090a0b0c0d0e0f10"
//	chaining = "line"
//
//	[layout]
//	tiles = "rgb"
type Config struct {
	LogLevel string         `toml:"log_level"`
	Window   WindowConfig   `toml:"window"`
	Cipher   CipherConfig   `toml:"cipher"`
	Layout   LayoutConfig   `toml:"layout"`
	Controls ControlsConfig `toml:"controls"`
	Scene    SceneConfig    `toml:"scene"`
}

// WindowConfig configures the GLFW window.
type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Background string `toml:"background"` // "#rrggbb" or a color name
}

// CipherConfig configures encryption.
type CipherConfig struct {
	Key         string `toml:"key"`           // 32 hex characters
	Seed        uint64 `toml:"seed"`          // CBC IV seed, 0 for time-based
	Chaining    string `toml:"chaining"`      // "block" or "line"
	HexPerBlock int    `toml:"hex_per_block"` // hex characters kept per block
}

// LayoutConfig configures tile layout.
type LayoutConfig struct {
	Tiles   string  `toml:"tiles"` // "grayscale" or "rgb"
	RowStep float32 `toml:"row_step"`
	ECBBand float32 `toml:"ecb_band"`
	CBCBand float32 `toml:"cbc_band"`
}

// ControlsConfig configures per-frame input steps.
type ControlsConfig struct {
	MoveStep   float32 `toml:"move_step"`
	RotateStep float32 `toml:"rotate_step"`
	PanStep    float32 `toml:"pan_step"`
}

// SceneConfig configures scene contents.
type SceneConfig struct {
	Showcase   bool   `toml:"showcase"`    // add the quad and triangle rows
	SourceFile string `toml:"source_file"` // ASCII art to encrypt instead of the penguin
}

// DefaultConfig returns the configuration the demo runs with when no file
// is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "blockviz",
			Background: "#4d004d",
		},
		Cipher: CipherConfig{
			Key:         hex.EncodeToString(DefaultKey[:]),
			Chaining:    ChainPerBlock.String(),
			HexPerBlock: DefaultLineOptions().HexPerBlock,
		},
		Layout: LayoutConfig{
			Tiles:   TileGrayscale.String(),
			RowStep: RowStep,
			ECBBand: 0,
			CBCBand: 1.0,
		},
		Controls: ControlsConfig{
			MoveStep:   0.01,
			RotateStep: 0.1,
			PanStep:    0.1,
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseColor(c.Window.Background); err != nil {
		return fmt.Errorf("window background: %w", err)
	}
	if _, err := c.Key(); err != nil {
		return err
	}
	if _, err := ParseChaining(c.Cipher.Chaining); err != nil {
		return err
	}
	if c.Cipher.HexPerBlock < 1 || c.Cipher.HexPerBlock > 2*BlockSize {
		return fmt.Errorf("hex_per_block %d must be in [1, %d]", c.Cipher.HexPerBlock, 2*BlockSize)
	}
	if _, err := ParseTileMode(c.Layout.Tiles); err != nil {
		return err
	}
	if c.Layout.RowStep <= 0 {
		return fmt.Errorf("row_step %v must be positive", c.Layout.RowStep)
	}
	if c.Layout.ECBBand == c.Layout.CBCBand {
		return errors.New("ecb_band and cbc_band must differ")
	}
	return nil
}

// Key decodes the configured AES key.
func (c Config) Key() (Key, error) {
	var k Key
	b, err := hex.DecodeString(c.Cipher.Key)
	if err != nil {
		return k, fmt.Errorf("cipher key: %w", err)
	}
	if len(b) != len(k) {
		return k, fmt.Errorf("cipher key is %d bytes, want %d", len(b), len(k))
	}
	copy(k[:], b)
	return k, nil
}

// LayoutParams returns the layout parameters derived from the configuration.
// Invalid values fall back to defaults; call Validate first to reject them.
func (c Config) LayoutParams() Layout {
	tiles, _ := ParseTileMode(c.Layout.Tiles)
	chaining, _ := ParseChaining(c.Cipher.Chaining)
	return Layout{
		Tiles: tiles,
		Line: LineOptions{
			HexPerBlock: c.Cipher.HexPerBlock,
			Chaining:    chaining,
		},
	}
}
