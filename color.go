package blockviz

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R, G, B float32
}

// Gray returns a color with all three channels set to v.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v}
}

// Packed returns the opaque color packed for vertex buffers.
func (c Color) Packed() uint32 {
	return RGBAf(c.R, c.G, c.B, 1)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b, _ := UnpackRGBA(c.Packed())
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ColorFromHexPair maps a two-character hex string to [0, 1].
// Ciphertext is produced internally, so malformed pairs panic.
func ColorFromHexPair(pair string) float32 {
	if len(pair) != 2 {
		panic(fmt.Sprintf("blockviz: hex pair %q must be 2 characters", pair))
	}
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		panic(fmt.Sprintf("blockviz: hex pair %q: %v", pair, err))
	}
	return float32(v) / 255.0
}

// HexColors converts hex into one color per tile, consuming pairs left to
// right. A trailing fragment too short for a whole tile is dropped.
func HexColors(hex string, mode TileMode) []Color {
	stride := 2 * mode.PairsPerTile()
	colors := make([]Color, 0, len(hex)/stride)
	for i := 0; i+stride <= len(hex); i += stride {
		switch mode {
		case TileRGB:
			colors = append(colors, Color{
				R: ColorFromHexPair(hex[i : i+2]),
				G: ColorFromHexPair(hex[i+2 : i+4]),
				B: ColorFromHexPair(hex[i+4 : i+6]),
			})
		default:
			colors = append(colors, Gray(ColorFromHexPair(hex[i:i+2])))
		}
	}
	return colors
}

// ParseColor parses "#rrggbb" or an SVG 1.1 color name such as "purple".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return Color{}, fmt.Errorf("color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
		return Color{
			R: float32(v>>16&0xff) / 255,
			G: float32(v>>8&0xff) / 255,
			B: float32(v&0xff) / 255,
		}, nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", s)
	}
	return Color{
		R: float32(named.R) / 255,
		G: float32(named.G) / 255,
		B: float32(named.B) / 255,
	}, nil
}
