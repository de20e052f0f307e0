package blockviz

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// TileMode selects how ciphertext hex pairs become tiles.
type TileMode int

const (
	// TileGrayscale uses one hex pair per tile for R, G and B.
	TileGrayscale TileMode = iota
	// TileRGB uses three consecutive hex pairs per tile.
	TileRGB
)

// String returns the tile mode name used in configuration.
func (m TileMode) String() string {
	switch m {
	case TileGrayscale:
		return "grayscale"
	case TileRGB:
		return "rgb"
	default:
		return fmt.Sprintf("TileMode(%d)", int(m))
	}
}

// ParseTileMode parses "grayscale" or "rgb".
func ParseTileMode(s string) (TileMode, error) {
	switch strings.ToLower(s) {
	case "", "gray", "grayscale":
		return TileGrayscale, nil
	case "rgb", "color":
		return TileRGB, nil
	default:
		return 0, fmt.Errorf("unknown tile mode %q", s)
	}
}

// PairsPerTile returns how many hex pairs one tile consumes.
func (m TileMode) PairsPerTile() int {
	if m == TileRGB {
		return 3
	}
	return 1
}

// TileWidth returns the tile half-extent. Tile quads span [-1, 1], so a
// tile covers twice this width.
func (m TileMode) TileWidth() float32 {
	if m == TileRGB {
		return 0.02
	}
	return 0.01
}

const (
	// RowStep is the vertical distance between consecutive rows.
	RowStep float32 = 0.02
	// TopAnchor is the y position of the first row.
	TopAnchor float32 = 0.5
	// LeftAnchor is the x position of a band's first tile.
	LeftAnchor float32 = -1.0
)

// Cursor tracks where the next row goes. Grid construction takes a cursor
// and returns the advanced one.
type Cursor struct {
	Offset float32 // Distance below TopAnchor
	Step   float32 // Added after every row
}

// NewCursor returns a cursor at the top anchor advancing by RowStep.
func NewCursor() Cursor {
	return Cursor{Step: RowStep}
}

// Next returns the cursor one row further down.
func (c Cursor) Next() Cursor {
	c.Offset += c.Step
	return c
}

// Reset returns the cursor moved back to the top anchor.
func (c Cursor) Reset() Cursor {
	c.Offset = 0
	return c
}

// Row is one encrypted source line laid out as tiles, left to right.
type Row []*Object

// Move shifts every tile in the row horizontally by dx.
func (r Row) Move(dx float32) {
	for _, tile := range r {
		t := tile.Transform()
		t.Position = t.Position.Add(mgl32.Vec3{dx, 0, 0})
	}
}

// Grid is the set of rows for one cipher mode.
type Grid struct {
	Mode  Mode
	Tiles TileMode
	Band  float32 // Horizontal offset of the whole grid
	Rows  []Row
}

// TileCount returns the number of tiles in all rows.
func (g Grid) TileCount() int {
	n := 0
	for _, r := range g.Rows {
		n += len(r)
	}
	return n
}

// BuildRow lays out hex as one row of tiles at yOffset below the top
// anchor, shifted right by band.
func BuildRow(hex string, mode TileMode, band, yOffset float32) Row {
	colors := HexColors(hex, mode)
	width := mode.TileWidth()

	row := make(Row, 0, len(colors))
	for i, c := range colors {
		tile := NewObject(QuadGeometry, SolidMaterial(c))
		t := tile.Transform()
		t.Scale = mgl32.Vec3{width, width, 1}
		t.Position = mgl32.Vec3{
			float32(2*i)*width + LeftAnchor + band,
			TopAnchor - yOffset,
			0,
		}
		tile.Update()
		row = append(row, tile)
	}
	return row
}

// Layout holds the parameters shared by every grid of a scene.
type Layout struct {
	Tiles TileMode
	Line  LineOptions
}

// BuildVisualization encrypts every line in mode and lays the results out
// as a grid starting at cur. It returns the grid and the cursor after the
// last row.
func BuildVisualization(lines []string, bc *BlockCipher, mode Mode, band float32, layout Layout, cur Cursor) (Grid, Cursor) {
	grid := Grid{
		Mode:  mode,
		Tiles: layout.Tiles,
		Band:  band,
		Rows:  make([]Row, 0, len(lines)),
	}
	for _, line := range lines {
		hex := bc.EncryptLine(line, mode, layout.Line)
		grid.Rows = append(grid.Rows, BuildRow(hex, layout.Tiles, band, cur.Offset))
		cur = cur.Next()
	}
	return grid, cur
}
