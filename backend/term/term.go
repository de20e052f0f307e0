// Package term renders blockviz grids as colored terminal cells.
//
// It is a headless stand-in for the OpenGL backend: every tile becomes a
// cell with the tile color as background, so ECB patterns are visible in
// any 256-color or truecolor terminal.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/go-theft-auto/blockviz"
)

// Preview writes grids to a terminal.
type Preview struct {
	out  *termenv.Output
	cell string
	gap  string

	profile *termenv.Profile
}

// Option configures a Preview.
type Option func(*Preview)

// WithProfile forces a color profile instead of detecting one from the
// writer. termenv.Ascii disables color.
func WithProfile(p termenv.Profile) Option {
	return func(pv *Preview) { pv.profile = &p }
}

// WithCell sets the text drawn for each tile. The default is two spaces,
// which is roughly square in most fonts.
func WithCell(cell string) Option {
	return func(pv *Preview) { pv.cell = cell }
}

// New returns a Preview writing to w.
func New(w io.Writer, opts ...Option) *Preview {
	pv := &Preview{
		cell: "  ",
		gap:  "   ",
	}
	for _, opt := range opts {
		opt(pv)
	}

	if pv.profile != nil {
		pv.out = termenv.NewOutput(w, termenv.WithProfile(*pv.profile))
	} else {
		pv.out = termenv.NewOutput(w)
	}
	return pv
}

// WriteGrids writes the grids side by side, one terminal line per row,
// under a header naming each grid.
func (pv *Preview) WriteGrids(grids ...blockviz.Grid) error {
	if len(grids) == 0 {
		return nil
	}

	widths := make([]int, len(grids))
	rows := 0
	for i, g := range grids {
		for _, r := range g.Rows {
			widths[i] = max(widths[i], len(r))
		}
		rows = max(rows, len(g.Rows))
	}

	var sb strings.Builder
	for i, g := range grids {
		if i > 0 {
			sb.WriteString(pv.gap)
		}
		label := fmt.Sprintf("%s %s", strings.ToUpper(g.Mode.String()), g.Tiles)
		sb.WriteString(padRight(label, widths[i]*len(pv.cell)))
	}
	sb.WriteByte('\n')

	for y := 0; y < rows; y++ {
		for i, g := range grids {
			if i > 0 {
				sb.WriteString(pv.gap)
			}
			var row blockviz.Row
			if y < len(g.Rows) {
				row = g.Rows[y]
			}
			pv.writeRow(&sb, row, widths[i])
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(pv.out, sb.String())
	return err
}

// WriteScene writes the scene's ECB and CBC grids side by side.
func (pv *Preview) WriteScene(s *blockviz.Scene) error {
	return pv.WriteGrids(s.ECB(), s.CBC())
}

// writeRow writes one row of tiles, padded with blank cells to width.
func (pv *Preview) writeRow(sb *strings.Builder, row blockviz.Row, width int) {
	for _, tile := range row {
		c := tile.Material().Color
		sb.WriteString(pv.out.String(pv.cell).Background(pv.out.Color(c.Hex())).String())
	}
	for i := len(row); i < width; i++ {
		sb.WriteString(strings.Repeat(" ", len(pv.cell)))
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
