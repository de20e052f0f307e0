package term_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/blockviz"
	"github.com/go-theft-auto/blockviz/backend/term"
)

func newScene(t *testing.T) *blockviz.Scene {
	t.Helper()
	s, err := blockviz.NewScene(blockviz.DefaultConfig(),
		blockviz.WithLogger(blockviz.NewLogger(io.Discard, slog.LevelError)),
		blockviz.WithIVSource(blockviz.NewPercentIVSource(1)))
	require.NoError(t, err)
	return s
}

func TestWriteSceneAscii(t *testing.T) {
	var buf bytes.Buffer
	pv := term.New(&buf, term.WithProfile(termenv.Ascii))
	require.NoError(t, pv.WriteScene(newScene(t)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1+52)

	assert.True(t, strings.HasPrefix(lines[0], "ECB grayscale"))
	assert.Contains(t, lines[0], "CBC grayscale")
	for i, line := range lines {
		assert.Len(t, line, 45*2+3+45*2, "line %d", i)
	}
}

func TestWriteSceneTrueColor(t *testing.T) {
	var buf bytes.Buffer
	pv := term.New(&buf, term.WithProfile(termenv.TrueColor))
	require.NoError(t, pv.WriteScene(newScene(t)))

	out := buf.String()
	assert.Contains(t, out, "\x1b[48;2;")
	assert.Equal(t, 53, strings.Count(out, "\n"))
}

func TestWriteGridsPadsShortGrids(t *testing.T) {
	short := blockviz.Grid{
		Mode:  blockviz.ModeECB,
		Tiles: blockviz.TileRGB,
		Rows:  []blockviz.Row{blockviz.BuildRow("000000ffffff", blockviz.TileRGB, 0, 0)},
	}
	long := blockviz.Grid{
		Mode:  blockviz.ModeCBC,
		Tiles: blockviz.TileRGB,
		Rows: []blockviz.Row{
			blockviz.BuildRow("000000", blockviz.TileRGB, 1, 0),
			blockviz.BuildRow("000000", blockviz.TileRGB, 1, 0.02),
		},
	}

	var buf bytes.Buffer
	pv := term.New(&buf, term.WithProfile(termenv.Ascii), term.WithCell("#"))
	require.NoError(t, pv.WriteGrids(short, long))

	want := "ECB rgb   CBC rgb\n" +
		"##   #\n" +
		"     #\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGridsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, term.New(&buf).WriteGrids())
	assert.Empty(t, buf.String())
}
