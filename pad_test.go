package blockviz_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/blockviz"
)

func TestPad(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"hello",
		strings.Repeat("x", 15),
		strings.Repeat("x", 16),
		strings.Repeat("x", 17),
		strings.Repeat("x", 32),
		blockviz.Penguin[7],
	}

	for _, s := range inputs {
		p := blockviz.Pad(s)
		assert.Zero(t, len(p)%blockviz.BlockSize, "len(Pad(%q)) = %d", s, len(p))
		assert.True(t, strings.HasPrefix(p, s), "Pad(%q) lost its prefix", s)
		assert.Less(t, len(p)-len(s), blockviz.BlockSize)
		assert.Equal(t, strings.Repeat("0", len(p)-len(s)), p[len(s):])
	}
}

func TestPadAlignedUnchanged(t *testing.T) {
	assert.Equal(t, "", blockviz.Pad(""))
	s := strings.Repeat("ab", 16)
	assert.Equal(t, s, blockviz.Pad(s))
}

func TestPadHello(t *testing.T) {
	p := blockviz.Pad("hello")
	assert.Equal(t, "hello00000000000", p)
	assert.Len(t, p, 16)
	assert.Equal(t, []string{"hello00000000000"}, blockviz.Chunk(p))
}

func TestChunk(t *testing.T) {
	padded := blockviz.Pad(blockviz.Penguin[10])
	chunks := blockviz.Chunk(padded)

	require.Len(t, chunks, 6)
	for _, c := range chunks {
		assert.Len(t, c, blockviz.BlockSize)
	}
	assert.Equal(t, padded, strings.Join(chunks, ""))
	assert.True(t, strings.HasSuffix(chunks[5], "0"))

	assert.Empty(t, blockviz.Chunk(""))
}

func TestChunkPanicsOnMisalignedInput(t *testing.T) {
	assert.Panics(t, func() { blockviz.Chunk("not padded") })
}
