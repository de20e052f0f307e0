package blockviz

import (
	"fmt"
	"strings"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Filler is appended to a line until its length is a multiple of BlockSize.
const Filler = '0'

// Pad appends Filler until len(text) is a multiple of BlockSize.
// Aligned input, including the empty string, is returned unchanged.
func Pad(text string) string {
	mod := len(text) % BlockSize
	if mod == 0 {
		return text
	}
	return text + strings.Repeat(string(Filler), BlockSize-mod)
}

// Chunk splits padded text into BlockSize-character blocks, left to right.
// Unpadded input means Pad was skipped, so Chunk panics.
func Chunk(padded string) []string {
	if len(padded)%BlockSize != 0 {
		panic(fmt.Sprintf("blockviz: chunk of %d bytes is not a multiple of %d", len(padded), BlockSize))
	}

	chunks := make([]string, 0, len(padded)/BlockSize)
	for i := 0; i < len(padded); i += BlockSize {
		chunks = append(chunks, padded[i:i+BlockSize])
	}
	return chunks
}
