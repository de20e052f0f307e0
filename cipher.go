package blockviz

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/andreburgaud/crypt2go/ecb"
)

// Key is a 128-bit AES key.
type Key [16]byte

// DefaultKey is the fixed key used when none is configured.
var DefaultKey = Key{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

// Mode selects the block cipher mode of operation.
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeECB:
		return "ecb"
	case ModeCBC:
		return "cbc"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "ecb" or "cbc" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "ecb":
		return ModeECB, nil
	case "cbc":
		return ModeCBC, nil
	default:
		return 0, fmt.Errorf("unknown cipher mode %q", s)
	}
}

// Chaining controls how CBC state carries across the blocks of one line.
type Chaining int

const (
	// ChainPerBlock encrypts every 16-byte block as its own CBC message
	// with a fresh IV. Nothing chains across blocks.
	ChainPerBlock Chaining = iota
	// ChainPerLine uses one IV per line and chains ciphertext across the
	// line's blocks.
	ChainPerLine
)

// String returns the chaining name used in configuration.
func (c Chaining) String() string {
	switch c {
	case ChainPerBlock:
		return "block"
	case ChainPerLine:
		return "line"
	default:
		return fmt.Sprintf("Chaining(%d)", int(c))
	}
}

// ParseChaining parses "block" or "line".
func ParseChaining(s string) (Chaining, error) {
	switch strings.ToLower(s) {
	case "", "block":
		return ChainPerBlock, nil
	case "line":
		return ChainPerLine, nil
	default:
		return 0, fmt.Errorf("unknown cbc chaining %q", s)
	}
}

// IVSource produces initialization vectors for CBC encryption.
type IVSource interface {
	NextIV() [BlockSize]byte
}

// PercentIVSource draws every IV byte uniformly from [0, 100).
type PercentIVSource struct {
	rng *rand.Rand
}

// NewPercentIVSource returns an IV source seeded with seed.
// A zero seed is replaced with the current time.
func NewPercentIVSource(seed uint64) *PercentIVSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &PercentIVSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextIV returns a new IV.
func (s *PercentIVSource) NextIV() [BlockSize]byte {
	var iv [BlockSize]byte
	for i := range iv {
		iv[i] = byte(s.rng.IntN(100))
	}
	return iv
}

// LineOptions controls how a line of text becomes a ciphertext hex string.
type LineOptions struct {
	// HexPerBlock is how many hex characters of each 32-character block
	// are kept. Values outside [1, 32] keep the whole block.
	HexPerBlock int
	// Chaining applies to ModeCBC only.
	Chaining Chaining
}

// DefaultLineOptions keeps 15 hex characters per block with per-block CBC.
func DefaultLineOptions() LineOptions {
	return LineOptions{HexPerBlock: 15, Chaining: ChainPerBlock}
}

// BlockCipher encrypts 16-byte blocks with a fixed AES key.
type BlockCipher struct {
	block cipher.Block
	ecb   cipher.BlockMode
	ivs   IVSource
}

// NewBlockCipher creates a cipher for key. ivs supplies CBC IVs; nil uses
// a time-seeded PercentIVSource.
func NewBlockCipher(key Key, ivs IVSource) (*BlockCipher, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("aes cipher: %w", err)
	}
	if ivs == nil {
		ivs = NewPercentIVSource(0)
	}
	return &BlockCipher{
		block: block,
		ecb:   ecb.NewECBEncrypter(block),
		ivs:   ivs,
	}, nil
}

// EncryptECB encrypts block in ECB mode and returns lowercase hex.
// The result depends only on the key and block.
func (c *BlockCipher) EncryptECB(block []byte) string {
	mustAligned(block)
	out := make([]byte, len(block))
	c.ecb.CryptBlocks(out, block)
	return hex.EncodeToString(out)
}

// EncryptCBC encrypts block in CBC mode under a fresh IV from the source.
func (c *BlockCipher) EncryptCBC(block []byte) string {
	return c.EncryptCBCWithIV(block, c.ivs.NextIV())
}

// EncryptCBCWithIV encrypts block in CBC mode under iv.
func (c *BlockCipher) EncryptCBCWithIV(block []byte, iv [BlockSize]byte) string {
	mustAligned(block)
	out := make([]byte, len(block))
	cipher.NewCBCEncrypter(c.block, iv[:]).CryptBlocks(out, block)
	return hex.EncodeToString(out)
}

// Encrypt dispatches to EncryptECB or EncryptCBC.
func (c *BlockCipher) Encrypt(block []byte, mode Mode) string {
	if mode == ModeCBC {
		return c.EncryptCBC(block)
	}
	return c.EncryptECB(block)
}

// EncryptLine pads text, encrypts it block by block and concatenates the
// first opts.HexPerBlock hex characters of every block.
func (c *BlockCipher) EncryptLine(text string, mode Mode, opts LineOptions) string {
	keep := opts.HexPerBlock
	if keep <= 0 || keep > 2*BlockSize {
		keep = 2 * BlockSize
	}

	chunks := Chunk(Pad(text))
	if len(chunks) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(chunks) * keep)

	if mode == ModeCBC && opts.Chaining == ChainPerLine {
		full := c.EncryptCBCWithIV([]byte(strings.Join(chunks, "")), c.ivs.NextIV())
		for i := 0; i < len(full); i += 2 * BlockSize {
			sb.WriteString(full[i : i+keep])
		}
		return sb.String()
	}

	for _, chunk := range chunks {
		sb.WriteString(c.Encrypt([]byte(chunk), mode)[:keep])
	}
	return sb.String()
}

// mustAligned panics when b cannot be split into whole AES blocks.
func mustAligned(b []byte) {
	if len(b) == 0 || len(b)%BlockSize != 0 {
		panic(fmt.Sprintf("blockviz: %d-byte input is not a whole number of %d-byte blocks", len(b), BlockSize))
	}
}
