package blockviz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SourceText is a fixed-width block of ASCII lines.
type SourceText []string

// Width returns the length of the longest line.
func (s SourceText) Width() int {
	w := 0
	for _, line := range s {
		w = max(w, len(line))
	}
	return w
}

// Validate checks that the text is non-empty ASCII with equal-width lines.
func (s SourceText) Validate() error {
	if len(s) == 0 {
		return errors.New("source text is empty")
	}
	width := len(s[0])
	for i, line := range s {
		if len(line) != width {
			return fmt.Errorf("line %d is %d characters wide, want %d", i+1, len(line), width)
		}
		for j := 0; j < len(line); j++ {
			if line[j] > 0x7f {
				return fmt.Errorf("line %d column %d: non-ASCII byte 0x%02x", i+1, j+1, line[j])
			}
		}
	}
	return nil
}

// ReadSourceText reads lines from r and right-pads them with spaces to the
// widest line so the result is a grid.
func ReadSourceText(r io.Reader) (SourceText, error) {
	var lines SourceText
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read source text: %w", err)
	}

	width := lines.Width()
	for i, line := range lines {
		if len(line) < width {
			lines[i] = line + strings.Repeat(" ", width-len(line))
		}
	}
	if err := lines.Validate(); err != nil {
		return nil, err
	}
	return lines, nil
}
