package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NewSpikeMatrix builds a matrix from raw file lines. Width is taken from the
// first line. With keepTerminator the lines still carry their "\n" and it is
// counted as a spike code, so a last line missing only its terminator is
// accepted one short. Lines must be valid UTF-8.
func NewSpikeMatrix(lines []string, keepTerminator bool) (*SpikeMatrix, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidEncoding, i+1)
		}
		rows[i] = []rune(line)
	}

	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: first line has no spike codes", ErrEmptyInput)
	}

	last := len(rows) - 1
	for i, row := range rows {
		if len(row) == width {
			continue
		}
		if keepTerminator && i == last && len(row) == width-1 && !strings.HasSuffix(lines[i], "\n") {
			continue
		}
		return nil, fmt.Errorf("%w: line %d has %d codes, expected %d", ErrRaggedInput, i+1, len(row), width)
	}

	return &SpikeMatrix{Rows: rows, Width: width}, nil
}

// Transpose returns a matrix whose row i holds column i of m.
func (m *SpikeMatrix) Transpose() *SpikeMatrix {
	out := make([][]rune, m.Width)
	for i := range out {
		out[i] = make([]rune, 0, len(m.Rows))
	}

	for _, row := range m.Rows {
		for i, c := range row {
			out[i] = append(out[i], c)
		}
	}

	return &SpikeMatrix{Rows: out, Width: len(m.Rows)}
}

// CheckAlphabet reports the first code that is not part of alphabet.
// Line terminators are never checked. An empty alphabet accepts everything.
func (m *SpikeMatrix) CheckAlphabet(alphabet string) error {
	if alphabet == "" {
		return nil
	}

	for i, row := range m.Rows {
		for j, c := range row {
			if c == '\n' || c == '\r' {
				continue
			}
			if !strings.ContainsRune(alphabet, c) {
				return fmt.Errorf("%w: %q at line %d, column %d", ErrBadSpikeCode, c, i+1, j+1)
			}
		}
	}
	return nil
}
