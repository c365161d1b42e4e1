package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"spike-tools/internal/domain"
)

// memFiles is an in-memory LineReader and LineWriter.
type memFiles struct {
	files   map[string]string
	written map[string][]string
}

func newMemFiles(files map[string]string) *memFiles {
	return &memFiles{files: files, written: map[string][]string{}}
}

func (m *memFiles) ReadLines(filename string, keepTerminator bool) ([]string, error) {
	content, ok := m.files[filename]
	if !ok {
		return nil, errors.New("no such file")
	}
	var lines []string
	for _, line := range strings.SplitAfter(content, "\n") {
		if line == "" {
			continue
		}
		if !keepTerminator {
			line = strings.TrimSuffix(line, "\n")
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (m *memFiles) WriteLines(filename string, lines []string) error {
	m.written[filename] = lines
	return nil
}

func transposeConfig() *domain.Config {
	return &domain.Config{Input: "in.txt", Output: "out.txt"}
}

func TestSpikeTransposerRun(t *testing.T) {
	files := newMemFiles(map[string]string{"in.txt": "ab\ncd\n"})
	transposer := NewSpikeTransposer(zap.NewNop(), files, files)

	out, err := transposer.Run(transposeConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"ac", "bd"}, out.Lines())
	assert.Equal(t, []string{"ac", "bd"}, files.written["out.txt"])
}

func TestSpikeTransposerKeepTerminator(t *testing.T) {
	files := newMemFiles(map[string]string{"in.txt": "ab\ncd\n"})
	cfg := transposeConfig()
	cfg.KeepTerminator = true

	_, err := NewSpikeTransposer(zap.NewNop(), files, files).Run(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"ac", "bd", "\n\n"}, files.written["out.txt"])
}

func TestSpikeTransposerErrorsLeaveOutputAlone(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		alphabet string
		wantErr  error
	}{
		{name: "empty", content: "", wantErr: domain.ErrEmptyInput},
		{name: "ragged", content: "010\n01\n", wantErr: domain.ErrRaggedInput},
		{name: "bad code", content: "01\n2x\n", alphabet: "012", wantErr: domain.ErrBadSpikeCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := newMemFiles(map[string]string{"in.txt": tt.content})
			cfg := transposeConfig()
			cfg.Alphabet = tt.alphabet

			_, err := NewSpikeTransposer(zap.NewNop(), files, files).Run(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, files.written)
		})
	}
}

func TestSpikeTransposerMissingInput(t *testing.T) {
	files := newMemFiles(map[string]string{})
	_, err := NewSpikeTransposer(zap.NewNop(), files, files).Run(transposeConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read in.txt")
}

func TestSpikeCounterSum(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		skipBlank bool
		want      int64
		wantErr   error
	}{
		{name: "three lines", content: "1\n2\n3\n", want: 6},
		{name: "empty file", content: "", want: 0},
		{name: "not a number", content: "abc\n", wantErr: domain.ErrParse},
		{name: "blank line", content: "1\n\n2\n", wantErr: domain.ErrParse},
		{name: "blank line skipped", content: "1\n\n2\n", skipBlank: true, want: 3},
		{name: "overflow", content: "9223372036854775807\n1\n", wantErr: domain.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := newMemFiles(map[string]string{"counts.txt": tt.content})
			report, err := NewSpikeCounter(zap.NewNop(), files, tt.skipBlank).Sum("counts.txt")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, report)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "counts.txt", report.Path)
			assert.Equal(t, tt.want, report.Total)
		})
	}
}
