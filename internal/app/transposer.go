package app

import (
	"fmt"

	"go.uber.org/zap"

	"spike-tools/internal/domain"
)

var _ domain.TransposeService = (*SpikeTransposer)(nil)

type SpikeTransposer struct {
	logger *zap.Logger
	reader domain.LineReader
	writer domain.LineWriter
}

func NewSpikeTransposer(logger *zap.Logger, reader domain.LineReader, writer domain.LineWriter) *SpikeTransposer {
	return &SpikeTransposer{
		logger: logger,
		reader: reader,
		writer: writer,
	}
}

// Run reads cfg.Input, transposes it and writes cfg.Output. The output is not
// touched unless the whole input was accepted.
func (t *SpikeTransposer) Run(cfg *domain.Config) (*domain.SpikeMatrix, error) {
	lines, err := t.reader.ReadLines(cfg.Input, cfg.KeepTerminator)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfg.Input, err)
	}

	matrix, err := domain.NewSpikeMatrix(lines, cfg.KeepTerminator)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	if err := matrix.CheckAlphabet(cfg.Alphabet); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	t.logger.Info("Transposing spikes",
		zap.String("input", cfg.Input),
		zap.Int("rows", len(matrix.Rows)),
		zap.Int("width", matrix.Width),
		zap.Bool("keep_terminator", cfg.KeepTerminator))

	transposed := matrix.Transpose()

	if err := t.writer.WriteLines(cfg.Output, transposed.Lines()); err != nil {
		return nil, fmt.Errorf("write %s: %w", cfg.Output, err)
	}

	t.logger.Info("Successfully written result",
		zap.String("file", cfg.Output),
		zap.Int("rows", len(transposed.Rows)))

	return transposed, nil
}
