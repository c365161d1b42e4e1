package app

import (
	"fmt"

	"go.uber.org/zap"

	"spike-tools/internal/domain"
)

var _ domain.SumService = (*SpikeCounter)(nil)

type SpikeCounter struct {
	logger    *zap.Logger
	reader    domain.LineReader
	skipBlank bool
}

func NewSpikeCounter(logger *zap.Logger, reader domain.LineReader, skipBlank bool) *SpikeCounter {
	return &SpikeCounter{
		logger:    logger,
		reader:    reader,
		skipBlank: skipBlank,
	}
}

// Sum totals the integers in path. Any bad line aborts with no total.
func (c *SpikeCounter) Sum(path string) (*domain.SumReport, error) {
	lines, err := c.reader.ReadLines(path, false)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	values, err := domain.ParseIntegers(lines, c.skipBlank)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	total, err := domain.SumIntegers(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.logger.Debug("Summed spikes",
		zap.String("file", path),
		zap.Int("values", len(values)),
		zap.Int64("total", total))

	return &domain.SumReport{
		Path:   path,
		Total:  total,
		Values: values,
	}, nil
}
