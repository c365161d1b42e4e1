package infrastructure

import (
	"bufio"
	"os"

	"go.uber.org/zap"

	"spike-tools/internal/domain"
)

var _ domain.LineWriter = (*TXTFileWriter)(nil)

type TXTFileWriter struct {
	logger *zap.Logger
}

func NewTXTFileWriter(logger *zap.Logger) *TXTFileWriter {
	return &TXTFileWriter{logger: logger}
}

// WriteLines truncates filename and writes every line followed by "\n".
func (w *TXTFileWriter) WriteLines(filename string, lines []string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	w.logger.Debug("Wrote file",
		zap.String("file", filename),
		zap.Int("lines", len(lines)))

	return file.Close()
}
