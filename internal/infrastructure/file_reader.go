package infrastructure

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"spike-tools/internal/domain"
)

var _ domain.LineReader = (*TXTFileReader)(nil)

type TXTFileReader struct {
	logger *zap.Logger
}

func NewTXTFileReader(logger *zap.Logger) *TXTFileReader {
	return &TXTFileReader{logger: logger}
}

// ReadLines returns every line of filename. With keepTerminator the trailing
// "\n" stays on each line that had one and "\r\n" is folded to "\n";
// otherwise "\n" and "\r\n" are cut.
func (r *TXTFileReader) ReadLines(filename string, keepTerminator bool) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if keepTerminator {
				if strings.HasSuffix(line, "\r\n") {
					line = strings.TrimSuffix(line, "\r\n") + "\n"
				}
			} else {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
			}
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	r.logger.Debug("Read file",
		zap.String("file", filename),
		zap.Int("lines", len(lines)))

	return lines, nil
}
