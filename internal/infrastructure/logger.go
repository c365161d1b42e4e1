package infrastructure

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a production logger writing to stderr and, when given, to
// logFile as well. Unknown levels fall back to info with a warning.
func NewLogger(level string, logFile string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	unknownLevel := false
	switch level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case "", "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		unknownLevel = true
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputPath := []string{"stderr"}
	if logFile != "" {
		outputPath = append(outputPath, logFile)
	}

	config.OutputPaths = outputPath
	config.ErrorOutputPaths = outputPath
	config.EncoderConfig.TimeKey = "t"
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	config.DisableCaller = false

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	if unknownLevel {
		logger.Warn("Unknown log level, using info", zap.String("requested_level", level))
	}
	return logger, nil
}
