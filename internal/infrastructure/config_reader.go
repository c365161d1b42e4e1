package infrastructure

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"spike-tools/internal/domain"
)

var _ domain.ConfigReader = (*YAMLConfigReader)(nil)

type YAMLConfigReader struct {
	logger *zap.Logger
}

func NewYAMLConfigReader(logger *zap.Logger) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger}
}

// ReadConfig loads path on top of the defaults. An empty path yields the
// defaults alone, and keys set to "" fall back to them too.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	config := domain.DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
		r.logger.Debug("Loaded config", zap.String("file", path))
	}

	r.setDefaults(config)

	return config, nil
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.Input == "" {
		config.Input = domain.DefaultInputPath
	}
	if config.Output == "" {
		config.Output = domain.DefaultOutputPath
	}
	if config.LogLevel == "" {
		config.LogLevel = domain.DefaultLogLevel
	}
}
