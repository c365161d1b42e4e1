package domain

import (
	"errors"
)

const (
	DefaultInputPath  = "./data/inputSpikes.txt"
	DefaultOutputPath = "./data/inputs.txt"
	DefaultLogLevel   = "info"
)

// Config holds the transposer settings
type Config struct {
	Input          string `yaml:"input"`
	Output         string `yaml:"output"`
	KeepTerminator bool   `yaml:"keep_terminator"`
	Alphabet       string `yaml:"alphabet"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
}

// DefaultConfig returns the paths and options the original tool had hard-coded.
func DefaultConfig() *Config {
	return &Config{
		Input:    DefaultInputPath,
		Output:   DefaultOutputPath,
		LogLevel: DefaultLogLevel,
	}
}

// SpikeMatrix is a list of rows of single-character spike codes.
type SpikeMatrix struct {
	Rows  [][]rune
	Width int
}

// Lines renders each row as a string.
func (m *SpikeMatrix) Lines() []string {
	lines := make([]string, len(m.Rows))
	for i, row := range m.Rows {
		lines[i] = string(row)
	}
	return lines
}

// SumReport is the outcome of summing an integer file.
type SumReport struct {
	Path   string
	Total  int64
	Values []int64
}

var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrParse            = errors.New("parse error")
	ErrOverflow         = errors.New("sum overflows int64")
	ErrEmptyInput       = errors.New("empty input")
	ErrRaggedInput      = errors.New("ragged input")
	ErrBadSpikeCode     = errors.New("bad spike code")
	ErrInvalidEncoding  = errors.New("invalid UTF-8")
)
