package domain

// LineReader reads a text file as a list of lines
type LineReader interface {
	ReadLines(filename string, keepTerminator bool) ([]string, error)
}

// LineWriter writes lines to a text file, one per line
type LineWriter interface {
	WriteLines(filename string, lines []string) error
}

// ConfigReader reads the transposer configuration
type ConfigReader interface {
	ReadConfig(path string) (*Config, error)
}
