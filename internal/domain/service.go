package domain

// TransposeService rewrites a spike file so that its columns become rows
type TransposeService interface {
	Run(cfg *Config) (*SpikeMatrix, error)
}

// SumService totals an integer-per-line file
type SumService interface {
	Sum(path string) (*SumReport, error)
}
