package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spike-tools/internal/app"
	"spike-tools/internal/domain"
	"spike-tools/internal/infrastructure"
	"spike-tools/pkg/summary"
)

// NewSummerCommand builds the summer root command.
func NewSummerCommand() *cobra.Command {
	var (
		skipBlank bool
		withStats bool
		logLevel  string
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "summer file_to_count",
		Short: "Sum the integers of a file, one per line",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(cmd, fmt.Errorf("%w: expected 1, got %d", domain.ErrInvalidArguments, len(args)))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := infrastructure.NewLogger(logLevel, logFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			counter := app.NewSpikeCounter(logger, infrastructure.NewTXTFileReader(logger), skipBlank)
			report, err := counter.Sum(args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), FormatReport(report, withStats))
			return nil
		},
	}

	// Flag parsing runs before Args, so bad flags must report usage too
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(cmd, fmt.Errorf("%w: %v", domain.ErrInvalidArguments, err))
	})

	cmd.Flags().BoolVar(&skipBlank, "skip-blank", false, "Ignore blank lines instead of failing")
	cmd.Flags().BoolVar(&withStats, "stats", false, "Also print count, mean, stddev, min and max")
	cmd.Flags().StringVar(&logLevel, "log-level", domain.DefaultLogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Also write logs to this file")

	return cmd
}

// usageError prints the legacy usage line and exits with ExitUsage.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.OutOrStdout(), "USAGE: %s file_to_count.\n", cmd.Name())
	return &CLIError{
		Code:  ExitUsage,
		Err:   err,
		Quiet: true,
	}
}

// FormatReport renders the summer output.
func FormatReport(report *domain.SumReport, withStats bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n\t\t-- total spikes emitted: [%d]\n", report.Path, report.Total)
	if withStats {
		s := summary.Describe(report.Values)
		fmt.Fprintf(&b, "\t\t-- lines: %d, mean: %g, stddev: %g, min: %g, max: %g\n",
			s.N, s.Mean, s.StdDev, s.Min, s.Max)
	}
	return b.String()
}
