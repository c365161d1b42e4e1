package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spike-tools/internal/app"
	"spike-tools/internal/domain"
	"spike-tools/internal/infrastructure"
)

// NewTransposerCommand builds the transposer root command. Flags override
// the YAML config, which overrides the built-in defaults.
func NewTransposerCommand() *cobra.Command {
	var (
		configPath string
		flagCfg    domain.Config
	)

	cmd := &cobra.Command{
		Use:           "transposer",
		Short:         "Turn the columns of a spike file into rows",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := infrastructure.NewLogger(flagCfg.LogLevel, flagCfg.LogFile)
			if err != nil {
				return err
			}

			config, err := infrastructure.NewYAMLConfigReader(logger).ReadConfig(configPath)
			if err != nil {
				logger.Sync()
				return err
			}
			applyFlags(cmd, config, &flagCfg)

			// Rebuild with the final level and log file
			if config.LogLevel != flagCfg.LogLevel || config.LogFile != flagCfg.LogFile {
				logger.Sync()
				if logger, err = infrastructure.NewLogger(config.LogLevel, config.LogFile); err != nil {
					return err
				}
			}
			defer logger.Sync()

			transposer := app.NewSpikeTransposer(logger,
				infrastructure.NewTXTFileReader(logger),
				infrastructure.NewTXTFileWriter(logger))

			if _, err := transposer.Run(config); err != nil {
				logger.Error("Transpose failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	cmd.Flags().StringVarP(&flagCfg.Input, "input", "i", domain.DefaultInputPath, "Spike file to read")
	cmd.Flags().StringVarP(&flagCfg.Output, "output", "o", domain.DefaultOutputPath, "File to write, overwritten")
	cmd.Flags().BoolVar(&flagCfg.KeepTerminator, "keep-terminator", false, "Count the line terminator as a spike code, like the legacy script")
	cmd.Flags().StringVar(&flagCfg.Alphabet, "alphabet", "", "Allowed spike codes, e.g. 01 (empty allows any)")
	cmd.Flags().StringVar(&flagCfg.LogLevel, "log-level", domain.DefaultLogLevel, "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flagCfg.LogFile, "log-file", "", "Also write logs to this file")

	return cmd
}

func applyFlags(cmd *cobra.Command, config *domain.Config, flagCfg *domain.Config) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		config.Input = flagCfg.Input
	}
	if flags.Changed("output") {
		config.Output = flagCfg.Output
	}
	if flags.Changed("keep-terminator") {
		config.KeepTerminator = flagCfg.KeepTerminator
	}
	if flags.Changed("alphabet") {
		config.Alphabet = flagCfg.Alphabet
	}
	if flags.Changed("log-level") {
		config.LogLevel = flagCfg.LogLevel
	}
	if flags.Changed("log-file") {
		config.LogFile = flagCfg.LogFile
	}
}
