package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdata/registry-enrich/pkg/config"
	"github.com/avdata/registry-enrich/pkg/convert"
	"github.com/avdata/registry-enrich/pkg/logging"
)

// NewConvertCommand builds the converter root command.
func NewConvertCommand() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an aircraft CSV into an XLSX workbook",
		Long: `Copies the tabular content of a CSV file into an XLSX workbook written
next to it, same name with the extension swapped. The file does not need to
be enriched first.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if len(args) == 1 {
				cfg.InputFile = args[0]
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			xlsxPath, err := convert.CSVToXLSX(cfg.InputFile)
			if err != nil {
				logger.Error("Conversion failed", zap.Error(err))
				return err
			}

			logger.Info("Workbook written",
				zap.String("csv", cfg.InputFile),
				zap.String("xlsx", xlsxPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "json", "Log format (json, console)")

	return cmd
}

// ExecuteConvert is the converter binary entry point.
func ExecuteConvert() int {
	return execute(NewConvertCommand())
}
