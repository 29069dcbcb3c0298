package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdata/registry-enrich/pkg/config"
	"github.com/avdata/registry-enrich/pkg/enrich"
	"github.com/avdata/registry-enrich/pkg/logging"
	"github.com/avdata/registry-enrich/pkg/registry"
)

// NewScrapeCommand builds the scraper root command.
func NewScrapeCommand() *cobra.Command {
	var (
		registryURL    string
		timeoutSeconds int
		checkpointRows int
		noResume       bool
		logLevel       string
		logFormat      string
	)

	cmd := &cobra.Command{
		Use:   "scraper [file]",
		Short: "Fill an aircraft CSV with FAA registry data",
		Long: `Reads N-NUMBERs from a CSV file, looks each one up in the FAA aircraft
registry and writes the registry fields back into the same file. Interrupted
or partially failed runs pick up where they left off.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A .env file is optional and never beats the real environment.
			_ = godotenv.Load()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			// Flags beat the environment.
			if len(args) == 1 {
				cfg.InputFile = args[0]
			}
			if cmd.Flags().Changed("registry-url") {
				cfg.Registry.URL = registryURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Registry.Timeout = time.Duration(timeoutSeconds) * time.Second
			}
			if cmd.Flags().Changed("checkpoint-rows") {
				cfg.CheckpointRows = checkpointRows
			}
			if noResume {
				cfg.Resume = false
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client := registry.NewClient(cfg.Registry, logger)
			enricher := enrich.NewEnricher(client, logger).
				WithCheckpointRows(cfg.CheckpointRows).
				WithResume(cfg.Resume)

			summary, err := enricher.Run(ctx, cfg.InputFile)
			if err != nil {
				logger.Error("Enrichment run failed", zap.Error(err))
				return err
			}
			if summary.Interrupted {
				logger.Warn("Run stopped early, rerun to finish the remaining rows",
					zap.Int("remainingRows", summary.TotalRows-summary.SkippedRows-summary.ProcessedRows))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&registryURL, "registry-url", config.DefaultRegistryURL, "Registry inquiry endpoint")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 30, "Registry request timeout in seconds")
	cmd.Flags().IntVar(&checkpointRows, "checkpoint-rows", 20, "Rows between checkpoint writes (0 disables them)")
	cmd.Flags().BoolVar(&noResume, "no-resume", false, "Re-fetch every row instead of resuming at the first unfetched one")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "json", "Log format (json, console)")

	return cmd
}

// ExecuteScrape is the scraper binary entry point.
func ExecuteScrape() int {
	return execute(NewScrapeCommand())
}
