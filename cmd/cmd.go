package cmd

import (
	"context"
	"log/slog"

	"github.com/gaze-network/realpay-receipts/internal/config"
	"github.com/gaze-network/realpay-receipts/pkg/logger"
	"github.com/gaze-network/realpay-receipts/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:          "realpay",
	Long:         `Receipt registry for RealPay PLT payments`,
	SilenceUsage: true,
}

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("database", "", "storage backend for receipts, E.g. `memory` or `postgres`")

	// Bind flags to configuration
	config.BindPFlag("modules.receipts.database", flags.Lookup("database"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		// Initialize configuration
		config := config.Parse(configFile)

		// Initialize logger
		if err := logger.Init(config.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", config.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	// Register sub-commands
	cmd.AddCommand(
		NewVersionCommand(),
		NewRunCommand(),
		NewMigrateCommand(),
		NewReceiptCommand(),
		NewExportCommand(),
	)

	// Execute command
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Panic("Failed to execute root command", slogx.Error(err))
	}
}
