package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/jackyeh168/points_bot/src/internal/config"
	"github.com/jackyeh168/points_bot/src/internal/logging"
	"github.com/jackyeh168/points_bot/src/internal/version"
)

const (
	programName = "pointsbot"
)

func slogPrintf(format string, v ...any) {
	slog.Info(fmt.Sprintf(format, v...),
		"component", programName,
	)
}

var (
	globalFlags = struct {
		debug     bool
		logFormat string
	}{}
	configFile string
	envFile    string
)

func commonRun(cfg *config.Config) *slog.Logger {
	logger := logging.New(logging.Options{
		Format: cfg.LogFormat,
		Debug:  cfg.Debug,
	}).With("app", programName)
	slog.SetDefault(logger)
	// Configure max processes with our logger wrapper, toss undo func
	if _, err := maxprocs.Set(maxprocs.Logger(slogPrintf)); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("version: " + version.GetVersionString())
	return logger
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Telegram bot for points and random boxes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().
		BoolVarP(&globalFlags.debug, "debug", "D", false, "enable debug logging")
	rootCmd.PersistentFlags().
		StringVar(&globalFlags.logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", ".env", "path to .env file, ignored if missing")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with command line flags
		if globalFlags.debug {
			cfg.Debug = true
		}
		if globalFlags.logFormat != "" {
			cfg.LogFormat = globalFlags.logFormat
		}

		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	}

	// Subcommands
	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(syncAdminsCommand())
	rootCmd.AddCommand(versionCommand())

	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		// skip config loading
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(programName, version.GetVersionString())
		},
	}
}
