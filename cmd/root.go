package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/lemonade/internal/config"
	"github.com/fakeyudi/lemonade/internal/log"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

var (
	logFile  string
	logLevel string
)

// logOutput is the open log file, if any.
var logOutput *os.File

var rootCmd = &cobra.Command{
	Use:   "lemonade",
	Short: "Make and drink lemonade, one tap at a time",
	// Running without a subcommand plays the game.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, false)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		merged, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = merged

		// Flags override config files.
		if logFile != "" {
			cfg.LogFile = logFile
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		return setupLogging(cfg)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logOutput != nil {
			err := logOutput.Close()
			logOutput = nil
			return err
		}
		return nil
	},
}

// setupLogging points the global logger at the configured file.
func setupLogging(c config.Config) error {
	if c.LogFile == "" {
		log.Configure(log.Config{Level: c.LogLevel})
		return nil
	}
	f, err := log.OpenFile(c.LogFile)
	if err != nil {
		return err
	}
	logOutput = f
	log.Configure(log.Config{Level: c.LogLevel, Output: f})
	return nil
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append structured logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}
