// Package cmd contains all CLI commands for lc0ctl
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lc0-tools/lc0ctl/internal/config"
	"github.com/lc0-tools/lc0ctl/internal/output"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	colorFlag string
	colorMode output.ColorMode
	cfg       *config.Config
	logger    *slog.Logger
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lc0ctl",
	Short: "Leela Chess Zero training data tooling",
	Long: `lc0ctl is a CLI tool for working with lc0 training data archives.

It generates download URL lists for the hourly training archives published
per calendar month, and inspects downloaded archives by decoding the V6
training records inside them.

Example usage:
  lc0ctl urls -y 2024 -m 12                        # URLs for December 2024
  lc0ctl urls -y 2024 -m 12 | xargs -n 1 -P 4 wget -c
  lc0ctl inspect training-run1-test80-20241201-0017.tar
  lc0ctl config                                    # Show effective config`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .lc0ctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, or never")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error

	// Setup logger
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	colorMode, err = output.ParseColorMode(colorFlag)
	if err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	// Load configuration
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Update logger based on config
	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	logger.Debug("configuration loaded",
		"url_template", cfg.URLs.Template,
		"inspect_limit", cfg.Inspect.Limit,
	)

	return nil
}

// newPrinter builds a Printer from the persistent flags and loaded config
func newPrinter() *output.Printer {
	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    colorMode,
		ConfigColors: cfg.Output.Colors,
		Quiet:        quiet,
	})
}
