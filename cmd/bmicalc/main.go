// Package main provides the bmicalc CLI entry point.
package main

import (
	"fmt"
	"os"

	"bmicalc/internal/config"
	"bmicalc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bmicalc",
	Short: "Body Mass Index calculator",
	Long: `bmicalc computes Body Mass Index from height in feet and inches and
weight in kilograms, and reports the category (Underweight, Normal,
Overweight or Obese).

Run without arguments to open the interactive form.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The form owns the terminal; stderr logging would draw over it.
		if cmd == cmd.Root() {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runForm,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: .bmicalc/config.yaml)")

	calcCmd.Flags().StringVar(&calcFeet, "feet", "", "Height, feet part")
	calcCmd.Flags().StringVar(&calcInches, "inches", "", "Height, inches part")
	calcCmd.Flags().StringVar(&calcWeight, "weight", "", "Weight in kilograms")
	calcCmd.Flags().BoolVar(&calcStrict, "strict", false, "Reject non-numeric input (default from engine.strict_numbers)")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the result as JSON")

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig reads and validates the config file.
func loadConfig() (*config.Config, string, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, path, nil
}

// initLogging starts the category loggers next to the config file. Failures
// only disable file logging.
func initLogging(cfg *config.Config, path string) {
	if err := logging.Initialize(config.LogsDir(path), cfg.Logging.Settings()); err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: %v\n", err)
	}
}
