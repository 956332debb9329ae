package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/plugintriage/internal/config"
	"github.com/spf13/cobra"
)

const (
	// Exit codes
	ExitOK           = 0 // Success
	ExitInvalidInput = 2 // Input shape or parse error
	ExitRuntimeError = 3 // I/O, network, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	verbose    bool
	debug      bool
)

// version is injected by SetVersion before Execute runs.
var version = "dev"

// SetVersion records the build-time version string.
func SetVersion(v string) {
	version = v
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plugintriage",
	Short: "plugintriage - Plugin security and maintenance report generator",
	Long: `plugintriage aggregates security and maintenance metadata about plugins
from the update center snapshot, a vulnerability-findings file, a
static-analysis scanner file, and manual annotations into one normalized
JSON report.

Quick start:
  plugintriage generate
  plugintriage browse
  plugintriage export -o report.csv

Other commands:
  plugintriage validate
  plugintriage version`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags if provided
		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(HandleError(err))
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/.plugintriage.yaml or ./plugintriage.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plugintriage %s\n", version)
		fmt.Println("Plugin security and maintenance report generator")
	},
}

// HandleError determines the appropriate exit code for an error
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	switch err.(type) {
	case *ValidationError:
		return ExitInvalidInput
	default:
		return ExitRuntimeError
	}
}

// ValidationError represents an input validation failure
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
