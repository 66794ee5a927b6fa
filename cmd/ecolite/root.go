package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/ecolite"
)

var (
	// Global flags.
	dataPath string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "ecolite",
	Short: "Validate the ECO-lite chess opening catalog",
	Long: `Ecolite is a dev helper for the ECO-lite opening catalog, a JSON
array of opening records keyed by move string.

It checks the catalog's structure, required fields, and move-string
uniqueness, and reports entry count and file size.

Examples:
  # Validate the catalog at the default location
  ecolite validate

  # Validate a compressed snapshot, including move legality
  ecolite validate --path data/eco_lite.json.zst --strict-moves

  # Show a per-volume breakdown
  ecolite stats`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataPath, "path", "p", ecolite.DefaultPath, "path to the ECO-lite dataset")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger returns a development logger when --verbose is set, a no-op
// logger otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
