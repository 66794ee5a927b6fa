package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/ecolite"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run all catalog checks",
	Long: `Validate the ECO-lite dataset.

This command checks:
- The file parses as a JSON array
- Each entry carries the eco, name, and moves keys
- No two entries share a move string

On success it prints the entry count and file size. On failure it prints a
single diagnostic naming the offending entries and exits non-zero.`,
	RunE: runValidate,
}

var (
	strictMoves bool
)

func init() {
	validateCmd.Flags().BoolVar(&strictMoves, "strict-moves", false, "also verify each moves string is a legal move sequence")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	v, err := ecolite.New(
		ecolite.WithLogger(logger.Named("ecolite")),
		ecolite.WithMoveCheck(strictMoves),
	)
	if err != nil {
		return err
	}

	report, err := v.Validate(cmd.Context(), dataPath)
	if err != nil {
		return err
	}

	fmt.Printf("ECO-lite entries: %d\n", report.Entries)
	fmt.Printf("Approximate file size: %d bytes\n", report.ByteSize)
	return nil
}
