package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/discochess/ecolite"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the opening catalog",
	Long: `Display statistics about the ECO-lite dataset including:
- Number of entries
- Size on disk
- Entry counts per ECO volume (A-E)

The dataset is validated first; an invalid catalog reports the validation
failure instead of statistics.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	v, err := ecolite.New(ecolite.WithLogger(logger.Named("ecolite")))
	if err != nil {
		return err
	}

	records, err := v.ReadRecords(cmd.Context(), dataPath)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("Dataset is empty.")
		return nil
	}

	info, err := os.Stat(dataPath)
	if err != nil {
		return fmt.Errorf("stating dataset: %w", err)
	}

	volumes := make(map[byte]int)
	var other int
	for _, r := range records {
		if len(r.Eco) > 0 && r.Eco[0] >= 'A' && r.Eco[0] <= 'E' {
			volumes[r.Eco[0]]++
		} else {
			other++
		}
	}

	fmt.Printf("Dataset:    %s\n", dataPath)
	fmt.Printf("Entries:    %d\n", len(records))
	fmt.Printf("Size:       %s\n", formatBytes(info.Size()))
	fmt.Println("Per volume:")
	for vol := byte('A'); vol <= 'E'; vol++ {
		if n := volumes[vol]; n > 0 {
			fmt.Printf("  %c: %d\n", vol, n)
		}
	}
	if other > 0 {
		fmt.Printf("  other: %d\n", other)
	}

	return nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
