package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blindrun/blindrun/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent announcements from the transcript",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of rows to print")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	if cfg.HistoryPath == "" {
		return fmt.Errorf("no history_path configured")
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}

	for _, e := range entries {
		marker := " "
		if e.Interrupt {
			marker = "!"
		}
		fmt.Printf("%s %s [%s] %s\n", marker, e.SpokenAt.Format("2006-01-02 15:04:05"), e.SessionID[:8], e.Text)
	}

	return nil
}
