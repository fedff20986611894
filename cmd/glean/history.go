package main

import (
	"fmt"
	"time"

	"github.com/akashbommisetty/glean/internal/config"
	"github.com/akashbommisetty/glean/internal/history"
	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of turns to show (0 for all)")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent chat turns",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := config.GetHistoryPath()
	if path == "" {
		exitWithError(ExitConfigError, "cannot determine history location (no home directory?)")
	}

	store, err := history.Open(path)
	if err != nil {
		exitWithError(ExitError, "opening history: %v", err)
	}
	defer store.Close()

	turns, err := store.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if len(turns) == 0 {
		fmt.Println("No chat history yet. Start a session with 'glean chat'.")
		return nil
	}

	for _, t := range turns {
		fmt.Printf("[%s] %s\n", t.AskedAt.Format(time.DateTime), t.Model)
		fmt.Printf("  You:    %s\n", t.Prompt)
		fmt.Printf("  Gemini: %s\n\n", t.Answer)
	}
	return nil
}
