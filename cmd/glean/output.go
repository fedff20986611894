package main

import (
	"fmt"
	"os"
	"time"

	"github.com/akashbommisetty/glean/internal/rank"
)

// exitWithError writes an error message to stderr and exits with the code.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// printResults prints ranked sentences with their similarity scores.
func printResults(query string, results []rank.Result) {
	fmt.Printf("Query: %q\n", query)
	fmt.Printf("Top %d most similar sentences:\n\n", len(results))
	for i, r := range results {
		fmt.Printf("%d. [%.4f] %s\n", i+1, r.Score, r.Sentence)
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// formatBytes formats bytes in a human-readable way.
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
