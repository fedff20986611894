// Package main provides the glean CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// A missing .env is fine; the environment may already be set.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glean",
	Short: "Chat with Gemini and rank document sentences by similarity",
	Long: `glean is a CLI for asking questions and finding relevant text.

It has two halves: an interactive chat session backed by the Gemini
REST API, and a local pipeline that extracts sentences from a PDF,
embeds them with an E5 model served by Ollama, and ranks them against
a query by cosine similarity.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
