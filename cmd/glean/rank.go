package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/akashbommisetty/glean/internal/config"
	"github.com/akashbommisetty/glean/internal/embedding"
	"github.com/akashbommisetty/glean/internal/pdftext"
	"github.com/akashbommisetty/glean/internal/rank"
	"github.com/spf13/cobra"
)

// DefaultQuery is used when no query is given, mirroring the most common
// use: surfacing the sentences about finding related material.
const DefaultQuery = "How do we find related documents?"

var (
	rankQuery   string
	rankTopK    int
	rankVerbose bool
)

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVarP(&rankQuery, "query", "q", DefaultQuery, "Query to rank sentences against")
	rankCmd.Flags().IntVarP(&rankTopK, "top", "k", 0, "Number of results to show (default from config, 3)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "List extracted sentences before ranking")
}

var rankCmd = &cobra.Command{
	Use:   "rank <pdf>",
	Short: "Rank a PDF's sentences by similarity to a query",
	Long: `Extract sentences from a PDF, embed them with the local E5 model,
and print the ones most similar to the query.

Each sentence is embedded once per run; use 'glean index build' to
persist embeddings for repeated searches over the same document.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	path := args[0]
	topK := rankTopK
	if topK <= 0 {
		topK = config.GetTopK()
	}

	sentences, err := pdftext.ExtractSentences(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			exitWithError(ExitDataError, "PDF not found: %s", path)
		case errors.Is(err, pdftext.ErrEmptyDocument):
			exitWithError(ExitDataError, "no text could be extracted from %s", path)
		default:
			exitWithError(ExitError, "reading PDF: %v", err)
		}
	}

	if rankVerbose {
		fmt.Printf("Extracted %d sentences from %s:\n\n", len(sentences), path)
		for i, s := range sentences {
			fmt.Printf("%3d. %s\n", i+1, s)
		}
		fmt.Println()
	}

	provider := mustProvider(ctx)

	matrix, err := embedding.EmbedPassages(ctx, provider, sentences)
	if err != nil {
		exitWithError(ExitError, "embedding sentences: %v", err)
	}

	queryVec, err := embedding.EmbedQuery(ctx, provider, rankQuery)
	if err != nil {
		exitWithError(ExitError, "embedding query: %v", err)
	}

	results, err := rank.Rank(queryVec, matrix, sentences, topK)
	if err != nil {
		exitWithError(ExitError, "ranking sentences: %v", err)
	}

	printResults(rankQuery, results)
	return nil
}
