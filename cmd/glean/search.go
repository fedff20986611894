package main

import (
	"os"
	"os/signal"
	"strings"

	"github.com/akashbommisetty/glean/internal/config"
	"github.com/akashbommisetty/glean/internal/embedding"
	"github.com/akashbommisetty/glean/internal/index"
	"github.com/akashbommisetty/glean/internal/rank"
	"github.com/spf13/cobra"
)

var searchTopK int

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVarP(&searchTopK, "top", "k", 0, "Number of results to show (default from config, 3)")
	searchCmd.Flags().StringVar(&indexPath, "index", index.DefaultFileName, "Path of the index file")
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search an indexed document by semantic similarity",
	Long: `Rank the sentences of a previously indexed document against a query.

Only the query is embedded at search time; the document embeddings come
from the index built with 'glean index build'.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	query := strings.TrimSpace(args[0])
	if query == "" {
		exitWithError(ExitError, "search query cannot be empty")
	}

	topK := searchTopK
	if topK <= 0 {
		topK = config.GetTopK()
	}

	idx := mustLoadIndex()

	provider := mustProvider(ctx)

	// A query embedded by a different model lives in a different space;
	// scores against the stored vectors would be meaningless.
	if err := idx.CheckModel(provider.ModelName()); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	queryVec, err := embedding.EmbedQuery(ctx, provider, query)
	if err != nil {
		exitWithError(ExitError, "embedding query: %v", err)
	}

	results, err := rank.Rank(queryVec, idx.Vectors, idx.Sentences, topK)
	if err != nil {
		exitWithError(ExitError, "ranking sentences: %v", err)
	}

	printResults(query, results)
	return nil
}
