package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/akashbommisetty/glean/internal/index"
	"github.com/akashbommisetty/glean/internal/pdftext"
	"github.com/spf13/cobra"
)

var (
	indexPath       string
	indexNoProgress bool
)

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexBuildCmd)
	indexCmd.AddCommand(indexInfoCmd)

	indexCmd.PersistentFlags().StringVar(&indexPath, "index", index.DefaultFileName, "Path of the index file")
	indexBuildCmd.Flags().BoolVar(&indexNoProgress, "no-progress", false, "Suppress progress output")
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the sentence embedding index",
}

var indexBuildCmd = &cobra.Command{
	Use:   "build <pdf>",
	Short: "Embed a PDF's sentences and save them to an index",
	Long: `Extract sentences from a PDF, embed each one with the local E5
model, and save the result to a reusable index file.

Searching the index with 'glean search' only embeds the query, so
repeated searches over the same document skip the expensive part.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndexBuild,
}

func runIndexBuild(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	path := args[0]

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

	provider := mustProvider(ctx)

	var opts []index.BuilderOption
	if !indexNoProgress {
		opts = append(opts, index.WithProgress(func(done, total int) {
			fmt.Printf("\rEmbedding sentences... %d/%d", done, total)
			if done == total {
				fmt.Println()
			}
		}))
	}

	builder := index.NewBuilder(provider, opts...)
	idx, err := builder.Build(ctx, path, sentences)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			exitWithError(ExitError, "build interrupted")
		}
		exitWithError(ExitError, "building index: %v", err)
	}

	if err := idx.Save(indexPath); err != nil {
		exitWithError(ExitError, "saving index: %v", err)
	}

	fmt.Printf("Indexed %d sentences from %s in %s\n",
		idx.Len(), path, formatDuration(time.Duration(idx.BuildDurationMs)*time.Millisecond))
	fmt.Printf("Index written to %s\n", indexPath)
	return nil
}

var indexInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show index metadata",
	Args:  cobra.NoArgs,
	RunE:  runIndexInfo,
}

func runIndexInfo(cmd *cobra.Command, args []string) error {
	idx := mustLoadIndex()

	size, err := index.Size(indexPath)
	if err != nil {
		exitWithError(ExitError, "reading index file: %v", err)
	}

	fmt.Printf("Source:     %s\n", idx.Source)
	fmt.Printf("Sentences:  %d\n", idx.Len())
	fmt.Printf("Model:      %s (%d dimensions)\n", idx.ModelName, idx.Dimensions)
	fmt.Printf("Created:    %s\n", idx.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Build time: %s\n", formatDuration(time.Duration(idx.BuildDurationMs)*time.Millisecond))
	fmt.Printf("File size:  %s\n", formatBytes(size))
	return nil
}

// mustLoadIndex loads the index file or exits with a helpful message.
func mustLoadIndex() *index.Index {
	idx, err := index.Load(indexPath)
	if err != nil {
		switch {
		case errors.Is(err, index.ErrIndexNotFound):
			exitWithError(ExitDataError, "index not found at %s\n\nRun 'glean index build <pdf>' to create it.", indexPath)
		case errors.Is(err, index.ErrUnsupportedVersion):
			exitWithError(ExitDataError, "%v", err)
		default:
			exitWithError(ExitError, "loading index: %v", err)
		}
	}
	return idx
}
