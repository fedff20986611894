package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/akashbommisetty/glean/internal/chat"
	"github.com/akashbommisetty/glean/internal/config"
	"github.com/akashbommisetty/glean/internal/gemini"
	"github.com/akashbommisetty/glean/internal/history"
	"github.com/spf13/cobra"
)

var chatDebug bool

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().BoolVarP(&chatDebug, "debug", "d", false, "Print the raw API response after each answer")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive Gemini chat session",
	Long: `Start an interactive chat session with the Gemini API.

Prompts are read from stdin one line at a time; type 'exit' or 'quit'
to leave. The API key is read from the GEMINI_API_KEY environment
variable (a .env file in the working directory is loaded if present).
Completed turns are saved to the local chat history.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	var opts []gemini.Option
	if model := config.GetChatModel(); model != "" {
		opts = append(opts, gemini.WithModel(model))
	}

	client, err := gemini.NewClient(opts...)
	if err != nil {
		if errors.Is(err, gemini.ErrMissingAPIKey) {
			exitWithError(ExitConfigError,
				"GEMINI_API_KEY is not set\n\nExport it or add it to a .env file:\n  GEMINI_API_KEY=your-key")
		}
		exitWithError(ExitError, "creating client: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	sessionOpts := []chat.SessionOption{chat.WithDebug(chatDebug)}

	// History is best-effort: a broken store degrades to an unrecorded session.
	if path := config.GetHistoryPath(); path != "" {
		store, err := history.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: chat history disabled: %v\n", err)
		} else {
			defer store.Close()
			sessionOpts = append(sessionOpts, chat.WithRecorder(func(prompt, answer string) error {
				return store.Record(prompt, answer, client.Model())
			}))
		}
	}

	session := chat.NewSession(client, sessionOpts...)
	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}
