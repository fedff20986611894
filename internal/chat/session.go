// Package chat implements the interactive Gemini chat session.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Asker sends a prompt to a language model and returns the answer text plus
// the raw decoded response body.
type Asker interface {
	Ask(ctx context.Context, prompt string) (answer string, raw []byte, err error)
}

// RecorderFunc receives each completed turn, e.g. to persist chat history.
// A recording failure is reported but never interrupts the session.
type RecorderFunc func(prompt, answer string) error

// Session drives the read-ask-print loop.
type Session struct {
	asker    Asker
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	debug    bool
	recorder RecorderFunc
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithInput sets the reader for user prompts (defaults to stdin).
func WithInput(r io.Reader) SessionOption {
	return func(s *Session) {
		s.in = r
	}
}

// WithOutput sets the writers for answers and errors.
func WithOutput(out, errOut io.Writer) SessionOption {
	return func(s *Session) {
		s.out = out
		s.errOut = errOut
	}
}

// WithDebug makes the session print the raw API response after each answer.
func WithDebug(debug bool) SessionOption {
	return func(s *Session) {
		s.debug = debug
	}
}

// WithRecorder sets the history recorder for completed turns.
func WithRecorder(r RecorderFunc) SessionOption {
	return func(s *Session) {
		s.recorder = r
	}
}

// NewSession creates a chat session around the given Asker.
func NewSession(asker Asker, opts ...SessionOption) *Session {
	s := &Session{
		asker:  asker,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const separator = "------------------------------------------------------------"

// inputLine is one scanned line of user input, or the end of input.
type inputLine struct {
	text string
	err  error
	eof  bool
}

// readLines scans input on its own goroutine so Run can observe context
// cancellation while blocked at the prompt. The channel is unbuffered, so
// the scanner reads at most one line ahead of the loop.
func (s *Session) readLines() <-chan inputLine {
	ch := make(chan inputLine)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			ch <- inputLine{text: scanner.Text()}
		}
		ch <- inputLine{eof: true, err: scanner.Err()}
	}()
	return ch
}

// Run reads prompts until "exit"/"quit", EOF, or context cancellation.
// Empty lines are skipped without a request. Per-turn failures are printed
// and the loop continues; only input errors end the session abnormally.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Gemini CLI (type 'exit' to quit)\n\n")

	lines := s.readLines()
	for {
		fmt.Fprint(s.out, "You: ")

		var line inputLine
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "\nInterrupted. Exiting.")
			return nil
		case line = <-lines:
		}
		if line.eof {
			fmt.Fprintln(s.out, "\nBye!")
			return line.err
		}

		prompt := strings.TrimSpace(line.text)
		if prompt == "" {
			continue
		}
		if isExit(prompt) {
			fmt.Fprintln(s.out, "Bye!")
			return nil
		}

		answer, raw, err := s.asker.Ask(ctx, prompt)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(s.out, "\nInterrupted. Exiting.")
				return nil
			}
			fmt.Fprintf(s.errOut, "error: %v\n", err)
			continue
		}

		fmt.Fprintf(s.out, "\nGemini:\n\n%s\n", answer)

		if s.debug {
			fmt.Fprintf(s.out, "\n--- RAW RESPONSE ---\n\n%s\n", raw)
		}

		fmt.Fprintf(s.out, "\n%s\n", separator)

		if s.recorder != nil {
			if err := s.recorder(prompt, answer); err != nil {
				fmt.Fprintf(s.errOut, "warning: saving history: %v\n", err)
			}
		}
	}
}

// isExit reports whether input is a case-insensitive exit sentinel.
func isExit(input string) bool {
	return strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit")
}
