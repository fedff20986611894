package index

import (
	"context"
	"fmt"
	"time"

	"github.com/akashbommisetty/glean/internal/embedding"
)

// ProgressFunc receives progress updates during a build: how many sentences
// have been embedded out of the total.
type ProgressFunc func(done, total int)

// Builder embeds a document's sentences and assembles an Index.
type Builder struct {
	provider embedding.Provider
	progress ProgressFunc
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithProgress sets a progress callback invoked after each embedded sentence.
func WithProgress(fn ProgressFunc) BuilderOption {
	return func(b *Builder) {
		b.progress = fn
	}
}

// NewBuilder creates a Builder around the given embedding provider.
func NewBuilder(provider embedding.Provider, opts ...BuilderOption) *Builder {
	b := &Builder{provider: provider}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build embeds every sentence as a passage and returns the populated index.
// Sentences keep their input order, so row i of the index embeds sentence i.
// Cancellation is checked between sentences; a partial build is discarded.
func (b *Builder) Build(ctx context.Context, source string, sentences []string) (*Index, error) {
	if len(sentences) == 0 {
		return nil, fmt.Errorf("no sentences to index")
	}

	idx := New(b.provider.ModelName(), b.provider.Dimensions(), source)
	start := time.Now()

	for i, sentence := range sentences {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vec, err := embedding.EmbedPassage(ctx, b.provider, sentence)
		if err != nil {
			return nil, fmt.Errorf("embedding sentence %d: %w", i+1, err)
		}
		if err := idx.Add(sentence, vec); err != nil {
			return nil, fmt.Errorf("adding sentence %d: %w", i+1, err)
		}

		if b.progress != nil {
			b.progress(i+1, len(sentences))
		}
	}

	idx.BuildDurationMs = time.Since(start).Milliseconds()
	return idx, nil
}
