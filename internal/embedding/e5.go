package embedding

import "context"

// E5-family models distinguish document text from search queries by a literal
// prefix on the input. Swapping or omitting the prefixes degrades retrieval
// quality without any error, so they must be applied exactly as written here.
const (
	// PassagePrefix marks document text.
	PassagePrefix = "passage: "

	// QueryPrefix marks search queries.
	QueryPrefix = "query: "
)

// EmbedPassage embeds a single document sentence with the passage prefix.
func EmbedPassage(ctx context.Context, p Provider, sentence string) ([]float32, error) {
	emb, err := p.Embed(ctx, PassagePrefix+sentence)
	if err != nil {
		return nil, err
	}
	return emb.Vector, nil
}

// EmbedPassages embeds document sentences in order. Row i of the result
// embeds sentences[i]; callers must never reorder one without the other.
func EmbedPassages(ctx context.Context, p Provider, sentences []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(sentences))
	for _, s := range sentences {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		vec, err := EmbedPassage(ctx, p, s)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, vec)
	}
	return vectors, nil
}

// EmbedQuery embeds a search query with the query prefix.
func EmbedQuery(ctx context.Context, p Provider, query string) ([]float32, error) {
	emb, err := p.Embed(ctx, QueryPrefix+query)
	if err != nil {
		return nil, err
	}
	return emb.Vector, nil
}
