package embedding

import "context"

// Provider generates embeddings from text.
//
// Implementations must return unit-normalized vectors so that downstream
// cosine similarity reduces to a dot product.
type Provider interface {
	// Embed generates a unit-normalized embedding for the given text.
	Embed(ctx context.Context, text string) (Embedding, error)

	// ModelName returns the name of the embedding model.
	ModelName() string

	// Dimensions returns the expected vector dimensions.
	Dimensions() int
}
