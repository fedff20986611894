// Package rank orders sentences by similarity to a query embedding.
package rank

import (
	"errors"
	"sort"
)

// ErrLengthMismatch is returned when the embedding matrix and sentence list
// disagree on length. Row i of the matrix must always embed sentence i.
var ErrLengthMismatch = errors.New("embedding row count does not match sentence count")

// Result pairs a sentence with its similarity score.
type Result struct {
	Sentence string
	Score    float32
}

// Dot computes the dot product of two vectors. For unit-normalized vectors
// this equals their cosine similarity. Mismatched lengths score 0.
func Dot(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}
	var dot float32
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot
}

// Rank scores every matrix row against the query vector and returns the top k
// results sorted by score descending. Ties keep original corpus order. If k
// exceeds the corpus size, all results are returned; k <= 0 means no limit.
// Inputs are never modified.
func Rank(query []float32, matrix [][]float32, sentences []string, k int) ([]Result, error) {
	if len(matrix) != len(sentences) {
		return nil, ErrLengthMismatch
	}

	results := make([]Result, len(sentences))
	for i, row := range matrix {
		results[i] = Result{
			Sentence: sentences[i],
			Score:    Dot(query, row),
		}
	}

	// Stable sort keeps corpus order for equal scores, which makes
	// result ordering reproducible.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k > 0 && len(results) > k {
		results = results[:k]
	}

	return results, nil
}
