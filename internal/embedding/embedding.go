// Package embedding provides vector embedding generation for text.
package embedding

import "math"

// Embedding represents a vector embedding of text.
type Embedding struct {
	Vector []float32 // The embedding vector (e.g., 384 dimensions for e5-small)
}

// Dimensions returns the dimensionality of the embedding.
func (e Embedding) Dimensions() int {
	return len(e.Vector)
}

// Norm returns the L2 norm of the embedding vector.
func (e Embedding) Norm() float64 {
	var sum float64
	for _, v := range e.Vector {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// Normalize scales the vector to unit L2 norm in place.
// Zero vectors are left unchanged.
func (e Embedding) Normalize() {
	norm := e.Norm()
	if norm == 0 {
		return
	}
	for i := range e.Vector {
		e.Vector[i] = float32(float64(e.Vector[i]) / norm)
	}
}
