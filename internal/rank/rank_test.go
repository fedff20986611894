package rank

import (
	"errors"
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{
			name:     "identical unit vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{1, 0, 0},
			expected: 1.0,
		},
		{
			name:     "orthogonal vectors",
			a:        []float32{1, 0},
			b:        []float32{0, 1},
			expected: 0.0,
		},
		{
			name:     "opposite vectors",
			a:        []float32{1, 0},
			b:        []float32{-1, 0},
			expected: -1.0,
		},
		{
			name:     "45 degrees",
			a:        []float32{0.70710677, 0.70710677},
			b:        []float32{1, 0},
			expected: 0.7071067,
		},
		{
			name:     "different lengths",
			a:        []float32{1, 0},
			b:        []float32{1, 0, 0},
			expected: 0.0,
		},
		{
			name:     "empty vectors",
			a:        []float32{},
			b:        []float32{},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			if math.Abs(float64(got-tt.expected)) > 0.0001 {
				t.Errorf("Dot(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestRank(t *testing.T) {
	query := []float32{1, 0, 0}
	matrix := [][]float32{
		{0, 1, 0},
		{0.9, 0.1, 0},
		{1, 0, 0},
		{0, 0, 1},
	}
	sentences := []string{"ortho", "close", "exact", "other"}

	t.Run("returns exactly k results", func(t *testing.T) {
		results, err := Rank(query, matrix, sentences, 2)
		if err != nil {
			t.Fatalf("Rank failed: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Sentence != "exact" {
			t.Errorf("top result = %q, want %q", results[0].Sentence, "exact")
		}
		if results[1].Sentence != "close" {
			t.Errorf("second result = %q, want %q", results[1].Sentence, "close")
		}
	})

	t.Run("k larger than corpus returns all", func(t *testing.T) {
		results, err := Rank(query, matrix, sentences, 10)
		if err != nil {
			t.Fatalf("Rank failed: %v", err)
		}
		if len(results) != 4 {
			t.Errorf("expected 4 results, got %d", len(results))
		}
	})

	t.Run("zero k returns all", func(t *testing.T) {
		results, err := Rank(query, matrix, sentences, 0)
		if err != nil {
			t.Fatalf("Rank failed: %v", err)
		}
		if len(results) != 4 {
			t.Errorf("expected 4 results, got %d", len(results))
		}
	})

	t.Run("scores are non-increasing", func(t *testing.T) {
		results, err := Rank(query, matrix, sentences, 0)
		if err != nil {
			t.Fatalf("Rank failed: %v", err)
		}
		for i := 1; i < len(results); i++ {
			if results[i].Score > results[i-1].Score {
				t.Errorf("results not sorted: [%d]=%v > [%d]=%v",
					i, results[i].Score, i-1, results[i-1].Score)
			}
		}
	})

	t.Run("every result comes from the corpus", func(t *testing.T) {
		results, err := Rank(query, matrix, sentences, 0)
		if err != nil {
			t.Fatalf("Rank failed: %v", err)
		}
		corpus := make(map[string]bool, len(sentences))
		for _, s := range sentences {
			corpus[s] = true
		}
		for _, r := range results {
			if !corpus[r.Sentence] {
				t.Errorf("result %q not in corpus", r.Sentence)
			}
		}
	})
}

func TestRank_StableTies(t *testing.T) {
	query := []float32{1, 0}
	matrix := [][]float32{
		{0, 1},
		{1, 0},
		{1, 0},
		{1, 0},
	}
	sentences := []string{"last", "a", "b", "c"}

	results, err := Rank(query, matrix, sentences, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	// The three tied sentences must appear in corpus order.
	want := []string{"a", "b", "c", "last"}
	for i, w := range want {
		if results[i].Sentence != w {
			t.Errorf("results[%d] = %q, want %q", i, results[i].Sentence, w)
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	query := []float32{0.5, 0.5, 0.70710677}
	matrix := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.57735, 0.57735, 0.57735},
	}
	sentences := []string{"x", "y", "z", "diag"}

	first, err := Rank(query, matrix, sentences, 0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	for run := 0; run < 5; run++ {
		again, err := Rank(query, matrix, sentences, 0)
		if err != nil {
			t.Fatalf("Rank failed: %v", err)
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d: results[%d] = %+v, want %+v", run, i, again[i], first[i])
			}
		}
	}
}

func TestRank_DoesNotMutateInputs(t *testing.T) {
	query := []float32{1, 0}
	matrix := [][]float32{
		{0, 1},
		{1, 0},
	}
	sentences := []string{"second", "first"}

	if _, err := Rank(query, matrix, sentences, 1); err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	if sentences[0] != "second" || sentences[1] != "first" {
		t.Errorf("sentences mutated: %v", sentences)
	}
	if matrix[0][0] != 0 || matrix[0][1] != 1 {
		t.Errorf("matrix mutated: %v", matrix)
	}
}

func TestRank_LengthMismatch(t *testing.T) {
	query := []float32{1, 0}
	matrix := [][]float32{{1, 0}}
	sentences := []string{"a", "b"}

	_, err := Rank(query, matrix, sentences, 1)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestRank_DirectionalRelevance(t *testing.T) {
	// Hand-built unit vectors standing in for a deterministic model:
	// dimension 0 carries "cat" content, dimension 1 "dog", dimension 2 "pet".
	sentences := []string{
		"The cat sat on the mat.",
		"Dogs bark at night.",
		"Cats and dogs are pets.",
	}
	matrix := [][]float32{
		{0.95, 0.0, 0.312},
		{0.0, 0.95, 0.312},
		{0.577, 0.577, 0.577},
	}
	query := []float32{0.9, 0.1, 0.42} // "feline behavior"

	results, err := Rank(query, matrix, sentences, 2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Sentence == "Dogs bark at night." {
			t.Errorf("dog-only sentence outranked a cat sentence: %+v", results)
		}
	}
}
