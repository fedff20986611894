// Package index persists sentence embeddings for a document so searches can
// skip re-embedding the corpus.
package index

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Errors returned by index operations.
var (
	ErrIndexNotFound      = errors.New("sentence index not found")
	ErrUnsupportedVersion = errors.New("unsupported index version")
	ErrModelMismatch      = errors.New("index was built with a different embedding model")
)

const (
	// DefaultFileName is the index file written next to the source document.
	DefaultFileName = "glean-index.gob"

	// CurrentVersion is the format version for compatibility checking.
	// Increment this when making breaking changes to the index format.
	CurrentVersion = 1
)

// Index holds the embedded sentences of a single document.
//
// Sentences and Vectors are parallel slices: Vectors[i] embeds Sentences[i].
// Nothing may reorder one without the other; ranking sorts derived
// (sentence, score) pairs instead.
type Index struct {
	Version         int
	ModelName       string
	Dimensions      int
	Source          string // path of the indexed document
	CreatedAt       time.Time
	BuildDurationMs int64

	Sentences []string
	Vectors   [][]float32
}

// New creates an empty index for the given model.
func New(modelName string, dimensions int, source string) *Index {
	return &Index{
		Version:    CurrentVersion,
		ModelName:  modelName,
		Dimensions: dimensions,
		Source:     source,
		CreatedAt:  time.Now(),
	}
}

// Len returns the number of indexed sentences.
func (idx *Index) Len() int {
	return len(idx.Sentences)
}

// Add appends a sentence and its embedding, keeping the slices parallel.
func (idx *Index) Add(sentence string, vector []float32) error {
	if len(vector) != idx.Dimensions {
		return fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(vector), idx.Dimensions)
	}
	idx.Sentences = append(idx.Sentences, sentence)
	idx.Vectors = append(idx.Vectors, vector)
	return nil
}

// CheckModel returns ErrModelMismatch if the index was built with a different
// embedding model than the one about to query it.
func (idx *Index) CheckModel(modelName string) error {
	if idx.ModelName != modelName {
		return fmt.Errorf("%w: index has %q, provider has %q (rebuild with 'glean index build')",
			ErrModelMismatch, idx.ModelName, modelName)
	}
	return nil
}

// Save persists the index using GOB encoding. The write goes to a temp file
// first, then renames for atomicity.
func (idx *Index) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating index directory: %w", err)
		}
	}

	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	enc := gob.NewEncoder(f)
	if err := enc.Encode(idx); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("encoding index: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("closing file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// Load reads an index from disk.
// Returns ErrUnsupportedVersion for indexes written by an incompatible format.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrIndexNotFound
		}
		return nil, fmt.Errorf("opening index file: %w", err)
	}
	defer f.Close()

	var idx Index
	dec := gob.NewDecoder(f)
	if err := dec.Decode(&idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}

	if idx.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: got %d, want %d (rebuild with 'glean index build')",
			ErrUnsupportedVersion, idx.Version, CurrentVersion)
	}

	if len(idx.Sentences) != len(idx.Vectors) {
		return nil, fmt.Errorf("corrupt index: %d sentences but %d vectors", len(idx.Sentences), len(idx.Vectors))
	}

	return &idx, nil
}

// Size returns the size of the index file in bytes.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrIndexNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}
