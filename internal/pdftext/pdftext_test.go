package pdftext

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple lines",
			text:     "first\nsecond\nthird",
			expected: []string{"first", "second", "third"},
		},
		{
			name:     "consecutive newlines produce no empty sentences",
			text:     "first\n\n\nsecond\n\n",
			expected: []string{"first", "second"},
		},
		{
			name:     "whitespace-only lines dropped",
			text:     "first\n   \n\t\nsecond",
			expected: []string{"first", "second"},
		},
		{
			name:     "lines are trimmed",
			text:     "  padded  \n\ttabbed\t",
			expected: []string{"padded", "tabbed"},
		},
		{
			name:     "empty input",
			text:     "",
			expected: nil,
		},
		{
			name:     "only whitespace",
			text:     "\n \n\t\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if len(got) != len(tt.expected) {
				t.Fatalf("SplitLines() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("SplitLines()[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSplitLines_PreservesOrder(t *testing.T) {
	got := SplitLines("c\n\na\n\nb")
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitLines()[%d] = %q, want %q (document order must be kept)", i, got[i], want[i])
		}
	}
}

func TestExtractSentences_FileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.pdf")

	_, err := ExtractSentences(missing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist in chain", err)
	}
}
