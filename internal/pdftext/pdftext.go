// Package pdftext extracts sentence lines from PDF documents.
package pdftext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrEmptyDocument is returned when a PDF yields no text at all,
// e.g. a scanned document containing only images.
var ErrEmptyDocument = errors.New("no text extracted from document")

// ExtractSentences reads every page of the PDF at path and returns its text
// split into trimmed, non-empty lines in document order.
//
// Splitting is purely line-based; no semantic sentence segmentation is
// performed. Page extraction errors on individual pages are skipped so a
// single damaged page doesn't lose the rest of the document.
func ExtractSentences(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	sentences := SplitLines(builder.String())
	if len(sentences) == 0 {
		return nil, ErrEmptyDocument
	}
	return sentences, nil
}

// SplitLines splits text on newlines, trims each line, and drops empty ones.
// Line order is preserved.
func SplitLines(text string) []string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	return sentences
}
