// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert extracts the plain text lines of a PDF cutoff report.
// Extraction is pluggable: the in-process backend reads the PDF with
// ledongthuc/pdf, the pdftotext backend runs poppler inside a container.
package convert

import (
	"fmt"
	"strings"

	"github.com/pdiddy/kcet-cutoffs/internal/container"
	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

// TextExtractor returns the text of a PDF as a flat list of lines.
type TextExtractor interface {
	// Lines reads the PDF at pdfPath and returns the trimmed, non-empty text
	// lines of every page in page and line order. A PDF without extractable
	// text (for example a scanned report) yields no lines and no error.
	Lines(pdfPath string) ([]string, error)
}

// New returns the extractor for backend. An empty backend selects
// types.BackendPlain.
func New(backend types.ExtractionBackend) (TextExtractor, error) {
	switch backend {
	case "", types.BackendPlain:
		return PlainExtractor{}, nil
	case types.BackendPdftotext:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		return NewPdftotextExtractor(rt)
	default:
		return nil, fmt.Errorf("unknown extraction backend %q (want %s or %s)",
			backend, types.BackendPlain, types.BackendPdftotext)
	}
}

// SplitLines splits text on newlines, trims every line, and drops the blank
// ones.
func SplitLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
