// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdiddy/kcet-cutoffs/internal/container"
)

const imagePoppler = "poppler:latest"

// pdftotextArgs reads the PDF from stdin and writes layout-preserving text to
// stdout.
var pdftotextArgs = []string{"pdftotext", "-layout", "-", "-"}

// PdftotextExtractor pipes PDFs through poppler's pdftotext in a container.
type PdftotextExtractor struct {
	runtime container.Runtime
}

// NewPdftotextExtractor checks that the poppler image exists in rt.
func NewPdftotextExtractor(rt container.Runtime) (*PdftotextExtractor, error) {
	if err := rt.ImageExists(imagePoppler); err != nil {
		return nil, fmt.Errorf("poppler image not available in %s: %w", rt.Name(), err)
	}
	return &PdftotextExtractor{runtime: rt}, nil
}

// Lines implements TextExtractor.
func (p *PdftotextExtractor) Lines(pdfPath string) ([]string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := p.runtime.Run(imagePoppler, pdftotextArgs, f, &out); err != nil {
		return nil, fmt.Errorf("extracting %s with pdftotext: %w", pdfPath, err)
	}
	return SplitLines(out.String()), nil
}
