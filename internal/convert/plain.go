// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowTolerance is the largest baseline difference, in points, between glyphs
// on the same text line.
const rowTolerance = 2.0

// PlainExtractor reads PDF text in-process with ledongthuc/pdf. Glyphs are
// grouped into lines by baseline and into words by horizontal gaps.
type PlainExtractor struct{}

// Lines implements TextExtractor.
func (PlainExtractor) Lines(pdfPath string) ([]string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, pageLines(page.Content().Text)...)
	}
	return lines, nil
}

// pageLines rebuilds the text lines of one page from positioned glyphs, top
// to bottom. A space is inserted only where the gap to the previous glyph is
// wider than a sixth of the font size, so kerned fragments of one word stay
// together.
func pageLines(texts []pdf.Text) []string {
	glyphs := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			glyphs = append(glyphs, t)
		}
	}
	sort.SliceStable(glyphs, func(i, j int) bool {
		if glyphs[i].Y != glyphs[j].Y {
			return glyphs[i].Y > glyphs[j].Y
		}
		return glyphs[i].X < glyphs[j].X
	})

	var rows [][]pdf.Text
	for _, g := range glyphs {
		if n := len(rows); n > 0 && math.Abs(rows[n-1][0].Y-g.Y) < rowTolerance {
			rows[n-1] = append(rows[n-1], g)
			continue
		}
		rows = append(rows, []pdf.Text{g})
	}

	var lines []string
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		var (
			b   strings.Builder
			end float64
		)
		for i, g := range row {
			if i > 0 && g.X > end+g.FontSize/6 {
				b.WriteByte(' ')
			}
			b.WriteString(g.S)
			end = math.Max(end, g.X+g.W)
		}
		lines = append(lines, SplitLines(b.String())...)
	}
	return lines
}
