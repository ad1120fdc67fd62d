// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cutoff turns the flattened text lines of a cutoff report into
// cleaned (year, college, branch, category, rank) records.
//
// A report is a sequence of college blocks. Each block opens with a header
// line such as "5  E005  R V College", carries one category header line
// listing the category codes of its columns, and then one row per branch
// whose name may wrap across several lines before the ranks appear.
package cutoff

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

// collegeHeader matches the first line of a college block: a serial number
// followed by an "E" code of exactly three digits.
var collegeHeader = regexp.MustCompile(`^\s*\d+\s+E\d{3}\b`)

// IsCollegeHeader reports whether line opens a new college block.
func IsCollegeHeader(line string) bool {
	return collegeHeader.MatchString(line)
}

// Block is a college header line and the lines that follow it up to the next
// header or the end of the document.
type Block struct {
	Header string
	Lines  []string
}

// Segment splits lines into college blocks in document order. Lines are
// trimmed and blank lines dropped. Lines before the first header belong to no
// block and are discarded, as are headers with no lines after them.
func Segment(lines []string) []Block {
	var (
		blocks []Block
		cur    *Block
	)
	flush := func() {
		if cur != nil && len(cur.Lines) > 0 {
			blocks = append(blocks, *cur)
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if IsCollegeHeader(line) {
			flush()
			cur = &Block{Header: line}
			continue
		}
		if cur != nil {
			cur.Lines = append(cur.Lines, line)
		}
	}
	flush()

	return blocks
}

// Parser converts college blocks into records. The zero value is not usable;
// create one with NewParser.
type Parser struct {
	minHeaderCategories int
	log                 zerolog.Logger
}

// NewParser creates a Parser. A non-positive MinHeaderCategories falls back to
// types.DefaultMinHeaderCategories.
func NewParser(cfg types.ParserConfig, log zerolog.Logger) *Parser {
	n := cfg.MinHeaderCategories
	if n <= 0 {
		n = types.DefaultMinHeaderCategories
	}
	return &Parser{minHeaderCategories: n, log: log}
}

// Parse segments the line stream of one document and returns the records of
// every block in document order.
func (p *Parser) Parse(year string, lines []string) []types.Record {
	var out []types.Record
	for _, b := range Segment(lines) {
		out = append(out, p.ParseBlock(year, b)...)
	}
	return out
}

// ParseBlock returns the records of a single college block. A block without a
// category header yields no records and a warning.
func (p *Parser) ParseBlock(year string, b Block) []types.Record {
	categories, idx, ok := p.FindCategoryHeader(b.Lines)
	if !ok {
		p.log.Warn().Str("college", b.Header).Msg("no category header in block")
		return nil
	}
	rows := MergeWrapped(b.Lines[idx+1:])
	return p.EmitRows(year, b.Header, categories, rows)
}

// FindCategoryHeader returns the recognized categories of the first line in
// which at least half of the tokens, and at least the configured minimum, are
// known category codes, along with that line's index.
func (p *Parser) FindCategoryHeader(lines []string) ([]string, int, bool) {
	for i, line := range lines {
		parts := strings.Fields(line)
		var cats []string
		for _, tok := range parts {
			if c, ok := LookupCategory(tok); ok {
				cats = append(cats, c)
			}
		}
		if 2*len(cats) >= len(parts) && len(cats) >= p.minHeaderCategories {
			return cats, i, true
		}
	}
	return nil, -1, false
}

// MergeWrapped rejoins branch names that wrapped onto several lines. A line
// with no digit is held as a continuation; the next line with a digit closes
// the row and is prefixed with everything held. Continuation lines left over
// at the end are dropped.
func MergeWrapped(lines []string) []string {
	var (
		merged  []string
		pending string
	)
	for _, line := range lines {
		if !hasDigit(line) {
			pending = strings.TrimSpace(pending + " " + line)
			continue
		}
		if pending != "" {
			merged = append(merged, strings.TrimSpace(pending+" "+line))
			pending = ""
			continue
		}
		merged = append(merged, line)
	}
	return merged
}

// SplitRow splits a merged row at its first purely numeric token. Everything
// before it is the branch name, everything from it on are rank tokens. It
// reports false when the row has no numeric token.
func SplitRow(row string) (branch string, ranks []string, ok bool) {
	parts := strings.Fields(row)
	for i, tok := range parts {
		if isNumeric(tok) {
			return strings.Join(parts[:i], " "), parts[i:], true
		}
	}
	return "", nil, false
}

// EmitRows pairs each row's rank tokens with categories. Rows whose rank count
// differs from len(categories) are dropped with a warning; rows without ranks
// are skipped silently. Ranks that clean to nothing are dropped.
func (p *Parser) EmitRows(year, college string, categories, rows []string) []types.Record {
	var out []types.Record
	for _, row := range rows {
		branch, ranks, ok := SplitRow(row)
		if !ok {
			continue
		}
		if len(ranks) != len(categories) {
			p.log.Warn().
				Str("college", college).
				Int("ranks", len(ranks)).
				Int("categories", len(categories)).
				Msg("rank/category count mismatch, row dropped")
			continue
		}
		for i, tok := range ranks {
			rank, ok := CleanRank(tok)
			if !ok {
				continue
			}
			cat, ok := LookupCategory(categories[i])
			if !ok {
				continue
			}
			out = append(out, types.Record{
				Year:        year,
				CollegeName: college,
				Branch:      branch,
				Category:    cat,
				ClosingRank: rank,
			})
		}
	}
	return out
}
