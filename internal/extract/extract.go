// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract drives the cutoff extraction over a fixed list of yearly
// report files and writes the cleaned CSV.
package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/pdiddy/kcet-cutoffs/internal/convert"
	"github.com/pdiddy/kcet-cutoffs/internal/cutoff"
	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

var (
	// ErrFileNotFound is returned when an input file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrNoYear is returned when a filename carries no four-digit year.
	ErrNoYear = errors.New("could not detect year in filename")
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// YearFromFilename returns the first run of four digits in the base name of
// path.
func YearFromFilename(path string) (string, bool) {
	y := yearPattern.FindString(filepath.Base(path))
	return y, y != ""
}

// BatchResult holds the outcome of an extraction run.
type BatchResult struct {
	Processed int
	Skipped   int
	Records   []types.Record
}

// Total returns the number of input files considered.
func (r BatchResult) Total() int {
	return r.Processed + r.Skipped
}

// Extractor turns report files into records.
type Extractor struct {
	text   convert.TextExtractor
	parser *cutoff.Parser
	log    zerolog.Logger
}

// New creates an Extractor reading PDFs through text and parsing them with
// parser.
func New(text convert.TextExtractor, parser *cutoff.Parser, log zerolog.Logger) *Extractor {
	return &Extractor{text: text, parser: parser, log: log}
}

// ProcessFile extracts the records of one report. It returns ErrFileNotFound
// or ErrNoYear (wrapped) for inputs that should be skipped; any other error
// comes from the text extractor.
func (e *Extractor) ProcessFile(path string) ([]types.Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	year, ok := YearFromFilename(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoYear, filepath.Base(path))
	}

	e.log.Info().Str("file", filepath.Base(path)).Str("year", year).Msg("opening report")
	lines, err := e.text.Lines(path)
	if err != nil {
		return nil, err
	}
	return e.parser.Parse(year, lines), nil
}

// Run processes files in order and accumulates their records. Missing files
// and files without a year are logged and skipped; any other failure aborts
// the run.
func (e *Extractor) Run(files []string) (BatchResult, error) {
	var result BatchResult
	for _, path := range files {
		records, err := e.ProcessFile(path)
		switch {
		case errors.Is(err, ErrFileNotFound):
			e.log.Error().Str("file", path).Msg("file not found")
			result.Skipped++
			continue
		case errors.Is(err, ErrNoYear):
			e.log.Warn().Str("file", filepath.Base(path)).Msg("could not detect year, skipping")
			result.Skipped++
			continue
		case err != nil:
			return result, fmt.Errorf("processing %s: %w", path, err)
		}
		e.log.Info().Str("file", filepath.Base(path)).Int("records", len(records)).Msg("parsed report")
		result.Processed++
		result.Records = append(result.Records, records...)
	}
	return result, nil
}

// WriteCSV writes records with the header Year,CollegeName,Branch,Category,
// ClosingRank and CRLF line endings. The file is written next to path and
// renamed over it, so a failed write never leaves a partial CSV behind.
func WriteCSV(path string, records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	w.UseCRLF = true
	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(w)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing CSV: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
