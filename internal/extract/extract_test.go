// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/kcet-cutoffs/internal/cutoff"
	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

// fakeText returns canned lines per base filename.
type fakeText struct {
	lines map[string][]string
	errs  map[string]error
	calls []string
}

func (f *fakeText) Lines(pdfPath string) ([]string, error) {
	base := filepath.Base(pdfPath)
	f.calls = append(f.calls, base)
	if err, ok := f.errs[base]; ok {
		return nil, err
	}
	return f.lines[base], nil
}

// touch creates empty files named names in a temp dir and returns their paths.
func touch(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(paths[i], []byte("%PDF"), 0o644))
	}
	return paths
}

func newTestExtractor(text *fakeText, minCats int) (*Extractor, *bytes.Buffer) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	p := cutoff.NewParser(types.ParserConfig{MinHeaderCategories: minCats}, log)
	return New(text, p, log), &buf
}

var scenario = []string{"5  E005  R V College", "GM SCG STG", "CSE 101 202 303"}

func TestYearFromFilename(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"Kcet-2020.pdf", "2020", true},
		{"/data/2019/Kcet-2023.pdf", "2023", true},
		{"cutoff_202122.pdf", "2021", true},
		{"Kcet-final.pdf", "", false},
		{"Kcet-20.pdf", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := YearFromFilename(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessFile_ConcreteScenario(t *testing.T) {
	paths := touch(t, "Kcet-2020.pdf")
	text := &fakeText{lines: map[string][]string{"Kcet-2020.pdf": scenario}}
	e, _ := newTestExtractor(text, 3)

	got, err := e.ProcessFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, []types.Record{
		{Year: "2020", CollegeName: "5  E005  R V College", Branch: "CSE", Category: "GM", ClosingRank: "101"},
		{Year: "2020", CollegeName: "5  E005  R V College", Branch: "CSE", Category: "SCG", ClosingRank: "202"},
		{Year: "2020", CollegeName: "5  E005  R V College", Branch: "CSE", Category: "STG", ClosingRank: "303"},
	}, got)
}

func TestProcessFile_Errors(t *testing.T) {
	paths := touch(t, "Kcet-final.pdf")
	e, _ := newTestExtractor(&fakeText{}, 3)

	_, err := e.ProcessFile(paths[0])
	assert.ErrorIs(t, err, ErrNoYear)

	_, err = e.ProcessFile(filepath.Join(t.TempDir(), "Kcet-2024.pdf"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestRun(t *testing.T) {
	paths := touch(t, "Kcet-2020.pdf", "Kcet-final.pdf", "Kcet-2021.pdf")
	missing := filepath.Join(filepath.Dir(paths[0]), "Kcet-2022.pdf")
	files := []string{paths[0], paths[1], missing, paths[2]}

	text := &fakeText{lines: map[string][]string{
		"Kcet-2020.pdf":  scenario,
		"Kcet-final.pdf": scenario,
		"Kcet-2021.pdf":  scenario,
	}}
	e, log := newTestExtractor(text, 3)

	result, err := e.Run(files)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 4, result.Total())
	require.Len(t, result.Records, 6)
	assert.Equal(t, "2020", result.Records[0].Year)
	assert.Equal(t, "2021", result.Records[3].Year)

	assert.Equal(t, []string{"Kcet-2020.pdf", "Kcet-2021.pdf"}, text.calls,
		"skipped files must not reach the extractor")
	assert.Contains(t, log.String(), `"level":"warn"`)
	assert.Contains(t, log.String(), `"level":"error"`)
	assert.Contains(t, log.String(), "Kcet-2022.pdf")
}

func TestRun_ExtractorFailureAborts(t *testing.T) {
	paths := touch(t, "Kcet-2020.pdf", "Kcet-2021.pdf", "Kcet-2022.pdf")
	text := &fakeText{
		lines: map[string][]string{"Kcet-2020.pdf": scenario, "Kcet-2022.pdf": scenario},
		errs:  map[string]error{"Kcet-2021.pdf": errors.New("corrupt xref")},
	}
	e, _ := newTestExtractor(text, 3)

	result, err := e.Run(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt xref")
	assert.Equal(t, 1, result.Processed)
	assert.NotContains(t, text.calls, "Kcet-2022.pdf")
}

func TestWriteCSV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "kcet_cleaned.csv")
	records := []types.Record{
		{Year: "2020", CollegeName: "5  E005  R V College", Branch: "CSE", Category: "GM", ClosingRank: "101"},
		{Year: "2020", CollegeName: `7 E007 "Sri" College, Mysore`, Branch: "Civil", Category: "2AG", ClosingRank: "9999"},
	}

	require.NoError(t, os.WriteFile(out, []byte("stale content\n"), 0o644))
	require.NoError(t, WriteCSV(out, records))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "Year,CollegeName,Branch,Category,ClosingRank\r\n" +
		"2020,5  E005  R V College,CSE,GM,101\r\n" +
		"2020,\"7 E007 \"\"Sri\"\" College, Mysore\",Civil,2AG,9999\r\n"
	assert.Equal(t, want, string(data))

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteCSV_EmptyWritesHeader(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "kcet_cleaned.csv")
	require.NoError(t, WriteCSV(out, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Year,CollegeName,Branch,Category,ClosingRank\r\n", string(data))
}

func TestPipeline_Idempotent(t *testing.T) {
	paths := touch(t, "Kcet-2020.pdf", "Kcet-2021.pdf")
	text := &fakeText{lines: map[string][]string{
		"Kcet-2020.pdf": scenario,
		"Kcet-2021.pdf": append([]string{}, scenario...),
	}}

	runOnce := func(out string) []byte {
		e, _ := newTestExtractor(text, 3)
		result, err := e.Run(paths)
		require.NoError(t, err)
		require.NoError(t, WriteCSV(out, result.Records))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		return data
	}

	dir := t.TempDir()
	first := runOnce(filepath.Join(dir, "a.csv"))
	second := runOnce(filepath.Join(dir, "b.csv"))
	assert.Equal(t, first, second)
}
