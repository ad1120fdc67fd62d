// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

func TestSplitCollegeName(t *testing.T) {
	tests := []struct {
		header, code, name string
	}{
		{"5  E005  R V College", "E005", "R V College"},
		{"E001 University Visvesvaraya College", "E001", "University Visvesvaraya College"},
		{"  Unnumbered College ", "", "Unnumbered College"},
		{"12 E0123 Odd Code", "", "12 E0123 Odd Code"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			code, name := SplitCollegeName(tt.header)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestGroup(t *testing.T) {
	records := []types.Record{
		{Year: "2020", CollegeName: "5  E005  R V College", Branch: "CSE", Category: "GM", ClosingRank: "101"},
		{Year: "2020", CollegeName: "5  E005  R V College", Branch: "ECE", Category: "GM", ClosingRank: "300"},
		{Year: "2021", CollegeName: "5  E005  R V College ", Branch: " CSE", Category: "scg", ClosingRank: "1,202"},
		{Year: "2021", CollegeName: "5  E005  R V College", Branch: "CSE", Category: "SCG", ClosingRank: "1300"},
		{Year: "2021", CollegeName: "", Branch: "CSE", Category: "GM", ClosingRank: "1"},
		{Year: "2021", CollegeName: "5  E005  R V College", Branch: "CSE", Category: "STG", ClosingRank: "x"},
		{Year: "2021", CollegeName: "9 E009 Bad College", Branch: "ME", Category: "GM", ClosingRank: "x"},
		{Year: "2022", CollegeName: "9 E009 Bad College", Branch: "ME", Category: "", ClosingRank: "10"},
	}

	var buf bytes.Buffer
	got := Group(records, zerolog.New(&buf))

	require.Len(t, got, 3)
	assert.Equal(t, types.College{
		CETCode: "E005",
		Name:    "R V College",
		Branch:  "CSE",
		Cutoffs: map[string]int{"2020_GM": 101, "2021_SCG": 1300},
	}, got[0])
	assert.Equal(t, "ECE", got[1].Branch)
	assert.Equal(t, map[string]int{"2020_GM": 300}, got[1].Cutoffs)
	assert.Equal(t, types.College{
		CETCode: "E009",
		Name:    "Bad College",
		Branch:  "ME",
		Cutoffs: map[string]int{},
	}, got[2])

	assert.Contains(t, buf.String(), "empty college or branch")
	assert.Contains(t, buf.String(), "invalid rank format")
	assert.Contains(t, buf.String(), "empty category or rank")
}

func TestExportYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colleges.yaml")
	colleges := []types.College{
		{CETCode: "E005", Name: "R V College", Branch: "CSE", Cutoffs: map[string]int{"2020_GM": 101}},
	}
	require.NoError(t, ExportYAML(path, colleges))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back []types.College
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, colleges, back)
	assert.Contains(t, string(data), "cet_code: E005")
}
