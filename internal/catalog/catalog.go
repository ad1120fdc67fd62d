// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog groups cleaned cutoff records into one entry per college
// branch, with the closing ranks of every year and category, and exports the
// result as YAML.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

var cetCode = regexp.MustCompile(`^E\d{3}$`)

// SplitCollegeName separates the CET code from a college header such as
// "5  E005  R V College". Without a code the whole trimmed header is the name.
func SplitCollegeName(header string) (code, name string) {
	fields := strings.Fields(header)
	for i, f := range fields {
		if cetCode.MatchString(f) {
			return f, strings.Join(fields[i+1:], " ")
		}
	}
	return "", strings.TrimSpace(header)
}

// CutoffKey is the key of a closing rank in College.Cutoffs.
func CutoffKey(year, category string) string {
	return year + "_" + strings.ToUpper(strings.TrimSpace(category))
}

type groupKey struct {
	college string
	branch  string
}

// Group builds one College per (college, branch) pair in order of first
// appearance. A pair whose ranks are all invalid still gets an entry with no
// cutoffs. When a year and category repeat, the later rank wins.
func Group(records []types.Record, log zerolog.Logger) []types.College {
	var (
		out   []types.College
		index = make(map[groupKey]int)
	)
	for _, r := range records {
		college := strings.TrimSpace(r.CollegeName)
		branch := strings.TrimSpace(r.Branch)
		if college == "" || branch == "" {
			log.Warn().Str("college", college).Str("branch", branch).Msg("skipping record with empty college or branch")
			continue
		}

		k := groupKey{college, branch}
		i, ok := index[k]
		if !ok {
			code, name := SplitCollegeName(college)
			out = append(out, types.College{
				CETCode: code,
				Name:    name,
				Branch:  branch,
				Cutoffs: make(map[string]int),
			})
			i = len(out) - 1
			index[k] = i
		}

		if strings.TrimSpace(r.Category) == "" || strings.TrimSpace(r.ClosingRank) == "" {
			log.Warn().Str("college", college).Str("branch", branch).Msg("skipping cutoff with empty category or rank")
			continue
		}
		rank, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(r.ClosingRank), ",", ""))
		if err != nil {
			log.Warn().Str("college", college).Str("rank", r.ClosingRank).Msg("invalid rank format")
			continue
		}
		out[i].Cutoffs[CutoffKey(r.Year, r.Category)] = rank
	}
	return out
}

// ExportYAML writes colleges to path.
func ExportYAML(path string, colleges []types.College) error {
	data, err := yaml.Marshal(colleges)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
