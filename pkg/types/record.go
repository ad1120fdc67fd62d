// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the kcet-cutoffs pipeline:
// cleaned cutoff records, grouped colleges, predictions, and stage configs.
package types

// Record is one cleaned cutoff row: the closing rank of a branch at a college
// for a single reservation category in a single admission year. The csv tags
// fix the header of the cleaned CSV.
type Record struct {
	// Year is the four-digit admission year taken from the source filename.
	Year string `csv:"Year" json:"year" yaml:"year"`

	// CollegeName is the full college header line (e.g. "5  E005  R V College").
	CollegeName string `csv:"CollegeName" json:"college_name" yaml:"college_name"`

	// Branch is the course name, with wrapped lines rejoined.
	Branch string `csv:"Branch" json:"branch" yaml:"branch"`

	// Category is one of the known reservation category codes.
	Category string `csv:"Category" json:"category" yaml:"category"`

	// ClosingRank is a non-empty digit string.
	ClosingRank string `csv:"ClosingRank" json:"closing_rank" yaml:"closing_rank"`
}

// College groups the cutoffs of one branch at one college across years and
// categories.
type College struct {
	// CETCode is the college code (e.g. "E005"), empty when the header had none.
	CETCode string `json:"cet_code" yaml:"cet_code"`

	// Name is the college name without serial number and code.
	Name string `json:"name" yaml:"name"`

	// Branch is the course name.
	Branch string `json:"branch" yaml:"branch"`

	// Cutoffs maps "{year}_{CATEGORY}" to the closing rank.
	Cutoffs map[string]int `json:"cutoffs" yaml:"cutoffs"`
}

// Chance rates how likely a candidate is to be admitted at a given closing rank.
type Chance string

const (
	ChanceHigh     Chance = "High"
	ChanceModerate Chance = "Moderate"
	ChanceLow      Chance = "Low"
)

// Prediction is one college/branch a candidate may be admitted to.
type Prediction struct {
	CollegeName string `json:"college_name" yaml:"college_name"`
	Branch      string `json:"branch" yaml:"branch"`
	Category    string `json:"category" yaml:"category"`
	ClosingRank int    `json:"closing_rank" yaml:"closing_rank"`
	Chance      Chance `json:"chance" yaml:"chance"`
	Year        string `json:"year" yaml:"year"`
}
