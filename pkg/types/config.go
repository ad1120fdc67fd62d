// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the PDF text extraction tool.
type ExtractionBackend string

const (
	// BackendPlain reads text in-process with the ledongthuc/pdf library.
	BackendPlain ExtractionBackend = "plain"
	// BackendPdftotext pipes the PDF through poppler's pdftotext in a container.
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// DefaultInputFiles is the fixed list of yearly cutoff reports read from the
// working directory.
var DefaultInputFiles = []string{
	"Kcet-2020.pdf",
	"Kcet-2021.pdf",
	"Kcet-2022.pdf",
	"Kcet-2023.pdf",
}

// DefaultOutputFile is the cleaned CSV written by the extraction stage.
const DefaultOutputFile = "kcet_cleaned.csv"

// DefaultMinHeaderCategories is the minimum number of recognized category
// codes a line needs to be taken as a block's category header.
const DefaultMinHeaderCategories = 5

// ParserConfig holds settings for the block parser.
type ParserConfig struct {
	// MinHeaderCategories is the absolute lower bound on recognized codes in
	// a category header line (default 5).
	MinHeaderCategories int `json:"min_header_categories" yaml:"min_header_categories" mapstructure:"min_header_categories"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// Files lists the input PDFs in processing order.
	Files []string `json:"files" yaml:"files" mapstructure:"files"`

	// Output is the path of the cleaned CSV. It is overwritten on every run.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Backend selects the text extraction tool: plain or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	Parser ParserConfig `json:"parser" yaml:"parser" mapstructure:"parser"`
}

// PredictionConfig holds the inputs of a college prediction query.
type PredictionConfig struct {
	// CSVPath is the cleaned CSV to read.
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// Rank is the candidate's rank; must be positive.
	Rank int `json:"rank" yaml:"rank"`

	// Category is the candidate's reservation category code.
	Category string `json:"category" yaml:"category"`

	// Branch optionally restricts results to one branch.
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}
