// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package predict lists the colleges and branches a candidate can expect to
// get into, based on past closing ranks from the cleaned CSV.
package predict

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

// ErrInvalidQuery is returned for a non-positive rank or an empty category.
var ErrInvalidQuery = errors.New("rank and category are required")

const (
	// windowBelow is how far below the candidate's rank a closing rank may be.
	windowBelow = 500
	// windowAboveFactor bounds closing ranks from above at rank*3.5.
	windowAboveFactor = 3.5
)

// Query describes the candidate.
type Query struct {
	Rank     int
	Category string
	// Branch is optional; empty matches every branch.
	Branch string
}

// ReadCSV loads the cleaned CSV written by the extraction stage.
func ReadCSV(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []types.Record
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}

// Window returns the inclusive closing-rank range considered for rank.
func Window(rank int) (lower, upper int) {
	lower = max(rank-windowBelow, 1)
	upper = int(float64(rank) * windowAboveFactor)
	return lower, upper
}

// ChanceFor rates admission at closingRank for a candidate with rank.
func ChanceFor(rank, closingRank int) types.Chance {
	switch {
	case rank < closingRank:
		return types.ChanceHigh
	case rank > closingRank:
		return types.ChanceLow
	default:
		return types.ChanceModerate
	}
}

// Predict filters records by category and branch, keeps closing ranks inside
// the window around q.Rank, and returns them sorted by closing rank.
func Predict(records []types.Record, q Query, log zerolog.Logger) ([]types.Prediction, error) {
	category := strings.ToUpper(strings.TrimSpace(q.Category))
	if q.Rank <= 0 || category == "" {
		return nil, ErrInvalidQuery
	}
	branch := strings.ToUpper(strings.TrimSpace(q.Branch))
	lower, upper := Window(q.Rank)

	var out []types.Prediction
	for _, r := range records {
		if strings.ToUpper(strings.TrimSpace(r.Category)) != category {
			continue
		}
		if branch != "" && strings.ToUpper(strings.TrimSpace(r.Branch)) != branch {
			continue
		}
		closing, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(r.ClosingRank, ",", "")))
		if err != nil {
			log.Warn().Str("college", r.CollegeName).Str("rank", r.ClosingRank).Msg("cannot parse closing rank")
			continue
		}
		if closing < lower || closing > upper {
			continue
		}
		out = append(out, types.Prediction{
			CollegeName: strings.TrimSpace(r.CollegeName),
			Branch:      strings.TrimSpace(r.Branch),
			Category:    strings.TrimSpace(r.Category),
			ClosingRank: closing,
			Chance:      ChanceFor(q.Rank, closing),
			Year:        r.Year,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ClosingRank < out[j].ClosingRank })
	log.Info().Int("lower", lower).Int("upper", upper).Int("matches", len(out)).Msg("prediction window applied")
	return out, nil
}
