// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kcet-cutoffs/internal/cutoff"
	"github.com/pdiddy/kcet-cutoffs/internal/predict"
	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "List colleges within reach of a rank",
	Long: `Predict reads the cleaned CSV and lists every college and branch whose
closing rank for the given category lies between rank-500 and rank*3.5,
sorted by closing rank, with a High/Moderate/Low chance.`,
	Args: cobra.NoArgs,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().String("csv", "", "cleaned CSV to read (default: extract.output)")
	predictCmd.Flags().Int("rank", 0, "candidate rank")
	predictCmd.Flags().String("category", "", "reservation category code, one of: "+strings.Join(cutoff.Categories(), ", "))
	predictCmd.Flags().String("branch", "", "restrict to one branch")
	predictCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg := types.PredictionConfig{}
	cfg.CSVPath, _ = cmd.Flags().GetString("csv")
	cfg.Rank, _ = cmd.Flags().GetInt("rank")
	cfg.Category, _ = cmd.Flags().GetString("category")
	cfg.Branch, _ = cmd.Flags().GetString("branch")
	asJSON, _ := cmd.Flags().GetBool("json")
	if cfg.CSVPath == "" {
		cfg.CSVPath = viper.GetString("extract.output")
	}

	records, err := predict.ReadCSV(cfg.CSVPath)
	if err != nil {
		return err
	}
	logger.Info().Int("records", len(records)).Str("csv", cfg.CSVPath).Msg("loaded cutoffs")

	results, err := predict.Predict(records, predict.Query{
		Rank:     cfg.Rank,
		Category: cfg.Category,
		Branch:   cfg.Branch,
	}, logger)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return printPredictions(cmd.OutOrStdout(), results)
}

func printPredictions(out io.Writer, results []types.Prediction) error {
	if len(results) == 0 {
		fmt.Fprintln(out, "No colleges found in the rank window.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "YEAR\tCOLLEGE\tBRANCH\tCATEGORY\tCLOSING\tCHANCE")
	for _, p := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", p.Year, p.CollegeName, p.Branch, p.Category, p.ClosingRank, p.Chance)
	}
	return w.Flush()
}
