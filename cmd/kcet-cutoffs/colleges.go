// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kcet-cutoffs/internal/catalog"
	"github.com/pdiddy/kcet-cutoffs/internal/predict"
)

var collegesCmd = &cobra.Command{
	Use:   "colleges",
	Short: "Group the cleaned CSV by college and branch and export YAML",
	Long: `Colleges reads the cleaned CSV, groups rows by college and branch, and
writes one YAML entry per pair with the CET code, the college name, and its
closing ranks keyed by year and category (e.g. 2021_GM).`,
	Args: cobra.NoArgs,
	RunE: runColleges,
}

func init() {
	collegesCmd.Flags().String("csv", "", "cleaned CSV to read (default: extract.output)")
	collegesCmd.Flags().String("out", "colleges.yaml", "YAML file to write")

	rootCmd.AddCommand(collegesCmd)
}

func runColleges(cmd *cobra.Command, args []string) error {
	csvPath, _ := cmd.Flags().GetString("csv")
	if csvPath == "" {
		csvPath = viper.GetString("extract.output")
	}
	out, _ := cmd.Flags().GetString("out")

	records, err := predict.ReadCSV(csvPath)
	if err != nil {
		return err
	}
	colleges := catalog.Group(records, logger)
	if err := catalog.ExportYAML(out, colleges); err != nil {
		return err
	}
	logger.Info().Int("colleges", len(colleges)).Str("out", out).Msg("exported college catalog")
	return nil
}
