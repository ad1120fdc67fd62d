// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/kcet-cutoffs/internal/convert"
	"github.com/pdiddy/kcet-cutoffs/internal/cutoff"
	"github.com/pdiddy/kcet-cutoffs/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract closing ranks from the cutoff PDFs into a CSV",
	Long: `Extract reads the configured cutoff reports in order (by default
Kcet-2020.pdf through Kcet-2023.pdf in the working directory) and overwrites
the output CSV with one row per year, college, branch, category, and closing
rank. Missing files and files without a year in their name are skipped.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractionConfig()
	if err != nil {
		return err
	}

	text, err := convert.New(cfg.Backend)
	if err != nil {
		return err
	}
	parser := cutoff.NewParser(cfg.Parser, logger)

	result, err := extract.New(text, parser, logger).Run(cfg.Files)
	if err != nil {
		return err
	}

	if err := extract.WriteCSV(cfg.Output, result.Records); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	logger.Info().
		Int("files", result.Processed).
		Int("skipped", result.Skipped).
		Msgf("wrote %d rows to %s", len(result.Records), cfg.Output)
	return nil
}
