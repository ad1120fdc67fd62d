// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kcet-cutoffs CLI. It extracts
// closing ranks from the yearly KCET cutoff PDFs into a cleaned CSV and
// answers prediction and catalog queries over that CSV.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kcet-cutoffs/internal/logging"
	"github.com/pdiddy/kcet-cutoffs/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the process-wide logger, created once before any subcommand runs.
var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   "kcet-cutoffs",
	Short: "Extract KCET closing ranks from cutoff report PDFs",
	Long: `kcet-cutoffs reads the yearly KCET cutoff reports, splits them into
college blocks, and writes one CSV row per (year, college, branch, category,
closing rank). The cleaned CSV feeds the predict and colleges commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg types.LogConfig
		if err := viper.UnmarshalKey("log", &cfg); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		// Commands printing JSON keep stdout for the document alone.
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			out = cmd.ErrOrStderr()
		}
		logger = logging.New(cfg, out)
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Info().Str("config", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kcet-cutoffs.yaml or ~/.config/kcet-cutoffs/config.yaml)")
}

func setDefaults() {
	viper.SetDefault("extract.files", types.DefaultInputFiles)
	viper.SetDefault("extract.output", types.DefaultOutputFile)
	viper.SetDefault("extract.backend", string(types.BackendPlain))
	viper.SetDefault("extract.parser.min_header_categories", types.DefaultMinHeaderCategories)
	viper.SetDefault("log.level", "info")
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kcet-cutoffs")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kcet-cutoffs"))
		}
	}

	viper.SetEnvPrefix("KCET_CUTOFFS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// extractionConfig reads the extract section of the configuration.
func extractionConfig() (types.ExtractionConfig, error) {
	var cfg types.ExtractionConfig
	if err := viper.UnmarshalKey("extract", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
