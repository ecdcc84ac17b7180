// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the study-atlas CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/study-atlas/internal/loader"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the study-atlas CLI.
var rootCmd = &cobra.Command{
	Use:   "study-atlas",
	Short: "Normalize, query, and summarize EEG music study catalogs",
	Long: `study-atlas ingests catalogs of EEG music studies from delimited text
files, normalizes their free-text fields into typed records, and serves
filtered, sorted, and aggregated views of the result.

Each operation is a subcommand: convert builds a JSON catalog, validate
audits data quality, query filters and sorts studies, stats aggregates
them, and export writes a filtered catalog back to CSV.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./study-atlas.yaml or ~/.config/study-atlas/config.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "path or URL of the study catalog CSV")
	rootCmd.PersistentFlags().String("delimiter", "", "field delimiter (default: guessed from the header)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("study-atlas")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "study-atlas"))
		}
	}

	viper.SetEnvPrefix("STUDY_ATLAS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfigFromFlags resolves the catalog path and delimiter from flags,
// falling back to the config file.
func loadConfigFromFlags(cmd *cobra.Command) (types.LoadConfig, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = viper.GetString("catalog")
	}
	if path == "" {
		return types.LoadConfig{}, fmt.Errorf("no catalog given: use --catalog or set catalog in the config file")
	}

	delim, _ := cmd.Flags().GetString("delimiter")
	if delim == "" {
		delim = viper.GetString("delimiter")
	}
	if delim != "" && len([]rune(delim)) != 1 {
		return types.LoadConfig{}, fmt.Errorf("delimiter must be a single character, got %q", delim)
	}
	return types.LoadConfig{CSVPath: path, Delimiter: delim}, nil
}

// delimiterRune converts the configured delimiter to the rune the CSV
// reader expects; zero means guess.
func delimiterRune(cfg types.LoadConfig) rune {
	if cfg.Delimiter == "" {
		return 0
	}
	return []rune(cfg.Delimiter)[0]
}

// newLoader builds a catalog loader from command flags and config.
func newLoader(cmd *cobra.Command) (*loader.Loader, error) {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return loader.New(cfg), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
