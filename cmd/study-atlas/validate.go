// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/study-atlas/internal/csvio"
	"github.com/pdiddy/study-atlas/internal/fetch"
	"github.com/pdiddy/study-atlas/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit a catalog for data quality problems",
	Long: `Validate parses the catalog and reports, per row, the problems the
normalizer would hit: rejections (missing study name, out-of-range
year), links that are neither URLs nor DOIs, values whose typed
extraction fails, and implausibly large counts and durations.

The command exits non-zero when any error-level issue is found;
warnings alone do not fail the run unless --strict is set.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	var table *csvio.Table
	if fetch.IsURL(cfg.CSVPath) {
		data, err := fetch.Catalog(context.Background(), nil, cfg.CSVPath)
		if err != nil {
			return err
		}
		table, err = csvio.Read(bytes.NewReader(data), delimiterRune(cfg))
		if err != nil {
			return err
		}
	} else {
		table, err = csvio.ReadFile(cfg.CSVPath, delimiterRune(cfg))
		if err != nil {
			return err
		}
	}

	rep := report.Validate(table.Rows)
	rep.Write(os.Stdout)

	strict, _ := cmd.Flags().GetBool("strict")
	if !rep.Clean() {
		return fmt.Errorf("%d error(s) found", len(rep.Errors))
	}
	if strict && len(rep.Warnings) > 0 {
		return fmt.Errorf("%d warning(s) found with --strict", len(rep.Warnings))
	}
	return nil
}

func init() {
	validateCmd.Flags().Bool("strict", false, "treat warnings as failures")

	rootCmd.AddCommand(validateCmd)
}
