// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/study-atlas/internal/csvio"
	"github.com/pdiddy/study-atlas/internal/normalize"
	"github.com/pdiddy/study-atlas/internal/query"
)

var exportCmd = &cobra.Command{
	Use:   "export [search terms...]",
	Short: "Write a filtered catalog back out as CSV",
	Long: `Export applies the same filters as query, flattens the matching
studies back onto the catalog's original columns, and writes them as
comma-delimited CSV. Derived values are not exported; each cell holds
the cleaned raw text so the output re-normalizes to the same records.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	l, err := newLoader(cmd)
	if err != nil {
		return err
	}
	ds, err := l.Load()
	if err != nil {
		return err
	}

	spec, err := specFromFlags(cmd, args)
	if err != nil {
		return err
	}
	results := query.Apply(ds.Studies, spec)

	if sortFlag, _ := cmd.Flags().GetString("sort"); sortFlag != "" {
		order, err := query.ParseOrder(sortFlag)
		if err != nil {
			return err
		}
		results = query.Sort(results, order)
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = normalize.Flatten(r, ds.Metadata.Columns)
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
		defer fmt.Fprintf(os.Stderr, "Exported %d studies to %s\n", len(results), path)
	}

	return csvio.Write(out, ds.Metadata.Columns, rows)
}

func init() {
	exportCmd.Flags().String("search", "", "free-text search over all fields")
	exportCmd.Flags().StringArray("facet", nil, "facet selection Column=Value (repeatable)")
	exportCmd.Flags().StringSlice("feature", nil, "filter by normalized feature tags (comma-separated)")
	exportCmd.Flags().StringArray("training", nil, "filter by musical training category (repeatable)")
	exportCmd.Flags().Int("from-year", 0, "earliest publication year (0 = open)")
	exportCmd.Flags().Int("to-year", 0, "latest publication year (0 = open)")
	exportCmd.Flags().String("sort", "", "sort order before export")
	exportCmd.Flags().String("output", "", "write CSV to this file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
