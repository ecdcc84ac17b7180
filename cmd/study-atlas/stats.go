// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/study-atlas/internal/query"
	"github.com/pdiddy/study-atlas/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate studies by year or by a catalog column",
	Long: `Stats summarizes the catalog. Without flags it prints the dataset
overview: study count, year range, and feature category coverage.

With --by it tallies studies per category of a column. List-valued
columns count a study once per element; Channel Count and
Participant Range bucket their numeric values.`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	l, err := newLoader(cmd)
	if err != nil {
		return err
	}
	ds, err := l.Load()
	if err != nil {
		return err
	}

	by, _ := cmd.Flags().GetString("by")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if by == "" {
		return printOverview(ds, jsonOutput)
	}

	var counts map[string]int
	if by == "year" {
		counts = map[string]int{}
		for year, n := range query.CountByYear(ds.Studies) {
			counts[strconv.Itoa(year)] = n
		}
	} else {
		counts = query.CountByCategory(ds.Studies, by)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Fprintf(os.Stdout, "%-40s  %d\n", k, counts[k])
	}
	fmt.Fprintf(os.Stdout, "\n%d categories\n", len(keys))
	return nil
}

func printOverview(ds *types.Dataset, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ds.Metadata)
	}

	fmt.Fprintf(os.Stdout, "%d studies, years %d-%d\n",
		ds.Metadata.Count, ds.Metadata.YearRange.Min, ds.Metadata.YearRange.Max)
	if ds.Rejected > 0 {
		fmt.Fprintf(os.Stdout, "%d rows rejected during normalization\n", ds.Rejected)
	}

	if len(ds.Metadata.FeatureCategories) > 0 {
		fmt.Fprintln(os.Stdout, "\nFeature coverage:")
		for _, c := range ds.Metadata.FeatureCategories {
			fmt.Fprintf(os.Stdout, "  %-18s  %3d  (%d%%)\n", c.Name, c.Count, c.Percentage)
		}
	}
	return nil
}

func init() {
	statsCmd.Flags().String("by", "", `aggregation key: "year", a column name, "Participant Range", or "normalizedFeatures"`)
	statsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(statsCmd)
}
