// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the facet columns and their selectable values",
	RunE:  runFacets,
}

func runFacets(cmd *cobra.Command, args []string) error {
	l, err := newLoader(cmd)
	if err != nil {
		return err
	}
	ds, err := l.Load()
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ds.Metadata.FilterOptions)
	}

	cols := make([]string, 0, len(ds.Metadata.FilterOptions))
	for col := range ds.Metadata.FilterOptions {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		fmt.Fprintf(os.Stdout, "%s:\n", col)
		for _, v := range ds.Metadata.FilterOptions[col] {
			fmt.Fprintf(os.Stdout, "  %s\n", v)
		}
	}
	return nil
}

func init() {
	facetsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(facetsCmd)
}
