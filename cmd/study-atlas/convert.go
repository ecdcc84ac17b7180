// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CSV catalog into a normalized JSON or YAML catalog",
	Long: `Convert reads the catalog, normalizes every row, and writes the
resulting studies and metadata as JSON or YAML. Rows failing admission
(no study name, or a year outside 1901-2029) are dropped and counted.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	l, err := newLoader(cmd)
	if err != nil {
		return err
	}
	ds, err := l.Load()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
		defer fmt.Fprintf(os.Stderr, "%s\n", ds)
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json", "":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ds)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(ds)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

func init() {
	convertCmd.Flags().String("format", "json", "output format: json or yaml")
	convertCmd.Flags().String("output", "", "write the catalog to this file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}
