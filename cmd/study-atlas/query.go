// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/study-atlas/internal/query"
	"github.com/pdiddy/study-atlas/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [search terms...]",
	Short: "Filter and sort studies from the catalog",
	Long: `Query loads the catalog and returns the studies matching a free-text
search, facet selections, and a year range. Facets combine with AND
across columns and OR within a column.

Facet selections take the form "Column=Value", for example
--facet "Paradigm Type=Passive Listening" or --facet "Channel Count=64 channels".`,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
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

	limit, _ := cmd.Flags().GetInt("limit")
	if limit == 0 {
		limit = viper.GetInt("max-results")
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

// specFromFlags builds a filter from the shared query/export flags.
func specFromFlags(cmd *cobra.Command, args []string) (*query.Spec, error) {
	search, _ := cmd.Flags().GetString("search")
	if search == "" && len(args) > 0 {
		search = strings.Join(args, " ")
	}

	spec := &query.Spec{
		SearchQuery: search,
		Active:      map[string][]string{},
	}
	spec.StartYear, _ = cmd.Flags().GetInt("from-year")
	spec.EndYear, _ = cmd.Flags().GetInt("to-year")

	facets, _ := cmd.Flags().GetStringArray("facet")
	for _, f := range facets {
		col, val, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("facet %q must take the form Column=Value", f)
		}
		spec.Active[col] = append(spec.Active[col], val)
	}

	features, _ := cmd.Flags().GetStringSlice("feature")
	if len(features) > 0 {
		spec.Active[types.FacetFeatures] = append(spec.Active[types.FacetFeatures], features...)
	}
	training, _ := cmd.Flags().GetStringArray("training")
	if len(training) > 0 {
		spec.Active[types.ColTraining] = append(spec.Active[types.ColTraining], training...)
	}
	return spec, nil
}

func formatQueryOutput(results []*types.StudyRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No studies matched.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-40s  %-5s  %-12s  %-8s  %-8s  %s\n",
		"Study", "Year", "Participants", "Channels", "Passage", "Features")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range results {
		name := r.Scalars[types.ColStudyName]
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-40s  %-5d  %-12s  %-8s  %-8s  %s\n",
			name, r.Year,
			formatCount(r.ParticipantsValue),
			formatChannels(r.ChannelCountValue),
			formatSeconds(r.PassageLengthSeconds),
			strings.Join(r.NormalizedFeatures, ","))
	}

	fmt.Fprintf(os.Stdout, "\n%d studies\n", len(results))
	return nil
}

func formatCount(n int) string {
	if n == types.UnknownNumeric {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}

func formatChannels(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

func formatSeconds(s float64) string {
	if s == types.UnknownNumeric {
		return "-"
	}
	return fmt.Sprintf("%.0fs", s)
}

func init() {
	queryCmd.Flags().String("search", "", "free-text search over all fields")
	queryCmd.Flags().StringArray("facet", nil, "facet selection Column=Value (repeatable)")
	queryCmd.Flags().StringSlice("feature", nil, "filter by normalized feature tags (comma-separated)")
	queryCmd.Flags().StringArray("training", nil, "filter by musical training category (repeatable)")
	queryCmd.Flags().Int("from-year", 0, "earliest publication year (0 = open)")
	queryCmd.Flags().Int("to-year", 0, "latest publication year (0 = open)")
	queryCmd.Flags().String("sort", "", "sort order: year-asc, year-desc, participants-asc, participants-desc, length-asc, length-desc")
	queryCmd.Flags().Int("limit", 0, "maximum results (0 = use config default)")
	queryCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(queryCmd)
}
