// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report audits a raw study catalog and summarizes data quality.
// Errors mark rows the normalizer rejects or silently truncates; warnings
// mark values that survive but look implausible or failed typed extraction.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/study-atlas/internal/normalize"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// Plausibility caps for warnings. Values above these are kept but flagged.
const (
	maxPlausibleParticipants = 1000
	maxPlausibleChannels     = 1024
	maxPlausiblePassageSecs  = 3600
)

// Issue is one finding against one row.
type Issue struct {
	Row     int // 1-based data row number
	Column  string
	Message string
}

// FieldStats tracks how often a typed field was present in the raw data
// and how often its extraction produced a usable value.
type FieldStats struct {
	Present   int
	Extracted int
}

// Rate returns the extraction success rate in percent. A field never
// present reports zero.
func (f FieldStats) Rate() float64 {
	if f.Present == 0 {
		return 0
	}
	return float64(f.Extracted) / float64(f.Present) * 100
}

// Report is the outcome of validating a catalog.
type Report struct {
	TotalRows  int
	Admitted   int
	Rejected   int
	Errors     []Issue
	Warnings   []Issue
	Extraction map[string]FieldStats
}

// Clean reports whether no errors were found.
func (r *Report) Clean() bool {
	return len(r.Errors) == 0
}

// AdmissionRate returns the fraction of rows the normalizer admits,
// in percent. An empty catalog reports zero.
func (r *Report) AdmissionRate() float64 {
	if r.TotalRows == 0 {
		return 0
	}
	return float64(r.Admitted) / float64(r.TotalRows) * 100
}

// Validate audits every data row of a parsed catalog.
func Validate(rows []types.RawRow) *Report {
	rep := &Report{
		TotalRows:  len(rows),
		Extraction: make(map[string]FieldStats),
	}

	for i, row := range rows {
		n := i + 1
		rec := normalize.Record(row, i)
		if rec == nil {
			rep.Rejected++
			rep.Errors = append(rep.Errors, rejectionIssue(n, row))
			continue
		}
		rep.Admitted++
		rep.checkURLs(n, row)
		rep.checkExtraction(n, row, rec)
		rep.checkPlausibility(n, rec)
	}
	return rep
}

func rejectionIssue(n int, row types.RawRow) Issue {
	name := strings.TrimSpace(row[types.ColStudyName])
	if name == "" {
		return Issue{Row: n, Column: types.ColStudyName, Message: "missing study name"}
	}
	year := strings.TrimSpace(row[types.ColYear])
	if year == "" {
		return Issue{Row: n, Column: types.ColYear, Message: "missing year"}
	}
	return Issue{Row: n, Column: types.ColYear,
		Message: fmt.Sprintf("year %q outside 1901-2029", year)}
}

func (r *Report) checkURLs(n int, row types.RawRow) {
	for _, col := range []string{types.ColDOI, types.ColDataset} {
		v := strings.TrimSpace(row[col])
		if v == "" || isAbsent(v) {
			continue
		}
		if !strings.HasPrefix(v, "http") && !strings.HasPrefix(v, "10.") {
			r.Errors = append(r.Errors, Issue{Row: n, Column: col,
				Message: fmt.Sprintf("link %q is neither a URL nor a DOI and will be dropped", v)})
		}
	}
}

// checkExtraction tallies extraction rates for the typed fields and
// flags raw values whose extraction produced the unknown sentinel.
func (r *Report) checkExtraction(n int, row types.RawRow, rec *types.StudyRecord) {
	checks := []struct {
		column    string
		extracted bool
		noun      string
	}{
		{types.ColParticipants, rec.ParticipantsValue != types.UnknownNumeric, "count"},
		{types.ColPassageLength, rec.PassageLengthSeconds != types.UnknownNumeric, "duration"},
		{types.ColChannelCount, rec.ChannelCountValue != nil, "channel count"},
		{types.ColFeatures, len(rec.NormalizedFeatures) > 0, "feature category"},
	}
	for _, c := range checks {
		v := strings.TrimSpace(row[c.column])
		if v == "" || isAbsent(v) {
			continue
		}
		stats := r.Extraction[c.column]
		stats.Present++
		if c.extracted {
			stats.Extracted++
		} else {
			r.Warnings = append(r.Warnings, Issue{Row: n, Column: c.column,
				Message: fmt.Sprintf("could not extract a %s from %q", c.noun, v)})
		}
		r.Extraction[c.column] = stats
	}
}

func (r *Report) checkPlausibility(n int, rec *types.StudyRecord) {
	if rec.ParticipantsValue > maxPlausibleParticipants {
		r.Warnings = append(r.Warnings, Issue{Row: n, Column: types.ColParticipants,
			Message: fmt.Sprintf("%d participants is unusually large", rec.ParticipantsValue)})
	}
	if rec.ChannelCountValue != nil && *rec.ChannelCountValue > maxPlausibleChannels {
		r.Warnings = append(r.Warnings, Issue{Row: n, Column: types.ColChannelCount,
			Message: fmt.Sprintf("%d channels is unusually large", *rec.ChannelCountValue)})
	}
	if rec.PassageLengthSeconds > maxPlausiblePassageSecs {
		r.Warnings = append(r.Warnings, Issue{Row: n, Column: types.ColPassageLength,
			Message: fmt.Sprintf("passage length %.0fs exceeds an hour", rec.PassageLengthSeconds)})
	}
}

// isAbsent mirrors the normalizer's data-absence sentinels.
func isAbsent(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "na", "not specified", "not reported":
		return true
	}
	return false
}

// Write prints the report: per-issue lines followed by a summary block.
func (r *Report) Write(w io.Writer) {
	for _, e := range r.Errors {
		fmt.Fprintf(w, "error   row %d [%s]: %s\n", e.Row, e.Column, e.Message)
	}
	for _, wrn := range r.Warnings {
		fmt.Fprintf(w, "warning row %d [%s]: %s\n", wrn.Row, wrn.Column, wrn.Message)
	}
	fmt.Fprintf(w, "\nValidation summary: %d rows, %d admitted, %d rejected (%.1f%% admitted)\n",
		r.TotalRows, r.Admitted, r.Rejected, r.AdmissionRate())
	fmt.Fprintf(w, "%d errors, %d warnings\n", len(r.Errors), len(r.Warnings))

	if len(r.Extraction) > 0 {
		columns := make([]string, 0, len(r.Extraction))
		for col := range r.Extraction {
			columns = append(columns, col)
		}
		sort.Strings(columns)
		fmt.Fprintln(w, "\nExtraction rates:")
		for _, col := range columns {
			s := r.Extraction[col]
			fmt.Fprintf(w, "  %-28s %d/%d (%.1f%%)\n", col, s.Extracted, s.Present, s.Rate())
		}
	}
}
