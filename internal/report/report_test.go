// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"
	"testing"

	"github.com/pdiddy/study-atlas/pkg/types"
)

func TestValidateCleanCatalog(t *testing.T) {
	rows := []types.RawRow{
		{"Study Name": "A", "Year": "2020", "Number of Participants": "30"},
		{"Study Name": "B", "Year": "2021", "DOI/URL": "10.1234/b"},
	}
	rep := Validate(rows)
	if !rep.Clean() {
		t.Fatalf("expected clean report, errors = %v", rep.Errors)
	}
	if rep.Admitted != 2 || rep.Rejected != 0 {
		t.Errorf("admitted/rejected = %d/%d, want 2/0", rep.Admitted, rep.Rejected)
	}
	if rep.AdmissionRate() != 100 {
		t.Errorf("AdmissionRate = %v, want 100", rep.AdmissionRate())
	}
}

func TestValidateRejectionErrors(t *testing.T) {
	rows := []types.RawRow{
		{"Year": "2020"},
		{"Study Name": "B"},
		{"Study Name": "C", "Year": "1850"},
	}
	rep := Validate(rows)
	if rep.Rejected != 3 || len(rep.Errors) != 3 {
		t.Fatalf("rejected = %d, errors = %v", rep.Rejected, rep.Errors)
	}
	wantCols := []string{"Study Name", "Year", "Year"}
	for i, e := range rep.Errors {
		if e.Column != wantCols[i] {
			t.Errorf("error %d column = %q, want %q", i, e.Column, wantCols[i])
		}
		if e.Row != i+1 {
			t.Errorf("error %d row = %d, want %d", i, e.Row, i+1)
		}
	}
}

func TestValidateBadLink(t *testing.T) {
	rows := []types.RawRow{
		{"Study Name": "A", "Year": "2020", "DOI/URL": "not-a-link"},
	}
	rep := Validate(rows)
	if len(rep.Errors) != 1 || rep.Errors[0].Column != types.ColDOI {
		t.Fatalf("errors = %v, want one DOI/URL error", rep.Errors)
	}
	// The row itself is still admitted.
	if rep.Admitted != 1 {
		t.Errorf("Admitted = %d, want 1", rep.Admitted)
	}
}

func TestValidateExtractionWarnings(t *testing.T) {
	rows := []types.RawRow{
		{
			"Study Name":                "A",
			"Year":                      "2020",
			"Number of Participants":    "several dozen",
			"Channel Count":             "high-density",
			"Passage Length":            "short excerpts",
			"Musical Features Analyzed": "novel measures",
		},
	}
	rep := Validate(rows)
	if !rep.Clean() {
		t.Fatalf("extraction failures are warnings, not errors: %v", rep.Errors)
	}
	if len(rep.Warnings) != 4 {
		t.Fatalf("warnings = %v, want 4", rep.Warnings)
	}
	stats := rep.Extraction[types.ColParticipants]
	if stats.Present != 1 || stats.Extracted != 0 || stats.Rate() != 0 {
		t.Errorf("participant stats = %+v", stats)
	}
}

func TestExtractionRates(t *testing.T) {
	rows := []types.RawRow{
		{"Study Name": "A", "Year": "2020", "Number of Participants": "30"},
		{"Study Name": "B", "Year": "2021", "Number of Participants": "unknown cohort"},
		{"Study Name": "C", "Year": "2022"},
	}
	rep := Validate(rows)
	stats := rep.Extraction[types.ColParticipants]
	if stats.Present != 2 || stats.Extracted != 1 {
		t.Fatalf("stats = %+v, want 2 present / 1 extracted", stats)
	}
	if stats.Rate() != 50 {
		t.Errorf("Rate = %v, want 50", stats.Rate())
	}
}

func TestValidateAbsenceSentinelsAreSilent(t *testing.T) {
	rows := []types.RawRow{
		{
			"Study Name":             "A",
			"Year":                   "2020",
			"Number of Participants": "Not Reported",
			"DOI/URL":                "NA",
		},
	}
	rep := Validate(rows)
	if len(rep.Errors) != 0 || len(rep.Warnings) != 0 {
		t.Errorf("absence sentinels should not be flagged: errors=%v warnings=%v",
			rep.Errors, rep.Warnings)
	}
}

func TestValidatePlausibilityWarnings(t *testing.T) {
	rows := []types.RawRow{
		{
			"Study Name":             "A",
			"Year":                   "2020",
			"Number of Participants": "250000",
			"Channel Count":          "4096 electrodes",
			"Passage Length":         "7200 seconds",
		},
	}
	rep := Validate(rows)
	if len(rep.Warnings) != 3 {
		t.Fatalf("warnings = %v, want 3 plausibility warnings", rep.Warnings)
	}
}

func TestWriteSummary(t *testing.T) {
	rows := []types.RawRow{
		{"Study Name": "A", "Year": "2020"},
		{"Year": "2020"},
	}
	rep := Validate(rows)

	var b strings.Builder
	rep.Write(&b)
	out := b.String()
	if !strings.Contains(out, "2 rows, 1 admitted, 1 rejected (50.0% admitted)") {
		t.Errorf("summary missing from output:\n%s", out)
	}
	if !strings.Contains(out, "error   row 2 [Study Name]: missing study name") {
		t.Errorf("error line missing from output:\n%s", out)
	}
}
