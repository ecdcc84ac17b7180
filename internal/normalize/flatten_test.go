// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/pdiddy/study-atlas/pkg/types"
)

func TestFlattenRoundTrip(t *testing.T) {
	columns := []string{
		"Study Name", "Year", "Number of Participants",
		"Channel Count", "Paradigm Type", "Missing Column",
	}
	row := types.RawRow{
		"Study Name":             "Round Trip",
		"Year":                   "2019",
		"Number of Participants": "42",
		"Channel Count":          "32 channels",
		"Paradigm Type":          "Passive Listening, Active",
	}

	first := Record(row, 0)
	if first == nil {
		t.Fatal("row rejected")
	}

	cells := Flatten(first, columns)
	if len(cells) != len(columns) {
		t.Fatalf("got %d cells, want %d", len(cells), len(columns))
	}
	if cells[len(cells)-1] != "" {
		t.Errorf("absent column should flatten to empty, got %q", cells[len(cells)-1])
	}

	rebuilt := types.RawRow{}
	for i, col := range columns {
		rebuilt[col] = cells[i]
	}
	second := Record(rebuilt, 0)
	if second == nil {
		t.Fatal("flattened row rejected on re-normalization")
	}

	if second.Year != first.Year {
		t.Errorf("Year = %d, want %d", second.Year, first.Year)
	}
	if second.ParticipantsValue != first.ParticipantsValue {
		t.Errorf("ParticipantsValue = %d, want %d", second.ParticipantsValue, first.ParticipantsValue)
	}
	if (second.ChannelCountValue == nil) != (first.ChannelCountValue == nil) {
		t.Fatalf("ChannelCountValue presence differs")
	}
	if first.ChannelCountValue != nil && *second.ChannelCountValue != *first.ChannelCountValue {
		t.Errorf("ChannelCountValue = %d, want %d", *second.ChannelCountValue, *first.ChannelCountValue)
	}
	if len(second.Lists[types.ColParadigm]) != len(first.Lists[types.ColParadigm]) {
		t.Errorf("Paradigm Type = %v, want %v",
			second.Lists[types.ColParadigm], first.Lists[types.ColParadigm])
	}
}
