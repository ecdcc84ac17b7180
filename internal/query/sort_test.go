// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"testing"

	"github.com/pdiddy/study-atlas/pkg/types"
)

func record(id string, year, participants int, length float64) *types.StudyRecord {
	return &types.StudyRecord{
		ID:                   id,
		Year:                 year,
		ParticipantsValue:    participants,
		PassageLengthSeconds: length,
	}
}

func TestSortYear(t *testing.T) {
	records := []*types.StudyRecord{
		record("a", 2021, 10, 60),
		record("b", 2019, 10, 60),
		record("c", 2020, 10, 60),
	}

	asc := Sort(records, OrderYearAsc)
	if asc[0].Year != 2019 || asc[2].Year != 2021 {
		t.Errorf("year-asc order: %v", yearsOf(asc))
	}

	desc := Sort(records, OrderYearDesc)
	if desc[0].Year != 2021 || desc[2].Year != 2019 {
		t.Errorf("year-desc order: %v", yearsOf(desc))
	}

	// Input untouched.
	if records[0].Year != 2021 {
		t.Error("Sort mutated its input")
	}
}

func TestSortParticipants(t *testing.T) {
	records := []*types.StudyRecord{
		record("big", 2020, 80, 60),
		record("small", 2020, 12, 60),
	}
	asc := Sort(records, OrderParticipantsAsc)
	if asc[0].ID != "small" {
		t.Errorf("participants-asc first = %s, want small", asc[0].ID)
	}
	desc := Sort(records, OrderParticipantsDesc)
	if desc[0].ID != "big" {
		t.Errorf("participants-desc first = %s, want big", desc[0].ID)
	}
}

// Unknown (-1) values must sort after every known value no matter the
// direction.
func TestSortSentinelAlwaysLast(t *testing.T) {
	records := []*types.StudyRecord{
		record("unknown", 2020, types.UnknownNumeric, types.UnknownNumeric),
		record("known-low", 2020, 5, 30),
		record("known-high", 2020, 500, 5400),
	}

	for _, order := range []Order{
		OrderParticipantsAsc, OrderParticipantsDesc,
		OrderLengthAsc, OrderLengthDesc,
	} {
		sorted := Sort(records, order)
		if sorted[len(sorted)-1].ID != "unknown" {
			t.Errorf("%s: last = %s, want unknown", order, sorted[len(sorted)-1].ID)
		}
	}
}

func TestCompareSentinelTies(t *testing.T) {
	a := record("a", 2020, types.UnknownNumeric, types.UnknownNumeric)
	b := record("b", 2020, types.UnknownNumeric, types.UnknownNumeric)
	if got := Compare(a, b, OrderParticipantsAsc); got != 0 {
		t.Errorf("two unknowns compare as %d, want 0", got)
	}
}

func TestParseOrder(t *testing.T) {
	if _, err := ParseOrder("year-asc"); err != nil {
		t.Errorf("ParseOrder(year-asc) unexpected error: %v", err)
	}
	if _, err := ParseOrder("alphabetical"); err == nil {
		t.Error("ParseOrder(alphabetical) should fail")
	}
}

func yearsOf(records []*types.StudyRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Year
	}
	return out
}
