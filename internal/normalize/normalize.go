// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns raw tokenized rows into validated StudyRecords
// and assembles an admitted collection into a Dataset with its derived
// metadata.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/study-atlas/internal/parse"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// listColumns hold comma/semicolon/slash-delimited values and normalize
// into ordered lists.
var listColumns = map[string]bool{
	types.ColParadigm:      true,
	types.ColStimulus:      true,
	types.ColFeatures:      true,
	types.ColPreprocessing: true,
	types.ColAnalysis:      true,
	types.ColStatTests:     true,
	types.ColEventMarkers:  true,
}

// urlColumns must look like a URL or a bare DOI; anything else is
// dropped silently.
var urlColumns = map[string]bool{
	types.ColDOI:     true,
	types.ColDataset: true,
}

var listDelimRE = regexp.MustCompile(`[,;/]`)

// Record normalizes one raw row into a StudyRecord. It returns nil when
// the row fails the admission invariant: a parseable year strictly
// between 1900 and 2030 and a non-empty study name. Field-level problems
// (bad URL, sentinel value, unparseable sub-value) drop the field, never
// the record.
func Record(row types.RawRow, index int) *types.StudyRecord {
	if row == nil {
		return nil
	}

	r := &types.StudyRecord{
		ID:                   fmt.Sprintf("study-%d", index),
		ParticipantsValue:    types.UnknownNumeric,
		PassageLengthSeconds: types.UnknownNumeric,
		NormalizedFeatures:   []string{},
		Scalars:              make(map[string]string),
		Lists:                make(map[string][]string),
	}

	for column, raw := range row {
		value := cleanValue(raw)
		if value == "" {
			continue
		}
		// "Not Reported" is a legitimate Musical Training category, so
		// that column is exempt from sentinel elision.
		if column != types.ColTraining && isSentinel(value) {
			continue
		}

		switch {
		case column == types.ColYear:
			if year, err := strconv.Atoi(value); err == nil && year > 1900 && year < 2030 {
				r.Year = year
			}

		case column == types.ColTraining:
			if cats := parse.TrainingCategories(value); len(cats) > 0 {
				r.Training = cats
			}

		case listColumns[column]:
			if items := splitList(value); len(items) > 0 {
				r.Lists[column] = items
			}
			if column == types.ColFeatures {
				r.NormalizedFeatures = parse.Features(value)
			}

		case urlColumns[column]:
			if strings.HasPrefix(value, "http") || strings.HasPrefix(value, "10.") {
				r.Scalars[column] = value
			}

		case column == types.ColChannelCount:
			r.Scalars[column] = value
			if n, ok := parse.ChannelCount(value); ok {
				r.ChannelCountValue = &n
			}

		case column == types.ColPassageLength:
			r.Scalars[column] = value
			r.PassageLengthSeconds = parse.Duration(value)

		case column == types.ColParticipants:
			r.Scalars[column] = value
			r.ParticipantsValue = parse.ParticipantCount(value)

		default:
			r.Scalars[column] = value
		}
	}

	if r.Year <= 0 || strings.TrimSpace(r.Scalars[types.ColStudyName]) == "" {
		return nil
	}
	return r
}

// cleanValue strips C0 control characters, collapses whitespace runs,
// and trims.
func cleanValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isSentinel(value string) bool {
	switch strings.ToLower(value) {
	case "na", "not specified", "not reported":
		return true
	}
	return false
}

// splitList tokenizes a delimited value into trimmed, non-empty,
// first-occurrence-deduplicated elements.
func splitList(value string) []string {
	var items []string
	seen := make(map[string]bool)
	for _, item := range listDelimRE.Split(value, -1) {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
	}
	return items
}
