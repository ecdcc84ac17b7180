// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"github.com/pdiddy/study-atlas/internal/facet"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// CountByYear tallies records per publication year in one pass. Callers
// compose with Apply to get filtered versus total counts as two
// independent calls.
func CountByYear(records []*types.StudyRecord) map[int]int {
	counts := make(map[int]int)
	for _, r := range records {
		counts[r.Year]++
	}
	return counts
}

// CountByCategory tallies records per category value for a facet key.
// List-valued fields contribute one count per element; range facets
// (Participant Range, Channel Count) bucket the numeric value first,
// with out-of-domain values excluded rather than producing a spurious
// bucket.
func CountByCategory(records []*types.StudyRecord, key string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		for _, bucket := range categoryValues(r, key) {
			counts[bucket]++
		}
	}
	return counts
}

func categoryValues(r *types.StudyRecord, key string) []string {
	switch key {
	case types.FacetParticipantRange:
		if bucket, ok := facet.ParticipantRange(r.ParticipantsValue); ok {
			return []string{bucket}
		}
		return nil
	case types.ColChannelCount:
		if raw, ok := r.Scalars[types.ColChannelCount]; ok {
			if bucket, ok := facet.ChannelRange(raw); ok {
				return []string{bucket}
			}
		}
		return nil
	case types.FacetFeatures:
		return r.NormalizedFeatures
	default:
		return r.FieldValues(key)
	}
}
