// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query applies composable filters, total-order sorts, and
// bucketed aggregations over a normalized study collection. Every
// function is pure: inputs are never mutated, so callers may evaluate
// several views of the same collection concurrently.
package query

import (
	"strconv"
	"strings"

	"github.com/pdiddy/study-atlas/internal/facet"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// Spec describes one filter evaluation: inclusive year bounds, a
// free-text search query, and per-facet selected values. Facets with an
// empty selection are ignored. A zero start or end year leaves that
// bound open.
type Spec struct {
	SearchQuery string              `json:"searchQuery" yaml:"search_query"`
	Active      map[string][]string `json:"activeFilters" yaml:"active_filters"`
	StartYear   int                 `json:"startYear" yaml:"start_year"`
	EndYear     int                 `json:"endYear" yaml:"end_year"`
}

// Apply returns the order-preserving subset of records matching the
// spec. Dimensions compose with AND; within one facet the selected
// values compose with OR. A nil spec matches everything: this sits on an
// interactive hot path where a malformed spec must degrade to "no
// filtering", never fail.
func Apply(records []*types.StudyRecord, spec *Spec) []*types.StudyRecord {
	out := make([]*types.StudyRecord, 0, len(records))
	if spec == nil {
		return append(out, records...)
	}

	search := strings.ToLower(strings.TrimSpace(spec.SearchQuery))

	for _, r := range records {
		if spec.StartYear > 0 && r.Year < spec.StartYear {
			continue
		}
		if spec.EndYear > 0 && r.Year > spec.EndYear {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if !matchesFacets(r, spec.Active) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// matchesSearch reports whether any user-facing field value contains the
// lowercased query. Internal derived fields (id and the numeric/tag
// companions) are excluded.
func matchesSearch(r *types.StudyRecord, query string) bool {
	for _, v := range r.Scalars {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	for _, vs := range r.Lists {
		for _, v := range vs {
			if strings.Contains(strings.ToLower(v), query) {
				return true
			}
		}
	}
	for _, v := range r.Training {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return strings.Contains(strconv.Itoa(r.Year), query)
}

func matchesFacets(r *types.StudyRecord, active map[string][]string) bool {
	for key, selected := range active {
		if len(selected) == 0 {
			continue
		}
		if !matchFacet(r, key, selected) {
			return false
		}
	}
	return true
}

// matchFacet evaluates one facet predicate. Categorical facets match
// exactly on canonicalized or bucketed values, never by substring.
func matchFacet(r *types.StudyRecord, key string, selected []string) bool {
	switch key {
	case types.ColTraining:
		return intersects(r.Training, selected)

	case types.ColChannelCount:
		raw, ok := r.Scalars[types.ColChannelCount]
		if !ok {
			return false
		}
		// The displayed option and the stored original may differ in
		// formatting; compare both forms.
		return contains(selected, facet.FormatChannelCount(raw)) || contains(selected, raw)

	case types.FacetParticipantRange:
		bucket, ok := facet.ParticipantRange(r.ParticipantsValue)
		return ok && contains(selected, bucket)

	case types.FacetFeatures:
		return intersects(r.NormalizedFeatures, selected)

	default:
		return intersects(r.FieldValues(key), selected)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(values, selected []string) bool {
	for _, v := range values {
		if contains(selected, v) {
			return true
		}
	}
	return false
}
