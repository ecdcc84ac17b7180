// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/pdiddy/study-atlas/internal/facet"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// ErrNoUsableData signals a systemic load failure: the input held no
// rows, or no row survived normalization. Callers must present this
// distinctly from "zero rows matched the current filters".
var ErrNoUsableData = errors.New("no usable study data")

// fallbackYearRange is reported when no admitted year exists. Admission
// requires year > 0, so this is only reachable through an empty
// collection guard upstream.
var fallbackYearRange = types.YearRange{Min: 1975, Max: 2025}

// Build normalizes every row and assembles the admitted records into a
// Dataset with metadata: year range, per-tag feature statistics, and
// the facet catalog. Individual rejections are tallied, not surfaced;
// an empty outcome is a systemic failure.
func Build(columns []string, rows []types.RawRow) (*types.Dataset, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: input has no rows", ErrNoUsableData)
	}

	var studies []*types.StudyRecord
	rejected := 0
	for i, row := range rows {
		r := Record(row, i)
		if r == nil {
			rejected++
			continue
		}
		studies = append(studies, r)
	}

	if len(studies) == 0 {
		return nil, fmt.Errorf("%w: all %d rows rejected", ErrNoUsableData, len(rows))
	}

	return &types.Dataset{
		Studies: studies,
		Metadata: types.Metadata{
			Columns:           columns,
			Count:             len(studies),
			YearRange:         yearRange(studies),
			FeatureCategories: featureStats(studies),
			FilterOptions:     facet.Options(studies),
		},
		Rejected: rejected,
	}, nil
}

func yearRange(studies []*types.StudyRecord) types.YearRange {
	yr := fallbackYearRange
	found := false
	for _, s := range studies {
		if s.Year <= 0 {
			continue
		}
		if !found {
			yr = types.YearRange{Min: s.Year, Max: s.Year}
			found = true
			continue
		}
		if s.Year < yr.Min {
			yr.Min = s.Year
		}
		if s.Year > yr.Max {
			yr.Max = s.Year
		}
	}
	return yr
}

// featureStats tallies canonical feature tags across the collection,
// sorted by descending count with name as the tie-break.
func featureStats(studies []*types.StudyRecord) []types.FeatureCategory {
	counts := make(map[string]int)
	for _, s := range studies {
		for _, tag := range s.NormalizedFeatures {
			counts[tag]++
		}
	}

	stats := make([]types.FeatureCategory, 0, len(counts))
	for tag, count := range counts {
		stats = append(stats, types.FeatureCategory{
			Name:       tag,
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(len(studies)) * 100)),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}
