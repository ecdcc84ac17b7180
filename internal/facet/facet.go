// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package facet derives the filterable dimensions of a study collection:
// range buckets for numeric facets and the catalog of distinct values
// per facet key.
package facet

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pdiddy/study-atlas/internal/parse"
	"github.com/pdiddy/study-atlas/pkg/types"
)

// ParticipantRange buckets a participant count into its facet label.
// Values <= 0 (including the unknown sentinel) map to no bucket.
func ParticipantRange(n int) (string, bool) {
	switch {
	case n <= 0:
		return "", false
	case n <= 10:
		return "1-10", true
	case n <= 25:
		return "11-25", true
	case n <= 50:
		return "26-50", true
	case n <= 100:
		return "51-100", true
	default:
		return "100+", true
	}
}

// ChannelRange buckets a channel-count description into its facet label.
func ChannelRange(s string) (string, bool) {
	n, ok := parse.ChannelCount(s)
	if !ok {
		return "", false
	}
	switch {
	case n <= 32:
		return "1-32", true
	case n <= 64:
		return "33-64", true
	case n <= 128:
		return "65-128", true
	case n <= 256:
		return "129-256", true
	default:
		return "256+", true
	}
}

// FormatChannelCount renders a channel-count value as "N channels" when
// it leads with a digit, and passes it through unchanged otherwise.
func FormatChannelCount(s string) string {
	if n, ok := parse.ChannelCount(s); ok {
		return fmt.Sprintf("%d channels", n)
	}
	return s
}

// catalogFacets are the facet keys populated by value scanning. Channel
// Count is handled separately because its options sort numerically.
var catalogFacets = []string{
	types.ColParadigm,
	types.ColStimulus,
	types.ColTraining,
	types.ColEEGSystem,
}

// Options scans the collection once per facet and returns the distinct
// values for each facet key, sorted lexically. Musical Training options
// come from the canonical vocabulary rather than raw field values;
// Channel Count options display as "N channels" and sort by the leading
// integer.
func Options(records []*types.StudyRecord) types.FacetOptions {
	opts := make(types.FacetOptions, len(catalogFacets)+1)

	for _, key := range catalogFacets {
		seen := make(map[string]bool)
		for _, r := range records {
			if key == types.ColTraining {
				for _, cat := range r.Training {
					if containsString(parse.TrainingVocabulary, cat) {
						seen[cat] = true
					}
				}
				continue
			}
			for _, v := range r.FieldValues(key) {
				if v != "" {
					seen[v] = true
				}
			}
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		opts[key] = values
	}

	channelSeen := make(map[string]bool)
	for _, r := range records {
		if v, ok := r.Scalars[types.ColChannelCount]; ok && v != "" {
			channelSeen[FormatChannelCount(v)] = true
		}
	}
	channels := make([]string, 0, len(channelSeen))
	for v := range channelSeen {
		channels = append(channels, v)
	}
	sort.Slice(channels, func(i, j int) bool {
		ni, nj := leadingInt(channels[i]), leadingInt(channels[j])
		if ni != nj {
			return ni < nj
		}
		return channels[i] < channels[j]
	})
	opts[types.ColChannelCount] = channels

	return opts
}

func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
