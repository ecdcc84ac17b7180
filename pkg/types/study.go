// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Recognized column headers. Presence of any column other than Study Name
// and Year is optional per row.
const (
	ColStudyName     = "Study Name"
	ColYear          = "Year"
	ColAuthors       = "Authors"
	ColParadigm      = "Paradigm Type"
	ColStimulus      = "Stimulus Type"
	ColTraining      = "Musical Training"
	ColChannelCount  = "Channel Count"
	ColPassageLength = "Passage Length"
	ColParticipants  = "Number of Participants"
	ColFeatures      = "Musical Features Analyzed"
	ColDOI           = "DOI/URL"
	ColDataset       = "Dataset"
	ColEEGSystem     = "EEG System Used"
	ColPreprocessing = "Preprocessing"
	ColAnalysis      = "EEG Analysis Techniques"
	ColStatTests     = "Statistical Tests"
	ColEventMarkers  = "Event Markers"
)

// Facet keys that do not correspond to a raw column.
const (
	FacetFeatures         = "normalizedFeatures"
	FacetParticipantRange = "Participant Range"
)

// UnknownNumeric is the in-band sentinel for "unknown, not zero" used by
// the participant-count and passage-length fields. It sorts after every
// known value and never matches a range bucket.
const UnknownNumeric = -1

// RawRow is one tokenized CSV row: original column header to cell value.
// Ephemeral; consumed once by the normalizer.
type RawRow map[string]string

// StudyRecord is one normalized study. The fields the pipeline reasons
// about are typed; the long tail of descriptive columns lives in the
// Scalars and Lists maps, keyed by original column header.
type StudyRecord struct {
	// ID is derived from the record's position in the input sequence
	// ("study-<index>"). Unique within one load, not stable across reloads.
	ID string `json:"id" yaml:"id"`

	// Year is the publication year. Always > 0 for an admitted record.
	Year int `json:"year" yaml:"year"`

	// ParticipantsValue is the parsed participant count, or UnknownNumeric.
	ParticipantsValue int `json:"participantsValue" yaml:"participants_value"`

	// ChannelCountValue is the leading integer of the Channel Count column,
	// or nil when the column is absent or does not start with a digit.
	ChannelCountValue *int `json:"channelCountValue,omitempty" yaml:"channel_count_value,omitempty"`

	// PassageLengthSeconds is the parsed stimulus duration in seconds,
	// or UnknownNumeric.
	PassageLengthSeconds float64 `json:"passageLengthSeconds" yaml:"passage_length_seconds"`

	// NormalizedFeatures holds canonical feature tags derived from the
	// Musical Features Analyzed column. Always non-nil, possibly empty.
	NormalizedFeatures []string `json:"normalizedFeatures" yaml:"normalized_features"`

	// Training holds the canonicalized Musical Training categories,
	// replacing the free-text original.
	Training []string `json:"musicalTraining,omitempty" yaml:"musical_training,omitempty"`

	// Scalars holds cleaned pass-through string columns.
	Scalars map[string]string `json:"scalars,omitempty" yaml:"scalars,omitempty"`

	// Lists holds pass-through list columns in first-occurrence order.
	// An absent column has no key; present keys are never empty.
	Lists map[string][]string `json:"lists,omitempty" yaml:"lists,omitempty"`
}

// Field returns the record's value for a column as a display string.
// List-valued columns are rejoined with ", ". The second return reports
// whether the column carries a value on this record.
func (r *StudyRecord) Field(column string) (string, bool) {
	switch column {
	case ColYear:
		return strconv.Itoa(r.Year), r.Year > 0
	case ColTraining:
		if len(r.Training) == 0 {
			return "", false
		}
		return strings.Join(r.Training, ", "), true
	}
	if v, ok := r.Scalars[column]; ok {
		return v, true
	}
	if vs, ok := r.Lists[column]; ok {
		return strings.Join(vs, ", "), true
	}
	return "", false
}

// FieldValues returns the column's value as a list: list columns as-is,
// scalar columns as a single element, absent columns as nil.
func (r *StudyRecord) FieldValues(column string) []string {
	switch column {
	case ColYear:
		if r.Year > 0 {
			return []string{strconv.Itoa(r.Year)}
		}
		return nil
	case ColTraining:
		return r.Training
	}
	if vs, ok := r.Lists[column]; ok {
		return vs
	}
	if v, ok := r.Scalars[column]; ok {
		return []string{v}
	}
	return nil
}

// MarshalJSON flattens the record into one object keyed by column header
// plus the derived fields, matching the catalog format consumed by the
// exploration UI.
func (r *StudyRecord) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Scalars)+len(r.Lists)+8)
	for k, v := range r.Scalars {
		flat[k] = v
	}
	for k, v := range r.Lists {
		flat[k] = v
	}
	flat["id"] = r.ID
	flat["year"] = r.Year
	flat["participantsValue"] = r.ParticipantsValue
	flat["passageLengthSeconds"] = r.PassageLengthSeconds
	flat["normalizedFeatures"] = r.NormalizedFeatures
	if r.ChannelCountValue != nil {
		flat["channelCountValue"] = *r.ChannelCountValue
	}
	if len(r.Training) > 0 {
		flat[ColTraining] = r.Training
	}
	if r.Year > 0 {
		flat[ColYear] = r.Year
	}
	return json.Marshal(flat)
}

// FacetOptions maps a facet key to the distinct values seen across a
// collection, in display order.
type FacetOptions map[string][]string

// FeatureCategory is one canonical feature tag with its usage statistics.
type FeatureCategory struct {
	Name       string `json:"name" yaml:"name"`
	Count      int    `json:"count" yaml:"count"`
	Percentage int    `json:"percentage" yaml:"percentage"`
}

// YearRange is the inclusive span of years present in a collection.
type YearRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Metadata summarizes a loaded collection for the presentation layer.
type Metadata struct {
	Columns           []string          `json:"columns" yaml:"columns"`
	Count             int               `json:"count" yaml:"count"`
	YearRange         YearRange         `json:"yearRange" yaml:"year_range"`
	FeatureCategories []FeatureCategory `json:"featureCategories" yaml:"feature_categories"`
	FilterOptions     FacetOptions      `json:"filterOptions" yaml:"filter_options"`
}

// Dataset is the result of one load: the admitted records plus metadata.
// Immutable once built; a reload replaces the whole value.
type Dataset struct {
	Studies  []*StudyRecord `json:"studies" yaml:"studies"`
	Metadata Metadata       `json:"metadata" yaml:"metadata"`

	// Rejected counts rows that failed the admission invariant.
	Rejected int `json:"-" yaml:"-"`
}

// String returns a one-line summary for progress output.
func (d *Dataset) String() string {
	return fmt.Sprintf("%d studies, %d-%d, %d rejected",
		d.Metadata.Count, d.Metadata.YearRange.Min, d.Metadata.YearRange.Max, d.Rejected)
}
