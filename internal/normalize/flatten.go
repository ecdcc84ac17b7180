// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "github.com/pdiddy/study-atlas/pkg/types"

// Flatten lossily re-flattens a record into a row matching the original
// column order for CSV re-serialization. List-valued fields rejoin with
// ", "; missing fields become empty strings, not omitted cells.
// Re-normalizing a flattened row reproduces the record's derived fields.
func Flatten(r *types.StudyRecord, columns []string) []string {
	row := make([]string, len(columns))
	for i, column := range columns {
		if v, ok := r.Field(column); ok {
			row[i] = v
		}
	}
	return row
}
