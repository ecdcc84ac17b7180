// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package csvio reads and writes study catalogs in delimited text form.
// Reading tolerates the formats catalogs arrive in: the delimiter is
// guessed from the header line, ragged rows are padded or truncated to
// the header width, and blank lines are skipped.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/study-atlas/pkg/types"
)

// candidateDelimiters are tried in order when guessing; comma wins ties.
var candidateDelimiters = []rune{',', '\t', '|', ';'}

// Table is the raw parse of a delimited file: the header row and one
// RawRow per data line, keyed by header column.
type Table struct {
	Columns []string
	Rows    []types.RawRow
}

// GuessDelimiter picks the delimiter that splits the header line into
// the most fields. A line with no candidate present defaults to comma.
func GuessDelimiter(header string) rune {
	best := ','
	bestCount := 0
	for _, d := range candidateDelimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}

// Read parses a delimited catalog from r. The first non-empty line is
// the header; its delimiter is guessed unless delimiter is non-zero.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\uFEFF")

	if delimiter == 0 {
		delimiter = GuessDelimiter(firstLine(text))
	}

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	columns := make([]string, len(records[0]))
	for i, c := range records[0] {
		columns[i] = strings.TrimSpace(c)
	}

	table := &Table{Columns: columns}
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(types.RawRow, len(columns))
		for i, col := range columns {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Read(f, delimiter)
}

// Write emits a comma-delimited catalog: the header row followed by one
// row per record, flattened through cells.
func Write(w io.Writer, columns []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func firstLine(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		return text[:i]
	}
	return text
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
