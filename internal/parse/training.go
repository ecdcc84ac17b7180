// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// TrainingVocabulary is the closed set of canonical musical-training
// categories, in display order.
var TrainingVocabulary = []string{
	"Extensive Training",
	"Moderate Training",
	"Minimal Training",
	"Mixed Groups",
	"No Formal Training",
	"Not Reported",
	"Not Applicable",
}

var trainingDelimRE = regexp.MustCompile(`[,;/]`)

// TrainingCategories canonicalizes a free-text musical-training value.
// The text splits on list delimiters; each token maps to the first
// vocabulary entry that contains it or is contained by it
// (case-insensitive). Tokens matching no category are kept verbatim.
// Output order is first occurrence, without duplicates.
func TrainingCategories(s string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, token := range trainingDelimRE.Split(s, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		value := token
		lower := strings.ToLower(token)
		for _, cat := range TrainingVocabulary {
			catLower := strings.ToLower(cat)
			if strings.Contains(lower, catLower) || strings.Contains(catLower, lower) {
				value = cat
				break
			}
		}

		if !seen[value] {
			seen[value] = true
			out = append(out, value)
		}
	}
	return out
}
