// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse converts free-text study fields into typed values.
// Every parser here is total: it never fails, and unparseable input
// yields the documented unknown sentinel instead of an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeSepRE   = regexp.MustCompile(`[-–—]|\s+to\s+`)
	parenRE      = regexp.MustCompile(`\(.*?\)`)
	fillerRE     = regexp.MustCompile(`(?i)total|each|per trial|averaged?`)
	minSecRE     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:min|minute)s?\s*(?:and\s+)?(\d+(?:\.\d+)?)\s*(?:sec|second)s?`)
	clockRE      = regexp.MustCompile(`(\d+):(\d+)(?::(\d+))?`)
	abbrevRE     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)m(?:in)?(?:\s*(\d+(?:\.\d+)?)s(?:ec)?)?`)
	numberRE     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	minuteUnitRE = regexp.MustCompile(`(?i)min|minute`)
	secondUnitRE = regexp.MustCompile(`(?i)sec|second`)
	hourUnitRE   = regexp.MustCompile(`(?i)hour|hr`)
)

// Duration converts a free-text passage length into seconds. Ranges
// ("2-3 minutes", "30 to 60 seconds") yield the mean of both endpoints;
// a range with an unparseable endpoint falls through to plain parsing.
// Returns -1 when no numeric content is found. A bare number with no
// unit is read as minutes when <= 10 and as seconds otherwise; that
// heuristic is kept for compatibility with the curated dataset and is a
// known source of mis-parses for short-second entries.
func Duration(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1
	}

	if strings.ContainsAny(s, "-–—") || strings.Contains(s, " to ") {
		parts := rangeSepRE.Split(s, -1)
		if len(parts) == 2 {
			a := Duration(parts[0])
			b := Duration(parts[1])
			if a != -1 && b != -1 {
				return (a + b) / 2
			}
		}
	}

	clean := strings.NewReplacer("~", "", "≈", "").Replace(s)
	clean = parenRE.ReplaceAllString(clean, "")
	clean = fillerRE.ReplaceAllString(clean, "")
	clean = strings.ReplaceAll(clean, ",", ".")
	clean = strings.TrimSpace(clean)

	// "M minutes [and] S seconds"
	if m := minSecRE.FindStringSubmatch(clean); m != nil {
		minutes, _ := strconv.ParseFloat(m[1], 64)
		seconds, _ := strconv.ParseFloat(m[2], 64)
		return minutes*60 + seconds
	}

	// "H:MM:SS" or "MM:SS"
	if m := clockRE.FindStringSubmatch(clean); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		if m[3] != "" {
			secs, _ := strconv.Atoi(m[3])
			return float64(first)*3600 + float64(second)*60 + float64(secs)
		}
		return float64(first)*60 + float64(second)
	}

	// "2m30s", "2min", "90m"
	if m := abbrevRE.FindStringSubmatch(clean); m != nil {
		minutes, _ := strconv.ParseFloat(m[1], 64)
		var seconds float64
		if m[2] != "" {
			seconds, _ = strconv.ParseFloat(m[2], 64)
		}
		return minutes*60 + seconds
	}

	num := numberRE.FindString(clean)
	if num == "" {
		return -1
	}
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return -1
	}

	switch {
	case minuteUnitRE.MatchString(clean):
		return value * 60
	case secondUnitRE.MatchString(clean):
		return value
	case hourUnitRE.MatchString(clean):
		return value * 3600
	}

	if value > 10 {
		return value
	}
	return value * 60
}
