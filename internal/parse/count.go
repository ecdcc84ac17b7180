// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// writtenNumbers maps spelled-out counts to integers. Declaration order
// is the lookup order: input containing several number words resolves to
// the first entry that matches.
var writtenNumbers = []struct {
	word  string
	value int
}{
	{"one", 1}, {"two", 2}, {"three", 3}, {"four", 4}, {"five", 5},
	{"six", 6}, {"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10},
	{"twenty", 20}, {"thirty", 30}, {"forty", 40}, {"fifty", 50},
}

var (
	countRangeRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[-–—]\s*(\d+(?:\.\d+)?)`)
	plusMinusRE  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*±\s*(\d+(?:\.\d+)?)`)
)

// ParticipantCount extracts a participant count from free text such as
// "N=30", "20-25 participants", "25 ± 5", or "twenty subjects". Range and
// plus-minus forms yield the first (lower/central) component. Returns -1
// when no numeric content is found; zero is a valid count.
func ParticipantCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1
	}

	lower := strings.ToLower(s)
	for _, wn := range writtenNumbers {
		if strings.Contains(lower, wn.word) {
			return wn.value
		}
	}

	if m := countRangeRE.FindStringSubmatch(s); m != nil {
		return roundNumber(m[1])
	}
	if m := plusMinusRE.FindStringSubmatch(s); m != nil {
		return roundNumber(m[1])
	}

	num := numberRE.FindString(s)
	if num == "" {
		return -1
	}
	return roundNumber(num)
}

func roundNumber(s string) int {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return int(math.Round(v))
}

var leadingDigitsRE = regexp.MustCompile(`^\d+`)

// ChannelCount extracts the leading run of digits from a channel
// description ("64 channels" yields 64). The second return is false when
// the string does not begin with a digit ("high-density"), which is
// distinct from a measured count of zero.
func ChannelCount(s string) (int, bool) {
	m := leadingDigitsRE.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
