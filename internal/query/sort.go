// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"sort"

	"github.com/pdiddy/study-atlas/pkg/types"
)

// Order identifies one of the six total orders over derived numeric
// facets.
type Order string

const (
	OrderYearAsc          Order = "year-asc"
	OrderYearDesc         Order = "year-desc"
	OrderParticipantsAsc  Order = "participants-asc"
	OrderParticipantsDesc Order = "participants-desc"
	OrderLengthAsc        Order = "length-asc"
	OrderLengthDesc       Order = "length-desc"
)

// Orders lists every supported sort order.
var Orders = []Order{
	OrderYearAsc, OrderYearDesc,
	OrderParticipantsAsc, OrderParticipantsDesc,
	OrderLengthAsc, OrderLengthDesc,
}

// Valid reports whether o names a supported order.
func (o Order) Valid() bool {
	for _, known := range Orders {
		if o == known {
			return true
		}
	}
	return false
}

// Compare returns a negative, zero, or positive value ordering a before,
// equal to, or after b. For the participant and passage-length orders a
// record with an unknown value sorts after every known value in both
// directions: unknowns go to the end of the visible list, not the start.
func Compare(a, b *types.StudyRecord, order Order) int {
	switch order {
	case OrderYearAsc:
		return a.Year - b.Year
	case OrderYearDesc:
		return b.Year - a.Year
	case OrderParticipantsAsc:
		return compareSentinel(float64(a.ParticipantsValue), float64(b.ParticipantsValue), false)
	case OrderParticipantsDesc:
		return compareSentinel(float64(a.ParticipantsValue), float64(b.ParticipantsValue), true)
	case OrderLengthAsc:
		return compareSentinel(a.PassageLengthSeconds, b.PassageLengthSeconds, false)
	case OrderLengthDesc:
		return compareSentinel(a.PassageLengthSeconds, b.PassageLengthSeconds, true)
	default:
		return 0
	}
}

// compareSentinel orders two values whose unknown sentinel is -1. The
// sentinel check runs before the numeric comparison so that direction
// never pulls unknowns to the front.
func compareSentinel(a, b float64, desc bool) int {
	aUnknown, bUnknown := a == types.UnknownNumeric, b == types.UnknownNumeric
	switch {
	case aUnknown && bUnknown:
		return 0
	case aUnknown:
		return 1
	case bUnknown:
		return -1
	}
	if desc {
		a, b = b, a
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sort returns a stably sorted copy of records. An unknown order leaves
// the input order intact.
func Sort(records []*types.StudyRecord, order Order) []*types.StudyRecord {
	out := make([]*types.StudyRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j], order) < 0
	})
	return out
}

// ParseOrder validates an order name from user input.
func ParseOrder(s string) (Order, error) {
	o := Order(s)
	if !o.Valid() {
		return "", fmt.Errorf("unknown sort order %q: use one of %v", s, Orders)
	}
	return o, nil
}
