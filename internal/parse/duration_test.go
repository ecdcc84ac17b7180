// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import "testing"

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"seconds", "30 seconds", 30},
		{"minutes", "2 minutes", 120},
		{"minutes and seconds", "2 minutes 30 seconds", 150},
		{"minutes and seconds with and", "2 minutes and 30 seconds", 150},
		{"colon format", "2:30", 150},
		{"colon with hours", "1:02:30", 3750},
		{"decimal minutes", "1.5 minutes", 90},
		{"decimal seconds", "30.5 seconds", 30.5},
		{"abbreviated combined", "2m30s", 150},
		{"abbreviated minutes", "2min", 120},
		{"bare large number is seconds", "90s", 90},
		{"bare small number is minutes", "5", 300},
		{"bare number above ten is seconds", "45", 45},
		{"hours", "1 hour", 3600},
		{"range averaged", "2-3 minutes", 150},
		{"range in seconds", "30-60 seconds", 45},
		{"range with to", "30 to 60 seconds", 45},
		{"en dash range", "2–3 minutes", 150},
		{"approximation stripped", "~3 minutes", 180},
		{"parenthetical stripped", "3 minutes (per block)", 180},
		{"filler stripped", "3 minutes total", 180},
		{"per trial suffix", "20 seconds per trial", 20},
		{"zero is valid", "0 seconds", 0},
		{"upper case", "2 MINUTES", 120},
		{"large", "999 minutes", 59940},
		{"nonsense", "invalid", -1},
		{"empty", "", -1},
		{"whitespace only", "   ", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.input); got != tt.want {
				t.Errorf("Duration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// A range must equal the mean of parsing each side independently.
func TestDurationRangeIsMeanOfEndpoints(t *testing.T) {
	pairs := [][2]string{
		{"2 minutes", "3 minutes"},
		{"30 seconds", "90 seconds"},
		{"1:00", "2:00"},
	}
	for _, p := range pairs {
		lo, hi := Duration(p[0]), Duration(p[1])
		got := Duration(p[0] + " - " + p[1])
		if want := (lo + hi) / 2; got != want {
			t.Errorf("Duration(%q - %q) = %v, want mean %v", p[0], p[1], got, want)
		}
	}
}

func TestDurationPartialRangeFallsThrough(t *testing.T) {
	// One unparseable endpoint: not averaged, plain parse applies instead.
	if got := Duration("high-density"); got != -1 {
		t.Errorf("Duration(high-density) = %v, want -1", got)
	}
}
