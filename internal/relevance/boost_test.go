package relevance

import "testing"

func TestEstimateBoost(t *testing.T) {
	t.Parallel()

	core := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	optional := []string{"i", "j"}

	tests := []struct {
		name   string
		result Result
		sel    Selection
		expect int
	}{
		{
			name:   "nothing to gain",
			result: Result{TotalWeight: 5, MatchedWeight: 5},
			expect: 0,
		},
		{
			name:   "fallback uses core size",
			result: Result{TotalWeight: 5, MatchedWeight: 5},
			sel:    Selection{Core: core, Optional: optional},
			expect: 2,
		},
		{
			name:   "explicit selection",
			result: Result{TotalWeight: 4, MatchedWeight: 3},
			sel:    Selection{Selected: []string{"a", "b", "i"}, Core: core, Optional: optional},
			expect: 7,
		},
		{
			name:   "large selection bonus",
			result: Result{TotalWeight: 8, MatchedWeight: 8},
			sel:    Selection{Selected: []string{"a", "b", "c", "d", "e", "f", "g", "h"}, Core: core},
			expect: 10,
		},
		{
			name:   "capped",
			result: Result{TotalWeight: 30, MatchedWeight: 0},
			expect: 40,
		},
		{
			name:   "matched weight above total",
			result: Result{TotalWeight: 1, MatchedWeight: 2},
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EstimateBoost(tt.result, tt.sel); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestStrengthAndTone(t *testing.T) {
	t.Parallel()

	strengths := map[int]Strength{0: Weak, 39: Weak, 40: Moderate, 69: Moderate, 70: Strong, 100: Strong}
	for pct, expect := range strengths {
		if got := StrengthOf(pct); got != expect {
			t.Fatalf("StrengthOf(%d): expected %s, got %s", pct, expect, got)
		}
	}

	tones := map[int]Tone{0: ToneRed, 34: ToneRed, 35: ToneGold, 59: ToneGold, 60: ToneGreen}
	for pct, expect := range tones {
		if got := ToneOf(pct); got != expect {
			t.Fatalf("ToneOf(%d): expected %s, got %s", pct, expect, got)
		}
	}
}
