package relevance

import (
	"math"
	"slices"
)

const (
	boostCap              = 40.0
	unmatchedWeightFactor = 4.1
	selectedCoreBonus     = 1.15
	selectedOptionalBonus = 0.55
	extraSelectionBonus   = 0.35
	freeSelections        = 6
	fallbackCoreOffset    = 4
	fallbackCoreCap       = 8
	fallbackCoreBonus     = 0.45
)

// Selection is the keyword choice the boost is estimated for. Core and
// Optional are the pool partitions the selection was picked from.
type Selection struct {
	Selected []string `json:"selected"`
	Core     []string `json:"core"`
	Optional []string `json:"optional"`
}

// EstimateBoost returns a heuristic percentage, in [0, 40], of how much a
// tailored CV could improve the keyword match.
func EstimateBoost(result Result, sel Selection) int {
	var selectedCore, selectedOptional int
	for _, keyword := range sel.Selected {
		if slices.Contains(sel.Core, keyword) {
			selectedCore++
		}
		if slices.Contains(sel.Optional, keyword) {
			selectedOptional++
		}
	}

	explicit := float64(selectedCore)*selectedCoreBonus +
		float64(selectedOptional)*selectedOptionalBonus +
		float64(max(0, len(sel.Selected)-freeSelections))*extraSelectionBonus

	var fallback float64
	if len(sel.Selected) == 0 {
		fallback = float64(max(0, min(fallbackCoreCap, len(sel.Core)-fallbackCoreOffset))) * fallbackCoreBonus
	}

	boost := math.Min(boostCap, result.UnmatchedWeight()*unmatchedWeightFactor+explicit+fallback)

	return int(math.Round(boost))
}
