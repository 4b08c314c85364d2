package relevance

import (
	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/terms"
)

// Tone colours an unweighted keyword match.
type Tone string

const (
	ToneGreen Tone = "green"
	ToneGold  Tone = "gold"
	ToneRed   Tone = "red"
)

// InsightResult is the unweighted share of the top posting keywords found in
// a candidate text.
type InsightResult struct {
	Keywords        []string `json:"keywords"`
	Matched         []string `json:"matched"`
	MatchPercentage int      `json:"matchPercentage"`
	Tone            Tone     `json:"tone"`
}

// Insights checks the top keywords.InsightLimit posting keywords against the
// candidate text, counting every keyword equally.
func Insights(jobPosting, candidateText string) InsightResult {
	return InsightsWithLimit(jobPosting, candidateText, keywords.InsightLimit)
}

// InsightsWithLimit is Insights with a custom keyword count.
func InsightsWithLimit(jobPosting, candidateText string, limit int) InsightResult {
	result := InsightResult{
		Keywords: keywords.Extract(jobPosting, limit),
		Matched:  []string{},
	}

	for _, keyword := range result.Keywords {
		if terms.Contains(candidateText, keyword) {
			result.Matched = append(result.Matched, keyword)
		}
	}

	if len(result.Keywords) > 0 {
		result.MatchPercentage = percent(float64(len(result.Matched)), float64(len(result.Keywords)))
	}
	result.Tone = ToneOf(result.MatchPercentage)

	return result
}

// ToneOf maps an unweighted match percentage to a tone.
func ToneOf(pct int) Tone {
	switch {
	case pct >= 60:
		return ToneGreen
	case pct >= 35:
		return ToneGold
	default:
		return ToneRed
	}
}
