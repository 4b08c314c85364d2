package relevance

import (
	"math"

	"github.com/spigell/cv-tailor/internal/keywords"
	"github.com/spigell/cv-tailor/internal/terms"
	"go.uber.org/zap"
)

// Weighted is a keyword together with its weight and whether the candidate
// text contains it.
type Weighted struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
	Matched bool    `json:"matched"`
}

// Result is the weighted coverage of a keyword list by a candidate text.
type Result struct {
	Keywords        []string   `json:"keywords"`
	Matched         []string   `json:"matched"`
	TotalWeight     float64    `json:"totalWeight"`
	MatchedWeight   float64    `json:"matchedWeight"`
	MatchPercentage int        `json:"matchPercentage"`
	Weighted        []Weighted `json:"weighted"`
}

// UnmatchedWeight is the weight of keywords the candidate text lacks.
func (r Result) UnmatchedWeight() float64 {
	return math.Max(0, r.TotalWeight-r.MatchedWeight)
}

// Match computes the weighted match with the default tuning.
func Match(keywordsToCheck []string, jobPosting, candidateText string) Result {
	return defaultScorer.Match(keywordsToCheck, jobPosting, candidateText)
}

// Match weighs every keyword against the posting and checks whole-word
// presence in the candidate text. Matched keeps the input order.
func (s *Scorer) Match(keywordsToCheck []string, jobPosting, candidateText string) Result {
	required := keywords.FocusedSection(jobPosting)

	result := Result{
		Keywords: append([]string{}, keywordsToCheck...),
		Matched:  []string{},
		Weighted: make([]Weighted, 0, len(keywordsToCheck)),
	}

	for _, keyword := range keywordsToCheck {
		weight := s.Weight(keyword, jobPosting, required)
		matched := terms.Contains(candidateText, keyword)

		result.TotalWeight += weight
		if matched {
			result.Matched = append(result.Matched, keyword)
			result.MatchedWeight += weight
		}

		result.Weighted = append(result.Weighted, Weighted{Keyword: keyword, Weight: weight, Matched: matched})
	}

	if result.TotalWeight > 0 {
		result.MatchPercentage = percent(result.MatchedWeight, result.TotalWeight)
	}

	s.logger.Debug("weighted match computed",
		zap.Int("keywords", len(result.Keywords)),
		zap.Int("matched", len(result.Matched)),
		zap.Float64("total_weight", result.TotalWeight),
		zap.Float64("matched_weight", result.MatchedWeight),
		zap.Int("match_percentage", result.MatchPercentage),
	)

	return result
}

func percent(part, total float64) int {
	pct := int(math.Round(part / total * 100))
	return max(0, min(100, pct))
}
