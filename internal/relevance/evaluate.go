package relevance

import (
	"github.com/spigell/cv-tailor/internal/keywords"
	"go.uber.org/zap"
)

// Evaluation bundles everything computed for one posting and CV pair.
type Evaluation struct {
	Pool     keywords.Pool `json:"pool"`
	Selected []string      `json:"selected"`
	Insights InsightResult `json:"insights"`
	Result   Result        `json:"result"`
	Strength Strength      `json:"strength"`
	Boost    int           `json:"estimatedAtsBoost"`
}

// Evaluate runs the weighted match for the selected keywords. Without a
// selection the insight keywords are checked instead.
func (s *Scorer) Evaluate(jobPosting, candidateText string, pool keywords.Pool, selected []string) Evaluation {
	insights := InsightsWithLimit(jobPosting, candidateText, s.insightLimit)

	toCheck := selected
	if len(toCheck) == 0 {
		toCheck = insights.Keywords
	}

	result := s.Match(toCheck, jobPosting, candidateText)
	eval := Evaluation{
		Pool:     pool,
		Selected: append([]string{}, selected...),
		Insights: insights,
		Result:   result,
		Strength: StrengthOf(result.MatchPercentage),
		Boost: EstimateBoost(result, Selection{
			Selected: selected,
			Core:     pool.Core,
			Optional: pool.Optional,
		}),
	}

	s.logger.Info("evaluation finished",
		zap.Int("selected", len(eval.Selected)),
		zap.Int("match_percentage", result.MatchPercentage),
		zap.String("strength", string(eval.Strength)),
		zap.Int("estimated_ats_boost", eval.Boost),
		zap.Int("insight_percentage", insights.MatchPercentage),
	)

	return eval
}
