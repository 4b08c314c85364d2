// Package relevance weighs job-posting keywords and measures how well a
// candidate text covers them.
package relevance

import (
	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/keywords"
)

// Scorer computes keyword weights and match results with a fixed Tuning.
// A Scorer is immutable after construction and safe for concurrent use.
type Scorer struct {
	tuning       Tuning
	insightLimit int
	logger       *zap.Logger
}

var defaultScorer = NewScorer(DefaultTuning(), nil)

// NewScorer returns a scorer using the given tuning. A nil logger disables logging.
func NewScorer(tuning Tuning, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scorer{
		tuning:       tuning,
		insightLimit: keywords.InsightLimit,
		logger:       logger.With(zap.String("component", "relevance")),
	}
}

// WithInsightLimit returns a copy of the scorer checking limit keywords in
// Evaluate insights. Non-positive limits are ignored.
func (s *Scorer) WithInsightLimit(limit int) *Scorer {
	scorer := *s
	if limit > 0 {
		scorer.insightLimit = limit
	}
	return &scorer
}

// Tuning returns the constants the scorer was built with.
func (s *Scorer) Tuning() Tuning {
	return s.tuning
}
