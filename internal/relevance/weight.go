package relevance

import (
	"math"
	"regexp"
	"strings"

	"github.com/spigell/cv-tailor/internal/terms"
)

// lowValueTerms are generic words that say little about a candidate.
var lowValueTerms = map[string]bool{
	"work": true, "worked": true, "team": true, "teams": true,
	"experience": true, "project": true, "projects": true,
	"communication": true, "collaboration": true, "responsible": true,
	"support": true,
}

var (
	highValuePattern = regexp.MustCompile(`(?i)\b(ci/cd|machine learning|deep learning|computer vision|nlp|mlops|kubernetes|terraform|microservices|event[- ]driven|distributed systems?|sre|pytorch|tensorflow|snowflake|bigquery)\b`)

	mediumValuePattern = regexp.MustCompile(`(?i)\b(react|node\.?js|typescript|python|java|aws|azure|gcp|docker|graphql|postgres(?:ql)?|mongodb|redis|jenkins|ansible|sql|nosql|rest(?:ful)? api)\b`)
)

// Weight computes the importance of keyword for a posting with the default
// tuning. See Scorer.Weight.
func Weight(keyword, jobPosting, requiredSkillsText string) float64 {
	return defaultScorer.Weight(keyword, jobPosting, requiredSkillsText)
}

// Weight computes the importance of keyword for the posting. The steps run
// in a fixed order: the low-value dampener multiplies the base weight before
// any bonus is added. The result is clamped to [MinWeight, MaxWeight]; an
// empty keyword short-circuits to EmptyKeywordWeight.
func (s *Scorer) Weight(keyword, jobPosting, requiredSkillsText string) float64 {
	t := s.tuning

	normalized := terms.Normalize(keyword)
	if normalized == "" {
		return t.EmptyKeywordWeight
	}

	weight := t.BaseWeight

	if lowValueTerms[normalized] {
		weight *= t.LowValueFactor
	}

	switch {
	case highValuePattern.MatchString(normalized):
		weight += t.HighValueBonus
	case mediumValuePattern.MatchString(normalized):
		weight += t.MediumValueBonus
	}

	if strings.ContainsAny(normalized, " /.-") {
		weight += t.CompoundBonus
	}

	occurrences := terms.Count(strings.ToLower(jobPosting), normalized)
	weight += math.Min(t.OccurrenceCap, float64(occurrences)*t.OccurrenceStep)

	required := terms.Count(strings.ToLower(requiredSkillsText), normalized)
	if required > 0 {
		weight += t.RequiredBonus + math.Min(t.RequiredCap, float64(required)*t.RequiredStep)
	}

	return math.Max(t.MinWeight, math.Min(t.MaxWeight, weight))
}
