package relevance

import (
	"reflect"
	"testing"

	"github.com/spigell/cv-tailor/internal/keywords"
)

func TestEvaluateFallsBackToInsightKeywords(t *testing.T) {
	t.Parallel()

	cv := "Terraform and AWS."
	pool := keywords.BuildPool(platformPosting, keywords.DefaultPoolLimit)

	got := NewScorer(DefaultTuning(), nil).Evaluate(platformPosting, cv, pool, nil)

	if !reflect.DeepEqual(got.Result.Keywords, got.Insights.Keywords) {
		t.Fatalf("expected insight keywords %q to be checked, got %q", got.Insights.Keywords, got.Result.Keywords)
	}
	if got.Strength != StrengthOf(got.Result.MatchPercentage) {
		t.Fatalf("strength %s does not fit %d%%", got.Strength, got.Result.MatchPercentage)
	}
	if len(got.Selected) != 0 {
		t.Fatalf("expected empty selection, got %q", got.Selected)
	}
}

func TestEvaluateUsesSelection(t *testing.T) {
	t.Parallel()

	pool := keywords.BuildPool(platformPosting, keywords.DefaultPoolLimit)
	selected := []string{"kubernetes", "aws"}

	got := NewScorer(DefaultTuning(), nil).Evaluate(platformPosting, "aws", pool, selected)

	if !reflect.DeepEqual(got.Result.Keywords, selected) {
		t.Fatalf("expected %q to be checked, got %q", selected, got.Result.Keywords)
	}
	if got.Result.MatchPercentage != 50 {
		t.Fatalf("expected 50%%, got %d", got.Result.MatchPercentage)
	}
	expectBoost := EstimateBoost(got.Result, Selection{Selected: selected, Core: pool.Core, Optional: pool.Optional})
	if got.Boost != expectBoost {
		t.Fatalf("expected boost %d, got %d", expectBoost, got.Boost)
	}
}

func TestInsights(t *testing.T) {
	t.Parallel()

	got := Insights(platformPosting, "kubernetes terraform aws")
	if got.MatchPercentage == 0 || got.Tone == "" {
		t.Fatalf("unexpected insights: %+v", got)
	}

	empty := Insights("", "anything")
	if empty.MatchPercentage != 0 || empty.Tone != ToneRed || len(empty.Keywords) != 0 {
		t.Fatalf("unexpected insights for empty posting: %+v", empty)
	}
}

func TestWithInsightLimit(t *testing.T) {
	t.Parallel()

	base := NewScorer(DefaultTuning(), nil)
	limited := base.WithInsightLimit(2)

	got := limited.Evaluate(platformPosting, "aws", keywords.Pool{}, nil)
	if len(got.Insights.Keywords) != 2 {
		t.Fatalf("expected 2 insight keywords, got %q", got.Insights.Keywords)
	}
	if base.WithInsightLimit(0).insightLimit != keywords.InsightLimit {
		t.Fatal("expected non-positive limit to be ignored")
	}
}
