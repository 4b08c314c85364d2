// Package keywords mines a job posting for salient technical and skill terms
// and ranks them by how strongly the posting asks for them.
package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/cv-tailor/internal/terms"
)

const (
	// DefaultPoolLimit sizes the general keyword pool.
	DefaultPoolLimit = 18
	// InsightLimit sizes the keyword list used by quick match insights.
	InsightLimit = 12
)

// Partial scores added by each extraction pass.
const (
	focusedPatternScore = 8
	patternScore        = 3
	focusedTermScore    = 4
	fallbackWordScore   = 1

	maxFocusedTermWords = 4
	minFallbackWordLen  = 4
	minTokenLen         = 2
)

// Scored is a keyword with its accumulated extraction score.
type Scored struct {
	Term  string `json:"term"`
	Score int    `json:"score"`
}

// Extract returns up to limit keywords of text, best first.
func Extract(text string, limit int) []string {
	scored := ExtractScored(text, limit)

	result := make([]string, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.Term)
	}
	return result
}

// ExtractScored is Extract with the accumulated scores kept.
func ExtractScored(text string, limit int) []Scored {
	if limit <= 0 {
		return []Scored{}
	}

	focused := FocusedSection(text)
	board := newScoreboard()

	for _, pattern := range termPatterns {
		for _, match := range pattern.findAll(focused) {
			board.add(match, focusedPatternScore)
		}
		for _, match := range pattern.findAll(text) {
			board.add(match, patternScore)
		}
	}

	for _, term := range terms.SplitCandidateTerms(focused) {
		if len(strings.Split(term, " ")) <= maxFocusedTermWords {
			board.add(term, focusedTermScore)
		}
	}

	for _, word := range fallbackWords(text) {
		board.add(word, fallbackWordScore)
	}

	return board.top(limit)
}

// fallbackWords keeps the plain lowercase alphanumeric words of text that are
// long enough to carry some signal.
func fallbackWords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	var words []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) >= minFallbackWordLen && !stopWords[word] {
			words = append(words, word)
		}
	}
	return words
}

// scoreboard accumulates scores per normalized token and remembers the order
// in which tokens were first seen so that ranking ties stay deterministic.
type scoreboard struct {
	scores map[string]int
	order  []string
}

func newScoreboard() *scoreboard {
	return &scoreboard{scores: make(map[string]int)}
}

func (b *scoreboard) add(raw string, score int) {
	token := terms.Normalize(raw)
	if rejected(token) {
		return
	}

	if _, seen := b.scores[token]; !seen {
		b.order = append(b.order, token)
	}
	b.scores[token] += score
}

func (b *scoreboard) top(limit int) []Scored {
	ranked := make([]Scored, 0, len(b.order))
	for _, token := range b.order {
		ranked = append(ranked, Scored{Term: token, Score: b.scores[token]})
	}

	// order is first-seen order, a stable sort keeps it for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func rejected(token string) bool {
	if token == "" || utf8.RuneCountInString(token) < minTokenLen {
		return true
	}
	if isNumeric(token) {
		return true
	}
	return stopWords[token]
}

func isNumeric(token string) bool {
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}
	return true
}
