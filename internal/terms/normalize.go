// Package terms turns raw text fragments into comparable keyword tokens and
// matches them back against free text.
package terms

import "strings"

// Normalize lower-cases the token, collapses whitespace runs into a single
// space and trims the result. An empty input yields an empty token.
func Normalize(token string) string {
	return strings.Join(strings.Fields(strings.ToLower(token)), " ")
}

// SplitCandidateTerms splits text on newlines, commas, semicolons, slashes and
// pipes, strips a leading bullet marker from every fragment and returns the
// non-empty normalized fragments in their original order.
func SplitCandidateTerms(text string) []string {
	fragments := strings.FieldsFunc(text, isTermSeparator)

	result := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		term := Normalize(stripBullet(fragment))
		if term == "" {
			continue
		}
		result = append(result, term)
	}

	return result
}

func isTermSeparator(r rune) bool {
	switch r {
	case '\n', ',', ';', '/', '|':
		return true
	default:
		return false
	}
}

// stripBullet removes one "-", "*" or "•" marker together with the whitespace
// around it. Indented bullets are accepted too.
func stripBullet(fragment string) string {
	trimmed := strings.TrimLeft(fragment, " \t\r")
	for _, marker := range []string{"-", "*", "•"} {
		if rest, ok := strings.CutPrefix(trimmed, marker); ok {
			return strings.TrimLeft(rest, " \t\r")
		}
	}
	return fragment
}
