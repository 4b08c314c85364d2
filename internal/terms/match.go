package terms

import "strings"

// Count returns the number of non-overlapping, case-insensitive whole-word
// occurrences of keyword in text.
//
// The keyword is matched literally, so "c++", "ci/cd" or "node.js" never act
// as patterns. A keyword edge made of a word character ([0-9A-Za-z_]) must
// sit on a word boundary; an edge made of any other character matches as is.
func Count(text, keyword string) int {
	text = strings.ToLower(text)
	keyword = strings.ToLower(keyword)

	count := 0
	for from := 0; ; {
		end := find(text, keyword, from)
		if end < 0 {
			return count
		}
		count++
		from = end
	}
}

// Contains reports whether keyword occurs in text as a whole word.
func Contains(text, keyword string) bool {
	return find(strings.ToLower(text), strings.ToLower(keyword), 0) >= 0
}

// find returns the end offset of the first whole-word match at or after
// from, or -1. Both arguments must already be lower-cased.
func find(text, keyword string, from int) int {
	if text == "" || keyword == "" {
		return -1
	}

	leftEdge := isWordByte(keyword[0])
	rightEdge := isWordByte(keyword[len(keyword)-1])

	for from <= len(text)-len(keyword) {
		idx := strings.Index(text[from:], keyword)
		if idx < 0 {
			return -1
		}

		start := from + idx
		end := start + len(keyword)

		leftOK := !leftEdge || start == 0 || !isWordByte(text[start-1])
		rightOK := !rightEdge || end == len(text) || !isWordByte(text[end])
		if leftOK && rightOK {
			return end
		}

		from = start + 1
	}

	return -1
}

// isWordByte mirrors the ASCII \w class used by regexp word boundaries.
// Bytes of multi-byte runes are never word characters.
func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
