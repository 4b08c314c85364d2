package ingest

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxInputLength is the longest accepted posting or CV, in characters.
const DefaultMaxInputLength = 20000

var (
	ErrEmpty   = errors.New("input is empty")
	ErrTooLong = errors.New("input is too long")
)

// Validate rejects blank text and text longer than maxLength characters.
// A maxLength of zero or less disables the length check.
func Validate(text string, maxLength int) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmpty
	}

	if n := utf8.RuneCountInString(text); maxLength > 0 && n > maxLength {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrTooLong, n, maxLength)
	}
	return nil
}
