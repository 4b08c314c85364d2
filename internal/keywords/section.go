package keywords

import (
	"strings"

	"github.com/spigell/cv-tailor/internal/terms"
)

// FocusWindow is how many non-empty lines are captured after a section header.
const FocusWindow = 14

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// FocusedSection returns the requirements-like part of a posting: up to
// FocusWindow non-empty raw lines after every line that mentions a section
// header. Another header inside the window restarts it. Without any header
// the result is empty.
func FocusedSection(text string) string {
	var captured []string
	remaining := 0

	for _, raw := range strings.Split(lineBreaks.Replace(text), "\n") {
		line := terms.Normalize(raw)
		if line == "" {
			continue
		}

		if isSectionHeader(line) {
			remaining = FocusWindow
			continue
		}

		if remaining > 0 {
			captured = append(captured, raw)
			remaining--
		}
	}

	return strings.Join(captured, "\n")
}

func isSectionHeader(line string) bool {
	for _, header := range sectionHeaders {
		if strings.Contains(line, header) {
			return true
		}
	}
	return false
}
