package keywords

import (
	"fmt"
	"strings"
	"testing"
)

func TestFocusedSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "no header",
			input:  "We ship things.\nGo and Kubernetes every day.",
			expect: "",
		},
		{
			name:   "captures raw lines after header",
			input:  "About us\nRequirements:\n  - Kubernetes \n- Terraform",
			expect: "  - Kubernetes \n- Terraform",
		},
		{
			name:   "header matched inside a longer line",
			input:  "Our MUST HAVE list\nGo",
			expect: "Go",
		},
		{
			name:   "blank lines are skipped",
			input:  "Qualifications\n\n   \nPython\r\n\r\nSQL",
			expect: "Python\nSQL",
		},
		{
			name:   "lone carriage returns split lines",
			input:  "Technical skills\rRust\rGo",
			expect: "Rust\nGo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FocusedSection(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestFocusedSectionWindow(t *testing.T) {
	t.Parallel()

	lines := []string{"Requirements"}
	for i := 1; i <= FocusWindow+3; i++ {
		lines = append(lines, fmt.Sprintf("skill %d", i))
	}

	got := strings.Split(FocusedSection(strings.Join(lines, "\n")), "\n")
	if len(got) != FocusWindow {
		t.Fatalf("expected %d captured lines, got %d", FocusWindow, len(got))
	}
	if got[len(got)-1] != fmt.Sprintf("skill %d", FocusWindow) {
		t.Fatalf("unexpected last captured line %q", got[len(got)-1])
	}
}

func TestFocusedSectionHeaderRestartsWindow(t *testing.T) {
	t.Parallel()

	lines := []string{"Requirements"}
	for i := 1; i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("a%d", i))
	}
	lines = append(lines, "Nice to have")
	for i := 1; i <= FocusWindow+2; i++ {
		lines = append(lines, fmt.Sprintf("b%d", i))
	}
	lines = append(lines, "outside", "Must have", "inside again")

	got := strings.Split(FocusedSection(strings.Join(lines, "\n")), "\n")

	if len(got) != 10+FocusWindow+1 {
		t.Fatalf("expected %d captured lines, got %d: %q", 10+FocusWindow+1, len(got), got)
	}
	for _, line := range got {
		if line == "Nice to have" || line == "Must have" || line == "outside" {
			t.Fatalf("unexpected captured line %q", line)
		}
	}
	if got[len(got)-1] != "inside again" {
		t.Fatalf("expected window to restart on a later header, got %q", got[len(got)-1])
	}
}
