package terms

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "only whitespace", input: " \t\n ", expect: ""},
		{name: "lower-cases", input: "Kubernetes", expect: "kubernetes"},
		{name: "collapses inner whitespace", input: "Machine \t\n  Learning", expect: "machine learning"},
		{name: "trims", input: "   AWS  ", expect: "aws"},
		{name: "keeps punctuation", input: " CI/CD ", expect: "ci/cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"  Go  Developer ",
		"REST API",
		"Node.JS\r\n",
		"ÜBER   Straße",
		"\t- Terraform\t",
	}

	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("normalize is not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}

func TestSplitCandidateTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty",
			input:  "",
			expect: []string{},
		},
		{
			name:   "bullets on lines",
			input:  "- Kubernetes\n* Terraform\n• AWS",
			expect: []string{"kubernetes", "terraform", "aws"},
		},
		{
			name:   "all separators",
			input:  "Go, Rust; CI/CD | Docker",
			expect: []string{"go", "rust", "ci", "cd", "docker"},
		},
		{
			name:   "indented bullets and blank fragments",
			input:  "   -   Python 3\n\n,, ;\n  * SQL",
			expect: []string{"python 3", "sql"},
		},
		{
			name:   "only the first marker is stripped",
			input:  "-- flags",
			expect: []string{"- flags"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitCandidateTerms(tt.input)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
