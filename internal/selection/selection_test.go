package selection

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spigell/cv-tailor/internal/keywords"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testPool = keywords.NewPool([]string{"kubernetes", "terraform", "aws", "docker", "python", "golang", "redis", "sql"})

func TestRunDefaultPipeline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	excludeFile := filepath.Join(dir, "exclude.txt")
	if err := os.WriteFile(excludeFile, []byte("# not my stack\nPython\n\n"), 0o644); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	core, logs := observer.New(zapcore.InfoLevel)
	steps := Default()
	DisableByName(steps, "interactive", "not requested")

	cfg := &Config{
		Exclude:     []string{"AWS"},
		ExcludeFile: excludeFile,
		Include:     []string{" Go ", "go", "gRPC"},
	}

	got, err := Run(context.Background(), cfg, Deps{Logger: zap.New(core), Pool: testPool}, steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expect := []string{"kubernetes", "terraform", "docker", "golang", "redis", "sql", "go", "grpc"}
	if !reflect.DeepEqual(got.Items, expect) {
		t.Fatalf("expected %q, got %q", expect, got.Items)
	}

	if n := logs.FilterMessage("selection step").Len(); n != 4 {
		t.Fatalf("expected 4 step log entries, got %d", n)
	}
}

func TestRunExplicitAndNone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    *Config
		expect []string
	}{
		{name: "nil config seeds core", cfg: nil, expect: testPool.Core},
		{name: "none", cfg: &Config{DefaultSelection: DefaultNone}, expect: []string{}},
		{name: "explicit wins", cfg: &Config{DefaultSelection: DefaultNone, Explicit: []string{"Rust", "rust", "C++"}}, expect: []string{"rust", "c++"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			steps := Default()
			DisableByName(steps, "interactive", "not requested")

			got, err := Run(context.Background(), tt.cfg, Deps{Pool: testPool}, steps)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got.Items, tt.expect) {
				t.Fatalf("expected %q, got %q", tt.expect, got.Items)
			}
		})
	}
}

func TestRunValidation(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), &Config{DefaultSelection: "all"}, Deps{Pool: testPool}, Default())
	if err == nil || !strings.HasPrefix(err.Error(), "recommended:") {
		t.Fatalf("expected recommended step error, got %v", err)
	}
}

func TestRunMissingExcludeFile(t *testing.T) {
	t.Parallel()

	steps := Default()
	DisableByName(steps, "interactive", "not requested")

	cfg := &Config{ExcludeFile: filepath.Join(t.TempDir(), "missing.txt")}
	if _, err := Run(context.Background(), cfg, Deps{Pool: testPool}, steps); err == nil {
		t.Fatal("expected an error for a missing exclude file")
	}
}

func TestSanitizeInclude(t *testing.T) {
	t.Parallel()

	raw := []string{"", "  ", "Kubernetes", "kubernetes "}
	for i := range 40 {
		raw = append(raw, "term"+strings.Repeat("x", i))
	}

	got := SanitizeInclude(raw)
	if len(got) != MaxInclude {
		t.Fatalf("expected %d keywords, got %d", MaxInclude, len(got))
	}
	if got[0] != "kubernetes" || got[1] != "term" {
		t.Fatalf("unexpected order: %q", got[:2])
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	steps := Default()
	DisableByName(steps, "interactive", "not requested")

	statuses := Describe(steps)
	if len(statuses) != len(steps) {
		t.Fatalf("expected %d statuses, got %d", len(steps), len(statuses))
	}

	last := statuses[len(statuses)-1]
	if last.Name != "interactive" || last.Enabled || last.Reason != "not requested" {
		t.Fatalf("unexpected interactive status: %+v", last)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet("Go", "go", "Rust")
	if !reflect.DeepEqual(s.Items, []string{"go", "rust"}) {
		t.Fatalf("unexpected items: %q", s.Items)
	}

	if s.Toggle("GO") {
		t.Fatal("expected go to be deselected")
	}
	if !s.Toggle("zig") {
		t.Fatal("expected zig to be selected")
	}

	removed := s.Exclude([]string{"rust", "java"})
	if !reflect.DeepEqual(removed, []string{"rust"}) || !reflect.DeepEqual(s.Items, []string{"zig"}) {
		t.Fatalf("unexpected exclude result: removed %q, left %q", removed, s.Items)
	}
}

func TestSetMembershipAfterChanges(t *testing.T) {
	t.Parallel()

	s := NewSet("aws", "sql")
	s.Exclude([]string{"AWS"})
	if s.Has("aws") {
		t.Fatal("expected aws to be gone after exclude")
	}
	if added := s.Add("aws"); !reflect.DeepEqual(added, []string{"aws"}) {
		t.Fatalf("expected aws to be added again, got %q", added)
	}

	s.Clear()
	if s.Has("sql") || s.Len() != 0 {
		t.Fatalf("expected an empty set, got %q", s.Items)
	}

	var zero Set
	zero.Add("Go", "go")
	if !zero.Has("GO") || zero.Len() != 1 {
		t.Fatalf("unexpected zero-value set: %q", zero.Items)
	}

	many := make([]string, 0, 20000)
	for i := range 10000 {
		many = append(many, fmt.Sprintf("term%d", i), fmt.Sprintf("TERM%d", i))
	}
	if got := NewSet(many...).Len(); got != 10000 {
		t.Fatalf("expected 10000 distinct keywords, got %d", got)
	}
}

func TestAppendToExcludeFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "exclude.txt")

	added, err := AppendToExcludeFile(path, []string{"aws", "sql"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("expected 2 keywords appended, got %q", added)
	}

	added, err = AppendToExcludeFile(path, []string{"SQL", "redis"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(added, []string{"redis"}) {
		t.Fatalf("expected only redis appended, got %q", added)
	}

	got, err := ReadExcludeFile(path)
	if err != nil {
		t.Fatalf("reading exclude file: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"aws", "sql", "redis"}) {
		t.Fatalf("unexpected exclude file content: %q", got)
	}
}
