package selection

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-tailor/internal/terms"
)

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a step that drops keywords listed in an exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, s *Set) (*Set, Step, error) {
	initial := s.Len()
	if f.path == "" {
		return s, Step{Initial: initial, Left: s.Len()}, nil
	}

	excluded, err := ReadExcludeFile(f.path)
	if err != nil {
		return s, Step{}, fmt.Errorf("getting excluded keywords from file: %w", err)
	}

	removed := s.Exclude(excluded)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding keywords based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_keywords", removed),
			zap.Int("keywords_left", s.Len()),
		)
	}

	return s, Step{Initial: initial, Dropped: len(removed), Left: s.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

// ReadExcludeFile reads one keyword per line. Blank lines and lines starting
// with # are skipped.
func ReadExcludeFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	excluded := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if keyword := terms.Normalize(line); keyword != "" {
			excluded = append(excluded, keyword)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return excluded, nil
}

// AppendToExcludeFile appends keywords to the exclude file, creating it when
// missing. Keywords already listed are skipped.
func AppendToExcludeFile(path string, keywords []string) ([]string, error) {
	existing, err := ReadExcludeFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	known := NewSet(existing...)
	added := known.Add(keywords...)
	if len(added) == 0 {
		return added, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if _, err := file.WriteString(strings.Join(added, "\n") + "\n"); err != nil {
		return nil, err
	}
	return added, nil
}
