package selection

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// MaxInclude caps the number of must-include keywords.
const MaxInclude = 25

type recommendedFilter struct {
	disabled bool
	reason   string
	mode     string
	explicit []string
}

// NewRecommended creates the step seeding the selection with the core pool
// terms, or with an explicit keyword list when one is configured.
func NewRecommended() Filter {
	return &recommendedFilter{}
}

func (f *recommendedFilter) Name() string { return "recommended" }

func (f *recommendedFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *recommendedFilter) IsEnabled() bool { return !f.disabled }

func (f *recommendedFilter) Validate(cfg *Config) error {
	f.mode = DefaultRecommended
	f.explicit = nil
	if cfg == nil {
		return nil
	}

	f.explicit = append(f.explicit, cfg.Explicit...)
	switch strings.TrimSpace(cfg.DefaultSelection) {
	case "", DefaultRecommended:
	case DefaultNone:
		f.mode = DefaultNone
	default:
		return fmt.Errorf("unknown default selection %q", cfg.DefaultSelection)
	}
	return nil
}

func (f *recommendedFilter) Apply(_ context.Context, deps Deps, s *Set) (*Set, Step, error) {
	initial := s.Len()

	var added []string
	switch {
	case len(f.explicit) > 0:
		added = s.Add(f.explicit...)
	case f.mode == DefaultRecommended:
		added = s.Add(deps.Pool.Core...)
	}

	if deps.Logger != nil && len(added) > 0 {
		deps.Logger.Debug("seeding selection",
			zap.Bool("explicit", len(f.explicit) > 0),
			zap.Strings("keywords", added),
		)
	}

	return s, Step{Initial: initial, Added: len(added), Left: s.Len()}, nil
}

func (f *recommendedFilter) Status() Status {
	details := map[string]string{"mode": f.mode}
	if len(f.explicit) > 0 {
		details["explicit"] = strings.Join(f.explicit, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type excludeFilter struct {
	keywords []string
}

// NewExclude creates a step that drops keywords listed in the configuration.
func NewExclude() Filter {
	return &excludeFilter{}
}

func (f *excludeFilter) Name() string { return "exclude" }

func (f *excludeFilter) Disable(string) {}

func (f *excludeFilter) IsEnabled() bool { return true }

func (f *excludeFilter) Validate(cfg *Config) error {
	f.keywords = nil
	if cfg != nil {
		f.keywords = append(f.keywords, cfg.Exclude...)
	}
	return nil
}

func (f *excludeFilter) Apply(_ context.Context, deps Deps, s *Set) (*Set, Step, error) {
	initial := s.Len()
	if len(f.keywords) == 0 {
		return s, Step{Initial: initial, Left: s.Len()}, nil
	}

	removed := s.Exclude(f.keywords)
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding keywords from configuration",
			zap.Strings("excluded_keywords", removed),
			zap.Int("keywords_left", s.Len()),
		)
	}

	return s, Step{Initial: initial, Dropped: len(removed), Left: s.Len()}, nil
}

func (f *excludeFilter) Status() Status {
	details := map[string]string{}
	if len(f.keywords) > 0 {
		details["keywords"] = strings.Join(f.keywords, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type includeFilter struct {
	keywords []string
}

// NewInclude creates a step that adds must-include keywords.
func NewInclude() Filter {
	return &includeFilter{}
}

func (f *includeFilter) Name() string { return "include" }

func (f *includeFilter) Disable(string) {}

func (f *includeFilter) IsEnabled() bool { return true }

func (f *includeFilter) Validate(cfg *Config) error {
	f.keywords = nil
	if cfg != nil {
		f.keywords = SanitizeInclude(cfg.Include)
	}
	return nil
}

func (f *includeFilter) Apply(_ context.Context, deps Deps, s *Set) (*Set, Step, error) {
	initial := s.Len()

	added := s.Add(f.keywords...)
	if deps.Logger != nil && len(added) > 0 {
		deps.Logger.Info("including must-have keywords",
			zap.Strings("included_keywords", added),
			zap.Int("keywords_selected", s.Len()),
		)
	}

	return s, Step{Initial: initial, Added: len(added), Left: s.Len()}, nil
}

func (f *includeFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"count": strconv.Itoa(len(f.keywords))},
	}
}

// SanitizeInclude trims, normalizes and deduplicates must-include keywords,
// keeping at most MaxInclude of them in their original order.
func SanitizeInclude(raw []string) []string {
	return NewSet(raw...).firstN(MaxInclude)
}

func (s *Set) firstN(n int) []string {
	if len(s.Items) > n {
		return append([]string{}, s.Items[:n]...)
	}
	return append([]string{}, s.Items...)
}
