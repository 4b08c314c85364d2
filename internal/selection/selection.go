// Package selection decides which keywords a candidate wants to target. The
// choice is built by a pipeline of steps, each of which may add or drop terms.
package selection

import (
	"context"
	"fmt"

	"github.com/spigell/cv-tailor/internal/keywords"
	"go.uber.org/zap"
)

// Filter represents a single step applied to the keyword selection.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, s *Set) (*Set, Step, error)
}

// Deps aggregates dependencies shared across all selection steps.
type Deps struct {
	Logger *zap.Logger
	Pool   keywords.Pool
	Prompt Prompter
}

// Step describes the result of executing a selection step.
type Step struct {
	Initial int
	Added   int
	Dropped int
	Left    int
}

// Config contains settings consumed by the steps.
type Config struct {
	// DefaultSelection is DefaultRecommended or DefaultNone.
	DefaultSelection string
	// Explicit replaces the recommended seed when not empty.
	Explicit    []string
	Exclude     []string
	ExcludeFile string
	Include     []string
}

const (
	DefaultRecommended = "recommended"
	DefaultNone        = "none"
)

// Status represents runtime information about a step.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by steps that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Default returns the standard pipeline in execution order.
func Default() []Filter {
	return []Filter{
		NewRecommended(),
		NewExclude(),
		NewExcludeFile(),
		NewInclude(),
		NewInteractive(),
	}
}

// DisableByName marks a step with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run validates every enabled step and then applies them in order, starting
// from an empty selection.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter) (*Set, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	s := NewSet()
	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Debug("selection step disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("selection step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("added", info.Added),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		s = next
	}

	return s, nil
}

// Describe returns status entries for the provided steps.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
