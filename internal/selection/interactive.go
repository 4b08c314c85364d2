package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"
)

const (
	PromptDone        = "Done"
	PromptAutoPick    = "Auto-pick top 10"
	PromptClear       = "Clear all"
	PromptRecommended = "Reset to recommended"
	PromptAppend      = "Append unselected keywords to exclude file"

	autoPickCount = 10
	markSelected  = "[x] "
	markFree      = "[ ] "
)

// Prompter asks the user to choose one of items.
type Prompter interface {
	Select(label string, items []string) (int, string, error)
}

// TerminalPrompter asks through promptui.
type TerminalPrompter struct{}

// Select runs a promptui select list.
func (TerminalPrompter) Select(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  min(len(items), 20),
	}
	return prompt.Run()
}

type interactiveFilter struct {
	disabled    bool
	reason      string
	excludeFile string
}

// NewInteractive creates a step letting the user toggle keywords by hand.
func NewInteractive() Filter {
	return &interactiveFilter{}
}

func (f *interactiveFilter) Name() string { return "interactive" }

func (f *interactiveFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *interactiveFilter) IsEnabled() bool { return !f.disabled }

func (f *interactiveFilter) Validate(cfg *Config) error {
	f.excludeFile = ""
	if cfg != nil {
		f.excludeFile = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *interactiveFilter) Apply(ctx context.Context, deps Deps, s *Set) (*Set, Step, error) {
	initial := s.Len()
	before := NewSet(s.Items...)

	prompt := deps.Prompt
	if prompt == nil {
		prompt = TerminalPrompter{}
	}

	for {
		if err := ctx.Err(); err != nil {
			return s, Step{}, err
		}

		items := f.menu(deps, s)
		label := fmt.Sprintf("%d keywords selected. Toggle a keyword or press ENTER on %q", s.Len(), PromptDone)

		_, choice, err := prompt.Select(label, items)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return s, Step{}, fmt.Errorf("interactive selection aborted: %w", err)
			}
			return s, Step{}, err
		}

		switch choice {
		case PromptDone:
			added, dropped := diff(before, s)
			return s, Step{Initial: initial, Added: added, Dropped: dropped, Left: s.Len()}, nil
		case PromptAutoPick:
			picked := NewSet(s.Items...)
			picked.Add(deps.Pool.All...)
			s.Clear()
			s.Add(picked.firstN(autoPickCount)...)
		case PromptClear:
			s.Clear()
		case PromptRecommended:
			s.Clear()
			s.Add(deps.Pool.Core...)
		case PromptAppend:
			unselected := []string{}
			for _, keyword := range deps.Pool.All {
				if !s.Has(keyword) {
					unselected = append(unselected, keyword)
				}
			}

			added, err := AppendToExcludeFile(f.excludeFile, unselected)
			if err != nil {
				return s, Step{}, fmt.Errorf("appending to exclude file: %w", err)
			}
			if deps.Logger != nil {
				deps.Logger.Info("appended to exclude file",
					zap.String("filename", f.excludeFile),
					zap.Strings("keywords", added),
				)
			}
		default:
			keyword := strings.TrimPrefix(strings.TrimPrefix(choice, markSelected), markFree)
			selected := s.Toggle(keyword)
			if deps.Logger != nil {
				deps.Logger.Debug("keyword toggled", zap.String("keyword", keyword), zap.Bool("selected", selected))
			}
		}
	}
}

func (f *interactiveFilter) menu(deps Deps, s *Set) []string {
	items := []string{PromptDone}

	listed := NewSet()
	for _, keyword := range append(append([]string{}, deps.Pool.All...), s.Items...) {
		if len(listed.Add(keyword)) == 0 {
			continue
		}
		mark := markFree
		if s.Has(keyword) {
			mark = markSelected
		}
		items = append(items, mark+keyword)
	}

	items = append(items, PromptAutoPick, PromptClear, PromptRecommended)
	if f.excludeFile != "" {
		items = append(items, PromptAppend)
	}
	return items
}

func (f *interactiveFilter) Status() Status {
	details := map[string]string{}
	if f.excludeFile != "" {
		details["exclude_file"] = f.excludeFile
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

func diff(before, after *Set) (added, dropped int) {
	for _, item := range after.Items {
		if !before.Has(item) {
			added++
		}
	}
	for _, item := range before.Items {
		if !after.Has(item) {
			dropped++
		}
	}
	return added, dropped
}
