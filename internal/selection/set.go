package selection

import (
	"github.com/spigell/cv-tailor/internal/terms"
)

// Set is an ordered list of selected keywords without duplicates. Keywords
// are compared after normalization. Items is read-only for callers, change
// it through the methods.
type Set struct {
	Items []string
	seen  map[string]struct{}
}

// NewSet returns a set holding items in order, duplicates dropped.
func NewSet(items ...string) *Set {
	s := &Set{Items: []string{}, seen: map[string]struct{}{}}
	s.Add(items...)
	return s
}

// Len returns the number of selected keywords.
func (s *Set) Len() int {
	return len(s.Items)
}

// Has reports whether keyword is selected.
func (s *Set) Has(keyword string) bool {
	_, ok := s.seen[terms.Normalize(keyword)]
	return ok
}

// Add appends keywords that are not selected yet and returns them.
// Keywords normalizing to nothing are ignored.
func (s *Set) Add(items ...string) []string {
	if s.seen == nil {
		s.seen = make(map[string]struct{}, len(items))
	}

	added := []string{}
	for _, item := range items {
		normalized := terms.Normalize(item)
		if normalized == "" {
			continue
		}
		if _, ok := s.seen[normalized]; ok {
			continue
		}
		s.seen[normalized] = struct{}{}
		s.Items = append(s.Items, normalized)
		added = append(added, normalized)
	}
	return added
}

// Exclude removes the given keywords and returns the ones that were selected.
func (s *Set) Exclude(items []string) []string {
	drop := make(map[string]bool, len(items))
	for _, item := range items {
		drop[terms.Normalize(item)] = true
	}

	removed := []string{}
	kept := s.Items[:0]
	for _, item := range s.Items {
		if drop[item] {
			removed = append(removed, item)
			delete(s.seen, item)
			continue
		}
		kept = append(kept, item)
	}
	s.Items = kept

	return removed
}

// Toggle selects keyword or removes it when already selected. It reports
// whether the keyword is selected afterwards.
func (s *Set) Toggle(keyword string) bool {
	if s.Has(keyword) {
		s.Exclude([]string{keyword})
		return false
	}
	return len(s.Add(keyword)) > 0
}

// Clear drops every keyword.
func (s *Set) Clear() {
	s.Items = []string{}
	s.seen = map[string]struct{}{}
}
