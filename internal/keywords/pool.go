package keywords

// Pool is a ranked keyword list split into recommended core terms and the
// optional remainder.
type Pool struct {
	All      []string `json:"all"`
	Core     []string `json:"core"`
	Optional []string `json:"optional"`
}

// RecommendedCount is how many of n pooled keywords are recommended by default.
func RecommendedCount(n int) int {
	if n <= 0 {
		return 0
	}
	return min(10, max(5, min(8, n)))
}

// NewPool splits a ranked keyword list into core and optional terms.
func NewPool(ranked []string) Pool {
	split := min(RecommendedCount(len(ranked)), len(ranked))

	return Pool{
		All:      append([]string{}, ranked...),
		Core:     append([]string{}, ranked[:split]...),
		Optional: append([]string{}, ranked[split:]...),
	}
}

// BuildPool extracts up to limit keywords from a posting and splits them.
func BuildPool(posting string, limit int) Pool {
	return NewPool(Extract(posting, limit))
}

// IsCore reports whether keyword belongs to the recommended core terms.
func (p Pool) IsCore(keyword string) bool {
	return contains(p.Core, keyword)
}

// IsOptional reports whether keyword belongs to the optional terms.
func (p Pool) IsOptional(keyword string) bool {
	return contains(p.Optional, keyword)
}

func contains(list []string, keyword string) bool {
	for _, item := range list {
		if item == keyword {
			return true
		}
	}
	return false
}
