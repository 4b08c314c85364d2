package relevance

// Strength labels a weighted match percentage.
type Strength string

const (
	Strong   Strength = "Strong"
	Moderate Strength = "Moderate"
	Weak     Strength = "Weak"
)

// StrengthOf maps a weighted match percentage to a label.
func StrengthOf(pct int) Strength {
	switch {
	case pct >= 70:
		return Strong
	case pct >= 40:
		return Moderate
	default:
		return Weak
	}
}
