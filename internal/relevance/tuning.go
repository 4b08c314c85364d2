package relevance

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Tuning holds the constants of the keyword weight formula. The defaults are
// empirical and every caller should keep them unless it knows better.
type Tuning struct {
	EmptyKeywordWeight float64 `mapstructure:"empty-keyword-weight" json:"empty_keyword_weight"`
	BaseWeight         float64 `mapstructure:"base-weight" json:"base_weight"`
	LowValueFactor     float64 `mapstructure:"low-value-factor" json:"low_value_factor"`
	HighValueBonus     float64 `mapstructure:"high-value-bonus" json:"high_value_bonus"`
	MediumValueBonus   float64 `mapstructure:"medium-value-bonus" json:"medium_value_bonus"`
	CompoundBonus      float64 `mapstructure:"compound-bonus" json:"compound_bonus"`
	OccurrenceStep     float64 `mapstructure:"occurrence-step" json:"occurrence_step"`
	OccurrenceCap      float64 `mapstructure:"occurrence-cap" json:"occurrence_cap"`
	RequiredBonus      float64 `mapstructure:"required-bonus" json:"required_bonus"`
	RequiredStep       float64 `mapstructure:"required-step" json:"required_step"`
	RequiredCap        float64 `mapstructure:"required-cap" json:"required_cap"`
	MinWeight          float64 `mapstructure:"min-weight" json:"min_weight"`
	MaxWeight          float64 `mapstructure:"max-weight" json:"max_weight"`
}

// DefaultTuning returns the stock weight constants.
func DefaultTuning() Tuning {
	return Tuning{
		EmptyKeywordWeight: 0.4,
		BaseWeight:         1.0,
		LowValueFactor:     0.45,
		HighValueBonus:     1.25,
		MediumValueBonus:   0.55,
		CompoundBonus:      0.30,
		OccurrenceStep:     0.2,
		OccurrenceCap:      0.8,
		RequiredBonus:      1.0,
		RequiredStep:       0.45,
		RequiredCap:        1.2,
		MinWeight:          0.35,
		MaxWeight:          3.6,
	}
}

// DecodeTuning overlays raw configuration values on top of DefaultTuning.
// Unknown keys are reported as errors so that typos do not go unnoticed.
func DecodeTuning(raw map[string]any) (Tuning, error) {
	tuning := DefaultTuning()
	if len(raw) == 0 {
		return tuning, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &tuning,
	})
	if err != nil {
		return tuning, fmt.Errorf("creating tuning decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return DefaultTuning(), fmt.Errorf("decoding tuning: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return DefaultTuning(), err
	}

	return tuning, nil
}

// Validate checks that the weight range is sane and that occurrence terms
// cannot lower a weight.
func (t Tuning) Validate() error {
	if t.MinWeight > t.MaxWeight {
		return fmt.Errorf("min-weight %.2f is greater than max-weight %.2f", t.MinWeight, t.MaxWeight)
	}
	if t.EmptyKeywordWeight < t.MinWeight || t.EmptyKeywordWeight > t.MaxWeight {
		return fmt.Errorf("empty-keyword-weight %.2f is outside [%.2f, %.2f]", t.EmptyKeywordWeight, t.MinWeight, t.MaxWeight)
	}
	if t.OccurrenceStep < 0 || t.OccurrenceCap < 0 || t.RequiredStep < 0 || t.RequiredCap < 0 || t.RequiredBonus < 0 {
		return errors.New("occurrence and required-section terms must not be negative")
	}
	return nil
}
