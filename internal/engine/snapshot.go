package engine

import "github.com/ytget/glass-calculator/internal/model"

// Snapshot is a read-only copy of the engine state for rendering.
// Absent values are empty strings.
type Snapshot struct {
	Variant           model.Variant   `json:"variant"`
	Display           string          `json:"display"`
	Expression        string          `json:"expression,omitempty"`
	PreviousValue     string          `json:"previous_value,omitempty"`
	Operation         model.Operator  `json:"operation,omitempty"`
	EnteringNewNumber bool            `json:"entering_new_number"`
	Phase             string          `json:"phase"`
	Memory            string          `json:"memory,omitempty"`
	AngleMode         model.AngleMode `json:"angle_mode,omitempty"`
}

// NewVariant builds a fresh engine of the given variant. Unknown variants fall
// back to basic.
func NewVariant(variant model.Variant, opts ...Option) Keypad {
	if variant == model.VariantScientific {
		return NewScientific(opts...)
	}
	return New(opts...)
}
