package engine

import (
	"github.com/ytget/glass-calculator/internal/model"
)

// Scientific extends Calculator with unary functions, a memory register
// and an angle mode for trigonometry.
type Scientific struct {
	Calculator
	memory float64
	angle  model.AngleMode
}

// NewScientific creates a scientific calculator in degrees mode with empty memory
func NewScientific(opts ...Option) *Scientific {
	return &Scientific{
		Calculator: *New(opts...),
		angle:      model.AngleDegrees,
	}
}

// Variant returns model.VariantScientific
func (s *Scientific) Variant() model.Variant {
	return model.VariantScientific
}

// Memory returns the memory register
func (s *Scientific) Memory() float64 {
	return s.memory
}

// AngleMode returns the current angle mode
func (s *Scientific) AngleMode() model.AngleMode {
	return s.angle
}

// SetAngleMode sets the angle mode; unknown modes are ignored
func (s *Scientific) SetAngleMode(mode model.AngleMode) {
	if mode.IsValid() {
		s.angle = mode
	}
}

// ToggleAngleMode flips between degrees and radians
func (s *Scientific) ToggleAngleMode() {
	s.angle = s.angle.Toggle()
}

// ApplyFunction replaces the display with fn(display). The pending
// operation, if any, is kept.
func (s *Scientific) ApplyFunction(fn model.Function) {
	s.setResult(ApplyFunction(fn, parseOperand(s.display), s.angle))
}

// MemoryAdd adds the displayed value to memory
func (s *Scientific) MemoryAdd() {
	s.memory += parseOperand(s.display)
}

// MemorySubtract subtracts the displayed value from memory
func (s *Scientific) MemorySubtract() {
	s.memory -= parseOperand(s.display)
}

// MemoryRecall shows the memory value; the next digit starts a new number
func (s *Scientific) MemoryRecall() {
	s.setResult(s.memory)
}

// MemoryClear resets memory to zero
func (s *Scientific) MemoryClear() {
	s.memory = 0
}

// Press dispatches any key of the scientific keypad
func (s *Scientific) Press(key model.Key) bool {
	if !key.IsValid() {
		return false
	}

	switch key.Kind {
	case model.KindFunction:
		s.ApplyFunction(key.Function)
	case model.KindMemoryAdd:
		s.MemoryAdd()
	case model.KindMemorySubtract:
		s.MemorySubtract()
	case model.KindMemoryRecall:
		s.MemoryRecall()
	case model.KindMemoryClear:
		s.MemoryClear()
	case model.KindAngleToggle:
		s.ToggleAngleMode()
	default:
		s.press(key)
	}
	return true
}

// Snapshot returns the readable state including memory and angle mode
func (s *Scientific) Snapshot() Snapshot {
	snap := s.Calculator.Snapshot()
	snap.Variant = model.VariantScientific
	snap.Memory = s.format.Format(s.memory)
	snap.AngleMode = s.angle
	return snap
}
