package engine

import (
	"strings"

	"github.com/ytget/glass-calculator/internal/model"
)

// InitialDisplay is the display text after start-up and clear
const InitialDisplay = "0"

// Keypad is anything that can be driven by button presses and rendered
type Keypad interface {
	// Press applies key and reports whether the variant supports it
	Press(key model.Key) bool
	Snapshot() Snapshot
	Variant() model.Variant
	// SetPrecision changes the significant digits of later results
	SetPrecision(precision int)
}

// Option configures a Calculator
type Option func(*Calculator)

// WithPrecision sets the number of significant digits kept in results
func WithPrecision(precision int) Option {
	return func(c *Calculator) {
		c.format = NewFormatter(precision)
	}
}

// Calculator is the basic four-function engine
type Calculator struct {
	display string
	state   State
	format  Formatter
}

// Compile-time interface checks
var (
	_ Keypad = (*Calculator)(nil)
	_ Keypad = (*Scientific)(nil)
)

// New creates a basic calculator showing "0"
func New(opts ...Option) *Calculator {
	c := &Calculator{
		display: InitialDisplay,
		state:   Idle{},
		format:  NewFormatter(DefaultPrecision),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Variant returns model.VariantBasic
func (c *Calculator) Variant() model.Variant {
	return model.VariantBasic
}

// Display returns the current display text
func (c *Calculator) Display() string {
	return c.display
}

// State returns the current tagged state
func (c *Calculator) State() State {
	return c.state
}

// PreviousValue returns the stored left operand of a pending operation
func (c *Calculator) PreviousValue() (string, bool) {
	left, _, ok := pending(c.state)
	return left, ok
}

// Operation returns the pending operator
func (c *Calculator) Operation() (model.Operator, bool) {
	_, op, ok := pending(c.state)
	return op, ok
}

// IsEnteringNewNumber reports whether the next digit replaces the display
func (c *Calculator) IsEnteringNewNumber() bool {
	return startsNewNumber(c.state)
}

// Expression returns the "left operator" line shown above the display, or
// an empty string when nothing is pending.
func (c *Calculator) Expression() string {
	left, op, ok := pending(c.state)
	if !ok {
		return ""
	}
	return left + " " + op.String()
}

// Formatter returns the formatter used for results
func (c *Calculator) Formatter() Formatter {
	return c.format
}

// SetPrecision replaces the formatter. The current display is left as is.
func (c *Calculator) SetPrecision(precision int) {
	c.format = NewFormatter(precision)
}

// Digit enters one digit, suppressing leading zeros
func (c *Calculator) Digit(d model.Digit) {
	text := d.String()
	if startsNewNumber(c.state) {
		c.display = text
		c.state = beginNumber(c.state)
		return
	}
	if c.display == InitialDisplay {
		c.display = text
		return
	}
	c.display += text
}

// DecimalPoint starts "0." for a new number or appends a point once
func (c *Calculator) DecimalPoint() {
	if startsNewNumber(c.state) {
		c.display = "0."
		c.state = beginNumber(c.state)
		return
	}
	if !strings.Contains(c.display, ".") {
		c.display += "."
	}
}

// Backspace removes the last display character. When nothing numeric is
// left the display resets to "0" and the next digit starts a new number.
func (c *Calculator) Backspace() {
	if len(c.display) > 1 {
		trimmed := c.display[:len(c.display)-1]
		if isNumeric(trimmed) {
			c.display = trimmed
			return
		}
	}
	c.display = InitialDisplay
	c.state = awaitNewNumber(c.state)
}

// ApplyOperator stores the display as the left operand, or folds a pending
// operation first when one exists, then makes op the pending operator.
func (c *Calculator) ApplyOperator(op model.Operator) {
	left, pendingOp, ok := pending(c.state)
	if !ok {
		left = c.display
	} else {
		result := c.format.Format(Apply(pendingOp, parseOperand(left), parseOperand(c.display)))
		c.display = result
		left = result
	}
	c.state = OperatorPending{Left: left, Op: op}
}

// Evaluate resolves the pending operation. It does nothing when no
// operation is pending.
func (c *Calculator) Evaluate() {
	left, op, ok := pending(c.state)
	if !ok {
		return
	}
	c.display = c.format.Format(Apply(op, parseOperand(left), parseOperand(c.display)))
	c.state = Idle{}
}

// Clear resets the display and drops any pending operation
func (c *Calculator) Clear() {
	c.display = InitialDisplay
	c.state = Idle{}
}

// Press dispatches a basic keypad key. Scientific keys are rejected.
func (c *Calculator) Press(key model.Key) bool {
	if !key.IsValid() || key.IsScientific() {
		return false
	}
	c.press(key)
	return true
}

// press applies a key shared by both variants; the caller has validated it
func (c *Calculator) press(key model.Key) {
	switch key.Kind {
	case model.KindDigit:
		c.Digit(key.Digit)
	case model.KindDecimal:
		c.DecimalPoint()
	case model.KindBackspace:
		c.Backspace()
	case model.KindClear:
		c.Clear()
	case model.KindEquals:
		c.Evaluate()
	case model.KindOperator:
		c.ApplyOperator(key.Operator)
	}
}

// setResult shows a computed value and waits for a new number
func (c *Calculator) setResult(v float64) {
	c.display = c.format.Format(v)
	c.state = awaitNewNumber(c.state)
}

// Snapshot returns the readable state for rendering
func (c *Calculator) Snapshot() Snapshot {
	left, op, _ := pending(c.state)
	return Snapshot{
		Variant:           model.VariantBasic,
		Display:           c.display,
		Expression:        c.Expression(),
		PreviousValue:     left,
		Operation:         op,
		EnteringNewNumber: startsNewNumber(c.state),
		Phase:             c.state.Phase().String(),
	}
}
