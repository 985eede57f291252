package model

// Digit is a single decimal digit 0-9
type Digit uint8

// ParseDigit converts '0'..'9' into a Digit
func ParseDigit(r rune) (Digit, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return Digit(r - '0'), true
}

// Rune returns the digit character
func (d Digit) Rune() rune {
	return rune('0' + d%10)
}

// String returns the digit as text
func (d Digit) String() string {
	return string(d.Rune())
}

// KeyKind identifies the action behind a calculator button
type KeyKind int

const (
	KindDigit KeyKind = iota
	KindDecimal
	KindBackspace
	KindClear
	KindEquals
	KindOperator
	KindFunction
	KindMemoryAdd
	KindMemorySubtract
	KindMemoryRecall
	KindMemoryClear
	KindAngleToggle
)

// String returns a debug name for the kind
func (k KeyKind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindDecimal:
		return "decimal"
	case KindBackspace:
		return "backspace"
	case KindClear:
		return "clear"
	case KindEquals:
		return "equals"
	case KindOperator:
		return "operator"
	case KindFunction:
		return "function"
	case KindMemoryAdd:
		return "memory-add"
	case KindMemorySubtract:
		return "memory-subtract"
	case KindMemoryRecall:
		return "memory-recall"
	case KindMemoryClear:
		return "memory-clear"
	case KindAngleToggle:
		return "angle-toggle"
	default:
		return "unknown"
	}
}

// Key is one calculator button. Only the field matching Kind is meaningful;
// use the constructors so the others stay zero and keys remain comparable.
type Key struct {
	Kind     KeyKind
	Digit    Digit
	Operator Operator
	Function Function
}

// Fixed keys
var (
	KeyDecimal        = Key{Kind: KindDecimal}
	KeyBackspace      = Key{Kind: KindBackspace}
	KeyClear          = Key{Kind: KindClear}
	KeyEquals         = Key{Kind: KindEquals}
	KeyMemoryAdd      = Key{Kind: KindMemoryAdd}
	KeyMemorySubtract = Key{Kind: KindMemorySubtract}
	KeyMemoryRecall   = Key{Kind: KindMemoryRecall}
	KeyMemoryClear    = Key{Kind: KindMemoryClear}
	KeyAngleToggle    = Key{Kind: KindAngleToggle}
)

// DigitKey returns the key for digit d
func DigitKey(d Digit) Key {
	return Key{Kind: KindDigit, Digit: d % 10}
}

// OperatorKey returns the key for op
func OperatorKey(op Operator) Key {
	return Key{Kind: KindOperator, Operator: op}
}

// FunctionKey returns the key for fn
func FunctionKey(fn Function) Key {
	return Key{Kind: KindFunction, Function: fn}
}

// Label returns the text printed on the button
func (k Key) Label() string {
	switch k.Kind {
	case KindDigit:
		return k.Digit.String()
	case KindDecimal:
		return "."
	case KindBackspace:
		return "⌫"
	case KindClear:
		return "AC"
	case KindEquals:
		return "="
	case KindOperator:
		switch k.Operator {
		case OpSubtract:
			return "−"
		case OpPower:
			return "x^y"
		}
		return k.Operator.String()
	case KindFunction:
		if k.Function == FnFactorial {
			return "n!"
		}
		return k.Function.String()
	case KindMemoryAdd:
		return "M+"
	case KindMemorySubtract:
		return "M-"
	case KindMemoryRecall:
		return "MR"
	case KindMemoryClear:
		return "MC"
	case KindAngleToggle:
		return "DEG/RAD"
	default:
		return "?"
	}
}

// String implements fmt.Stringer
func (k Key) String() string {
	return k.Label()
}

// IsScientific reports whether the key only exists on the scientific keypad
func (k Key) IsScientific() bool {
	switch k.Kind {
	case KindFunction, KindMemoryAdd, KindMemorySubtract, KindMemoryRecall, KindMemoryClear, KindAngleToggle:
		return true
	case KindOperator:
		return k.Operator.IsScientific()
	}
	return false
}

// IsValid reports whether the key carries a known payload for its kind
func (k Key) IsValid() bool {
	switch k.Kind {
	case KindDigit:
		return k.Digit <= 9
	case KindOperator:
		return k.Operator.IsValid()
	case KindFunction:
		return k.Function.IsValid()
	case KindDecimal, KindBackspace, KindClear, KindEquals,
		KindMemoryAdd, KindMemorySubtract, KindMemoryRecall, KindMemoryClear, KindAngleToggle:
		return true
	}
	return false
}
