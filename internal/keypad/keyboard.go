package keypad

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/glass-calculator/internal/model"
)

// runeKeys maps typed characters that are not digits
var runeKeys = map[rune]model.Key{
	'.': model.KeyDecimal,
	',': model.KeyDecimal,
	'=': model.KeyEquals,
	'+': model.OperatorKey(model.OpAdd),
	'-': model.OperatorKey(model.OpSubtract),
	'*': model.OperatorKey(model.OpMultiply),
	'x': model.OperatorKey(model.OpMultiply),
	'/': model.OperatorKey(model.OpDivide),
	'%': model.OperatorKey(model.OpModulo),
	'^': model.OperatorKey(model.OpPower),
	'!': model.FunctionKey(model.FnFactorial),
	'p': model.FunctionKey(model.FnPi),
	'e': model.FunctionKey(model.FnE),
	'n': model.FunctionKey(model.FnNegate),
	'r': model.FunctionKey(model.FnSqrt),
	's': model.FunctionKey(model.FnSin),
	'c': model.FunctionKey(model.FnCos),
	't': model.FunctionKey(model.FnTan),
	'l': model.FunctionKey(model.FnLn),
}

// FromRune maps a typed character to a key
func FromRune(r rune) (model.Key, bool) {
	if d, ok := model.ParseDigit(r); ok {
		return model.DigitKey(d), true
	}
	key, ok := runeKeys[r]
	return key, ok
}

// FromKeyName maps a named (non-printable) key to a key
func FromKeyName(name fyne.KeyName) (model.Key, bool) {
	switch name {
	case fyne.KeyReturn, fyne.KeyEnter:
		return model.KeyEquals, true
	case fyne.KeyBackspace:
		return model.KeyBackspace, true
	case fyne.KeyEscape, fyne.KeyDelete:
		return model.KeyClear, true
	}
	return model.Key{}, false
}
