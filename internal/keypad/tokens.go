package keypad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/glass-calculator/internal/engine"
	"github.com/ytget/glass-calculator/internal/model"
)

var (
	// ErrUnknownToken is returned for input that names no calculator key
	ErrUnknownToken = errors.New("unknown key token")

	// ErrUnsupportedKey is returned when the active variant has no such key
	ErrUnsupportedKey = errors.New("key not available on this keypad")
)

// tokenKeys maps button labels and their ASCII aliases to keys. Lookups are
// done on the lower-cased token.
var tokenKeys = map[string]model.Key{
	".": model.KeyDecimal,
	",": model.KeyDecimal,

	"⌫":         model.KeyBackspace,
	"bs":        model.KeyBackspace,
	"backspace": model.KeyBackspace,
	"ac":        model.KeyClear,
	"c":         model.KeyClear,
	"clear":     model.KeyClear,
	"=":         model.KeyEquals,

	"+":   model.OperatorKey(model.OpAdd),
	"-":   model.OperatorKey(model.OpSubtract),
	"−":   model.OperatorKey(model.OpSubtract),
	"×":   model.OperatorKey(model.OpMultiply),
	"*":   model.OperatorKey(model.OpMultiply),
	"x":   model.OperatorKey(model.OpMultiply),
	"÷":   model.OperatorKey(model.OpDivide),
	"/":   model.OperatorKey(model.OpDivide),
	"%":   model.OperatorKey(model.OpModulo),
	"mod": model.OperatorKey(model.OpModulo),
	"^":   model.OperatorKey(model.OpPower),
	"x^y": model.OperatorKey(model.OpPower),
	"pow": model.OperatorKey(model.OpPower),

	"sin":   model.FunctionKey(model.FnSin),
	"cos":   model.FunctionKey(model.FnCos),
	"tan":   model.FunctionKey(model.FnTan),
	"√":     model.FunctionKey(model.FnSqrt),
	"sqrt":  model.FunctionKey(model.FnSqrt),
	"x²":    model.FunctionKey(model.FnSquare),
	"sq":    model.FunctionKey(model.FnSquare),
	"x³":    model.FunctionKey(model.FnCube),
	"cube":  model.FunctionKey(model.FnCube),
	"log":   model.FunctionKey(model.FnLog10),
	"ln":    model.FunctionKey(model.FnLn),
	"e^x":   model.FunctionKey(model.FnExp),
	"exp":   model.FunctionKey(model.FnExp),
	"10^x":  model.FunctionKey(model.FnPow10),
	"1/x":   model.FunctionKey(model.FnReciprocal),
	"inv":   model.FunctionKey(model.FnReciprocal),
	"!":     model.FunctionKey(model.FnFactorial),
	"n!":    model.FunctionKey(model.FnFactorial),
	"fact":  model.FunctionKey(model.FnFactorial),
	"π":     model.FunctionKey(model.FnPi),
	"pi":    model.FunctionKey(model.FnPi),
	"e":     model.FunctionKey(model.FnE),
	"±":     model.FunctionKey(model.FnNegate),
	"neg":   model.FunctionKey(model.FnNegate),
	"+/-":   model.FunctionKey(model.FnNegate),
	"m+":    model.KeyMemoryAdd,
	"m-":    model.KeyMemorySubtract,
	"mr":    model.KeyMemoryRecall,
	"mc":    model.KeyMemoryClear,
	"deg":   model.KeyAngleToggle,
	"rad":   model.KeyAngleToggle,
	"angle": model.KeyAngleToggle,
}

// ParseToken converts one token into a key
func ParseToken(token string) (model.Key, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	if len([]rune(t)) == 1 {
		if d, ok := model.ParseDigit([]rune(t)[0]); ok {
			return model.DigitKey(d), nil
		}
	}
	if key, ok := tokenKeys[t]; ok {
		return key, nil
	}
	return model.Key{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
}

// ParseSequence splits input on whitespace and parses every token. Tokens
// that look like numbers ("12.5") expand to one key per character.
func ParseSequence(input string) ([]model.Key, error) {
	var keys []model.Key
	for _, token := range strings.Fields(input) {
		if isNumberToken(token) {
			for _, r := range token {
				key, err := ParseToken(string(r))
				if err != nil {
					return nil, err
				}
				keys = append(keys, key)
			}
			continue
		}

		key, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// isNumberToken reports whether token has only digits and at most one point
func isNumberToken(token string) bool {
	if len(token) < 2 {
		return false
	}
	points := 0
	for _, r := range token {
		switch {
		case r == '.':
			points++
		case r < '0' || r > '9':
			return false
		}
	}
	return points <= 1 && points < len(token)
}

// Run presses keys in order and stops at the first key the keypad rejects
func Run(k engine.Keypad, keys []model.Key) error {
	for i, key := range keys {
		if !k.Press(key) {
			return fmt.Errorf("%w: %s (position %d, %s keypad)", ErrUnsupportedKey, key, i+1, k.Variant())
		}
	}
	return nil
}
