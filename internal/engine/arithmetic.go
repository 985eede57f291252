package engine

import (
	"errors"
	"math"
	"strconv"

	"github.com/ytget/glass-calculator/internal/model"
)

const (
	// maxFactorial is the largest n whose factorial fits in a float64
	maxFactorial = 170

	// trigEpsilon snaps trigonometric results such as sin(180°) to zero
	trigEpsilon = 1e-15
)

// Apply evaluates a op b. The switch is exhaustive over model.Operator;
// an unknown operator yields NaN.
func Apply(op model.Operator, a, b float64) float64 {
	switch op {
	case model.OpAdd:
		return a + b
	case model.OpSubtract:
		return a - b
	case model.OpMultiply:
		return a * b
	case model.OpDivide:
		return a / b
	case model.OpModulo:
		return math.Mod(a, b)
	case model.OpPower:
		return math.Pow(a, b)
	}
	return math.NaN()
}

// ApplyFunction evaluates fn at x. Trigonometric functions take x in the
// given angle mode.
func ApplyFunction(fn model.Function, x float64, mode model.AngleMode) float64 {
	switch fn {
	case model.FnSin:
		return snapTrig(math.Sin(toRadians(x, mode)))
	case model.FnCos:
		return snapTrig(math.Cos(toRadians(x, mode)))
	case model.FnTan:
		return snapTrig(math.Tan(toRadians(x, mode)))
	case model.FnSqrt:
		return math.Sqrt(x)
	case model.FnSquare:
		return x * x
	case model.FnCube:
		return x * x * x
	case model.FnLog10:
		return math.Log10(x)
	case model.FnLn:
		return math.Log(x)
	case model.FnExp:
		return math.Exp(x)
	case model.FnPow10:
		return math.Pow(10, x)
	case model.FnReciprocal:
		return 1 / x
	case model.FnFactorial:
		return Factorial(x)
	case model.FnPi:
		return math.Pi
	case model.FnE:
		return math.E
	case model.FnNegate:
		return -x
	}
	return math.NaN()
}

// Factorial returns n! for non-negative integers. Negative, non-integer and
// NaN inputs return NaN; n > 170 overflows to +Inf.
func Factorial(n float64) float64 {
	if math.IsNaN(n) || n < 0 || n != math.Trunc(n) {
		return math.NaN()
	}
	if n > maxFactorial {
		return math.Inf(1)
	}

	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}

func toRadians(x float64, mode model.AngleMode) float64 {
	if mode == model.AngleDegrees {
		return x * math.Pi / 180
	}
	return x
}

func snapTrig(v float64) float64 {
	if math.Abs(v) < trigEpsilon {
		return 0
	}
	return v
}

// parseOperand parses a display string. The display is always numeric, so
// a failure only happens for input that bypassed the state machine and is
// reported as NaN. Out-of-range input keeps the ±Inf or 0 ParseFloat returns.
func parseOperand(s string) float64 {
	v, ok := parseDisplay(s)
	if !ok {
		return math.NaN()
	}
	return v
}

// isNumeric reports whether s can be shown on the display
func isNumeric(s string) bool {
	_, ok := parseDisplay(s)
	return ok
}

// parseDisplay accepts anything ParseFloat understands, including numbers
// too large or too small for float64.
func parseDisplay(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
