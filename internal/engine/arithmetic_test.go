package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/glass-calculator/internal/model"
)

func TestApply(t *testing.T) {
	tests := []struct {
		op       model.Operator
		a, b     float64
		expected float64
	}{
		{model.OpAdd, 2, 3, 5},
		{model.OpSubtract, 2, 3, -1},
		{model.OpMultiply, 2, 3, 6},
		{model.OpDivide, 3, 2, 1.5},
		{model.OpModulo, 7, 3, 1},
		{model.OpModulo, -7, 3, -1},
		{model.OpModulo, 5.5, 2, 1.5},
		{model.OpPower, 2, 8, 256},
		{model.OpPower, 9, 0.5, 3},
	}

	for _, test := range tests {
		result := Apply(test.op, test.a, test.b)
		assert.Equal(t, test.expected, result, "%v %s %v", test.a, test.op, test.b)
	}
}

func TestApply_Sentinels(t *testing.T) {
	assert.True(t, math.IsInf(Apply(model.OpDivide, 1, 0), 1))
	assert.True(t, math.IsInf(Apply(model.OpDivide, -1, 0), -1))
	assert.True(t, math.IsNaN(Apply(model.OpDivide, 0, 0)))
	assert.True(t, math.IsNaN(Apply(model.Operator("?"), 1, 2)))
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n        float64
		expected float64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Factorial(test.n), "%v!", test.n)
	}

	assert.True(t, math.IsNaN(Factorial(-1)))
	assert.True(t, math.IsNaN(Factorial(2.5)))
	assert.True(t, math.IsNaN(Factorial(math.NaN())))
	assert.True(t, math.IsNaN(Factorial(math.Inf(-1))))
	assert.True(t, math.IsInf(Factorial(math.Inf(1)), 1))
	assert.True(t, math.IsInf(Factorial(171), 1))
	assert.False(t, math.IsInf(Factorial(170), 0))
}

func TestApplyFunction_AngleMode(t *testing.T) {
	assert.InDelta(t, 1.0, ApplyFunction(model.FnSin, 90, model.AngleDegrees), 1e-12)
	assert.InDelta(t, 1.0, ApplyFunction(model.FnSin, math.Pi/2, model.AngleRadians), 1e-12)
	assert.InDelta(t, 0.8939966636, ApplyFunction(model.FnSin, 90, model.AngleRadians), 1e-9)
	assert.Equal(t, 0.0, ApplyFunction(model.FnSin, 360, model.AngleDegrees))
}

func TestApplyFunction_Constants(t *testing.T) {
	assert.Equal(t, math.Pi, ApplyFunction(model.FnPi, 12, model.AngleDegrees))
	assert.Equal(t, math.E, ApplyFunction(model.FnE, -3, model.AngleDegrees))
}

func TestApplyFunction_Domain(t *testing.T) {
	assert.True(t, math.IsNaN(ApplyFunction(model.FnSqrt, -4, model.AngleDegrees)))
	assert.True(t, math.IsNaN(ApplyFunction(model.FnLog10, -1, model.AngleDegrees)))
	assert.True(t, math.IsInf(ApplyFunction(model.FnLog10, 0, model.AngleDegrees), -1))
	assert.True(t, math.IsNaN(ApplyFunction(model.Function("sinh"), 1, model.AngleDegrees)))
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		numeric  bool
	}{
		{"12.5", 12.5, true},
		{"-0", 0, true},
		{"1e400", math.Inf(1), true},
		{"-1e400", math.Inf(-1), true},
		{"1e-400", 0, true},
		{"Infinity", math.Inf(1), true},
		{"Infinit", math.NaN(), false},
		{"-", math.NaN(), false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.numeric, isNumeric(test.input))
			got := parseOperand(test.input)
			if math.IsNaN(test.expected) {
				assert.True(t, math.IsNaN(got), "got %v", got)
				return
			}
			assert.Equal(t, test.expected, got)
		})
	}
}
