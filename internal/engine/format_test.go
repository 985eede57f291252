package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Format(t *testing.T) {
	f := NewFormatter(DefaultPrecision)
	a, b := 0.1, 0.2

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"integer", 42, "42"},
		{"negative", -3.5, "-3.5"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"artifact", a + b, "0.3"},
		{"decimal", 123.456, "123.456"},
		{"small fixed", 0.000001, "0.000001"},
		{"small exponent", 1e-7, "1e-7"},
		{"small mantissa", 1.5e-10, "1.5e-10"},
		{"large fixed", 1e20, "100000000000000000000"},
		{"large exponent", 1e21, "1e+21"},
		{"larger exponent", 2.5e100, "2.5e+100"},
		{"rounded large", 123456789012345678, "123456789012000000"},
		{"inf", math.Inf(1), "Infinity"},
		{"neg inf", math.Inf(-1), "-Infinity"},
		{"nan", math.NaN(), "NaN"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, f.Format(test.value))
		})
	}
}

func TestFormatter_ShortestRepresentation(t *testing.T) {
	f := NewFormatter(0)
	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", f.Format(a+b))
	assert.Equal(t, "3.141592653589793", f.Format(math.Pi))
}

func TestNewFormatter_Clamps(t *testing.T) {
	assert.Equal(t, 0, NewFormatter(-4).Precision)
	assert.Equal(t, MaxPrecision, NewFormatter(40).Precision)
	assert.Equal(t, 8, NewFormatter(8).Precision)
}

func TestFormatRoundTrips(t *testing.T) {
	f := NewFormatter(DefaultPrecision)
	for _, v := range []float64{1e-7, 1e21, math.Inf(1), math.Inf(-1), math.NaN(), -0.25, 7.25e306} {
		assert.True(t, isNumeric(f.Format(v)), "%v formatted as %q", v, f.Format(v))
	}
}

func TestTidyExponent(t *testing.T) {
	assert.Equal(t, "1e-7", tidyExponent("1e-07"))
	assert.Equal(t, "1e+21", tidyExponent("1e+21"))
	assert.Equal(t, "1e+100", tidyExponent("1e+100"))
	assert.Equal(t, "1e+0", tidyExponent("1e+00"))
	assert.Equal(t, "12.5", tidyExponent("12.5"))
}
