package engine

import (
	"math"
	"strconv"
	"strings"
)

// Formatting limits
const (
	DefaultPrecision = 12
	MaxPrecision     = 17

	// Magnitudes outside [expLow, expHigh) are printed in exponent form
	expLow  = 1e-6
	expHigh = 1e21
)

// Display text for non-finite results
const (
	TextInfinity    = "Infinity"
	TextNegInfinity = "-Infinity"
	TextNaN         = "NaN"
)

// Formatter converts computed values into display text
type Formatter struct {
	// Precision is the number of significant digits kept; 0 keeps the
	// shortest representation that round-trips.
	Precision int
}

// NewFormatter returns a formatter with the given precision clamped to 0..MaxPrecision
func NewFormatter(precision int) Formatter {
	if precision < 0 {
		precision = 0
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	return Formatter{Precision: precision}
}

// Format renders v for the display. The result always parses back with
// strconv.ParseFloat.
func (f Formatter) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return TextNaN
	case math.IsInf(v, 1):
		return TextInfinity
	case math.IsInf(v, -1):
		return TextNegInfinity
	case v == 0:
		// covers negative zero
		return "0"
	}

	if f.Precision > 0 {
		rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', f.Precision, 64), 64)
		if err == nil {
			v = rounded
		}
	}

	abs := math.Abs(v)
	if abs < expLow || abs >= expHigh {
		return tidyExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// tidyExponent drops the zero padding Go adds to exponents ("1e-07" -> "1e-7")
func tidyExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 >= len(s) {
		return s
	}
	mantissa, sign, digits := s[:idx], s[idx+1], strings.TrimLeft(s[idx+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + string(sign) + digits
}
