package model

import "strings"

// AngleMode selects how trigonometric functions interpret their argument
type AngleMode string

const (
	AngleDegrees AngleMode = "deg"
	AngleRadians AngleMode = "rad"
)

// String returns the short mode name
func (m AngleMode) String() string {
	return string(m)
}

// Label returns the upper-case label shown on the mode toggle
func (m AngleMode) Label() string {
	return strings.ToUpper(string(m))
}

// IsValid reports whether m is a known angle mode
func (m AngleMode) IsValid() bool {
	return m == AngleDegrees || m == AngleRadians
}

// Toggle returns the other angle mode
func (m AngleMode) Toggle() AngleMode {
	if m == AngleRadians {
		return AngleDegrees
	}
	return AngleRadians
}

// ParseAngleMode accepts deg/degrees/rad/radians in any case
func ParseAngleMode(s string) (AngleMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return AngleDegrees, true
	case "rad", "radian", "radians":
		return AngleRadians, true
	}
	return "", false
}

// Variant selects the calculator keypad and engine
type Variant string

const (
	VariantBasic      Variant = "basic"
	VariantScientific Variant = "scientific"
)

// Variants lists the available variants
var Variants = []Variant{VariantBasic, VariantScientific}

// String returns the variant name
func (v Variant) String() string {
	return string(v)
}

// IsValid reports whether v is a known variant
func (v Variant) IsValid() bool {
	return v == VariantBasic || v == VariantScientific
}

// ParseVariant accepts basic/scientific (and the short forms b/sci) in any case
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "b", "simple":
		return VariantBasic, true
	case "scientific", "sci", "s":
		return VariantScientific, true
	}
	return "", false
}
