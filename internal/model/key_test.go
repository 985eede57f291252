package model

import "testing"

func TestParseDigit(t *testing.T) {
	tests := []struct {
		input    rune
		expected Digit
		ok       bool
	}{
		{'0', 0, true},
		{'5', 5, true},
		{'9', 9, true},
		{'a', 0, false},
		{'.', 0, false},
		{'٣', 0, false},
	}

	for _, test := range tests {
		d, ok := ParseDigit(test.input)
		if ok != test.ok || d != test.expected {
			t.Errorf("ParseDigit(%q) = %d, %v, expected %d, %v", test.input, d, ok, test.expected, test.ok)
		}
	}
}

func TestDigit_String(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		d, _ := ParseDigit(r)
		if d.String() != string(r) {
			t.Errorf("Digit(%d).String() = %s, expected %s", d, d.String(), string(r))
		}
	}
}

func TestKey_Label(t *testing.T) {
	tests := []struct {
		key      Key
		expected string
	}{
		{DigitKey(7), "7"},
		{KeyDecimal, "."},
		{KeyBackspace, "⌫"},
		{KeyClear, "AC"},
		{KeyEquals, "="},
		{OperatorKey(OpAdd), "+"},
		{OperatorKey(OpSubtract), "−"},
		{OperatorKey(OpPower), "x^y"},
		{FunctionKey(FnFactorial), "n!"},
		{FunctionKey(FnSqrt), "√"},
		{KeyMemoryAdd, "M+"},
		{KeyMemoryRecall, "MR"},
	}

	for _, test := range tests {
		if result := test.key.Label(); result != test.expected {
			t.Errorf("Key(%s).Label() = %s, expected %s", test.key.Kind, result, test.expected)
		}
	}
}

func TestKey_IsScientific(t *testing.T) {
	tests := []struct {
		key      Key
		expected bool
	}{
		{DigitKey(1), false},
		{KeyEquals, false},
		{OperatorKey(OpModulo), false},
		{OperatorKey(OpDivide), false},
		{OperatorKey(OpPower), true},
		{FunctionKey(FnSin), true},
		{KeyMemoryClear, true},
		{KeyAngleToggle, true},
	}

	for _, test := range tests {
		if result := test.key.IsScientific(); result != test.expected {
			t.Errorf("Key(%s).IsScientific() = %v, expected %v", test.key, result, test.expected)
		}
	}
}

func TestKey_IsValid(t *testing.T) {
	if !DigitKey(3).IsValid() {
		t.Error("digit key should be valid")
	}
	if (Key{Kind: KindOperator, Operator: "?"}).IsValid() {
		t.Error("operator key with unknown symbol should be invalid")
	}
	if (Key{Kind: KindFunction, Function: "cosh"}).IsValid() {
		t.Error("function key with unknown name should be invalid")
	}
	if (Key{Kind: KeyKind(99)}).IsValid() {
		t.Error("unknown kind should be invalid")
	}
}

func TestKeysAreComparable(t *testing.T) {
	seen := map[Key]bool{DigitKey(1): true, OperatorKey(OpAdd): true}
	if !seen[DigitKey(1)] || !seen[OperatorKey(OpAdd)] {
		t.Error("keys built by constructors should compare equal")
	}
	if seen[DigitKey(2)] {
		t.Error("different digits should not compare equal")
	}
}
