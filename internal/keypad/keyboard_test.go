package keypad

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/glass-calculator/internal/model"
)

func TestFromRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected model.Key
		ok       bool
	}{
		{'4', model.DigitKey(4), true},
		{'.', model.KeyDecimal, true},
		{'=', model.KeyEquals, true},
		{'*', model.OperatorKey(model.OpMultiply), true},
		{'/', model.OperatorKey(model.OpDivide), true},
		{'^', model.OperatorKey(model.OpPower), true},
		{'!', model.FunctionKey(model.FnFactorial), true},
		{'q', model.Key{}, false},
		{' ', model.Key{}, false},
	}

	for _, test := range tests {
		key, ok := FromRune(test.r)
		assert.Equal(t, test.ok, ok, "rune %q", test.r)
		assert.Equal(t, test.expected, key, "rune %q", test.r)
	}
}

func TestFromKeyName(t *testing.T) {
	tests := []struct {
		name     fyne.KeyName
		expected model.Key
		ok       bool
	}{
		{fyne.KeyReturn, model.KeyEquals, true},
		{fyne.KeyEnter, model.KeyEquals, true},
		{fyne.KeyBackspace, model.KeyBackspace, true},
		{fyne.KeyEscape, model.KeyClear, true},
		{fyne.KeyDelete, model.KeyClear, true},
		{fyne.KeyTab, model.Key{}, false},
	}

	for _, test := range tests {
		key, ok := FromKeyName(test.name)
		assert.Equal(t, test.ok, ok, "key %s", test.name)
		assert.Equal(t, test.expected, key, "key %s", test.name)
	}
}
