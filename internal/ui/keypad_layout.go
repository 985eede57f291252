package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/glass-calculator/internal/model"
)

// KeyCell is one button position; Span is its width in grid columns
type KeyCell struct {
	Key  model.Key
	Span int
}

// KeypadLayout is a list of button rows; every row spans Columns columns
type KeypadLayout struct {
	Columns int
	Rows    [][]KeyCell
}

func cell(key model.Key) KeyCell {
	return KeyCell{Key: key, Span: 1}
}

func wide(key model.Key, span int) KeyCell {
	return KeyCell{Key: key, Span: span}
}

func digitCells(digits ...model.Digit) []KeyCell {
	cells := make([]KeyCell, 0, len(digits))
	for _, d := range digits {
		cells = append(cells, cell(model.DigitKey(d)))
	}
	return cells
}

func row(cells ...any) []KeyCell {
	var out []KeyCell
	for _, c := range cells {
		switch v := c.(type) {
		case KeyCell:
			out = append(out, v)
		case []KeyCell:
			out = append(out, v...)
		}
	}
	return out
}

// BasicLayout is the four-column keypad
var BasicLayout = KeypadLayout{
	Columns: 4,
	Rows: [][]KeyCell{
		row(cell(model.KeyClear), cell(model.KeyBackspace), cell(model.OperatorKey(model.OpModulo)), cell(model.OperatorKey(model.OpDivide))),
		row(digitCells(7, 8, 9), cell(model.OperatorKey(model.OpMultiply))),
		row(digitCells(4, 5, 6), cell(model.OperatorKey(model.OpSubtract))),
		row(digitCells(1, 2, 3), cell(model.OperatorKey(model.OpAdd))),
		row(wide(model.DigitKey(0), 2), cell(model.KeyDecimal), cell(model.KeyEquals)),
	},
}

// ScientificLayout is the six-column keypad
var ScientificLayout = KeypadLayout{
	Columns: 6,
	Rows: [][]KeyCell{
		row(cell(model.FunctionKey(model.FnSin)), cell(model.FunctionKey(model.FnCos)), cell(model.FunctionKey(model.FnTan)),
			cell(model.FunctionKey(model.FnLog10)), cell(model.FunctionKey(model.FnLn)), cell(model.KeyClear)),
		row(cell(model.FunctionKey(model.FnSqrt)), cell(model.FunctionKey(model.FnSquare)), cell(model.FunctionKey(model.FnCube)),
			cell(model.OperatorKey(model.OpPower)), cell(model.FunctionKey(model.FnReciprocal)), cell(model.KeyBackspace)),
		row(cell(model.FunctionKey(model.FnPi)), cell(model.FunctionKey(model.FnE)), cell(model.FunctionKey(model.FnFactorial)),
			cell(model.FunctionKey(model.FnNegate)), cell(model.OperatorKey(model.OpModulo)), cell(model.OperatorKey(model.OpDivide))),
		row(digitCells(7, 8, 9), cell(model.FunctionKey(model.FnExp)), cell(model.FunctionKey(model.FnPow10)), cell(model.OperatorKey(model.OpMultiply))),
		row(digitCells(4, 5, 6), cell(model.KeyMemoryAdd), cell(model.KeyMemorySubtract), cell(model.OperatorKey(model.OpSubtract))),
		row(digitCells(1, 2, 3), cell(model.KeyMemoryRecall), cell(model.KeyMemoryClear), cell(model.OperatorKey(model.OpAdd))),
		row(wide(model.DigitKey(0), 2), cell(model.KeyDecimal), wide(model.KeyEquals, 3)),
	},
}

// LayoutFor returns the keypad layout of a variant
func LayoutFor(v model.Variant) KeypadLayout {
	if v == model.VariantScientific {
		return ScientificLayout
	}
	return BasicLayout
}

// Keys returns every key in the layout in row order
func (l KeypadLayout) Keys() []model.Key {
	var keys []model.Key
	for _, r := range l.Rows {
		for _, c := range r {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// importanceFor picks the button style for a key
func importanceFor(key model.Key) widget.Importance {
	switch key.Kind {
	case model.KindClear:
		return widget.DangerImportance
	case model.KindEquals:
		return widget.SuccessImportance
	case model.KindOperator:
		if key.Operator.IsScientific() {
			return widget.MediumImportance
		}
		return widget.HighImportance
	case model.KindDigit, model.KindDecimal:
		return widget.MediumImportance
	case model.KindFunction:
		// π and e enter a value like a digit does
		if key.Function.IsConstant() {
			return widget.MediumImportance
		}
	}
	return widget.LowImportance
}

// spanLayout places objects in one row, each taking spans[i] of columns
// equal-width columns.
type spanLayout struct {
	spans     []int
	columns   int
	minHeight float32
}

func newSpanLayout(cells []KeyCell, columns int, minHeight float32) *spanLayout {
	spans := make([]int, len(cells))
	for i, c := range cells {
		spans[i] = max(c.Span, 1)
	}
	return &spanLayout{spans: spans, columns: columns, minHeight: minHeight}
}

// Layout arranges the buttons
func (s *spanLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pad := theme.Padding()
	colWidth := (size.Width - pad*float32(s.columns-1)) / float32(s.columns)

	x := float32(0)
	for i, obj := range objects {
		span := 1
		if i < len(s.spans) {
			span = s.spans[i]
		}
		width := colWidth*float32(span) + pad*float32(span-1)
		obj.Move(fyne.NewPos(x, 0))
		obj.Resize(fyne.NewSize(width, size.Height))
		x += width + pad
	}
}

// MinSize returns the minimum size of the row
func (s *spanLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	colWidth := float32(0)
	height := s.minHeight
	for i, obj := range objects {
		span := 1
		if i < len(s.spans) {
			span = s.spans[i]
		}
		min := obj.MinSize()
		colWidth = max(colWidth, min.Width/float32(span))
		height = max(height, min.Height)
	}
	pad := theme.Padding()
	return fyne.NewSize(colWidth*float32(s.columns)+pad*float32(s.columns-1), height)
}
