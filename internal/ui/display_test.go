package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/glass-calculator/internal/engine"
)

func TestDisplayUpdate(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := NewDisplay()
	assert.Equal(t, "0", d.Text())
	assert.Empty(t, d.Expression())

	d.Update(engine.Snapshot{Display: "5", Expression: "5 +", Memory: "3"})
	assert.Equal(t, "5", d.Text())
	assert.Equal(t, "5 +", d.Expression())
	assert.Equal(t, IconMemory, d.MemoryIndicator())

	d.Update(engine.Snapshot{Display: "NaN", Memory: "0"})
	assert.Equal(t, "NaN", d.Text())
	assert.Empty(t, d.MemoryIndicator())
}

func TestDisplayMinSize(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := NewDisplay()
	w := test.NewWindow(d)
	defer w.Close()

	assert.GreaterOrEqual(t, d.MinSize().Height, DisplayMinHeight)
}

func TestDisplayTouchGestures(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	d := NewDisplay()
	now := time.Unix(0, 0)
	d.gestures.now = func() time.Time { return now }

	var got GestureType = -1
	d.SetOnGesture(func(g GestureType) { got = g })

	d.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
	now = now.Add(100 * time.Millisecond)
	d.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(150, 10)}})
	assert.Equal(t, GestureSwipeRight, got)
}
