package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/glass-calculator/internal/engine"
)

// Display shows the pending expression above the current value. Memory and
// angle indicators sit on the expression line for the scientific variant.
type Display struct {
	widget.BaseWidget

	snapshot engine.Snapshot

	expressionText *canvas.Text
	valueText      *canvas.Text
	memoryText     *canvas.Text
	background     *canvas.Rectangle

	gestures  *GestureHandler
	onGesture func(GestureType)
}

// Compile-time check for touch support
var _ mobile.Touchable = (*Display)(nil)

// NewDisplay creates an empty display showing "0"
func NewDisplay() *Display {
	d := &Display{
		snapshot: engine.Snapshot{Display: engine.InitialDisplay},
	}
	d.gestures = NewGestureHandler(func(g GestureType) {
		if d.onGesture != nil {
			d.onGesture(g)
		}
	})

	d.valueText = canvas.NewText(engine.InitialDisplay, theme.Color(theme.ColorNameForeground))
	d.valueText.TextSize = DisplayValueTextSize
	d.valueText.Alignment = fyne.TextAlignTrailing

	d.expressionText = canvas.NewText("", ColorWater)
	d.expressionText.TextSize = DisplayExpressionTextSize
	d.expressionText.Alignment = fyne.TextAlignTrailing

	d.memoryText = canvas.NewText("", ColorGold)
	d.memoryText.TextSize = DisplayExpressionTextSize
	d.memoryText.TextStyle = fyne.TextStyle{Bold: true}

	d.background = canvas.NewRectangle(ColorGlass)
	d.background.CornerRadius = theme.InputRadiusSize()

	d.ExtendBaseWidget(d)
	return d
}

// SetOnGesture sets the callback for swipes and long presses on the display
func (d *Display) SetOnGesture(f func(GestureType)) {
	d.onGesture = f
}

// Update renders a new engine snapshot
func (d *Display) Update(s engine.Snapshot) {
	d.snapshot = s
	d.valueText.Text = s.Display
	d.expressionText.Text = s.Expression

	d.memoryText.Text = ""
	if s.Memory != "" && s.Memory != engine.InitialDisplay {
		d.memoryText.Text = IconMemory
	}
	d.Refresh()
}

// Text returns the value line
func (d *Display) Text() string {
	return d.valueText.Text
}

// Expression returns the pending expression line
func (d *Display) Expression() string {
	return d.expressionText.Text
}

// MemoryIndicator returns the memory marker, empty when memory holds zero
func (d *Display) MemoryIndicator() string {
	return d.memoryText.Text
}

// TouchDown handles touch down events
func (d *Display) TouchDown(event *mobile.TouchEvent) {
	d.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (d *Display) TouchUp(event *mobile.TouchEvent) {
	d.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (d *Display) TouchCancel(event *mobile.TouchEvent) {
	d.gestures.TouchCancel(event)
}

// CreateRenderer creates the widget renderer
func (d *Display) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewHBox(d.memoryText, layout.NewSpacer(), d.expressionText)
	content := container.NewPadded(container.NewBorder(header, nil, nil, nil, d.valueText))
	return &displayRenderer{
		display: d,
		layout:  container.NewStack(d.background, content),
	}
}

// displayRenderer renders the display widget
type displayRenderer struct {
	display *Display
	layout  *fyne.Container
}

// Layout arranges the components
func (r *displayRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *displayRenderer) MinSize() fyne.Size {
	min := r.layout.MinSize()
	if min.Height < DisplayMinHeight {
		min.Height = DisplayMinHeight
	}
	return min
}

// Refresh redraws the texts
func (r *displayRenderer) Refresh() {
	r.display.valueText.Color = theme.Color(theme.ColorNameForeground)
	if r.display.snapshot.Display == engine.TextNaN {
		r.display.valueText.Color = ColorDestroy
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *displayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *displayRenderer) Destroy() {}
