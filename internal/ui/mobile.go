package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific sizing decisions
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// ButtonHeight returns the minimum keypad button height for the device
func (m *MobileUI) ButtonHeight() float32 {
	if m.IsMobileDevice() {
		return MobileButtonHeight
	}
	return ButtonMinHeight
}
