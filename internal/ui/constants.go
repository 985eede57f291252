package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconMemory   = "M"
	IconCopy     = "📋"
)

// Window sizing per variant
const (
	BasicWindowWidth       float32 = 360
	BasicWindowHeight      float32 = 520
	ScientificWindowWidth  float32 = 640
	ScientificWindowHeight float32 = 600
)

// Display sizing
const (
	DisplayValueTextSize      float32 = 40
	DisplayExpressionTextSize float32 = 14
	DisplayMinHeight          float32 = 96
)

// Keypad sizing
const (
	ButtonMinHeight float32 = 48

	// Touch target height on phones (iOS/Android guidelines)
	MobileButtonHeight float32 = 56
)

// Notification behavior
const (
	NotificationAutoHide = 1500 * time.Millisecond
)
