package ui

// Package ui contains the Fyne-based desktop user interface for the calculator.
// It renders the engine state, builds the basic and scientific keypads, and
// forwards button taps, keyboard input and display gestures to the engine.
// All UI strings are localized via Localization.
