package keypad

// Package keypad translates user input into calculator keys: textual tokens
// typed on the command line and runes or named keys delivered by the Fyne
// canvas. It also drives an engine.Keypad through a key sequence.
