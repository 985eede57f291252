package model

// Package model defines the closed vocabularies shared by the engine, the
// keypad translators and the UI: digits, binary operators, unary functions,
// angle modes, calculator variants and button keys. Every type is a small
// value type with explicit validation so an unknown symbol cannot reach the
// evaluation tables.
