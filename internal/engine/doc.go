package engine

// Package engine implements the calculator state machine shared by the basic
// and scientific keypads. Input is interpreted with flat left-to-right
// evaluation and at most one pending binary operation. Invalid arithmetic
// never fails: division by zero, logarithms of negative numbers and similar
// cases produce Infinity or NaN, which are shown on the display as-is.
//
// A Calculator is owned by a single UI session and is not safe for
// concurrent use.
