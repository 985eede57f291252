package engine

import "github.com/ytget/glass-calculator/internal/model"

// Phase names the four states of the input state machine
type Phase int

const (
	// PhaseIdle: nothing pending, the next digit starts a new number
	PhaseIdle Phase = iota
	// PhaseEnteringFirst: digits are appended to the first operand
	PhaseEnteringFirst
	// PhaseOperatorPending: an operator was pressed, the next digit starts the second operand
	PhaseOperatorPending
	// PhaseEnteringSecond: digits are appended to the second operand
	PhaseEnteringSecond
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEnteringFirst:
		return "entering-first-operand"
	case PhaseOperatorPending:
		return "operator-pending"
	case PhaseEnteringSecond:
		return "entering-second-operand"
	default:
		return "unknown"
	}
}

// State is the tagged state of a Calculator. Only the pending states carry
// a left operand and an operator, so an operator can never be stored
// without its operand.
type State interface {
	Phase() Phase
	isState()
}

// Idle is the initial state and the state after equals or clear
type Idle struct{}

// EnteringFirst is the state while the first operand is typed
type EnteringFirst struct{}

// OperatorPending holds the left operand and operator until the second operand starts
type OperatorPending struct {
	Left string
	Op   model.Operator
}

// EnteringSecond is the state while the second operand is typed
type EnteringSecond struct {
	Left string
	Op   model.Operator
}

func (Idle) Phase() Phase            { return PhaseIdle }
func (EnteringFirst) Phase() Phase   { return PhaseEnteringFirst }
func (OperatorPending) Phase() Phase { return PhaseOperatorPending }
func (EnteringSecond) Phase() Phase  { return PhaseEnteringSecond }

func (Idle) isState()            {}
func (EnteringFirst) isState()   {}
func (OperatorPending) isState() {}
func (EnteringSecond) isState()  {}

// pending returns the stored operand and operator, if any
func pending(s State) (string, model.Operator, bool) {
	switch st := s.(type) {
	case OperatorPending:
		return st.Left, st.Op, true
	case EnteringSecond:
		return st.Left, st.Op, true
	}
	return "", "", false
}

// startsNewNumber reports whether the next digit replaces the display
func startsNewNumber(s State) bool {
	switch s.(type) {
	case Idle, OperatorPending:
		return true
	}
	return false
}

// awaitNewNumber moves an entering state to its waiting counterpart
func awaitNewNumber(s State) State {
	switch st := s.(type) {
	case EnteringFirst:
		return Idle{}
	case EnteringSecond:
		return OperatorPending{Left: st.Left, Op: st.Op}
	}
	return s
}

// beginNumber moves a waiting state to its entering counterpart
func beginNumber(s State) State {
	switch st := s.(type) {
	case Idle:
		return EnteringFirst{}
	case OperatorPending:
		return EnteringSecond{Left: st.Left, Op: st.Op}
	}
	return s
}
