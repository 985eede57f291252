package model

// Operator is a binary operator that can be pending between two operands
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "×"
	OpDivide   Operator = "÷"
	OpModulo   Operator = "%"
	OpPower    Operator = "^"
)

// Operators lists every binary operator in keypad order
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo, OpPower}

// String returns the operator symbol
func (op Operator) String() string {
	return string(op)
}

// IsValid reports whether op is one of the known operators
func (op Operator) IsValid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo, OpPower:
		return true
	}
	return false
}

// IsScientific reports whether the operator only exists on the scientific keypad
func (op Operator) IsScientific() bool {
	return op == OpPower
}

// Function is a unary function applied to the displayed value
type Function string

const (
	FnSin        Function = "sin"
	FnCos        Function = "cos"
	FnTan        Function = "tan"
	FnSqrt       Function = "√"
	FnSquare     Function = "x²"
	FnCube       Function = "x³"
	FnLog10      Function = "log"
	FnLn         Function = "ln"
	FnExp        Function = "e^x"
	FnPow10      Function = "10^x"
	FnReciprocal Function = "1/x"
	FnFactorial  Function = "!"
	FnPi         Function = "π"
	FnE          Function = "e"
	FnNegate     Function = "±"
)

// Functions lists every unary function
var Functions = []Function{
	FnSin, FnCos, FnTan,
	FnSqrt, FnSquare, FnCube,
	FnLog10, FnLn, FnExp, FnPow10,
	FnReciprocal, FnFactorial,
	FnPi, FnE, FnNegate,
}

// String returns the function label
func (fn Function) String() string {
	return string(fn)
}

// IsValid reports whether fn is one of the known functions
func (fn Function) IsValid() bool {
	for _, known := range Functions {
		if fn == known {
			return true
		}
	}
	return false
}

// IsTrigonometric returns true for functions affected by the angle mode
func (fn Function) IsTrigonometric() bool {
	return fn == FnSin || fn == FnCos || fn == FnTan
}

// IsConstant returns true for functions that ignore the displayed value
func (fn Function) IsConstant() bool {
	return fn == FnPi || fn == FnE
}
