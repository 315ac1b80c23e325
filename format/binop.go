package format

// operatorPrecedence returns the binding power of a binary operator token;
// higher binds tighter. Mirrors the source language's documented operator
// table. Pipe (`|>`) is handled separately as ast.Pipeline, never as a
// BinOp, so it has no entry here.
func operatorPrecedence(name string) int {
	switch name {
	case "||":
		return 1
	case "&&":
		return 2
	case "==", "!=":
		return 3
	case "<", "<=", ">", ">=", "<.", "<=.", ">.", ">=.":
		return 4
	case "<>":
		return 5
	case "+", "-", "+.", "-.":
		return 6
	case "*", "/", "%", "*.", "/.", "%.":
		return 7
	default:
		invariant("unrecognised binary operator %q", name)
		return 0
	}
}

// isRightAssociative reports whether name associates right-to-left.
// Currently only string concatenation does.
func isRightAssociative(name string) bool {
	return name == "<>"
}

// parenthesizeOperand reports whether an operand with precedence childPrec
// needs `{ … }` wrapping when printed as the left or right side of a
// parent operator with precedence parentPrec. The comparison is strictly
// lower on both sides, so same-precedence chains (including those of a
// right-associative operator) don't get spuriously wrapped. A guard's right
// operand is compared against a raised parentPrec instead (see
// guardRightPrecedence).
func parenthesizeOperand(childPrec, parentPrec int) bool {
	return childPrec < parentPrec
}

// guardRightPrecedence is the precedence a guard clause compares a guard
// binary-op's right operand against: one more than the operator's own
// precedence (equivalently, the operand's precedence counts as one less),
// so a right operand of the same or lower precedence is wrapped, forcing
// parentheses on the right-associative ambiguity that would otherwise be
// silently resolved by the language's own associativity rules rather than
// made explicit in the formatted text.
func guardRightPrecedence(opPrecedence int) int {
	return opPrecedence + 1
}
