package calc

import "strconv"

// BadTokenError indicates an unrecognized character or a malformed numeric
// literal. It implements InputError.
type BadTokenError struct {
	// Char is the offending character. For a malformed number this is the
	// character that started the literal.
	Char rune
	// Col is the 1-based rune column of Char.
	Col int
}

func (err *BadTokenError) Error() string {
	return errpos(err.Col, "bad token "+strconv.QuoteRune(err.Char))
}

func (err *BadTokenError) Pos() int {
	return err.Col
}

// MismatchedParensError indicates unbalanced brackets, detected either at an
// unmatched close bracket or at end of input with opens still pending. It
// implements InputError.
type MismatchedParensError struct {
	// Col is the column of the unmatched close bracket, or of the innermost
	// open bracket that was never closed.
	Col int
}

func (err *MismatchedParensError) Error() string {
	return errpos(err.Col, "mismatched parentheses")
}

func (err *MismatchedParensError) Pos() int {
	return err.Col
}

// DivisionByZeroError indicates a division whose right operand is exactly
// zero.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}

// InvalidExpressionError indicates a token sequence that does not reduce to
// exactly one value: too few operands for an operator, leftover values, a
// bracket in postfix position, or empty input.
type InvalidExpressionError struct {
	// Reason describes what went wrong, if known.
	Reason string
}

func (err *InvalidExpressionError) Error() string {
	if err.Reason == "" {
		return "invalid expression"
	}
	return "invalid expression: " + err.Reason
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error produced
// while scanning invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the input that caused the error.
	Pos() int
}

var (
	_ InputError = (*BadTokenError)(nil)
	_ InputError = (*MismatchedParensError)(nil)
)
