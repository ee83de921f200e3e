package calc

// Evaluate reduces a postfix token sequence to a single value with an operand
// stack. Numbers push their value; an operator pops its right operand first,
// then its left, and pushes the applied result. The sequence is valid only if
// exactly one value remains at the end.
//
// Errors are *InvalidExpressionError for structural problems (operand
// underflow, leftover values, brackets, empty input) and
// *DivisionByZeroError propagated from Operator.Apply.
func Evaluate(tokens []Token) (float64, error) {
	var stack []float64
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Num)
		case TokenOp:
			if len(stack) < 2 {
				return 0, &InvalidExpressionError{Reason: "missing operand for " + tok.Op.String()}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := tok.Op.Apply(left, right)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)
		default:
			return 0, &InvalidExpressionError{Reason: "unexpected token " + tok.String()}
		}
	}
	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return 0, &InvalidExpressionError{Reason: "empty expression"}
	default:
		return 0, &InvalidExpressionError{Reason: "leftover operands"}
	}
}

// Calculate evaluates an arithmetic expression given as text. It is the
// composition of Parse, ToPostfix, and Evaluate, stopping at the first
// failing stage.
func Calculate(s string) (float64, error) {
	tokens, err := ParseString(s)
	if err != nil {
		return 0, err
	}
	return Evaluate(ToPostfix(tokens))
}
