package calc

// ToPostfix reorders an infix token sequence into reverse Polish order using
// the shunting-yard algorithm. Numbers pass through in order; an operator
// first pops every stacked operator of equal or higher precedence, so
// equal-precedence operators group left to right; a close bracket pops
// operators until its open bracket, and neither bracket is emitted.
//
// ToPostfix has no failure path. Its precondition is a sequence that already
// passed Parse, which validates bracket balance; fed anything else it
// produces a malformed postfix sequence, which Evaluate rejects, but it never
// panics.
func ToPostfix(tokens []Token) []Token {
	queue := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			queue = append(queue, tok)
		case TokenOp:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp || top.Op.Precedence() < tok.Op.Precedence() {
					break
				}
				queue = append(queue, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenBracket:
			if tok.Bracket == '(' {
				stack = append(stack, tok)
				continue
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenBracket {
					break
				}
				queue = append(queue, top)
			}
		}
	}
	// Only operators remain here for validated input; brackets would mean an
	// upstream bug and get rejected by Evaluate.
	for len(stack) > 0 {
		queue = append(queue, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return queue
}
