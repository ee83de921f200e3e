package calc

import "strconv"

// TokenKind identifies which variant of Token is populated.
type TokenKind int8

const (
	// TokenNone is the zero Token. It never appears in a parsed sequence.
	TokenNone TokenKind = iota
	// TokenNum is a numeric literal; Num holds its value.
	TokenNum
	// TokenOp is a binary operator; Op holds which one.
	TokenOp
	// TokenBracket is a grouping bracket; Bracket holds '(' or ')'.
	TokenBracket
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenBracket:
		return "Bracket"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one element of a scanned expression. Exactly one of the payload
// fields is meaningful, selected by Kind. Tokens are immutable once produced;
// each pipeline stage consumes a sequence and produces a new one.
type Token struct {
	Kind TokenKind
	// Num is the literal value when Kind is TokenNum.
	Num float64
	// Op is the operator when Kind is TokenOp.
	Op Operator
	// Bracket is '(' or ')' when Kind is TokenBracket.
	Bracket byte
	// Pos is the 1-based rune column where the token started. It is carried
	// for error reporting only and is ignored by comparisons the evaluator
	// makes.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenOp:
		return t.Op.String()
	case TokenBracket:
		return string(t.Bracket)
	default:
		return t.Kind.String()
	}
}

// Operator is one of the four binary arithmetic operators.
type Operator int8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// Precedence returns the operator's binding strength. Multiplication and
// division bind tighter than addition and subtraction; operators in the same
// class compare equal.
func (op Operator) Precedence() int {
	switch op {
	case OpMul, OpDiv:
		return 2
	default:
		return 1
	}
}

// Apply evaluates the operator on two operands. Division by exactly zero
// returns a *DivisionByZeroError.
func (op Operator) Apply(left, right float64) (float64, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSub:
		return left - right, nil
	case OpMul:
		return left * right, nil
	case OpDiv:
		if right == 0 {
			return 0, &DivisionByZeroError{}
		}
		return left / right, nil
	default:
		panic("calc: invalid operator " + op.String())
	}
}

// operatorFor maps an operator rune to its Operator.
func operatorFor(r rune) (Operator, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*':
		return OpMul, true
	case '/':
		return OpDiv, true
	default:
		return 0, false
	}
}
