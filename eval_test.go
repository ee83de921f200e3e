package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		in   []Token
		want float64
	}{
		{"single", []Token{num(7)}, 7},
		// 2 3 4 * + = 14
		{"precedence", []Token{num(2), num(3), num(4), op(OpMul), op(OpAdd)}, 14},
		// 10 4 - = 6: the later-pushed value is the right operand
		{"sub-order", []Token{num(10), num(4), op(OpSub)}, 6},
		{"div-order", []Token{num(10), num(4), op(OpDiv)}, 2.5},
		// 4 5 - 6 - = -7
		{"chained", []Token{num(4), num(5), op(OpSub), num(6), op(OpSub)}, -7},
		{"fraction", []Token{num(1), num(2), op(OpDiv)}, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Evaluate(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEvaluateInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   []Token
	}{
		{"empty", nil},
		{"operand-underflow", []Token{num(2), op(OpAdd)}},
		{"operator-only", []Token{op(OpMul)}},
		{"leftover-operands", []Token{num(2), num(3)}},
		{"bracket-token", []Token{num(2), bracket('('), num(3), op(OpAdd)}},
		{"trailing-bracket", []Token{num(2), num(3), op(OpAdd), bracket(')')}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Evaluate(c.in)
			require.Error(t, err)
			assert.ErrorAs(t, err, new(*InvalidExpressionError))
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate([]Token{num(5), num(0), op(OpDiv)})
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*DivisionByZeroError))

	// 10 2 2 - / is 10 / 0.
	_, err = Evaluate([]Token{num(10), num(2), num(2), op(OpSub), op(OpDiv)})
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*DivisionByZeroError))
}
