package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorPrecedence(t *testing.T) {
	assert.Equal(t, OpAdd.Precedence(), OpSub.Precedence())
	assert.Equal(t, OpMul.Precedence(), OpDiv.Precedence())
	assert.Greater(t, OpMul.Precedence(), OpAdd.Precedence())
	assert.Greater(t, OpDiv.Precedence(), OpSub.Precedence())
}

func TestOperatorApply(t *testing.T) {
	cases := []struct {
		name        string
		op          Operator
		left, right float64
		want        float64
	}{
		{"add", OpAdd, 2, 3, 5},
		{"sub", OpSub, 10, 4, 6},
		{"sub-negative", OpSub, 3, 5, -2},
		{"mul", OpMul, 3, 4, 12},
		{"div", OpDiv, 15, 3, 5},
		{"div-fraction", OpDiv, 1, 2, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.op.Apply(c.left, c.right)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestOperatorApplyDivisionByZero(t *testing.T) {
	_, err := OpDiv.Apply(5, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*DivisionByZeroError))

	// The zero check applies only to the right operand.
	got, err := OpDiv.Apply(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "+", OpAdd.String())
	assert.Equal(t, "-", OpSub.String())
	assert.Equal(t, "*", OpMul.String())
	assert.Equal(t, "/", OpDiv.String())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "2.5", Token{Kind: TokenNum, Num: 2.5}.String())
	assert.Equal(t, "*", Token{Kind: TokenOp, Op: OpMul}.String())
	assert.Equal(t, "(", Token{Kind: TokenBracket, Bracket: '('}.String())
	assert.Equal(t, "None", Token{}.String())
}
