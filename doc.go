// Package calc implements a floating-point arithmetic expression calculator.
//
// Expressions use the four binary operators +, -, *, and /, decimal numbers,
// and parentheses, with the usual precedence and left-to-right grouping for
// operators of equal precedence.
//
// Evaluation is a three-stage pipeline: Parse scans text into tokens,
// ToPostfix reorders them into reverse Polish form with the shunting-yard
// algorithm, and Evaluate reduces the postfix sequence with an operand stack.
// Calculate runs all three stages on a string. Each call is independent;
// nothing is shared between calls, so concurrent calls need no coordination.
package calc
