// Package token SPDX-License-Identifier: Apache-2.0
package token

import "strings"

// Separator is the only character that splits an input line.
const Separator = " "

// ExpressionArity is the number of tokens an accepted line must have.
const ExpressionArity = 3

type TokenType string

const (
	OPERAND  TokenType = "OPERAND"  // 2, 3.5, anything in the outer positions
	OPERATOR TokenType = "OPERATOR" // plus, minus, times, ...
)

type Token struct {
	Type    TokenType
	Literal string
}

// Expression is an accepted three-token line. The literals are kept as
// typed; nothing converts them to numbers or maps the operator word.
type Expression struct {
	Left     Token
	Operator Token
	Right    Token
}

// Split breaks a line on single spaces. Consecutive, leading and trailing
// spaces produce empty tokens, and an empty line yields one empty token.
func Split(line string) []string {
	return strings.Split(line, Separator)
}

// NewExpression builds an Expression from split tokens. The second return
// value is false unless exactly ExpressionArity tokens are given.
func NewExpression(parts []string) (Expression, bool) {
	if len(parts) != ExpressionArity {
		return Expression{}, false
	}
	return Expression{
		Left:     Token{Type: OPERAND, Literal: parts[0]},
		Operator: Token{Type: OPERATOR, Literal: parts[1]},
		Right:    Token{Type: OPERAND, Literal: parts[2]},
	}, true
}

func (e Expression) String() string {
	return strings.Join([]string{e.Left.Literal, e.Operator.Literal, e.Right.Literal}, Separator)
}
