package reducer

import (
	"strconv"
	"strings"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser/lr"
)

// Folds the expression eagerly.  The returned node carries the result.
func (reducer *Reducer) BinaryToExpression(
	left ast.Expression,
	op *lr.TokenValue,
	right ast.Expression,
) (
	ast.Expression,
	error,
) {
	operator := ast.ArithmeticOperator(op.Value)
	result, err := reducer.Evaluate(left, operator, right, line(op))
	if err != nil {
		return nil, err
	}

	return &ast.Arithmetic{
		StartEndPos: parseutil.NewStartEndPos(left.Loc(), right.End()),
		Operator:    operator,
		Left:        left,
		Right:       right,
		Result:      result,
	}, nil
}

func (reducer *Reducer) ParenToExpression(
	lparen *lr.TokenValue,
	expr ast.Expression,
	rparen *lr.TokenValue,
) (
	ast.Expression,
	error,
) {
	return &ast.Parenthesized{
		StartEndPos: parseutil.NewStartEndPos(lparen.Loc(), rparen.End()),
		Expression:  expr,
	}, nil
}

const (
	decimalDigits   = "0123456789"
	floatCharacters = decimalDigits + ".eE+-"
)

// Numeric literals are decimal only.  Prefixed (0x, 0o, 0b), hex float and
// digit-separated forms are rejected.
func isDecimalLiteral(value string, allowed string) bool {
	if value == "" {
		return false
	}
	for _, char := range value {
		if !strings.ContainsRune(allowed, char) {
			return false
		}
	}
	return true
}

func (reducer *Reducer) IntegerToOperand(
	token *lr.TokenValue,
) (
	ast.Expression,
	error,
) {
	if !isDecimalLiteral(token.Value, decimalDigits) {
		return nil, parseutil.NewLocationError(
			token.Loc(),
			"invalid integer literal (%s)",
			token.Value)
	}

	value, err := strconv.ParseInt(token.Value, 10, 64)
	if err != nil {
		return nil, parseutil.NewLocationError(
			token.Loc(),
			"invalid integer literal (%s)",
			token.Value)
	}

	return &ast.Literal{
		StartEndPos: token.StartEndPos,
		Value:       ast.IntScalar(value),
	}, nil
}

func (reducer *Reducer) FloatToOperand(
	token *lr.TokenValue,
) (
	ast.Expression,
	error,
) {
	if !isDecimalLiteral(token.Value, floatCharacters) {
		return nil, parseutil.NewLocationError(
			token.Loc(),
			"invalid float literal (%s)",
			token.Value)
	}

	value, err := strconv.ParseFloat(token.Value, 64)
	if err != nil {
		return nil, parseutil.NewLocationError(
			token.Loc(),
			"invalid float literal (%s)",
			token.Value)
	}

	return &ast.Literal{
		StartEndPos: token.StartEndPos,
		Value:       ast.FloatScalar(value),
	}, nil
}

// The char value is the literal's content without the surrounding quotes.
func (reducer *Reducer) StringToOperand(
	token *lr.TokenValue,
) (
	ast.Expression,
	error,
) {
	content, err := strconv.Unquote(token.Value)
	if err != nil {
		content = token.Value
	}

	return &ast.Literal{
		StartEndPos: token.StartEndPos,
		Value:       ast.CharScalar(content),
	}, nil
}

// Reads are checked by whichever reduction consumes the operand.
func (reducer *Reducer) IdentifierToOperand(
	token *lr.TokenValue,
) (
	ast.Expression,
	error,
) {
	return newReference(token), nil
}

func (reducer *Reducer) ToCondition(
	left ast.Expression,
	op *lr.TokenValue,
	right ast.Expression,
) (
	*ast.Condition,
	error,
) {
	for _, operand := range []ast.Expression{left, right} {
		err := reducer.CheckConditionOperand(operand, line(op))
		if err != nil {
			return nil, err
		}
	}

	return &ast.Condition{
		StartEndPos: parseutil.NewStartEndPos(left.Loc(), right.End()),
		Operator:    ast.RelationalOperator(op.Value),
		Left:        left,
		Right:       right,
	}, nil
}
