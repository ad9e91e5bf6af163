package analyzer

import (
	"fmt"
	"math"

	"github.com/pattyshack/minic/ast"
)

// Non-fatal float to int truncation.
type Notice struct {
	Line int

	Subject string
	From    ast.Scalar
	To      ast.Scalar
}

func (notice Notice) String() string {
	return fmt.Sprintf(
		"precision loss at line %d: '%s' (%s %s) truncated to %s %s",
		notice.Line,
		notice.Subject,
		notice.From.Type(),
		notice.From,
		notice.To.Type(),
		notice.To)
}

// An operand whose value has been read out of the symbol table (for
// references) or off the folded expression.
type operand struct {
	subject string
	value   ast.Scalar
}

func (analysis *Analysis) resolveOperand(
	expr ast.Expression,
	line int,
) (
	operand,
	error,
) {
	ref, ok := ast.ReferencedName(expr)
	if ok {
		symbol, err := analysis.RequireInitialized(ref.Name, line)
		if err != nil {
			return operand{}, err
		}

		return operand{
			subject: ref.Name,
			value:   symbol.Value,
		}, nil
	}

	value := ast.ConstantValue(expr)
	if value == nil {
		panic(fmt.Sprintf("unexpected expression: %v", expr))
	}

	subject := value.String()
	if value.Type() == ast.CharType {
		subject = fmt.Sprintf("%q", value.String())
	}

	return operand{
		subject: subject,
		value:   value,
	}, nil
}

// Checks that the expression's value can stand in for the target type and
// returns the converted value.  Every declaration initializer, assignment, and
// return statement goes through here.
func (analysis *Analysis) Coerce(
	target ast.ScalarType,
	source ast.Expression,
	line int,
) (
	ast.Scalar,
	error,
) {
	src, err := analysis.resolveOperand(source, line)
	if err != nil {
		return nil, err
	}

	return analysis.convert(target, src, line)
}

func (analysis *Analysis) convert(
	target ast.ScalarType,
	src operand,
	line int,
) (
	ast.Scalar,
	error,
) {
	switch target {
	case ast.IntType:
		switch value := src.value.(type) {
		case ast.IntScalar:
			return value, nil
		case ast.FloatScalar:
			f := float64(value)
			if math.IsNaN(f) ||
				math.IsInf(f, 0) ||
				f >= math.MaxInt64 ||
				f < math.MinInt64 {

				return nil, newSemanticError(
					IncompatibleTypes,
					src.subject,
					line,
					"float value %s is not representable as int",
					value)
			}

			truncated := ast.IntScalar(int64(f))
			analysis.notices = append(
				analysis.notices,
				Notice{
					Line:    line,
					Subject: src.subject,
					From:    value,
					To:      truncated,
				})
			return truncated, nil
		}
	case ast.FloatType:
		switch value := src.value.(type) {
		case ast.IntScalar:
			return ast.FloatScalar(float64(value)), nil
		case ast.FloatScalar:
			return value, nil
		}
	case ast.CharType:
		return ast.CharScalar(src.value.String()), nil
	}

	return nil, newSemanticError(
		IncompatibleTypes,
		src.subject,
		line,
		"cannot use %s value as %s",
		src.value.Type(),
		target)
}
