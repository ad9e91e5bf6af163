package analyzer

import (
	"fmt"
	"math"

	"github.com/pattyshack/minic/ast"
)

// Folds left <op> right into a concrete value.  The result is float if
// either operand is float, int otherwise.  Char operands are rejected.
func (analysis *Analysis) Evaluate(
	left ast.Expression,
	op ast.ArithmeticOperator,
	right ast.Expression,
	line int,
) (
	ast.Scalar,
	error,
) {
	lhs, err := analysis.resolveOperand(left, line)
	if err != nil {
		return nil, err
	}

	rhs, err := analysis.resolveOperand(right, line)
	if err != nil {
		return nil, err
	}

	for _, opd := range []operand{lhs, rhs} {
		if !opd.value.Type().IsNumeric() {
			return nil, newSemanticError(
				IncompatibleTypes,
				opd.subject,
				line,
				"%s value cannot be used with arithmetic operator '%s'",
				opd.value.Type(),
				op)
		}
	}

	resultType := ast.IntType
	if lhs.value.Type() == ast.FloatType || rhs.value.Type() == ast.FloatType {
		resultType = ast.FloatType
	}

	// int -> int and int -> float never fail nor emit notices.
	lv, err := analysis.convert(resultType, lhs, line)
	if err != nil {
		return nil, err
	}

	rv, err := analysis.convert(resultType, rhs, line)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("%s %s %s", lhs.subject, op, rhs.subject)

	if resultType == ast.FloatType {
		return evaluateFloat(
			float64(lv.(ast.FloatScalar)),
			op,
			float64(rv.(ast.FloatScalar)),
			subject,
			line)
	}

	return evaluateInt(
		int64(lv.(ast.IntScalar)),
		op,
		int64(rv.(ast.IntScalar)),
		subject,
		line)
}

// Integer arithmetic wraps on overflow.  Division truncates toward zero.
func evaluateInt(
	left int64,
	op ast.ArithmeticOperator,
	right int64,
	subject string,
	line int,
) (
	ast.Scalar,
	error,
) {
	switch op {
	case ast.Add:
		return ast.IntScalar(left + right), nil
	case ast.Subtract:
		return ast.IntScalar(left - right), nil
	case ast.Multiply:
		return ast.IntScalar(left * right), nil
	case ast.Divide:
		if right == 0 {
			return nil, newSemanticError(DivisionByZero, subject, line, "")
		}
		return ast.IntScalar(left / right), nil
	case ast.Power:
		return intPower(left, right, subject, line)
	}

	panic(fmt.Sprintf("unexpected arithmetic operator: %s", op))
}

// Negative exponents follow 1 / base^-exp under truncating division.
func intPower(
	base int64,
	exponent int64,
	subject string,
	line int,
) (
	ast.Scalar,
	error,
) {
	if exponent < 0 {
		switch base {
		case 0:
			return nil, newSemanticError(DivisionByZero, subject, line, "")
		case 1:
			return ast.IntScalar(1), nil
		case -1:
			if exponent%2 == 0 {
				return ast.IntScalar(1), nil
			}
			return ast.IntScalar(-1), nil
		default:
			return ast.IntScalar(0), nil
		}
	}

	result := int64(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result *= base
		}
		base *= base
		exponent >>= 1
	}
	return ast.IntScalar(result), nil
}

func evaluateFloat(
	left float64,
	op ast.ArithmeticOperator,
	right float64,
	subject string,
	line int,
) (
	ast.Scalar,
	error,
) {
	switch op {
	case ast.Add:
		return ast.FloatScalar(left + right), nil
	case ast.Subtract:
		return ast.FloatScalar(left - right), nil
	case ast.Multiply:
		return ast.FloatScalar(left * right), nil
	case ast.Divide:
		if right == 0 {
			return nil, newSemanticError(DivisionByZero, subject, line, "")
		}
		return ast.FloatScalar(left / right), nil
	case ast.Power:
		if left == 0 && right < 0 {
			return nil, newSemanticError(DivisionByZero, subject, line, "")
		}
		return ast.FloatScalar(math.Pow(left, right)), nil
	}

	panic(fmt.Sprintf("unexpected arithmetic operator: %s", op))
}
