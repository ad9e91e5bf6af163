package analyzer

import (
	"math"
	"testing"

	"github.com/nalgeon/be"

	"github.com/pattyshack/minic/ast"
)

func lit(value ast.Scalar) *ast.Literal {
	return &ast.Literal{Value: value}
}

func ref(name string) *ast.Reference {
	return &ast.Reference{Name: name}
}

func TestCoerceLiterals(t *testing.T) {
	tests := []struct {
		name   string
		target ast.ScalarType
		source ast.Scalar
		want   ast.Scalar
	}{
		{
			name:   "int to int",
			target: ast.IntType,
			source: ast.IntScalar(42),
			want:   ast.IntScalar(42),
		},
		{
			name:   "int to float",
			target: ast.FloatType,
			source: ast.IntScalar(3),
			want:   ast.FloatScalar(3),
		},
		{
			name:   "float to float",
			target: ast.FloatType,
			source: ast.FloatScalar(2.5),
			want:   ast.FloatScalar(2.5),
		},
		{
			name:   "int to char",
			target: ast.CharType,
			source: ast.IntScalar(7),
			want:   ast.CharScalar("7"),
		},
		{
			name:   "float to char",
			target: ast.CharType,
			source: ast.FloatScalar(3),
			want:   ast.CharScalar("3.0"),
		},
		{
			name:   "char to char",
			target: ast.CharType,
			source: ast.CharScalar("abc"),
			want:   ast.CharScalar("abc"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			analysis := NewAnalysis()
			value, err := analysis.Coerce(test.target, lit(test.source), 1)
			be.Err(t, err, nil)
			be.Equal(t, value, test.want)
			be.Equal(t, len(analysis.Notices()), 0)
		})
	}
}

func TestCoerceFloatToIntTruncates(t *testing.T) {
	analysis := NewAnalysis()

	value, err := analysis.Coerce(ast.IntType, lit(ast.FloatScalar(3.9)), 4)
	be.Err(t, err, nil)
	be.Equal[ast.Scalar](t, value, ast.IntScalar(3))

	value, err = analysis.Coerce(ast.IntType, lit(ast.FloatScalar(-2.7)), 5)
	be.Err(t, err, nil)
	be.Equal[ast.Scalar](t, value, ast.IntScalar(-2))

	notices := analysis.Notices()
	be.Equal(t, len(notices), 2)
	be.Equal(t, notices[0].Line, 4)
	be.Equal[ast.Scalar](t, notices[0].From, ast.FloatScalar(3.9))
	be.Equal[ast.Scalar](t, notices[0].To, ast.IntScalar(3))
	be.Equal(
		t,
		notices[0].String(),
		"precision loss at line 4: '3.9' (float 3.9) truncated to int 3")
}

func TestCoerceUnrepresentableFloat(t *testing.T) {
	for _, value := range []float64{math.Inf(1), math.NaN(), 1e300} {
		analysis := NewAnalysis()
		_, err := analysis.Coerce(ast.IntType, lit(ast.FloatScalar(value)), 1)
		be.Err(t, err, ErrIncompatibleTypes)
	}
}

func TestCoerceCharToNumeric(t *testing.T) {
	for _, target := range []ast.ScalarType{ast.IntType, ast.FloatType} {
		analysis := NewAnalysis()
		_, err := analysis.Coerce(target, lit(ast.CharScalar("abc")), 6)
		be.Err(t, err, ErrIncompatibleTypes)
		be.Err(t, err, "semantic error at line 6: incompatible types for '\"abc\"'")
	}
}

func TestCoerceReference(t *testing.T) {
	analysis := NewAnalysis()

	_, err := analysis.Coerce(ast.IntType, ref("a"), 1)
	be.Err(t, err, ErrUndeclared)

	err = analysis.DeclareVariable("a", ast.FloatType, 1)
	be.Err(t, err, nil)

	_, err = analysis.Coerce(ast.IntType, ref("a"), 2)
	be.Err(t, err, ErrUninitialized)

	err = analysis.Assign("a", ast.FloatScalar(8.5), 3)
	be.Err(t, err, nil)

	value, err := analysis.Coerce(ast.IntType, ref("a"), 4)
	be.Err(t, err, nil)
	be.Equal[ast.Scalar](t, value, ast.IntScalar(8))

	notices := analysis.Notices()
	be.Equal(t, len(notices), 1)
	be.Equal(t, notices[0].Subject, "a")

	// Parentheses around a reference still read the symbol.
	value, err = analysis.Coerce(
		ast.FloatType,
		&ast.Parenthesized{Expression: ref("a")},
		5)
	be.Err(t, err, nil)
	be.Equal[ast.Scalar](t, value, ast.FloatScalar(8.5))
}
