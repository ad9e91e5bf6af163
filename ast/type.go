package ast

import (
	"strconv"
	"strings"

	"github.com/pattyshack/gt/parseutil"
)

type ScalarType string

const (
	// Only set on symbols declared in a comma list whose type has not been
	// resolved yet.
	UnresolvedType = ScalarType("")

	IntType   = ScalarType("int")
	FloatType = ScalarType("float")
	CharType  = ScalarType("char")
)

func (t ScalarType) String() string {
	if t == UnresolvedType {
		return "<unresolved>"
	}
	return string(t)
}

func (t ScalarType) IsNumeric() bool {
	return t == IntType || t == FloatType
}

// The type keyword of a declaration.
type TypeKeyword struct {
	parseutil.StartEndPos

	Kind ScalarType
}

var _ Node = &TypeKeyword{}

func (keyword *TypeKeyword) Walk(visitor Visitor) {
	visitor.Enter(keyword)
	visitor.Exit(keyword)
}

// Scalar is a closed tagged union of IntScalar, FloatScalar and CharScalar.
type Scalar interface {
	Type() ScalarType
	String() string

	isScalar()
}

type IntScalar int64

func (IntScalar) isScalar() {}

func (IntScalar) Type() ScalarType {
	return IntType
}

func (s IntScalar) String() string {
	return strconv.FormatInt(int64(s), 10)
}

type FloatScalar float64

func (FloatScalar) isScalar() {}

func (FloatScalar) Type() ScalarType {
	return FloatType
}

func (s FloatScalar) String() string {
	str := strconv.FormatFloat(float64(s), 'g', -1, 64)
	if strings.ContainsAny(str, ".eNI") { // decimal, exponent, NaN, Inf
		return str
	}
	return str + ".0"
}

type CharScalar string

func (CharScalar) isScalar() {}

func (CharScalar) Type() ScalarType {
	return CharType
}

func (s CharScalar) String() string {
	return string(s)
}
