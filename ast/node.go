package ast

import (
	"github.com/pattyshack/gt/parseutil"
)

type Node interface {
	parseutil.Locatable
	Walk(Visitor)
}

type Visitor interface {
	Enter(Node)
	Exit(Node)
}

type Statement interface {
	Node
	isStatement()
}

type statementMarker struct{}

func (statementMarker) isStatement() {}

// Literal, reference, or folded arithmetic.  Every expression seen by the
// analyzer is either a reference to a symbol or a concrete scalar value.
type Expression interface {
	Node
	isExpression()
}

type expressionMarker struct{}

func (expressionMarker) isExpression() {}

// Returns the folded scalar value of a non-reference expression.  Returns nil
// for references.
func ConstantValue(expr Expression) Scalar {
	switch e := expr.(type) {
	case *Literal:
		return e.Value
	case *Arithmetic:
		return e.Result
	case *Parenthesized:
		return ConstantValue(e.Expression)
	}
	return nil
}

// Returns the referenced symbol name, unwrapping parentheses.  Returns false
// for non-reference expressions.
func ReferencedName(expr Expression) (*Reference, bool) {
	switch e := expr.(type) {
	case *Reference:
		return e, true
	case *Parenthesized:
		return ReferencedName(e.Expression)
	}
	return nil, false
}

func Line(node parseutil.Locatable) int {
	return node.Loc().Line
}
