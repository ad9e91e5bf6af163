package ast

import (
	"github.com/pattyshack/gt/parseutil"
)

type ArithmeticOperator string

const (
	Add      = ArithmeticOperator("+")
	Subtract = ArithmeticOperator("-")
	Multiply = ArithmeticOperator("*")
	Divide   = ArithmeticOperator("/")
	Power    = ArithmeticOperator("^")
)

type RelationalOperator string

const (
	LessThan       = RelationalOperator("<")
	LessOrEqual    = RelationalOperator("<=")
	GreaterThan    = RelationalOperator(">")
	GreaterOrEqual = RelationalOperator(">=")
	NotEqual       = RelationalOperator("!=")
)

type CounterStep string

const (
	Increment = CounterStep("++")
	Decrement = CounterStep("--")
)

// Integer, float, or string literal.  Its type is decided by the lexer's
// literal classification, never by re-inspecting the text.
type Literal struct {
	expressionMarker
	parseutil.StartEndPos

	Value Scalar
}

var _ Expression = &Literal{}

func (lit *Literal) Walk(visitor Visitor) {
	visitor.Enter(lit)
	visitor.Exit(lit)
}

// Identifier used as a value.
type Reference struct {
	expressionMarker
	parseutil.StartEndPos

	Name string
}

var _ Expression = &Reference{}

func (ref *Reference) Walk(visitor Visitor) {
	visitor.Enter(ref)
	visitor.Exit(ref)
}

// Binary arithmetic expression.  Result holds the value folded by the
// analyzer when the expression was reduced.
type Arithmetic struct {
	expressionMarker
	parseutil.StartEndPos

	Operator ArithmeticOperator
	Left     Expression
	Right    Expression

	Result Scalar
}

var _ Expression = &Arithmetic{}

func (arith *Arithmetic) Walk(visitor Visitor) {
	visitor.Enter(arith)
	arith.Left.Walk(visitor)
	arith.Right.Walk(visitor)
	visitor.Exit(arith)
}

type Parenthesized struct {
	expressionMarker
	parseutil.StartEndPos

	Expression Expression
}

var _ Expression = &Parenthesized{}

func (paren *Parenthesized) Walk(visitor Visitor) {
	visitor.Enter(paren)
	paren.Expression.Walk(visitor)
	visitor.Exit(paren)
}

// Relational test used by if / while / for.  Conditions are recognized but
// never evaluated.
type Condition struct {
	parseutil.StartEndPos

	Operator RelationalOperator
	Left     Expression
	Right    Expression
}

var _ Node = &Condition{}

func (cond *Condition) Walk(visitor Visitor) {
	visitor.Enter(cond)
	cond.Left.Walk(visitor)
	cond.Right.Walk(visitor)
	visitor.Exit(cond)
}
