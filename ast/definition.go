package ast

import (
	"github.com/pattyshack/gt/parseutil"
)

// int main ( ) { ... } ;
type Program struct {
	parseutil.StartEndPos

	Body *Block
}

var _ Node = &Program{}

func (program *Program) Walk(visitor Visitor) {
	visitor.Enter(program)
	program.Body.Walk(visitor)
	visitor.Exit(program)
}

// { statement+ }
type Block struct {
	parseutil.StartEndPos

	Statements []Statement
}

var _ Node = &Block{}

func (block *Block) Walk(visitor Visitor) {
	visitor.Enter(block)
	for _, stmt := range block.Statements {
		stmt.Walk(visitor)
	}
	visitor.Exit(block)
}

type DeclarationKind string

const (
	SimpleDeclaration      = DeclarationKind("simple")
	ListDeclaration        = DeclarationKind("list")
	InitializedDeclaration = DeclarationKind("initialized")
)

type Declaration struct {
	statementMarker
	parseutil.StartEndPos

	Kind DeclarationKind
	Type *TypeKeyword

	// One entry for simple / initialized declarations.
	Names []*Reference

	Initializer Expression // optional; only set for initialized declarations
	Value       Scalar     // value stored by the initializer
}

var _ Statement = &Declaration{}

func (decl *Declaration) Walk(visitor Visitor) {
	visitor.Enter(decl)
	decl.Type.Walk(visitor)
	for _, name := range decl.Names {
		name.Walk(visitor)
	}
	if decl.Initializer != nil {
		decl.Initializer.Walk(visitor)
	}
	visitor.Exit(decl)
}

type Assignment struct {
	statementMarker
	parseutil.StartEndPos

	Target *Reference
	Source Expression

	Value Scalar // value stored into Target
}

var _ Statement = &Assignment{}

func (assign *Assignment) Walk(visitor Visitor) {
	visitor.Enter(assign)
	assign.Target.Walk(visitor)
	assign.Source.Walk(visitor)
	visitor.Exit(assign)
}

type Return struct {
	statementMarker
	parseutil.StartEndPos

	Source Expression
	Value  Scalar
}

var _ Statement = &Return{}

func (ret *Return) Walk(visitor Visitor) {
	visitor.Enter(ret)
	ret.Source.Walk(visitor)
	visitor.Exit(ret)
}
