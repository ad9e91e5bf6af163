package ast

import (
	"github.com/pattyshack/gt/parseutil"
)

// if ( cond ) { ... } [else { ... } | else if ...]
//
// At most one of Else / ElseIf is set.
type If struct {
	statementMarker
	parseutil.StartEndPos

	Condition *Condition
	Then      *Block

	Else   *Block
	ElseIf *If
}

var _ Statement = &If{}

func (stmt *If) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	stmt.Condition.Walk(visitor)
	stmt.Then.Walk(visitor)
	if stmt.Else != nil {
		stmt.Else.Walk(visitor)
	}
	if stmt.ElseIf != nil {
		stmt.ElseIf.Walk(visitor)
	}
	visitor.Exit(stmt)
}

type While struct {
	statementMarker
	parseutil.StartEndPos

	Condition *Condition
	Body      *Block
}

var _ Statement = &While{}

func (stmt *While) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	stmt.Condition.Walk(visitor)
	stmt.Body.Walk(visitor)
	visitor.Exit(stmt)
}

// <init> ; <counter> <op> <bound> ; <counter>++ (or --)
//
// Init is either an initialized *Declaration or an *Assignment of the
// counter.
type ForHeader struct {
	parseutil.StartEndPos

	Init Statement
	Test *Condition
	Step CounterStep

	Counter string
}

var _ Node = &ForHeader{}

func (header *ForHeader) Walk(visitor Visitor) {
	visitor.Enter(header)
	header.Init.Walk(visitor)
	header.Test.Walk(visitor)
	visitor.Exit(header)
}

type For struct {
	statementMarker
	parseutil.StartEndPos

	Header *ForHeader
	Body   *Block
}

var _ Statement = &For{}

func (stmt *For) Walk(visitor Visitor) {
	visitor.Enter(stmt)
	stmt.Header.Walk(visitor)
	stmt.Body.Walk(visitor)
	visitor.Exit(stmt)
}
