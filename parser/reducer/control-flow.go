package reducer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser/lr"
)

func (reducer *Reducer) ThenToIf(
	ifKW *lr.TokenValue,
	lparen *lr.TokenValue,
	cond *ast.Condition,
	rparen *lr.TokenValue,
	then *ast.Block,
) (
	*ast.If,
	error,
) {
	return &ast.If{
		StartEndPos: parseutil.NewStartEndPos(ifKW.Loc(), then.End()),
		Condition:   cond,
		Then:        then,
	}, nil
}

func (reducer *Reducer) ElseToIf(
	ifKW *lr.TokenValue,
	lparen *lr.TokenValue,
	cond *ast.Condition,
	rparen *lr.TokenValue,
	then *ast.Block,
	elseKW *lr.TokenValue,
	otherwise *ast.Block,
) (
	*ast.If,
	error,
) {
	return &ast.If{
		StartEndPos: parseutil.NewStartEndPos(ifKW.Loc(), otherwise.End()),
		Condition:   cond,
		Then:        then,
		Else:        otherwise,
	}, nil
}

func (reducer *Reducer) ElseIfToIf(
	ifKW *lr.TokenValue,
	lparen *lr.TokenValue,
	cond *ast.Condition,
	rparen *lr.TokenValue,
	then *ast.Block,
	elseKW *lr.TokenValue,
	elseIf *ast.If,
) (
	*ast.If,
	error,
) {
	return &ast.If{
		StartEndPos: parseutil.NewStartEndPos(ifKW.Loc(), elseIf.End()),
		Condition:   cond,
		Then:        then,
		ElseIf:      elseIf,
	}, nil
}

func (reducer *Reducer) ToWhile(
	whileKW *lr.TokenValue,
	lparen *lr.TokenValue,
	cond *ast.Condition,
	rparen *lr.TokenValue,
	body *ast.Block,
) (
	ast.Statement,
	error,
) {
	return &ast.While{
		StartEndPos: parseutil.NewStartEndPos(whileKW.Loc(), body.End()),
		Condition:   cond,
		Body:        body,
	}, nil
}

func (reducer *Reducer) ToFor(
	forKW *lr.TokenValue,
	lparen *lr.TokenValue,
	header *ast.ForHeader,
	rparen *lr.TokenValue,
	body *ast.Block,
) (
	ast.Statement,
	error,
) {
	return &ast.For{
		StartEndPos: parseutil.NewStartEndPos(forKW.Loc(), body.End()),
		Header:      header,
		Body:        body,
	}, nil
}

func (reducer *Reducer) DeclaredToForHeader(
	init ast.Statement,
	test *ast.Condition,
	semicolon *lr.TokenValue,
	counter *lr.TokenValue,
	step *lr.TokenValue,
	step2 *lr.TokenValue,
) (
	*ast.ForHeader,
	error,
) {
	decl, ok := init.(*ast.Declaration)
	if !ok || len(decl.Names) != 1 {
		panic("should never happen")
	}

	return newForHeader(decl.Names[0], init, test, counter, step, step2)
}

func (reducer *Reducer) AssignedToForHeader(
	init ast.Statement,
	test *ast.Condition,
	semicolon *lr.TokenValue,
	counter *lr.TokenValue,
	step *lr.TokenValue,
	step2 *lr.TokenValue,
) (
	*ast.ForHeader,
	error,
) {
	assign, ok := init.(*ast.Assignment)
	if !ok {
		panic("should never happen")
	}

	return newForHeader(assign.Target, init, test, counter, step, step2)
}

// The test and the step must both operate on the initialized counter.  A
// mismatch is a structural error at the offending identifier.
func newForHeader(
	initialized *ast.Reference,
	init ast.Statement,
	test *ast.Condition,
	counter *lr.TokenValue,
	step *lr.TokenValue,
	step2 *lr.TokenValue,
) (
	*ast.ForHeader,
	error,
) {
	tested, ok := test.Left.(*ast.Reference)
	if !ok {
		panic("should never happen")
	}

	if tested.Name != initialized.Name {
		return nil, lr.NewSyntaxError(&lr.TokenValue{
			SymbolId:    lr.IdentifierToken,
			StartEndPos: tested.StartEndPos,
			Value:       tested.Name,
		})
	}

	if counter.Value != initialized.Name {
		return nil, lr.NewSyntaxError(counter)
	}

	return &ast.ForHeader{
		StartEndPos: parseutil.NewStartEndPos(init.Loc(), step2.End()),
		Init:        init,
		Test:        test,
		Step:        ast.CounterStep(step.Value + step2.Value),
		Counter:     initialized.Name,
	}, nil
}
