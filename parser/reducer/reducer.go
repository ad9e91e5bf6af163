package reducer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/minic/analyzer"
	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser/lr"
)

// Builds the tree and runs the semantic actions bound to each reduction.
// The first error returned halts the parse.
type Reducer struct {
	*analyzer.Analysis
}

var _ lr.Reducer = &Reducer{}

func NewReducer(analysis *analyzer.Analysis) *Reducer {
	return &Reducer{
		Analysis: analysis,
	}
}

func line(token *lr.TokenValue) int {
	return token.Loc().Line
}

func (reducer *Reducer) ToProgram(
	intKW *lr.TokenValue,
	mainKW *lr.TokenValue,
	lparen *lr.TokenValue,
	rparen *lr.TokenValue,
	body *ast.Block,
	semicolon *lr.TokenValue,
) (
	*ast.Program,
	error,
) {
	reducer.Complete()

	return &ast.Program{
		StartEndPos: parseutil.NewStartEndPos(intKW.Loc(), semicolon.End()),
		Body:        body,
	}, nil
}

func (reducer *Reducer) ToBlock(
	lbrace *lr.TokenValue,
	stmts []ast.Statement,
	rbrace *lr.TokenValue,
) (
	*ast.Block,
	error,
) {
	return &ast.Block{
		StartEndPos: parseutil.NewStartEndPos(lbrace.Loc(), rbrace.End()),
		Statements:  stmts,
	}, nil
}

func newReference(token *lr.TokenValue) *ast.Reference {
	return &ast.Reference{
		StartEndPos: token.StartEndPos,
		Name:        token.Value,
	}
}

func (reducer *Reducer) SimpleToDeclaration(
	typeKW *ast.TypeKeyword,
	identifier *lr.TokenValue,
	semicolon *lr.TokenValue,
) (
	ast.Statement,
	error,
) {
	err := reducer.DeclareVariable(
		identifier.Value,
		typeKW.Kind,
		line(identifier))
	if err != nil {
		return nil, err
	}

	return &ast.Declaration{
		StartEndPos: parseutil.NewStartEndPos(typeKW.Loc(), semicolon.End()),
		Kind:        ast.SimpleDeclaration,
		Type:        typeKW,
		Names:       []*ast.Reference{newReference(identifier)},
	}, nil
}

// The members were declared untyped as the identifier list reduced.
func (reducer *Reducer) ListToDeclaration(
	typeKW *ast.TypeKeyword,
	names []*ast.Reference,
	semicolon *lr.TokenValue,
) (
	ast.Statement,
	error,
) {
	reducer.ResolveListType(typeKW.Kind)

	return &ast.Declaration{
		StartEndPos: parseutil.NewStartEndPos(typeKW.Loc(), semicolon.End()),
		Kind:        ast.ListDeclaration,
		Type:        typeKW,
		Names:       names,
	}, nil
}

func (reducer *Reducer) InitializedToDeclaration(
	typeKW *ast.TypeKeyword,
	identifier *lr.TokenValue,
	equal *lr.TokenValue,
	initializer ast.Expression,
	semicolon *lr.TokenValue,
) (
	ast.Statement,
	error,
) {
	value, err := reducer.DeclareInitialized(
		identifier.Value,
		typeKW.Kind,
		initializer,
		line(identifier))
	if err != nil {
		return nil, err
	}

	return &ast.Declaration{
		StartEndPos: parseutil.NewStartEndPos(typeKW.Loc(), semicolon.End()),
		Kind:        ast.InitializedDeclaration,
		Type:        typeKW,
		Names:       []*ast.Reference{newReference(identifier)},
		Initializer: initializer,
		Value:       value,
	}, nil
}

func (reducer *Reducer) ToAssignment(
	identifier *lr.TokenValue,
	equal *lr.TokenValue,
	source ast.Expression,
	semicolon *lr.TokenValue,
) (
	ast.Statement,
	error,
) {
	value, err := reducer.AssignVariable(
		identifier.Value,
		source,
		line(identifier))
	if err != nil {
		return nil, err
	}

	return &ast.Assignment{
		StartEndPos: parseutil.NewStartEndPos(identifier.Loc(), semicolon.End()),
		Target:      newReference(identifier),
		Source:      source,
		Value:       value,
	}, nil
}

func (reducer *Reducer) ToReturn(
	ret *lr.TokenValue,
	source ast.Expression,
	semicolon *lr.TokenValue,
) (
	ast.Statement,
	error,
) {
	value, err := reducer.ReturnValue(source, line(ret))
	if err != nil {
		return nil, err
	}

	return &ast.Return{
		StartEndPos: parseutil.NewStartEndPos(ret.Loc(), semicolon.End()),
		Source:      source,
		Value:       value,
	}, nil
}
