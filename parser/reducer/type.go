package reducer

import (
	"fmt"

	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser/lr"
)

func (reducer *Reducer) ToType(
	keyword *lr.TokenValue,
) (
	*ast.TypeKeyword,
	error,
) {
	kind := ast.UnresolvedType
	switch keyword.SymbolId {
	case lr.IntToken:
		kind = ast.IntType
	case lr.FloatToken:
		kind = ast.FloatType
	case lr.CharToken:
		kind = ast.CharType
	default:
		panic(fmt.Sprintf("unexpected type keyword: %s", keyword.SymbolId))
	}

	return &ast.TypeKeyword{
		StartEndPos: keyword.StartEndPos,
		Kind:        kind,
	}, nil
}
