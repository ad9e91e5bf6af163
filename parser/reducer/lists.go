package reducer

import (
	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser/lr"
)

func (reducer *Reducer) AddToStatements(
	list []ast.Statement,
	stmt ast.Statement,
) (
	[]ast.Statement,
	error,
) {
	return append(list, stmt), nil
}

func (reducer *Reducer) NewToStatements(
	stmt ast.Statement,
) (
	[]ast.Statement,
	error,
) {
	return []ast.Statement{stmt}, nil
}

func (reducer *Reducer) AddToIdentifiers(
	list []*ast.Reference,
	comma *lr.TokenValue,
	identifier *lr.TokenValue,
) (
	[]*ast.Reference,
	error,
) {
	err := reducer.DeclareListMember(identifier.Value, line(identifier))
	if err != nil {
		return nil, err
	}

	return append(list, newReference(identifier)), nil
}

func (reducer *Reducer) NewToIdentifiers(
	first *lr.TokenValue,
	comma *lr.TokenValue,
	second *lr.TokenValue,
) (
	[]*ast.Reference,
	error,
) {
	list := []*ast.Reference{}
	for _, identifier := range []*lr.TokenValue{first, second} {
		err := reducer.DeclareListMember(identifier.Value, line(identifier))
		if err != nil {
			return nil, err
		}

		list = append(list, newReference(identifier))
	}

	return list, nil
}
