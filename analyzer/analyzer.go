package analyzer

import (
	"github.com/pattyshack/minic/ast"
)

// A single analysis run.  The run owns its symbol table; tables are never
// shared between runs, and a run must not be driven from more than one
// goroutine.
type Analysis struct {
	*SymbolTable

	notices []Notice

	completed bool
}

func NewAnalysis() *Analysis {
	return &Analysis{
		SymbolTable: NewSymbolTable(),
	}
}

func (analysis *Analysis) Notices() []Notice {
	return analysis.notices
}

// Marks the start production as successfully reduced.
func (analysis *Analysis) Complete() {
	analysis.completed = true
}

func (analysis *Analysis) Completed() bool {
	return analysis.completed
}

// type ID ;
func (analysis *Analysis) DeclareVariable(
	name string,
	symbolType ast.ScalarType,
	line int,
) error {
	_, err := analysis.Declare(name, symbolType, line)
	return err
}

// Declares one member of type ID, ID, ... ;  The member stays untyped until
// ResolveListType is called.
func (analysis *Analysis) DeclareListMember(name string, line int) error {
	_, err := analysis.DeclareUntyped(name, line)
	return err
}

func (analysis *Analysis) ResolveListType(
	symbolType ast.ScalarType,
) []*Symbol {
	return analysis.ResolvePendingType(symbolType)
}

// type ID = expr ;  The target is declared before the initializer is
// checked, so the initializer may not read the target.
func (analysis *Analysis) DeclareInitialized(
	name string,
	symbolType ast.ScalarType,
	initializer ast.Expression,
	line int,
) (
	ast.Scalar,
	error,
) {
	_, err := analysis.Declare(name, symbolType, line)
	if err != nil {
		return nil, err
	}

	value, err := analysis.Coerce(symbolType, initializer, line)
	if err != nil {
		return nil, err
	}

	return value, analysis.Assign(name, value, line)
}

// ID = expr ;
func (analysis *Analysis) AssignVariable(
	name string,
	source ast.Expression,
	line int,
) (
	ast.Scalar,
	error,
) {
	symbol, err := analysis.Lookup(name, line)
	if err != nil {
		return nil, err
	}

	value, err := analysis.Coerce(symbol.Type, source, line)
	if err != nil {
		return nil, err
	}

	symbol.Value = value
	return value, nil
}

// return expr ;  main returns int.
func (analysis *Analysis) ReturnValue(
	source ast.Expression,
	line int,
) (
	ast.Scalar,
	error,
) {
	return analysis.Coerce(ast.IntType, source, line)
}

// Conditions are never evaluated.  Referenced identifiers must be declared,
// but need not be initialized.
func (analysis *Analysis) CheckConditionOperand(
	operand ast.Expression,
	line int,
) error {
	ref, ok := ast.ReferencedName(operand)
	if !ok {
		return nil
	}

	_, err := analysis.Lookup(ref.Name, line)
	return err
}
