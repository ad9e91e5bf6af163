package analyzer

import (
	"github.com/pattyshack/minic/ast"
)

// Scoping is flat: every symbol lives in the global context.  The field is
// kept on each record as an explicit scope identifier.
const GlobalContext = 0

type Symbol struct {
	Name string

	Value ast.Scalar     // nil until initialized
	Type  ast.ScalarType // UnresolvedType only while PendingTyping

	Context int

	// Set for comma-list members whose shared type is announced after the
	// list.
	PendingTyping bool

	Line int // declaration line
}

func (symbol *Symbol) IsInitialized() bool {
	return symbol.Value != nil
}

// Identifier to declaration record mapping.  Entries are never removed and
// a name is declared at most once per analysis run.
type SymbolTable struct {
	context int

	symbols map[string]*Symbol
	ordered []*Symbol // in declaration order
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		context: GlobalContext,
		symbols: map[string]*Symbol{},
	}
}

func (table *SymbolTable) insert(
	name string,
	symbolType ast.ScalarType,
	pending bool,
	line int,
) (
	*Symbol,
	error,
) {
	_, ok := table.symbols[name]
	if ok {
		return nil, newSemanticError(Redeclared, name, line, "")
	}

	symbol := &Symbol{
		Name:          name,
		Type:          symbolType,
		Context:       table.context,
		PendingTyping: pending,
		Line:          line,
	}
	table.symbols[name] = symbol
	table.ordered = append(table.ordered, symbol)
	return symbol, nil
}

func (table *SymbolTable) Declare(
	name string,
	symbolType ast.ScalarType,
	line int,
) (
	*Symbol,
	error,
) {
	return table.insert(name, symbolType, false, line)
}

func (table *SymbolTable) DeclareUntyped(name string, line int) (*Symbol, error) {
	return table.insert(name, ast.UnresolvedType, true, line)
}

// Types every pending comma-list symbol.  Returns the resolved symbols.
func (table *SymbolTable) ResolvePendingType(symbolType ast.ScalarType) []*Symbol {
	resolved := []*Symbol{}
	for _, symbol := range table.ordered {
		if !symbol.PendingTyping {
			continue
		}
		symbol.Type = symbolType
		symbol.PendingTyping = false
		resolved = append(resolved, symbol)
	}
	return resolved
}

func (table *SymbolTable) Assign(name string, value ast.Scalar, line int) error {
	symbol, err := table.Lookup(name, line)
	if err != nil {
		return err
	}

	symbol.Value = value
	return nil
}

func (table *SymbolTable) Lookup(name string, line int) (*Symbol, error) {
	symbol, ok := table.symbols[name]
	if !ok {
		return nil, newSemanticError(Undeclared, name, line, "")
	}
	return symbol, nil
}

// Like Lookup, but also fails if the symbol holds no value.
func (table *SymbolTable) RequireInitialized(
	name string,
	line int,
) (
	*Symbol,
	error,
) {
	symbol, err := table.Lookup(name, line)
	if err != nil {
		return nil, err
	}

	if !symbol.IsInitialized() {
		return nil, newSemanticError(Uninitialized, name, line, "")
	}
	return symbol, nil
}

func (table *SymbolTable) Symbols() []*Symbol {
	result := make([]*Symbol, len(table.ordered))
	copy(result, table.ordered)
	return result
}

func (table *SymbolTable) Len() int {
	return len(table.ordered)
}
