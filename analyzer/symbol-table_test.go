package analyzer

import (
	"errors"
	"testing"

	"github.com/nalgeon/be"

	"github.com/pattyshack/minic/ast"
)

func TestDeclare(t *testing.T) {
	table := NewSymbolTable()

	symbol, err := table.Declare("a", ast.IntType, 3)
	be.Err(t, err, nil)
	be.Equal(t, symbol.Name, "a")
	be.Equal(t, symbol.Type, ast.IntType)
	be.Equal(t, symbol.Context, GlobalContext)
	be.Equal(t, symbol.Line, 3)
	be.True(t, !symbol.PendingTyping)
	be.True(t, !symbol.IsInitialized())
	be.Equal(t, table.Len(), 1)
}

func TestRedeclare(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Declare("a", ast.IntType, 1)
	be.Err(t, err, nil)

	_, err = table.Declare("a", ast.FloatType, 2)
	be.Err(t, err, ErrRedeclared)

	semanticErr := &SemanticError{}
	be.True(t, errors.As(err, &semanticErr))
	be.Equal(t, semanticErr.Subject, "a")
	be.Equal(t, semanticErr.Line, 2)
	be.Equal(
		t,
		err.Error(),
		"semantic error at line 2: variable 'a' already declared")

	// The first declaration is untouched.
	symbol, err := table.Lookup("a", 3)
	be.Err(t, err, nil)
	be.Equal(t, symbol.Type, ast.IntType)

	_, err = table.DeclareUntyped("a", 4)
	be.Err(t, err, ErrRedeclared)
}

func TestLookupUndeclared(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Lookup("x", 7)
	be.Err(t, err, ErrUndeclared)
	be.Equal(
		t,
		err.Error(),
		"semantic error at line 7: variable 'x' used but not declared")

	err = table.Assign("x", ast.IntScalar(1), 8)
	be.Err(t, err, ErrUndeclared)

	_, err = table.RequireInitialized("x", 9)
	be.Err(t, err, ErrUndeclared)
}

func TestRequireInitialized(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Declare("a", ast.IntType, 1)
	be.Err(t, err, nil)

	_, err = table.RequireInitialized("a", 2)
	be.Err(t, err, ErrUninitialized)
	be.Err(t, err, "variable 'a' used before initialization")

	err = table.Assign("a", ast.IntScalar(5), 3)
	be.Err(t, err, nil)

	symbol, err := table.RequireInitialized("a", 4)
	be.Err(t, err, nil)
	be.Equal[ast.Scalar](t, symbol.Value, ast.IntScalar(5))

	err = table.Assign("a", ast.IntScalar(6), 5)
	be.Err(t, err, nil)
	be.Equal[ast.Scalar](t, symbol.Value, ast.IntScalar(6))
}

func TestResolvePendingType(t *testing.T) {
	table := NewSymbolTable()

	_, err := table.Declare("x", ast.FloatType, 1)
	be.Err(t, err, nil)

	for _, name := range []string{"a", "b", "c"} {
		symbol, err := table.DeclareUntyped(name, 2)
		be.Err(t, err, nil)
		be.True(t, symbol.PendingTyping)
		be.Equal(t, symbol.Type, ast.UnresolvedType)
	}

	resolved := table.ResolvePendingType(ast.IntType)
	be.Equal(t, len(resolved), 3)

	for _, symbol := range table.Symbols() {
		be.True(t, !symbol.PendingTyping)
		be.True(t, !symbol.IsInitialized())
		if symbol.Name == "x" {
			be.Equal(t, symbol.Type, ast.FloatType)
		} else {
			be.Equal(t, symbol.Type, ast.IntType)
		}
	}

	// Nothing left to resolve.
	resolved = table.ResolvePendingType(ast.CharType)
	be.Equal(t, len(resolved), 0)
}

func TestSymbolsDeclarationOrder(t *testing.T) {
	table := NewSymbolTable()

	names := []string{"z", "a", "m"}
	for idx, name := range names {
		_, err := table.Declare(name, ast.CharType, idx+1)
		be.Err(t, err, nil)
	}

	symbols := table.Symbols()
	be.Equal(t, len(symbols), len(names))
	for idx, symbol := range symbols {
		be.Equal(t, symbol.Name, names[idx])
	}
}
