package analyzer

import (
	"testing"

	"github.com/nalgeon/be"
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/minic/ast"
)

func pos(line int) parseutil.StartEndPos {
	return parseutil.StartEndPos{StartPos: parseutil.Location{Line: line}}
}

func refAt(name string, line int) *ast.Reference {
	return &ast.Reference{StartEndPos: pos(line), Name: name}
}

func TestCollectCrossReferences(t *testing.T) {
	a := refAt("a", 2)
	b := refAt("b", 3)
	program := &ast.Program{
		Body: &ast.Block{
			Statements: []ast.Statement{
				&ast.Declaration{
					StartEndPos: pos(2),
					Kind:        ast.ListDeclaration,
					Type:        &ast.TypeKeyword{StartEndPos: pos(2), Kind: ast.IntType},
					Names:       []*ast.Reference{a, refAt("c", 2)},
				},
				&ast.Declaration{
					StartEndPos: pos(3),
					Kind:        ast.InitializedDeclaration,
					Type:        &ast.TypeKeyword{StartEndPos: pos(3), Kind: ast.IntType},
					Names:       []*ast.Reference{b},
					Initializer: &ast.Literal{StartEndPos: pos(3), Value: ast.IntScalar(1)},
				},
				&ast.Assignment{
					StartEndPos: pos(4),
					Target:      refAt("a", 4),
					Source:      refAt("b", 4),
				},
				&ast.Return{
					StartEndPos: pos(5),
					Source:      refAt("a", 5),
				},
			},
		},
	}

	xrefs := CollectCrossReferences(program)
	be.Equal(t, len(xrefs), 3)

	be.Equal(t, xrefs[0].Name, "a")
	be.Equal(t, xrefs[0].Declared, 2)
	be.Equal(t, xrefs[0].Written, []int{4})
	be.Equal(t, xrefs[0].Read, []int{5})

	be.Equal(t, xrefs[1].Name, "c")
	be.Equal(t, len(xrefs[1].Written), 0)
	be.Equal(t, len(xrefs[1].Read), 0)

	be.Equal(t, xrefs[2].Name, "b")
	be.Equal(t, xrefs[2].Declared, 3)
	be.Equal(t, xrefs[2].Written, []int{3})
	be.Equal(t, xrefs[2].Read, []int{4})
}
