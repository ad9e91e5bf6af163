package ast

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestScalarString(t *testing.T) {
	be.Equal(t, IntScalar(-12).String(), "-12")
	be.Equal(t, FloatScalar(3).String(), "3.0")
	be.Equal(t, FloatScalar(2.5).String(), "2.5")
	be.Equal(t, FloatScalar(1e21).String(), "1e+21")
	be.Equal(t, CharScalar("hi").String(), "hi")

	be.Equal(t, scalarString(nil), "(nil)")
	be.Equal(t, scalarString(CharScalar("hi")), `"hi"`)
	be.Equal(t, scalarString(IntScalar(4)), "4")
}

func TestTreeString(t *testing.T) {
	program := &Program{
		Body: &Block{
			Statements: []Statement{
				&Declaration{
					Kind: InitializedDeclaration,
					Type: &TypeKeyword{Kind: IntType},
					Names: []*Reference{
						{Name: "a"},
					},
					Initializer: &Arithmetic{
						Operator: Add,
						Left:     &Literal{Value: IntScalar(1)},
						Right:    &Literal{Value: IntScalar(2)},
						Result:   IntScalar(3),
					},
					Value: IntScalar(3),
				},
				&Return{
					Source: &Reference{Name: "a"},
					Value:  IntScalar(3),
				},
			},
		},
	}

	tree := TreeString(program, "")
	for _, fragment := range []string{
		"[Program:",
		"Statement0=[Declaration: Kind=initialized Value=3",
		"Type=[TypeKeyword: Kind=int]",
		"Name0=[Reference: Name=a",
		"Initializer=[Arithmetic: Operator=+ Result=3",
		"Left=[Literal: Type=int Value=1]",
		"Statement1=[Return: Value=3",
	} {
		be.True(t, strings.Contains(tree, fragment))
	}
}

func TestConstantValue(t *testing.T) {
	be.Equal[Scalar](t, ConstantValue(&Literal{Value: IntScalar(1)}), IntScalar(1))
	be.Equal[Scalar](
		t,
		ConstantValue(&Parenthesized{
			Expression: &Arithmetic{Result: FloatScalar(2)},
		}),
		FloatScalar(2))
	be.True(t, ConstantValue(&Reference{Name: "x"}) == nil)

	ref, ok := ReferencedName(&Parenthesized{Expression: &Reference{Name: "x"}})
	be.True(t, ok)
	be.Equal(t, ref.Name, "x")

	_, ok = ReferencedName(&Literal{Value: IntScalar(1)})
	be.True(t, !ok)
}
