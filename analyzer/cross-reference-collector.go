package analyzer

import (
	"github.com/pattyshack/minic/ast"
)

// Where a variable is declared, written and read within a program.
type CrossReference struct {
	Name     string
	Declared int
	Written  []int
	Read     []int
}

type crossReferenceCollector struct {
	order   []string
	entries map[string]*CrossReference

	// Declaration names and assignment targets are not reads.
	targets map[*ast.Reference]struct{}
}

// Collects cross references of every declared variable, in declaration
// order.  Only meaningful for programs that passed analysis.
func CollectCrossReferences(program *ast.Program) []CrossReference {
	collector := &crossReferenceCollector{
		entries: map[string]*CrossReference{},
		targets: map[*ast.Reference]struct{}{},
	}
	program.Walk(collector)

	result := make([]CrossReference, 0, len(collector.order))
	for _, name := range collector.order {
		result = append(result, *collector.entries[name])
	}
	return result
}

func (collector *crossReferenceCollector) get(name string) *CrossReference {
	entry, ok := collector.entries[name]
	if !ok {
		entry = &CrossReference{Name: name}
		collector.entries[name] = entry
		collector.order = append(collector.order, name)
	}
	return entry
}

func (collector *crossReferenceCollector) Enter(n ast.Node) {
	switch node := n.(type) {
	case *ast.Declaration:
		line := ast.Line(node)
		for _, name := range node.Names {
			collector.targets[name] = struct{}{}

			entry := collector.get(name.Name)
			entry.Declared = line
			if node.Initializer != nil {
				entry.Written = append(entry.Written, line)
			}
		}
	case *ast.Assignment:
		collector.targets[node.Target] = struct{}{}
		entry := collector.get(node.Target.Name)
		entry.Written = append(entry.Written, ast.Line(node))
	case *ast.Reference:
		if _, ok := collector.targets[node]; ok {
			return
		}
		entry := collector.get(node.Name)
		entry.Read = append(entry.Read, ast.Line(node))
	}
}

func (collector *crossReferenceCollector) Exit(n ast.Node) {
	header, ok := n.(*ast.ForHeader)
	if !ok || header.Counter == "" {
		return
	}

	// counter step
	line := ast.Line(header)
	entry := collector.get(header.Counter)
	entry.Read = append(entry.Read, line)
	entry.Written = append(entry.Written, line)
}
