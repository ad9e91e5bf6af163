package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const (
	indent = "  "
)

func TreeString(node Node, indent string) string {
	buffer := &bytes.Buffer{}
	_ = PrintTree(buffer, node, indent)
	return buffer.String()
}

func PrintTree(output io.Writer, node Node, indent string) error {
	printer := &treePrinter{
		indent:     indent,
		labelStack: []string{},
		writer:     output,
	}
	node.Walk(printer)
	return printer.err
}

type treePrinter struct {
	indent     string
	labelStack []string
	writer     io.Writer
	err        error
}

func (printer *treePrinter) write(format string, args ...interface{}) {
	if printer.err != nil {
		return
	}

	if len(args) == 0 {
		_, printer.err = printer.writer.Write([]byte(format))
	} else {
		_, printer.err = fmt.Fprintf(printer.writer, format, args...)
	}
}

func (printer *treePrinter) writeLabel() {
	label := ""
	if len(printer.labelStack) > 0 {
		label = printer.labelStack[len(printer.labelStack)-1]
		printer.labelStack = printer.labelStack[:len(printer.labelStack)-1]
	}

	if len(label) > 0 {
		printer.write("\n")
		printer.write(printer.indent)
		printer.write(label)
	} else {
		printer.write(printer.indent)
	}
}

func (printer *treePrinter) endNode() {
	printer.indent = printer.indent[:len(printer.indent)-len(indent)]
	printer.write("\n")
	printer.write(printer.indent)
	printer.write("]")
}

func (printer *treePrinter) push(labels ...string) {
	printer.indent += indent

	for len(labels) > 0 {
		last := labels[len(labels)-1]
		labels = labels[:len(labels)-1]

		printer.labelStack = append(printer.labelStack, last)
	}
}

func (printer *treePrinter) list(
	header string,
	elementType string,
	size int,
	argLabels ...string,
) {
	printer.write(header)
	if size == 0 && len(argLabels) == 0 {
		printer.write("]")
	} else {
		for i := size - 1; i >= 0; i-- {
			printer.labelStack = append(
				printer.labelStack,
				fmt.Sprintf("%s%d=", elementType, i))
		}

		// push in reverse order
		printer.push(argLabels...)
	}
}

func (printer *treePrinter) endList(size int) {
	if size > 0 {
		printer.endNode()
	}
}

func (printer *treePrinter) Enter(n Node) {
	printer.writeLabel()

	switch node := n.(type) {
	case *Program:
		printer.write("[Program: Loc=%s", node.Loc())
		printer.push("Body=")
	case *Block:
		printer.list(
			fmt.Sprintf("[Block: Loc=%s", node.Loc()),
			"Statement",
			len(node.Statements))

	case *Declaration:
		printer.write("[Declaration: Kind=%s", node.Kind)
		if node.Value != nil {
			printer.write(" Value=%s", scalarString(node.Value))
		}
		labels := []string{"Type="}
		for idx := range node.Names {
			labels = append(labels, fmt.Sprintf("Name%d=", idx))
		}
		if node.Initializer != nil {
			labels = append(labels, "Initializer=")
		}
		printer.push(labels...)
	case *Assignment:
		printer.write("[Assignment: Value=%s", scalarString(node.Value))
		printer.push("Target=", "Source=")
	case *Return:
		printer.write("[Return: Value=%s", scalarString(node.Value))
		printer.push("Source=")

	case *If:
		printer.write("[If: Loc=%s", node.Loc())
		labels := []string{"Condition=", "Then="}
		if node.Else != nil {
			labels = append(labels, "Else=")
		}
		if node.ElseIf != nil {
			labels = append(labels, "ElseIf=")
		}
		printer.push(labels...)
	case *While:
		printer.write("[While: Loc=%s", node.Loc())
		printer.push("Condition=", "Body=")
	case *For:
		printer.write("[For: Loc=%s", node.Loc())
		printer.push("Header=", "Body=")
	case *ForHeader:
		printer.write("[ForHeader: Counter=%s Step=%s", node.Counter, node.Step)
		printer.push("Init=", "Test=")
	case *Condition:
		printer.write("[Condition: Operator=%s", node.Operator)
		printer.push("Left=", "Right=")

	case *TypeKeyword:
		printer.write("[TypeKeyword: Kind=%s]", node.Kind)
	case *Reference:
		printer.write("[Reference: Name=%s Loc=%s]", node.Name, node.Loc())
	case *Literal:
		printer.write(
			"[Literal: Type=%s Value=%s]",
			node.Value.Type(),
			scalarString(node.Value))
	case *Arithmetic:
		printer.write(
			"[Arithmetic: Operator=%s Result=%s",
			node.Operator,
			scalarString(node.Result))
		printer.push("Left=", "Right=")
	case *Parenthesized:
		printer.write("[Parenthesized:")
		printer.push("Expression=")

	default:
		printer.write("unhandled node: %v", n)
	}
}

func (printer *treePrinter) Exit(n Node) {
	switch node := n.(type) {
	case *Program:
		printer.endNode()
	case *Block:
		printer.endList(len(node.Statements))

	case *Declaration:
		printer.endNode()
	case *Assignment:
		printer.endNode()
	case *Return:
		printer.endNode()

	case *If:
		printer.endNode()
	case *While:
		printer.endNode()
	case *For:
		printer.endNode()
	case *ForHeader:
		printer.endNode()
	case *Condition:
		printer.endNode()

	case *Arithmetic:
		printer.endNode()
	case *Parenthesized:
		printer.endNode()
	}
}

func scalarString(value Scalar) string {
	if value == nil {
		return "(nil)"
	}
	if value.Type() == CharType {
		return strconv.Quote(value.String())
	}
	return value.String()
}
