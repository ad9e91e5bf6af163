package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pattyshack/minic/analyzer"
	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/driver"
)

// Uninitialized symbols show "-" as their value.
func printSymbols(output io.Writer, symbols []*analyzer.Symbol) {
	for _, symbol := range symbols {
		value := "-"
		if symbol.IsInitialized() {
			value = symbol.Value.String()
		}

		fmt.Fprintf(
			output,
			"  line %d: %s %s = %s\n",
			symbol.Line,
			symbol.Type,
			symbol.Name,
			value)
	}
}

func main() {
	for _, fileName := range os.Args[1:] {
		fmt.Println("=====================")
		fmt.Println("File name:", fileName)
		fmt.Println("---------------------")
		result, err := driver.AnalyzeFile(fileName)
		if err != nil {
			fmt.Println("ReadFile error:", err)
			continue
		}

		if result.Program != nil {
			fmt.Println(ast.TreeString(result.Program, "  "))
		}

		fmt.Println("---------------------------")
		fmt.Println("Symbols:")
		printSymbols(os.Stdout, result.Analysis.Symbols())

		if len(result.CrossReferences) > 0 {
			fmt.Println("---------------------------")
			fmt.Println("Cross references:")
			for _, xref := range result.CrossReferences {
				fmt.Printf(
					"  %s: declared %d, written %v, read %v\n",
					xref.Name,
					xref.Declared,
					xref.Written,
					xref.Read)
			}
		}

		for _, notice := range result.Analysis.Notices() {
			fmt.Println("notice:", notice)
		}

		if len(result.Errors) > 0 {
			fmt.Println("---------------------------")
			fmt.Println("Found", len(result.Errors), "errors:")
			fmt.Println("---------------------------")
			for idx, err := range result.Errors {
				fmt.Printf("error %d: %s\n", idx, err)
			}
		}
	}
}
