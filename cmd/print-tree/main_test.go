package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/pattyshack/minic/driver"
)

func TestPrintSymbols(t *testing.T) {
	result := driver.AnalyzeSource(
		"test.mc",
		[]byte("int main() {\nint a;\nfloat b = 2;\n};"))
	be.True(t, !result.Failed())

	output := &bytes.Buffer{}
	printSymbols(output, result.Analysis.Symbols())

	text := output.String()
	be.True(t, strings.Contains(text, "int a = -\n"))
	be.True(t, strings.Contains(text, "float b = 2.0\n"))
	be.True(t, !strings.Contains(text, "<nil>"))
}
