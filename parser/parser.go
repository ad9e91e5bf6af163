package parser

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/minic/analyzer"
	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser/lexer"
	"github.com/pattyshack/minic/parser/lr"
	"github.com/pattyshack/minic/parser/reducer"
)

// Parses and analyzes a whole program in a single pass.  Semantic actions
// run against the given analysis as each production reduces.  The first
// lex, syntax, or semantic error aborts the run and is the only error
// emitted; the returned program is nil in that case.
func Parse(
	reader parseutil.BufferedByteLocationReader,
	analysis *analyzer.Analysis,
	emitter *parseutil.Emitter,
) *ast.Program {
	program, err := lr.Parse(
		lexer.NewLexer(reader),
		reducer.NewReducer(analysis))
	if err != nil {
		emitter.EmitErrors(err)
		return nil
	}

	return program
}

func ParseSource(
	fileName string,
	content []byte,
	analysis *analyzer.Analysis,
	emitter *parseutil.Emitter,
) *ast.Program {
	return Parse(
		parseutil.NewBufferedByteLocationReaderFromSlice(fileName, content),
		analysis,
		emitter)
}
