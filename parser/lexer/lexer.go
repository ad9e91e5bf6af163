package lexer

import (
	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/minic/parser/lr"
)

// Newlines carry no meaning in the language; statement boundaries are
// explicit semicolons.
func NewLexer(
	reader parseutil.BufferedByteLocationReader,
) lr.Lexer {
	return parseutil.NewTrimTokenLexer(
		NewRawLexer(reader),
		lr.SpacesToken,
		lr.NewlinesToken,
		lr.LineCommentToken,
		lr.BlockCommentToken)
}
