package lr

import (
	"errors"
	"fmt"

	"github.com/pattyshack/gt/parseutil"
)

type Token = parseutil.Token[SymbolId]
type TokenValue = parseutil.TokenValue[SymbolId]

type Lexer = parseutil.Lexer[Token]

type SymbolId int

const (
	_EndMarker = SymbolId(0)

	SpacesToken       = SymbolId(' ')
	NewlinesToken     = SymbolId('\n')
	LineCommentToken  = SymbolId(-2)
	BlockCommentToken = SymbolId(-3)

	IntegerLiteralToken = SymbolId(256)
	FloatLiteralToken   = SymbolId(257)
	StringLiteralToken  = SymbolId(258)
	IdentifierToken     = SymbolId(259)
	LparenToken         = SymbolId(260)
	RparenToken         = SymbolId(261)
	LbraceToken         = SymbolId(262)
	RbraceToken         = SymbolId(263)
	SemicolonToken      = SymbolId(264)
	CommaToken          = SymbolId(265)
	EqualToken          = SymbolId(266)
	LessToken           = SymbolId(267)
	LessOrEqualToken    = SymbolId(268)
	GreaterToken        = SymbolId(269)
	GreaterOrEqualToken = SymbolId(270)
	NotEqualToken       = SymbolId(271)
	PlusToken           = SymbolId(272)
	MinusToken          = SymbolId(273)
	StarToken           = SymbolId(274)
	SlashToken          = SymbolId(275)
	CaretToken          = SymbolId(276)
	IntToken            = SymbolId(277)
	FloatToken          = SymbolId(278)
	CharToken           = SymbolId(279)
	IfToken             = SymbolId(280)
	ElseToken           = SymbolId(281)
	WhileToken          = SymbolId(282)
	ForToken            = SymbolId(283)
	MainToken           = SymbolId(284)
	ReturnToken         = SymbolId(285)
)

func (i SymbolId) String() string {
	switch i {
	case _EndMarker:
		return "$"
	case SpacesToken:
		return "SPACES"
	case NewlinesToken:
		return "NEWLINES"
	case LineCommentToken:
		return "LINE_COMMENT"
	case BlockCommentToken:
		return "BLOCK_COMMENT"
	case IntegerLiteralToken:
		return "INTEGER_LITERAL"
	case FloatLiteralToken:
		return "FLOAT_LITERAL"
	case StringLiteralToken:
		return "STRING_LITERAL"
	case IdentifierToken:
		return "IDENTIFIER"
	case LparenToken:
		return "LPAREN"
	case RparenToken:
		return "RPAREN"
	case LbraceToken:
		return "LBRACE"
	case RbraceToken:
		return "RBRACE"
	case SemicolonToken:
		return "SEMICOLON"
	case CommaToken:
		return "COMMA"
	case EqualToken:
		return "EQUAL"
	case LessToken:
		return "LT"
	case LessOrEqualToken:
		return "LE"
	case GreaterToken:
		return "GT"
	case GreaterOrEqualToken:
		return "GE"
	case NotEqualToken:
		return "NE"
	case PlusToken:
		return "PLUS"
	case MinusToken:
		return "MINUS"
	case StarToken:
		return "TIMES"
	case SlashToken:
		return "DIVIDE"
	case CaretToken:
		return "POWER"
	case IntToken:
		return "INT"
	case FloatToken:
		return "FLOAT"
	case CharToken:
		return "CHAR"
	case IfToken:
		return "IF"
	case ElseToken:
		return "ELSE"
	case WhileToken:
		return "WHILE"
	case ForToken:
		return "FOR"
	case MainToken:
		return "MAIN"
	case ReturnToken:
		return "RETURN"
	default:
		return fmt.Sprintf("?unknown symbol %d?", int(i))
	}
}

var ErrSyntax = errors.New("syntax error")

// Structural failure raised by the parser.  A nil Token means the input
// ended before the program was recognized.
type SyntaxError struct {
	Token *TokenValue
}

func NewSyntaxError(token *TokenValue) *SyntaxError {
	return &SyntaxError{Token: token}
}

func (err *SyntaxError) Error() string {
	if err.Token == nil {
		return "syntax error at end of input"
	}
	return fmt.Sprintf("syntax error at token '%s'", err.Token.Value)
}

func (err *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// Returns the source line of the offending token, or 0 at end of input.
func (err *SyntaxError) Line() int {
	if err.Token == nil {
		return 0
	}
	return err.Token.Loc().Line
}
