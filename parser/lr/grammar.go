package lr

import (
	"io"

	"github.com/pattyshack/gt/parseutil"

	"github.com/pattyshack/minic/ast"
)

type ProgramReducer interface {
	// program -> ...
	ToProgram(Int_ *TokenValue, Main_ *TokenValue, Lparen_ *TokenValue, Rparen_ *TokenValue, Block_ *ast.Block, Semicolon_ *TokenValue) (*ast.Program, error)
}

type BlockReducer interface {
	// block -> ...
	ToBlock(Lbrace_ *TokenValue, Statements_ []ast.Statement, Rbrace_ *TokenValue) (*ast.Block, error)
}

type StatementsReducer interface {
	// statements -> add: ...
	AddToStatements(Statements_ []ast.Statement, Statement_ ast.Statement) ([]ast.Statement, error)

	// statements -> new: ...
	NewToStatements(Statement_ ast.Statement) ([]ast.Statement, error)
}

type TypeReducer interface {
	// type -> ...
	ToType(Keyword_ *TokenValue) (*ast.TypeKeyword, error)
}

type DeclarationReducer interface {
	// declaration -> simple: ...
	SimpleToDeclaration(Type_ *ast.TypeKeyword, Identifier_ *TokenValue, Semicolon_ *TokenValue) (ast.Statement, error)

	// declaration -> list: ...
	ListToDeclaration(Type_ *ast.TypeKeyword, Identifiers_ []*ast.Reference, Semicolon_ *TokenValue) (ast.Statement, error)

	// declaration -> initialized: ...
	InitializedToDeclaration(Type_ *ast.TypeKeyword, Identifier_ *TokenValue, Equal_ *TokenValue, Expression_ ast.Expression, Semicolon_ *TokenValue) (ast.Statement, error)
}

type IdentifiersReducer interface {
	// identifiers -> add: ...
	AddToIdentifiers(Identifiers_ []*ast.Reference, Comma_ *TokenValue, Identifier_ *TokenValue) ([]*ast.Reference, error)

	// identifiers -> new: ...
	NewToIdentifiers(Identifier_ *TokenValue, Comma_ *TokenValue, Identifier_2 *TokenValue) ([]*ast.Reference, error)
}

type AssignmentReducer interface {
	// assignment -> ...
	ToAssignment(Identifier_ *TokenValue, Equal_ *TokenValue, Expression_ ast.Expression, Semicolon_ *TokenValue) (ast.Statement, error)
}

type ReturnReducer interface {
	// return -> ...
	ToReturn(Return_ *TokenValue, Expression_ ast.Expression, Semicolon_ *TokenValue) (ast.Statement, error)
}

type ExpressionReducer interface {
	// expression -> binary: ...
	BinaryToExpression(Expression_ ast.Expression, Operator_ *TokenValue, Expression_2 ast.Expression) (ast.Expression, error)

	// expression -> paren: ...
	ParenToExpression(Lparen_ *TokenValue, Expression_ ast.Expression, Rparen_ *TokenValue) (ast.Expression, error)
}

type OperandReducer interface {
	// operand -> integer: ...
	IntegerToOperand(IntegerLiteral_ *TokenValue) (ast.Expression, error)

	// operand -> float: ...
	FloatToOperand(FloatLiteral_ *TokenValue) (ast.Expression, error)

	// operand -> string: ...
	StringToOperand(StringLiteral_ *TokenValue) (ast.Expression, error)

	// operand -> identifier: ...
	IdentifierToOperand(Identifier_ *TokenValue) (ast.Expression, error)
}

type ConditionReducer interface {
	// condition -> ...
	ToCondition(Operand_ ast.Expression, Operator_ *TokenValue, Operand_2 ast.Expression) (*ast.Condition, error)
}

type IfReducer interface {
	// if -> then: ...
	ThenToIf(If_ *TokenValue, Lparen_ *TokenValue, Condition_ *ast.Condition, Rparen_ *TokenValue, Block_ *ast.Block) (*ast.If, error)

	// if -> else: ...
	ElseToIf(If_ *TokenValue, Lparen_ *TokenValue, Condition_ *ast.Condition, Rparen_ *TokenValue, Block_ *ast.Block, Else_ *TokenValue, Block_2 *ast.Block) (*ast.If, error)

	// if -> else_if: ...
	ElseIfToIf(If_ *TokenValue, Lparen_ *TokenValue, Condition_ *ast.Condition, Rparen_ *TokenValue, Block_ *ast.Block, Else_ *TokenValue, If_2 *ast.If) (*ast.If, error)
}

type WhileReducer interface {
	// while -> ...
	ToWhile(While_ *TokenValue, Lparen_ *TokenValue, Condition_ *ast.Condition, Rparen_ *TokenValue, Block_ *ast.Block) (ast.Statement, error)
}

type ForReducer interface {
	// for -> ...
	ToFor(For_ *TokenValue, Lparen_ *TokenValue, ForHeader_ *ast.ForHeader, Rparen_ *TokenValue, Block_ *ast.Block) (ast.Statement, error)
}

type ForHeaderReducer interface {
	// for_header -> declared: ...
	DeclaredToForHeader(Declaration_ ast.Statement, Condition_ *ast.Condition, Semicolon_ *TokenValue, Identifier_ *TokenValue, Step_ *TokenValue, Step_2 *TokenValue) (*ast.ForHeader, error)

	// for_header -> assigned: ...
	AssignedToForHeader(Assignment_ ast.Statement, Condition_ *ast.Condition, Semicolon_ *TokenValue, Identifier_ *TokenValue, Step_ *TokenValue, Step_2 *TokenValue) (*ast.ForHeader, error)
}

type Reducer interface {
	ProgramReducer
	BlockReducer
	StatementsReducer
	TypeReducer
	DeclarationReducer
	IdentifiersReducer
	AssignmentReducer
	ReturnReducer
	ExpressionReducer
	OperandReducer
	ConditionReducer
	IfReducer
	WhileReducer
	ForReducer
	ForHeaderReducer
}

type ParseErrorHandler interface {
	// nextToken is nil when the input ended unexpectedly.
	Error(nextToken *TokenValue) error
}

type DefaultParseErrorHandler struct{}

func (DefaultParseErrorHandler) Error(nextToken *TokenValue) error {
	return NewSyntaxError(nextToken)
}

func Parse(lexer Lexer, reducer Reducer) (*ast.Program, error) {
	return ParseWithCustomErrorHandler(
		lexer,
		reducer,
		DefaultParseErrorHandler{})
}

// Recognizes a whole program.  Reductions are invoked bottom-up, left to
// right, in the order an LR(1) parser would invoke them; the first error
// returned by the lexer, the error handler, or a reducer halts the parse.
func ParseWithCustomErrorHandler(
	lexer Lexer,
	reducer Reducer,
	errHandler ParseErrorHandler,
) (
	*ast.Program,
	error,
) {
	parser := &parser{
		lexer:      lexer,
		reducer:    reducer,
		errHandler: errHandler,
	}
	return parser.parseProgram()
}

type parser struct {
	lexer      Lexer
	reducer    Reducer
	errHandler ParseErrorHandler

	lookahead *TokenValue // nil at end of input
	peeked    bool
}

func (parser *parser) peek() (*TokenValue, error) {
	if parser.peeked {
		return parser.lookahead, nil
	}

	token, err := parser.lexer.Next()
	if err != nil {
		if err != io.EOF {
			return nil, err
		}
		parser.lookahead = nil
		parser.peeked = true
		return nil, nil
	}

	value, ok := token.(*TokenValue)
	if !ok {
		return nil, parseutil.NewLocationError(
			token.Loc(),
			"unexpected token type: %s",
			token.Id())
	}

	parser.lookahead = value
	parser.peeked = true
	return value, nil
}

func (parser *parser) peekIs(ids ...SymbolId) (bool, error) {
	token, err := parser.peek()
	if err != nil || token == nil {
		return false, err
	}

	for _, id := range ids {
		if token.SymbolId == id {
			return true, nil
		}
	}
	return false, nil
}

func (parser *parser) shift() *TokenValue {
	if !parser.peeked {
		panic("should never happen")
	}
	parser.peeked = false
	return parser.lookahead
}

func (parser *parser) expect(ids ...SymbolId) (*TokenValue, error) {
	ok, err := parser.peekIs(ids...)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, parser.errHandler.Error(parser.lookahead)
	}

	return parser.shift(), nil
}

func (parser *parser) unexpected() error {
	_, err := parser.peek()
	if err != nil {
		return err
	}
	return parser.errHandler.Error(parser.lookahead)
}

func (parser *parser) parseProgram() (*ast.Program, error) {
	intKW, err := parser.expect(IntToken)
	if err != nil {
		return nil, err
	}

	mainKW, err := parser.expect(MainToken)
	if err != nil {
		return nil, err
	}

	lparen, err := parser.expect(LparenToken)
	if err != nil {
		return nil, err
	}

	rparen, err := parser.expect(RparenToken)
	if err != nil {
		return nil, err
	}

	block, err := parser.parseBlock()
	if err != nil {
		return nil, err
	}

	semicolon, err := parser.expect(SemicolonToken)
	if err != nil {
		return nil, err
	}

	// The start production is reduced only on the end marker.
	next, err := parser.peek()
	if err != nil {
		return nil, err
	}
	if next != nil {
		return nil, parser.errHandler.Error(next)
	}

	return parser.reducer.ToProgram(intKW, mainKW, lparen, rparen, block, semicolon)
}

func (parser *parser) parseBlock() (*ast.Block, error) {
	lbrace, err := parser.expect(LbraceToken)
	if err != nil {
		return nil, err
	}

	stmt, err := parser.parseStatement()
	if err != nil {
		return nil, err
	}

	stmts, err := parser.reducer.NewToStatements(stmt)
	if err != nil {
		return nil, err
	}

	for {
		done, err := parser.peekIs(RbraceToken)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		stmt, err := parser.parseStatement()
		if err != nil {
			return nil, err
		}

		stmts, err = parser.reducer.AddToStatements(stmts, stmt)
		if err != nil {
			return nil, err
		}
	}

	return parser.reducer.ToBlock(lbrace, stmts, parser.shift())
}

func (parser *parser) parseStatement() (ast.Statement, error) {
	token, err := parser.peek()
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, parser.errHandler.Error(nil)
	}

	switch token.SymbolId {
	case IntToken, FloatToken, CharToken:
		return parser.parseDeclaration(false)
	case IdentifierToken:
		return parser.parseAssignment()
	case ReturnToken:
		return parser.parseReturn()
	case IfToken:
		return parser.parseIf()
	case WhileToken:
		return parser.parseWhile()
	case ForToken:
		return parser.parseFor()
	}

	return nil, parser.errHandler.Error(token)
}

// When requireInitializer is set, only the initialized alternative is
// accepted (for loop headers).
func (parser *parser) parseDeclaration(
	requireInitializer bool,
) (
	ast.Statement,
	error,
) {
	keyword, err := parser.expect(IntToken, FloatToken, CharToken)
	if err != nil {
		return nil, err
	}

	typeKW, err := parser.reducer.ToType(keyword)
	if err != nil {
		return nil, err
	}

	id, err := parser.expect(IdentifierToken)
	if err != nil {
		return nil, err
	}

	if requireInitializer {
		ok, err := parser.peekIs(EqualToken)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, parser.unexpected()
		}
	}

	next, err := parser.expect(SemicolonToken, CommaToken, EqualToken)
	if err != nil {
		return nil, err
	}

	switch next.SymbolId {
	case SemicolonToken:
		return parser.reducer.SimpleToDeclaration(typeKW, id, next)
	case CommaToken:
		return parser.parseListDeclaration(typeKW, id, next)
	}

	expr, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}

	semicolon, err := parser.expect(SemicolonToken)
	if err != nil {
		return nil, err
	}

	return parser.reducer.InitializedToDeclaration(
		typeKW,
		id,
		next,
		expr,
		semicolon)
}

func (parser *parser) parseListDeclaration(
	typeKW *ast.TypeKeyword,
	first *TokenValue,
	comma *TokenValue,
) (
	ast.Statement,
	error,
) {
	second, err := parser.expect(IdentifierToken)
	if err != nil {
		return nil, err
	}

	ids, err := parser.reducer.NewToIdentifiers(first, comma, second)
	if err != nil {
		return nil, err
	}

	for {
		next, err := parser.expect(CommaToken, SemicolonToken)
		if err != nil {
			return nil, err
		}

		if next.SymbolId == SemicolonToken {
			return parser.reducer.ListToDeclaration(typeKW, ids, next)
		}

		id, err := parser.expect(IdentifierToken)
		if err != nil {
			return nil, err
		}

		ids, err = parser.reducer.AddToIdentifiers(ids, next, id)
		if err != nil {
			return nil, err
		}
	}
}

func (parser *parser) parseAssignment() (ast.Statement, error) {
	id, err := parser.expect(IdentifierToken)
	if err != nil {
		return nil, err
	}

	equal, err := parser.expect(EqualToken)
	if err != nil {
		return nil, err
	}

	expr, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}

	semicolon, err := parser.expect(SemicolonToken)
	if err != nil {
		return nil, err
	}

	return parser.reducer.ToAssignment(id, equal, expr, semicolon)
}

func (parser *parser) parseReturn() (ast.Statement, error) {
	ret, err := parser.expect(ReturnToken)
	if err != nil {
		return nil, err
	}

	expr, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}

	semicolon, err := parser.expect(SemicolonToken)
	if err != nil {
		return nil, err
	}

	return parser.reducer.ToReturn(ret, expr, semicolon)
}

func (parser *parser) parseIf() (*ast.If, error) {
	ifKW, err := parser.expect(IfToken)
	if err != nil {
		return nil, err
	}

	lparen, cond, rparen, err := parser.parseParenthesizedCondition()
	if err != nil {
		return nil, err
	}

	block, err := parser.parseBlock()
	if err != nil {
		return nil, err
	}

	hasElse, err := parser.peekIs(ElseToken)
	if err != nil {
		return nil, err
	}
	if !hasElse {
		return parser.reducer.ThenToIf(ifKW, lparen, cond, rparen, block)
	}

	elseKW := parser.shift()

	elseIf, err := parser.peekIs(IfToken)
	if err != nil {
		return nil, err
	}

	if elseIf {
		nested, err := parser.parseIf()
		if err != nil {
			return nil, err
		}

		return parser.reducer.ElseIfToIf(
			ifKW,
			lparen,
			cond,
			rparen,
			block,
			elseKW,
			nested)
	}

	elseBlock, err := parser.parseBlock()
	if err != nil {
		return nil, err
	}

	return parser.reducer.ElseToIf(
		ifKW,
		lparen,
		cond,
		rparen,
		block,
		elseKW,
		elseBlock)
}

func (parser *parser) parseWhile() (ast.Statement, error) {
	whileKW, err := parser.expect(WhileToken)
	if err != nil {
		return nil, err
	}

	lparen, cond, rparen, err := parser.parseParenthesizedCondition()
	if err != nil {
		return nil, err
	}

	block, err := parser.parseBlock()
	if err != nil {
		return nil, err
	}

	return parser.reducer.ToWhile(whileKW, lparen, cond, rparen, block)
}

func (parser *parser) parseFor() (ast.Statement, error) {
	forKW, err := parser.expect(ForToken)
	if err != nil {
		return nil, err
	}

	lparen, err := parser.expect(LparenToken)
	if err != nil {
		return nil, err
	}

	header, err := parser.parseForHeader()
	if err != nil {
		return nil, err
	}

	rparen, err := parser.expect(RparenToken)
	if err != nil {
		return nil, err
	}

	block, err := parser.parseBlock()
	if err != nil {
		return nil, err
	}

	return parser.reducer.ToFor(forKW, lparen, header, rparen, block)
}

func (parser *parser) parseForHeader() (*ast.ForHeader, error) {
	token, err := parser.peek()
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, parser.errHandler.Error(nil)
	}

	var init ast.Statement
	declared := false
	switch token.SymbolId {
	case IntToken, FloatToken, CharToken:
		declared = true
		init, err = parser.parseDeclaration(true)
	case IdentifierToken:
		init, err = parser.parseAssignment()
	default:
		return nil, parser.errHandler.Error(token)
	}
	if err != nil {
		return nil, err
	}

	// The test must start with the counter identifier.
	ok, err := parser.peekIs(IdentifierToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, parser.unexpected()
	}

	cond, err := parser.parseCondition()
	if err != nil {
		return nil, err
	}

	semicolon, err := parser.expect(SemicolonToken)
	if err != nil {
		return nil, err
	}

	counter, err := parser.expect(IdentifierToken)
	if err != nil {
		return nil, err
	}

	step, err := parser.expect(PlusToken, MinusToken)
	if err != nil {
		return nil, err
	}

	step2, err := parser.expect(step.SymbolId)
	if err != nil {
		return nil, err
	}

	if declared {
		return parser.reducer.DeclaredToForHeader(
			init,
			cond,
			semicolon,
			counter,
			step,
			step2)
	}

	return parser.reducer.AssignedToForHeader(
		init,
		cond,
		semicolon,
		counter,
		step,
		step2)
}

func (parser *parser) parseParenthesizedCondition() (
	*TokenValue,
	*ast.Condition,
	*TokenValue,
	error,
) {
	lparen, err := parser.expect(LparenToken)
	if err != nil {
		return nil, nil, nil, err
	}

	cond, err := parser.parseCondition()
	if err != nil {
		return nil, nil, nil, err
	}

	rparen, err := parser.expect(RparenToken)
	if err != nil {
		return nil, nil, nil, err
	}

	return lparen, cond, rparen, nil
}

func (parser *parser) parseCondition() (*ast.Condition, error) {
	left, err := parser.parseOperand()
	if err != nil {
		return nil, err
	}

	op, err := parser.expect(
		LessToken,
		LessOrEqualToken,
		GreaterToken,
		GreaterOrEqualToken,
		NotEqualToken)
	if err != nil {
		return nil, err
	}

	right, err := parser.parseOperand()
	if err != nil {
		return nil, err
	}

	return parser.reducer.ToCondition(left, op, right)
}

// expression -> additive
func (parser *parser) parseExpression() (ast.Expression, error) {
	return parser.parseBinary(
		parser.parseMultiplicative,
		PlusToken,
		MinusToken)
}

func (parser *parser) parseMultiplicative() (ast.Expression, error) {
	return parser.parseBinary(parser.parsePower, StarToken, SlashToken)
}

// Left associative binary expressions.
func (parser *parser) parseBinary(
	parseNext func() (ast.Expression, error),
	ops ...SymbolId,
) (
	ast.Expression,
	error,
) {
	left, err := parseNext()
	if err != nil {
		return nil, err
	}

	for {
		ok, err := parser.peekIs(ops...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return left, nil
		}

		op := parser.shift()

		right, err := parseNext()
		if err != nil {
			return nil, err
		}

		left, err = parser.reducer.BinaryToExpression(left, op, right)
		if err != nil {
			return nil, err
		}
	}
}

// ^ is right associative.
func (parser *parser) parsePower() (ast.Expression, error) {
	base, err := parser.parsePrimary()
	if err != nil {
		return nil, err
	}

	ok, err := parser.peekIs(CaretToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return base, nil
	}

	op := parser.shift()

	exponent, err := parser.parsePower()
	if err != nil {
		return nil, err
	}

	return parser.reducer.BinaryToExpression(base, op, exponent)
}

func (parser *parser) parsePrimary() (ast.Expression, error) {
	ok, err := parser.peekIs(LparenToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return parser.parseOperand()
	}

	lparen := parser.shift()

	expr, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}

	rparen, err := parser.expect(RparenToken)
	if err != nil {
		return nil, err
	}

	return parser.reducer.ParenToExpression(lparen, expr, rparen)
}

func (parser *parser) parseOperand() (ast.Expression, error) {
	token, err := parser.expect(
		IntegerLiteralToken,
		FloatLiteralToken,
		StringLiteralToken,
		IdentifierToken)
	if err != nil {
		return nil, err
	}

	switch token.SymbolId {
	case IntegerLiteralToken:
		return parser.reducer.IntegerToOperand(token)
	case FloatLiteralToken:
		return parser.reducer.FloatToOperand(token)
	case StringLiteralToken:
		return parser.reducer.StringToOperand(token)
	default:
		return parser.reducer.IdentifierToOperand(token)
	}
}
