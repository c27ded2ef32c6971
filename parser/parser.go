// Package parser implements the QuestLang recursive-descent parser.
//
// The parser walks a token slice produced by [lexer.Tokenize] with a single
// forward-moving cursor and builds an [ast.Program]. Dispatch uses one token
// of lookahead; there is no backtracking.
//
// Usage:
//
//	prog, diags := parser.ParseSource(source)
//	if diags.HasErrors() { ... }
//
// Error recovery is panic-mode at statement granularity: when a statement
// production fails, the driver loop skips exactly one token and tries again.
// Every iteration therefore consumes at least one token, so parsing always
// terminates and always returns a best-effort program, however malformed the
// input is.
package parser

import (
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/metaphox/quest-lang/ast"
	"github.com/metaphox/quest-lang/diag"
	"github.com/metaphox/quest-lang/lexer"
)

// Parser holds all state for one parse: the token slice, the cursor and the
// diagnostic sink. Create one with [New] and call [Parser.Parse] once.
type Parser struct {
	tokens []ast.Token
	src    string // used only to turn token offsets into line/column
	pos    int    // index of the current token; len(tokens) means end of input
	diags  *diag.Sink
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger makes the parser log its progress at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Parser over tokens. src must be the text the tokens were
// scanned from.
func New(tokens []ast.Token, src string, opts ...Option) *Parser {
	p := &Parser{
		tokens: tokens,
		src:    src,
		diags:  diag.NewSink(),
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseSource tokenizes src and parses the result.
func ParseSource(src string, opts ...Option) (*ast.Program, *diag.Sink) {
	return New(lexer.Tokenize(src), src, opts...).Parse()
}

// Parse consumes the token slice and returns the program together with every
// diagnostic recorded on the way. Both results are always non-nil.
func (p *Parser) Parse() (*ast.Program, *diag.Sink) {
	p.logger.Debug("parse started", "tokens", len(p.tokens))

	prog := &ast.Program{}
	for {
		p.skipNewlines()
		if p.atEnd() {
			break
		}
		if s := p.parseStatement(); s != nil {
			prog.Statements = append(prog.Statements, s)
		} else {
			p.advance()
		}
	}

	p.logger.Debug("parse finished",
		"statements", len(prog.Statements),
		"errors", len(p.diags.Errors()),
	)
	return prog, p.diags
}

// ── Internal token management ─────────────────────────────────────────────────

// atEnd reports whether the cursor is past the last token.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// cur returns the current token, or an EOF token positioned at the end of the
// source when the cursor is past the last token.
func (p *Parser) cur() ast.Token {
	if p.atEnd() {
		return ast.Token{Type: ast.EOF, Offset: len(p.src)}
	}
	return p.tokens[p.pos]
}

// curIs reports whether the current token has the given type.
func (p *Parser) curIs(tt ast.TokenType) bool {
	return !p.atEnd() && p.tokens[p.pos].Type == tt
}

// advance returns the current token and moves the cursor past it.
func (p *Parser) advance() ast.Token {
	tok := p.cur()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it has type tt. Otherwise it records
// "expected <what>" at the current token and returns false without consuming
// anything; the caller abandons its production.
func (p *Parser) expect(tt ast.TokenType, what string) bool {
	if p.curIs(tt) {
		p.advance()
		return true
	}
	p.errorf("expected %s (found '%s')", what, p.found())
	return false
}

func (p *Parser) skipNewlines() {
	for p.curIs(ast.NEWLINE) {
		p.advance()
	}
}

// found renders the current token for a diagnostic message.
func (p *Parser) found() string {
	tok := p.cur()
	switch tok.Type {
	case ast.EOF:
		return "EOF"
	case ast.NEWLINE:
		return `\n`
	}
	return tok.Literal
}

// errorf records a Syntactic diagnostic at the current token.
func (p *Parser) errorf(format string, args ...any) {
	p.diags.AddErrorAt(diag.Syntactic, p.src, p.cur().Offset, format, args...)
}

// ── Statement parsing ─────────────────────────────────────────────────────────

// parseStatement dispatches on the current token. It returns nil when no
// statement could be built; the caller is then responsible for skipping a
// token.
func (p *Parser) parseStatement() ast.Statement {
	tok := p.cur()
	if kind, ok := ast.CommandFor(tok.Type); ok {
		p.advance()
		return &ast.Command{Token: tok, Kind: kind}
	}
	switch tok.Type {
	case ast.IF:
		return p.parseIfStatement()
	case ast.WHILE:
		return p.parseWhileStatement()
	case ast.FOR:
		return p.parseForStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseIfStatement parses `if (cond) { ... } else { ... }`.
// The else branch is mandatory. When it is missing the statement is still
// returned, with an empty else branch, after reporting the omission.
func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.advance() // 'if'

	if !p.expect(ast.LPAREN, "'(' after if") {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.expect(ast.RPAREN, "')' after if condition") {
		return nil
	}
	stmt := &ast.IfStmt{Token: tok, Condition: cond}
	stmt.Then = p.parseBlock()

	if !p.expect(ast.ELSE, "'else' after if block") {
		return stmt
	}
	stmt.Else = p.parseBlock()
	return stmt
}

// parseWhileStatement parses `while (cond) { body }`.
func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.advance() // 'while'

	if !p.expect(ast.LPAREN, "'(' after while") {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.expect(ast.RPAREN, "')' after while condition") {
		return nil
	}
	body := p.parseBlock()
	return &ast.WhileStmt{Token: tok, Condition: cond, Body: body}
}

// parseForStatement parses `for (init; cond; update) { body }`.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.advance() // 'for'

	if !p.expect(ast.LPAREN, "'(' after for") {
		return nil
	}
	init := p.parseExpression()
	if init == nil {
		return nil
	}
	if !p.expect(ast.SEMICOLON, "';' after initialization") {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if !p.expect(ast.SEMICOLON, "';' after condition") {
		return nil
	}
	update := p.parseExpression()
	if update == nil {
		return nil
	}
	if !p.expect(ast.RPAREN, "')' after for clauses") {
		return nil
	}
	body := p.parseBlock()
	return &ast.ForStmt{Token: tok, Init: init, Condition: cond, Update: update, Body: body}
}

// parseExpressionStatement is the fallback when no keyword matched.
func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur()
	switch tok.Type {
	case ast.IDENT, ast.NUMBER:
	case ast.ERROR:
		p.errorf("unexpected token '%s'", tok.Literal)
		return nil
	default:
		p.errorf("expected statement (found '%s')", p.found())
		return nil
	}
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	return &ast.ExprStmt{Token: tok, Expr: expr}
}

// parseBlock parses `{ stmt* }` and returns its statements.
//
// A missing '{' is reported and yields an empty body. Collection stops at '}'
// or at end of input, so a block that is never closed is reported instead of
// looping.
func (p *Parser) parseBlock() []ast.Statement {
	if !p.expect(ast.LBRACE, "'{' to start block") {
		return nil
	}

	var stmts []ast.Statement
	for {
		p.skipNewlines()
		if p.atEnd() || p.curIs(ast.RBRACE) {
			break
		}
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		} else {
			p.advance()
		}
	}
	p.expect(ast.RBRACE, "'}' to close block")
	return stmts
}

// ── Expression parsing ────────────────────────────────────────────────────────

// parseExpression parses `primary (('+' | '-') primary)*` into a
// left-associative tree. There is one precedence level; '*', '/' and the
// logical operators are not part of the expression grammar.
func (p *Parser) parseExpression() ast.Expression {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}
	for p.curIs(ast.PLUS) || p.curIs(ast.MINUS) {
		opTok := p.advance()
		op := ast.Add
		if opTok.Type == ast.MINUS {
			op = ast.Sub
		}
		right := p.parsePrimary()
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpr{Token: opTok, Left: left, Op: op, Right: right}
	}
	return left
}

// parsePrimary parses an identifier or a number literal.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch tok.Type {
	case ast.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Name: tok.Literal}
	case ast.NUMBER:
		val, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			// Keep the tree complete: the literal becomes 0.
			p.errorf("invalid number literal '%s'", tok.Literal)
			val = 0
		}
		p.advance()
		return &ast.NumberLiteral{Token: tok, Value: int32(val)}
	}
	p.errorf("unexpected token '%s' in expression", p.found())
	return nil
}
