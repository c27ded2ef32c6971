// Package ast defines the Abstract Syntax Tree (AST) node types for QuestLang.
//
// The hierarchy is:
//
//	Node (interface)
//	  Statement (interface)
//	    Command, IfStmt, WhileStmt, ForStmt, ExprStmt
//	  Expression (interface)
//	    Identifier, NumberLiteral, BinaryExpr
//
// Every node stores the token at which it starts; Pos returns that token's
// byte offset. Children are owned by exactly one parent: the tree has no
// sharing and no cycles.
package ast

import (
	"fmt"
	"strings"
)

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the QuestLang AST.
type Node interface {
	// TokenLiteral returns the literal string of the token that began this node.
	TokenLiteral() string
	// String returns a compact, human-readable representation of the node.
	// It is intended for debugging and test output; package printer produces
	// real source text.
	String() string
	// Pos returns the byte offset of the token that began this node.
	Pos() int
}

// Statement is a Node that may appear in a program or block body.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// ── Top-level program ─────────────────────────────────────────────────────────

// Program is the root AST node produced by the parser: the ordered list of
// top-level statements.
type Program struct {
	Statements []Statement
}

// TokenLiteral returns the literal of the first statement's starting token,
// or "" for an empty program.
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// String returns all statements, one per line, useful for snapshot testing.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// ── Commands ──────────────────────────────────────────────────────────────────

// CommandKind identifies one of the built-in commands.
type CommandKind int

const (
	MoveUp CommandKind = iota
	MoveDown
	MoveLeft
	MoveRight
	Jump
	Attack
	Defend
)

var commandKeywords = [...]string{
	MoveUp:    "move_up",
	MoveDown:  "move_down",
	MoveLeft:  "move_left",
	MoveRight: "move_right",
	Jump:      "jump",
	Attack:    "attack",
	Defend:    "defend",
}

// String returns the source keyword of the command.
func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandKeywords) {
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
	return commandKeywords[k]
}

// IsMove reports whether k belongs to the movement set (up/down/left/right).
func (k CommandKind) IsMove() bool { return k >= MoveUp && k <= MoveRight }

// IsAction reports whether k belongs to the action set (jump/attack/defend).
func (k CommandKind) IsAction() bool { return k >= Jump && k <= Defend }

// CommandFor maps a command token type to its CommandKind. ok is false for
// any other token type.
func CommandFor(tt TokenType) (kind CommandKind, ok bool) {
	if !tt.IsCommand() {
		return 0, false
	}
	return CommandKind(tt - MOVE_UP), true
}

// ── Statements ────────────────────────────────────────────────────────────────

// Command is a bare command statement.
//
//	move_up
//	attack
type Command struct {
	Token Token
	Kind  CommandKind
}

func (s *Command) statementNode()       {}
func (s *Command) TokenLiteral() string { return s.Token.Literal }
func (s *Command) Pos() int             { return s.Token.Offset }
func (s *Command) String() string       { return s.Kind.String() }

// IfStmt is a two-way conditional. The else branch is mandatory in the
// grammar; a parsed IfStmt whose else was missing carries an empty Else and
// a diagnostic.
//
//	if (hero) { move_left } else { move_right }
type IfStmt struct {
	Token     Token // the 'if' token
	Condition Expression
	Then      []Statement
	Else      []Statement
}

func (s *IfStmt) statementNode()       {}
func (s *IfStmt) TokenLiteral() string { return s.Token.Literal }
func (s *IfStmt) Pos() int             { return s.Token.Offset }
func (s *IfStmt) String() string {
	return fmt.Sprintf("if (%s) %s else %s", s.Condition, blockString(s.Then), blockString(s.Else))
}

// WhileStmt is a conditional loop.
//
//	while (enemy) { jump }
type WhileStmt struct {
	Token     Token // the 'while' token
	Condition Expression
	Body      []Statement
}

func (s *WhileStmt) statementNode()       {}
func (s *WhileStmt) TokenLiteral() string { return s.Token.Literal }
func (s *WhileStmt) Pos() int             { return s.Token.Offset }
func (s *WhileStmt) String() string {
	return fmt.Sprintf("while (%s) %s", s.Condition, blockString(s.Body))
}

// ForStmt is a three-clause loop. All three clauses are expressions.
//
//	for (hero; enemy; treasure) { defend }
type ForStmt struct {
	Token     Token // the 'for' token
	Init      Expression
	Condition Expression
	Update    Expression
	Body      []Statement
}

func (s *ForStmt) statementNode()       {}
func (s *ForStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ForStmt) Pos() int             { return s.Token.Offset }
func (s *ForStmt) String() string {
	return fmt.Sprintf("for (%s; %s; %s) %s", s.Init, s.Condition, s.Update, blockString(s.Body))
}

// ExprStmt wraps an expression that appears in statement position.
type ExprStmt struct {
	Token Token // the first token of the expression
	Expr  Expression
}

func (s *ExprStmt) statementNode()       {}
func (s *ExprStmt) TokenLiteral() string { return s.Token.Literal }
func (s *ExprStmt) Pos() int             { return s.Token.Offset }
func (s *ExprStmt) String() string       { return s.Expr.String() }

func blockString(stmts []Statement) string {
	if len(stmts) == 0 {
		return "{ }"
	}
	var b strings.Builder
	b.WriteString("{ ")
	for _, s := range stmts {
		b.WriteString(s.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// ── Expressions ───────────────────────────────────────────────────────────────

// Identifier is a reference to a named value.
type Identifier struct {
	Token Token
	Name  string
}

func (e *Identifier) expressionNode()      {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) Pos() int             { return e.Token.Offset }
func (e *Identifier) String() string       { return e.Name }

// NumberLiteral is a decimal integer literal. A literal that does not fit in
// 32 bits is parsed as 0 and reported.
type NumberLiteral struct {
	Token Token
	Value int32
}

func (e *NumberLiteral) expressionNode()      {}
func (e *NumberLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *NumberLiteral) Pos() int             { return e.Token.Offset }
func (e *NumberLiteral) String() string       { return fmt.Sprintf("%d", e.Value) }

// BinOp is the operator of a BinaryExpr.
type BinOp int

const (
	Add BinOp = iota
	Sub
)

// String returns the source form of the operator.
func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	}
	return fmt.Sprintf("BinOp(%d)", int(op))
}

// BinaryExpr is a left-associative additive expression: left op right.
type BinaryExpr struct {
	Token Token // the operator token
	Left  Expression
	Op    BinOp
	Right Expression
}

func (e *BinaryExpr) expressionNode()      {}
func (e *BinaryExpr) TokenLiteral() string { return e.Token.Literal }
func (e *BinaryExpr) Pos() int             { return e.Left.Pos() }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}
