// Package printer turns a QuestLang AST back into source text.
//
// The output is canonical QuestLang: one statement per line, blocks indented
// by two spaces, and every if printed with its else branch. Parsing the output
// of Print yields a tree of the same shape as the one printed.
package printer

import (
	"io"
	"strconv"
	"strings"

	"github.com/metaphox/quest-lang/ast"
)

const indentUnit = "  "

// Print renders prog. An empty program renders as "".
func Print(prog *ast.Program) string {
	p := &printer{}
	for _, s := range prog.Statements {
		p.stmt(s, 0)
	}
	return p.out.String()
}

// Fprint writes the output of [Print] to w.
func Fprint(w io.Writer, prog *ast.Program) error {
	_, err := io.WriteString(w, Print(prog))
	return err
}

type printer struct {
	out strings.Builder
}

func (p *printer) line(depth int, parts ...string) {
	p.out.WriteString(strings.Repeat(indentUnit, depth))
	for _, s := range parts {
		p.out.WriteString(s)
	}
	p.out.WriteByte('\n')
}

func (p *printer) stmt(s ast.Statement, depth int) {
	switch s := s.(type) {
	case *ast.Command:
		p.line(depth, s.Kind.String())
	case *ast.IfStmt:
		p.line(depth, "if (", expr(s.Condition), ") {")
		p.body(s.Then, depth+1)
		p.line(depth, "} else {")
		p.body(s.Else, depth+1)
		p.line(depth, "}")
	case *ast.WhileStmt:
		p.line(depth, "while (", expr(s.Condition), ") {")
		p.body(s.Body, depth+1)
		p.line(depth, "}")
	case *ast.ForStmt:
		p.line(depth, "for (", expr(s.Init), "; ", expr(s.Condition), "; ", expr(s.Update), ") {")
		p.body(s.Body, depth+1)
		p.line(depth, "}")
	case *ast.ExprStmt:
		p.line(depth, expr(s.Expr))
	}
}

func (p *printer) body(stmts []ast.Statement, depth int) {
	for _, s := range stmts {
		p.stmt(s, depth)
	}
}

// expr renders an expression without parentheses. The grammar has no
// grouping, so operands are written flat and read back left-associatively.
func expr(e ast.Expression) string {
	switch e := e.(type) {
	case *ast.Identifier:
		return e.Name
	case *ast.NumberLiteral:
		return strconv.FormatInt(int64(e.Value), 10)
	case *ast.BinaryExpr:
		return expr(e.Left) + " " + e.Op.String() + " " + expr(e.Right)
	}
	return ""
}
