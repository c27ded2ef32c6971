package symtab

import (
	"github.com/metaphox/quest-lang/ast"
	"github.com/metaphox/quest-lang/diag"
)

// Collect walks prog and records the first sighting of every identifier.
// Each block body opens its own scope. An identifier used as the whole
// condition of an if, while or for is typed Boolean; every other use is
// Integer. Names already visible are not redeclared, so repeated uses do not
// produce warnings.
//
// Block scopes are closed again as the walk leaves them, so the returned
// table holds the global bindings only.
func Collect(prog *ast.Program, src string, sink *diag.Sink) *Table {
	c := &collector{table: New(sink), src: src}
	c.stmts(prog.Statements)
	return c.table
}

type collector struct {
	table *Table
	src   string
}

func (c *collector) stmts(list []ast.Statement) {
	for _, s := range list {
		c.stmt(s)
	}
}

func (c *collector) block(list []ast.Statement) {
	c.table.EnterScope()
	c.stmts(list)
	c.table.ExitScope()
}

func (c *collector) stmt(s ast.Statement) {
	switch s := s.(type) {
	case *ast.IfStmt:
		c.condition(s.Condition)
		c.block(s.Then)
		c.block(s.Else)
	case *ast.WhileStmt:
		c.condition(s.Condition)
		c.block(s.Body)
	case *ast.ForStmt:
		c.expr(s.Init, Integer)
		c.condition(s.Condition)
		c.expr(s.Update, Integer)
		c.block(s.Body)
	case *ast.ExprStmt:
		c.expr(s.Expr, Integer)
	}
}

func (c *collector) condition(e ast.Expression) {
	if _, ok := e.(*ast.Identifier); ok {
		c.expr(e, Boolean)
		return
	}
	c.expr(e, Integer)
}

func (c *collector) expr(e ast.Expression, typ SymbolType) {
	switch e := e.(type) {
	case *ast.Identifier:
		if _, ok := c.table.Lookup(e.Name); ok {
			return
		}
		line, col := diag.Position(c.src, e.Pos())
		c.table.Insert(e.Name, typ, line, col)
	case *ast.BinaryExpr:
		c.expr(e.Left, Integer)
		c.expr(e.Right, Integer)
	}
}
