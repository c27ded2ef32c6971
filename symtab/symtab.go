// Package symtab implements a scoped symbol table for QuestLang programs.
package symtab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/metaphox/quest-lang/diag"
)

// SymbolType is the inferred type of a symbol.
type SymbolType int

const (
	Integer SymbolType = iota
	Boolean
)

func (t SymbolType) String() string {
	switch t {
	case Integer:
		return "Integer"
	case Boolean:
		return "Boolean"
	}
	return fmt.Sprintf("SymbolType(%d)", int(t))
}

// Symbol is one binding. Scope is the depth it was declared at; 0 is global.
type Symbol struct {
	Name   string
	Type   SymbolType
	Scope  int
	Line   int
	Column int
}

// Table is a stack of scopes. The global scope is always open.
type Table struct {
	scopes []map[string]*Symbol
	diags  *diag.Sink
}

// New returns a table with only the global scope open. Redeclaration warnings
// go to sink; a nil sink drops them.
func New(sink *diag.Sink) *Table {
	return &Table{
		scopes: []map[string]*Symbol{{}},
		diags:  sink,
	}
}

// Depth returns the index of the innermost open scope.
func (t *Table) Depth() int {
	return len(t.scopes) - 1
}

// EnterScope opens a nested scope.
func (t *Table) EnterScope() {
	t.scopes = append(t.scopes, map[string]*Symbol{})
}

// ExitScope closes the innermost scope and discards its bindings. The global
// scope is never closed.
func (t *Table) ExitScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

// Insert declares name in the innermost scope. The first declaration wins: a
// duplicate in the same scope is reported as a warning, leaves the original
// entry untouched and returns false.
func (t *Table) Insert(name string, typ SymbolType, line, column int) bool {
	scope := t.scopes[len(t.scopes)-1]
	if _, ok := scope[name]; ok {
		if t.diags != nil {
			t.diags.AddWarning(
				fmt.Sprintf("variable '%s' already declared in the current scope", name),
				line, column,
			)
		}
		return false
	}
	scope[name] = &Symbol{
		Name:   name,
		Type:   typ,
		Scope:  t.Depth(),
		Line:   line,
		Column: column,
	}
	return true
}

// Lookup returns the nearest visible binding of name.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Symbols returns every binding in the open scopes, ordered by scope depth
// and then by name.
func (t *Table) Symbols() []*Symbol {
	var out []*Symbol
	for _, scope := range t.scopes {
		for _, sym := range scope {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Dump renders the visible symbols, one per line.
func (t *Table) Dump() string {
	var b strings.Builder
	b.WriteString("Symbol table:\n")
	for _, sym := range t.Symbols() {
		fmt.Fprintf(&b, "  - %s : %s (scope %d, line %d, column %d)\n",
			sym.Name, sym.Type, sym.Scope, sym.Line, sym.Column)
	}
	return b.String()
}
