package frontend_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/metaphox/quest-lang/ast"
	"github.com/metaphox/quest-lang/frontend"
)

func TestCompile(t *testing.T) {
	src := "if (hero) { move_left } else { move_right }\nhero + 10 - 5\n"
	res := frontend.Compile(src)

	if res.Source != src {
		t.Error("source not kept")
	}
	if len(res.Tokens) != 18 {
		t.Errorf("got %d tokens, want 18", len(res.Tokens))
	}
	if len(res.Program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(res.Program.Statements))
	}
	if _, ok := res.Program.Statements[0].(*ast.IfStmt); !ok {
		t.Errorf("statement 0: got %T", res.Program.Statements[0])
	}
	if res.Diagnostics.Len() != 0 {
		t.Errorf("unexpected diagnostics:\n%s", res.Diagnostics.Report())
	}
	if _, ok := res.Symbols.Lookup("hero"); !ok {
		t.Error("hero not in the symbol table")
	}
}

func TestCompile_Errors(t *testing.T) {
	res := frontend.Compile("if (hero { jump } else { defend }")
	if !res.Diagnostics.HasErrors() {
		t.Fatal("expected errors")
	}
	if !strings.Contains(res.Diagnostics.Report(), "')'") {
		t.Errorf("report does not mention ')':\n%s", res.Diagnostics.Report())
	}
}

func TestCompile_Empty(t *testing.T) {
	res := frontend.Compile("")
	if len(res.Tokens) != 0 || len(res.Program.Statements) != 0 || res.Diagnostics.Len() != 0 {
		t.Errorf("empty source: %+v", res)
	}
	if res.Symbols.Dump() != "Symbol table:\n" {
		t.Errorf("dump: %q", res.Symbols.Dump())
	}
}

func TestCompile_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	frontend.Compile("jump", frontend.WithLogger(logger))
	for _, want := range []string{"msg=tokenized", "msg=\"parse finished\"", "msg=compiled", "statements=1"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}
