package printer_test

import (
	"bytes"
	"testing"

	"github.com/metaphox/quest-lang/ast"
	"github.com/metaphox/quest-lang/parser"
	"github.com/metaphox/quest-lang/printer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, diags := parser.ParseSource(src)
	if diags.HasErrors() {
		t.Fatalf("%q:\n%s", src, diags.Report())
	}
	return prog
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"command", "move_up", "move_up\n"},
		{
			"if",
			"if (hero) { move_left } else { move_right }",
			"if (hero) {\n  move_left\n} else {\n  move_right\n}\n",
		},
		{
			"while",
			"while (enemy) { attack defend }",
			"while (enemy) {\n  attack\n  defend\n}\n",
		},
		{
			"for",
			"for (i; i - 10; i + 1) { jump }",
			"for (i; i - 10; i + 1) {\n  jump\n}\n",
		},
		{
			"nested",
			"while (a) { if (b) { jump } else { } }",
			"while (a) {\n  if (b) {\n    jump\n  } else {\n  }\n}\n",
		},
		{"expression", "hero+10-5", "hero + 10 - 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printer.Print(mustParse(t, tt.input)); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

// Printing a missing else yields an explicit empty else branch.
func TestPrint_MissingElse(t *testing.T) {
	prog, _ := parser.ParseSource("if (x) { jump }")
	want := "if (x) {\n  jump\n} else {\n}\n"
	if got := printer.Print(prog); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrint_RoundTrip(t *testing.T) {
	inputs := []string{
		"move_up move_down jump",
		"if (hero) { move_left } else { move_right }",
		"while (enemy) { if (gold) { attack } else { defend } }\njump",
		"for (i; i - 10; i + 1) { while (x) { } }",
		"a - b + c - 42",
	}
	for _, input := range inputs {
		first := mustParse(t, input)
		printed := printer.Print(first)
		second := mustParse(t, printed)
		if first.String() != second.String() {
			t.Errorf("round trip changed the tree:\n%s\n%s", first.String(), second.String())
		}
		if again := printer.Print(second); again != printed {
			t.Errorf("printing is not stable:\n%s\n%s", printed, again)
		}
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	prog := mustParse(t, "jump")
	if err := printer.Fprint(&buf, prog); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "jump\n" {
		t.Errorf("got %q", buf.String())
	}
}
