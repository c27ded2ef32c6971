// Package diag collects the diagnostics produced while compiling a QuestLang
// program.
//
// A [Sink] is a plain value: the parser creates one per parse, appends to it
// as it goes and hands it back to the caller together with the AST. Nothing
// here is global, so independent parses never share diagnostics.
package diag

import (
	"fmt"
	"io"
	"strings"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// Lexical marks a malformed lexeme, e.g. a digit run glued to a letter.
	Lexical Kind = iota
	// Syntactic marks a grammar violation: unexpected token, missing
	// delimiter, missing mandatory else.
	Syntactic
	// Semantic marks symbol-level issues such as a redeclared name.
	Semantic
)

// String returns the kind name used in rendered diagnostics.
func (k Kind) String() string {
	switch k {
	case Lexical:
		return "Lexical"
	case Syntactic:
		return "Syntactic"
	case Semantic:
		return "Semantic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic is a single reported issue. Line and Column are 1-based.
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

// String renders d in the fixed report format:
//
//	[Syntactic Error] expected ')' after if condition (found '{') (Linha 1, Coluna 10)
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s Error] %s (Linha %d, Coluna %d)", d.Kind, d.Message, d.Line, d.Column)
}

// Position converts a byte offset in src into a 1-based line and column with
// a single linear scan. Columns count characters, not bytes. An offset at or
// past the end of src yields the position just after the last character.
func Position(src string, offset int) (line, column int) {
	line, column = 1, 1
	for i, r := range src {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Sink accumulates errors and warnings in the order they are reported.
// The zero value is ready to use.
type Sink struct {
	errors   []Diagnostic
	warnings []Diagnostic
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// AddError records an error of the given kind.
func (s *Sink) AddError(kind Kind, message string, line, column int) {
	s.errors = append(s.errors, Diagnostic{Kind: kind, Message: message, Line: line, Column: column})
}

// AddErrorAt records an error positioned at byte offset in src.
func (s *Sink) AddErrorAt(kind Kind, src string, offset int, format string, args ...any) {
	line, col := Position(src, offset)
	s.AddError(kind, fmt.Sprintf(format, args...), line, col)
}

// AddWarning records a warning. Warnings are always Semantic.
func (s *Sink) AddWarning(message string, line, column int) {
	s.warnings = append(s.warnings, Diagnostic{Kind: Semantic, Message: message, Line: line, Column: column})
}

// HasErrors reports whether at least one error was recorded. Warnings do not
// count.
func (s *Sink) HasErrors() bool {
	return len(s.errors) > 0
}

// Errors returns the recorded errors in report order.
func (s *Sink) Errors() []Diagnostic {
	return s.errors
}

// Warnings returns the recorded warnings in report order.
func (s *Sink) Warnings() []Diagnostic {
	return s.warnings
}

// Len returns the total number of errors and warnings.
func (s *Sink) Len() int {
	return len(s.errors) + len(s.warnings)
}

// Clear drops every recorded error and warning.
func (s *Sink) Clear() {
	s.errors = nil
	s.warnings = nil
}

// Report renders all errors, then all warnings. It never fails; an empty sink
// renders a single "no errors" line.
func (s *Sink) Report() string {
	var b strings.Builder
	_ = s.WriteReport(&b)
	return b.String()
}

// WriteReport writes the same text as [Sink.Report] to w.
func (s *Sink) WriteReport(w io.Writer) error {
	var b strings.Builder
	if s.HasErrors() {
		b.WriteString("Errors found:\n")
		for _, d := range s.errors {
			b.WriteString(d.String())
			b.WriteByte('\n')
		}
	} else {
		b.WriteString("No errors found.\n")
	}
	if len(s.warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, d := range s.warnings {
			b.WriteString(d.String())
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
