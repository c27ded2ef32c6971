// Package frontend runs the whole QuestLang front end in one call:
// tokenize, parse, then collect symbols.
package frontend

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/metaphox/quest-lang/ast"
	"github.com/metaphox/quest-lang/diag"
	"github.com/metaphox/quest-lang/lexer"
	"github.com/metaphox/quest-lang/parser"
	"github.com/metaphox/quest-lang/symtab"
)

// Result is everything the front end produced for one source text.
type Result struct {
	Source      string
	Tokens      []ast.Token
	Program     *ast.Program
	Diagnostics *diag.Sink
	Symbols     *symtab.Table
	Elapsed     time.Duration
}

// Option configures Compile.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes phase logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Compile runs every phase over src. Symbol warnings are appended to the
// parser's diagnostics so callers see a single sink.
func Compile(src string, opts ...Option) *Result {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()

	tokens := lexer.Tokenize(src)
	o.logger.Debug("tokenized", "tokens", len(tokens), "bytes", len(src))

	prog, diags := parser.New(tokens, src, parser.WithLogger(o.logger)).Parse()

	symbols := symtab.Collect(prog, src, diags)
	o.logger.Debug("symbols collected", "symbols", len(symbols.Symbols()))

	res := &Result{
		Source:      src,
		Tokens:      tokens,
		Program:     prog,
		Diagnostics: diags,
		Symbols:     symbols,
		Elapsed:     time.Since(start),
	}
	o.logger.Info("compiled",
		"statements", len(prog.Statements),
		"errors", len(diags.Errors()),
		"warnings", len(diags.Warnings()),
		"elapsed", res.Elapsed,
	)
	return res
}
