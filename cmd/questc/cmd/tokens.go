package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/metaphox/quest-lang/ast"
	"github.com/metaphox/quest-lang/diag"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a program",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.compileFile(args[0])
	if err != nil {
		return err
	}
	writeTokens(cmd.OutOrStdout(), res.Source, res.Tokens)
	return nil
}

// writeTokens prints one token per line: kind, quoted lexeme, line:column.
func writeTokens(w io.Writer, src string, tokens []ast.Token) {
	for _, tok := range tokens {
		line, col := diag.Position(src, tok.Offset)
		fmt.Fprintf(w, "%-10s %q %d:%d\n", tok.Type, tok.Literal, line, col)
	}
}
