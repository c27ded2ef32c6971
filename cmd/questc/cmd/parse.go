package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metaphox/quest-lang/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print tokens, the formatted program, diagnostics and symbols",
	Long: `Runs the whole front end over FILE and prints every stage.

Sections can be switched off in the config file:

  [output]
  tokens = false
  ast = true
  symbols = false`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.compileFile(args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	out := s.cfg.Output

	if out.Tokens {
		s.styles.section(w, "Tokens")
		writeTokens(w, res.Source, res.Tokens)
		fmt.Fprintln(w)
	}
	if out.AST {
		s.styles.section(w, "Program")
		if err := printer.Fprint(w, res.Program); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	s.styles.section(w, "Diagnostics")
	s.styles.writeDiagnostics(w, res.Diagnostics)
	if out.Symbols {
		fmt.Fprintln(w)
		s.styles.section(w, "Symbols")
		fmt.Fprint(w, res.Symbols.Dump())
	}
	s.logger.Info("parse done", "elapsed", res.Elapsed)
	return nil
}
