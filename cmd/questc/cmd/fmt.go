package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metaphox/quest-lang/printer"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt FILE",
	Short: "Print the program in canonical form",
	Long: `Prints FILE re-rendered from its syntax tree. Programs with syntax
errors are refused, since their tree is only a best-effort reconstruction.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.compileFile(args[0])
	if err != nil {
		return err
	}
	if res.Diagnostics.HasErrors() {
		s.styles.writeDiagnostics(cmd.ErrOrStderr(), res.Diagnostics)
		return fmt.Errorf("%s: not formatted, %d error(s)", args[0], len(res.Diagnostics.Errors()))
	}
	return printer.Fprint(cmd.OutOrStdout(), res.Program)
}
