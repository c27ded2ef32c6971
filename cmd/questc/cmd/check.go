package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Report diagnostics; exit status 1 when there are errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.compileFile(args[0])
	if err != nil {
		return err
	}
	s.styles.writeDiagnostics(cmd.OutOrStdout(), res.Diagnostics)
	if n := len(res.Diagnostics.Errors()); n > 0 {
		return fmt.Errorf("%s: %d error(s)", args[0], n)
	}
	return nil
}
