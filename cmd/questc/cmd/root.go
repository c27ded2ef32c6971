// Package cmd implements the questc command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/metaphox/quest-lang/config"
	"github.com/metaphox/quest-lang/frontend"
	"github.com/metaphox/quest-lang/logs"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "questc",
	Short: "QuestLang compiler front end",
	Long: `questc tokenizes and parses QuestLang programs and reports what it finds.

Commands:
  tokens   - print the token stream
  parse    - print tokens, the formatted program, diagnostics and symbols
  check    - print diagnostics only; exits with status 1 on errors
  fmt      - print the program in canonical form`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// session is the per-invocation state shared by the subcommands.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
	styles   styles
}

// newSession loads the config file, applies flag overrides and builds the
// logger.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if noColor {
		cfg.Output.Color = false
	}

	logger, closeLog, err := logs.New(logs.Options{
		Writer: cmd.ErrOrStderr(),
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:      cfg,
		logger:   logger.With("command", cmd.Name()),
		closeLog: closeLog,
		styles:   newStyles(cfg.Output.Color),
	}, nil
}

func (s *session) Close() {
	if err := s.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "error: close log file: %v\n", err)
	}
}

// compileFile reads path and runs the front end over it. An unreadable file
// is fatal.
func (s *session) compileFile(path string) (*frontend.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	s.logger.Debug("source loaded", "path", path, "bytes", len(data))
	return frontend.Compile(string(data), frontend.WithLogger(s.logger.With("file", path))), nil
}
