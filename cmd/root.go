package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vegasq/fsql/internal/engine"
	"github.com/vegasq/fsql/internal/logger"
	"github.com/vegasq/fsql/internal/shell"
	"github.com/vegasq/fsql/internal/theme"
)

var (
	flagRecursive bool
	flagNoColor   bool
	flagLogLevel  string
	flagFormat    string
	flagYes       bool
	flagConfig    string
)

// rootCmd runs one query given as the positional argument
var rootCmd = &cobra.Command{
	Use:   "fsql [query]",
	Short: "SQL for your filesystem",
	Long: `fsql runs SQL-like queries against a directory tree.

Examples:
  fsql 'select * from . where size > 10mb'
  fsql 'select name, size from ~/Downloads order by size desc limit 10'
  fsql -r 'delete many from . where ext = "tmp"'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := newRunner()
		if err != nil {
			return err
		}
		runner.Confirm = stdinConfirm
		return runner.Execute(args[0])
	},
	SilenceUsage: true,
}

// Execute runs the CLI. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagRecursive, "recursive", "r", false, "traverse subdirectories for select queries")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	pf.StringVarP(&flagLogLevel, "log-level", "l", "warn", "log level (trace, debug, info, warn, error)")
	pf.StringVarP(&flagFormat, "format", "f", "", "output format (table, json, csv)")
	pf.StringVar(&flagConfig, "config", "", "theme config file (default ~/.fsql.yaml)")
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "delete without asking for confirmation")
}

// newRunner builds the shared runner from flags and theme config
func newRunner() (*shell.Runner, error) {
	logger.SetLevel(flagLogLevel)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = theme.DefaultPath()
	}
	th := theme.Load(cfgPath)
	th.NoColor = flagNoColor

	eng := engine.New(cwd)
	eng.Recursive = flagRecursive

	return &shell.Runner{
		Engine:      eng,
		Theme:       th,
		Format:      flagFormat,
		Out:         os.Stdout,
		AutoConfirm: flagYes,
	}, nil
}

// stdinConfirm asks on the terminal for the one-shot path
func stdinConfirm(prompt string) bool {
	fmt.Print(prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
