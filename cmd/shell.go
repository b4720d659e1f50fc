package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/fsql/internal/shell"
)

// shellCmd starts the interactive prompt
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive fsql shell",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := newRunner()
		if err != nil {
			return err
		}
		return shell.Run(runner)
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
