package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

const helpText = `Queries:
  select * from <path> [where <condition>] [order by <field>] [limit <n>]
  select <fields> from <path> ...
  delete [recursive] first [n] | many [n] | * from <path> [where <condition>]

Fields: name, path, size, modified, created, ext, permissions, owner,
        is_hidden, is_readonly, type

Commands:
  help          show this help
  clear         clear the screen
  exit, quit    leave the shell`

// historyPath returns ~/.fsql_history, or "" when home is unknown
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fsql_history")
}

// Run drives the interactive prompt until exit or EOF. Queries are
// dispatched through the runner, which prompts before any deletion.
func Run(runner *Runner) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "fsql> ",
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("cannot start shell: %w", err)
	}
	defer rl.Close()

	runner.Confirm = confirmFunc(rl)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF on ctrl-d
			return nil
		}

		line = strings.TrimSpace(line)
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintln(runner.Out, helpText)
			continue
		case "clear":
			fmt.Fprint(runner.Out, "\033[2J\033[H")
			continue
		}

		if err := runner.Execute(line); err != nil {
			fmt.Fprintln(runner.Out, "error:", err)
		}
	}
}

// confirmFunc reads a y/N answer on the same readline instance
func confirmFunc(rl *readline.Instance) func(string) bool {
	return func(prompt string) bool {
		saved := rl.Config.Prompt
		rl.SetPrompt(prompt)
		defer rl.SetPrompt(saved)

		line, err := rl.Readline()
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
