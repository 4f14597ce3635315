package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snoolib/modcmd/pkg/command"
)

// newReplCommand starts an interactive read-parse-dispatch loop.
func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse command lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd)
		},
	}
}

func runREPL(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	ctx := newContext(func(text string) { fmt.Fprintln(out, text) })

	fmt.Fprintf(out, "%d commands loaded. Type a line, or \"exit\" to quit.\n", interp.Registry.Len())
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}
		if inv := interp.Parser.Parse(line, ctx); inv == nil {
			name, _ := command.SplitCommand(line)
			if hints := interp.Registry.Suggest(name, 3); len(hints) > 0 {
				fmt.Fprintf(out, "unknown command %q, did you mean: %s\n", name, strings.Join(hints, ", "))
			}
		}
	}
	return scanner.Err()
}
