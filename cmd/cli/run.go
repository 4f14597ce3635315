package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snoolib/modcmd/pkg/command"
)

// newRunCommand parses a single line given as arguments.
func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <line>",
		Short: "Parse and dispatch a single command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			out := cmd.OutOrStdout()
			ctx := newContext(func(text string) { fmt.Fprintln(out, text) })

			inv := interp.Parser.Parse(line, ctx)
			if inv == nil {
				name, _ := command.SplitCommand(line)
				if hints := interp.Registry.Suggest(name, 3); len(hints) > 0 {
					fmt.Fprintf(out, "unknown command %q, did you mean: %s\n", name, strings.Join(hints, ", "))
				} else {
					fmt.Fprintf(out, "unknown command %q\n", name)
				}
				return nil
			}
			if inv.Failed {
				return fmt.Errorf("command %q did not run", inv.Command.Name)
			}
			return nil
		},
	}
}
