package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newListCommand prints the registered commands.
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List registered commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range interp.Registry.All() {
				line := c.Name
				if len(c.Aliases) > 0 {
					line += " (" + strings.Join(c.Aliases, ", ") + ")"
				}
				if c.Description != "" {
					line += " - " + c.Description
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
