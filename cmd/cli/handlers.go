package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/snoolib/modcmd/pkg/command"
)

// builtinHandlers is the handler table definition files can bind to by name.
// The CLI is a dry-run surface, so every handler just renders what parsed.
func builtinHandlers(out io.Writer) map[string]command.Handler {
	return map[string]command.Handler{
		"echo": echoHandler(out),
		"dump": dumpHandler(out),
	}
}

// echoHandler prints the command and its values on one line.
func echoHandler(out io.Writer) command.Handler {
	return func(inv *command.Invocation) error {
		parts := make([]string, 0, len(inv.Values))
		for _, k := range sortedKeys(inv.Values) {
			parts = append(parts, fmt.Sprintf("%s=%v", k, inv.Values[k]))
		}
		fmt.Fprintf(out, "%s %s\n", inv.Command.OriginalName, strings.Join(parts, " "))
		return nil
	}
}

// dumpHandler prints each resolved value on its own line. It is also the
// fallback for definitions with no handler binding.
func dumpHandler(out io.Writer) command.Handler {
	return func(inv *command.Invocation) error {
		fmt.Fprintf(out, "%s (run %s)\n", inv.Command.OriginalName, inv.RunID)
		for _, k := range sortedKeys(inv.Values) {
			fmt.Fprintf(out, "  %s: %v\n", k, inv.Values[k])
		}
		return nil
	}
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
