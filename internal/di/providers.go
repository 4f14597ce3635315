// Package di assembles the interpreter's pieces for the CLI. Library users
// construct their own registry and parser directly.
package di

import (
	"github.com/snoolib/modcmd/pkg/command"
	"github.com/snoolib/modcmd/pkg/events"
	"github.com/snoolib/modcmd/pkg/logging"
)

// Interpreter bundles a registry, the parser over it, and the event bus the
// parser publishes on.
type Interpreter struct {
	Registry *command.Registry
	Parser   *command.Parser
	Bus      events.EventBus
}

func newInterpreter(reg *command.Registry, parser *command.Parser, bus events.EventBus) *Interpreter {
	return &Interpreter{
		Registry: reg,
		Parser:   parser,
		Bus:      bus,
	}
}

func provideParser(reg *command.Registry, bus events.EventBus) *command.Parser {
	return command.NewParser(reg,
		command.WithPublisher(bus),
		command.WithLogger(logging.NewComponentLogger("parser")),
	)
}
