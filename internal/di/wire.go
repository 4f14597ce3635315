//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/snoolib/modcmd/pkg/command"
	"github.com/snoolib/modcmd/pkg/events"
)

// InjectInterpreter is a wire injector assembling a fresh interpreter.
func InjectInterpreter() *Interpreter {
	wire.Build(
		events.NewEventBus,
		command.New,
		provideParser,
		newInterpreter,
	)
	return nil
}
