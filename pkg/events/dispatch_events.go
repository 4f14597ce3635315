package events

// CommandExecutedEvent is published after a handler ran to completion.
type CommandExecutedEvent struct {
	RunID        string
	Command      string // the name the line used, possibly an alias
	OriginalName string
}

// Topic returns the event topic for executed commands
func (e CommandExecutedEvent) Topic() string {
	return "command.executed"
}

// CommandFailedEvent is published when argument validation or a predicate
// check blocked the handler.
type CommandFailedEvent struct {
	RunID        string
	Command      string
	OriginalName string
	Codes        []string // failure codes, uppercased, in argument order
}

// Topic returns the event topic for failed commands
func (e CommandFailedEvent) Topic() string {
	return "command.failed"
}

// CommandDeniedEvent is published when the permission gate rejected the run.
type CommandDeniedEvent struct {
	RunID        string
	Command      string
	OriginalName string
	Permission   string // the permission string that was tested
}

// Topic returns the event topic for denied commands
func (e CommandDeniedEvent) Topic() string {
	return "command.denied"
}
