package command

import (
	"strings"

	"github.com/google/uuid"
	"github.com/snoolib/modcmd/pkg/events"
	"github.com/snoolib/modcmd/pkg/logging"
)

// Context carries the host-supplied capabilities for one parse call. Every
// field is optional; a zero Context parses and dispatches without messages
// or permission gating.
type Context struct {
	// Localize returns the user-facing message for a failure code, or false
	// when the host has no message for it. Failure codes fall back to the
	// generic "argument_invalid" message parameterized by the localized
	// "argument_type_<type>" name.
	Localize func(code string, params ...any) (string, bool)

	// Send delivers a user-facing message, e.g. a chat reply.
	Send func(text string)

	// HasPermission tests a permission string such as "commands.mod.ban".
	// When nil, no permission gating happens at all.
	HasPermission func(permission string) bool

	// Extra fields are copied into the assembled values before argument
	// values, so handlers see the caller's context alongside what parsed.
	Extra map[string]any
}

// Invocation is the assembled result of one parse call. It is returned even
// when validation or gating failed, so callers can inspect what was parsed;
// only an empty line or an unknown command yields no Invocation at all.
type Invocation struct {
	RunID   string
	Command *Filing
	Context *Context

	// Values holds the caller's Extra fields plus every resolved argument,
	// each under its literal key and a camelCase twin.
	Values map[string]any

	// Errors collects every argument failure, in argument order.
	Errors []*ValidationError

	Failed  bool // any validation or gating failure
	Handled bool // the handler actually ran
}

// String returns the string value for a key, or "" when unset or not a string.
func (inv *Invocation) String(key string) string {
	s, _ := inv.Values[key].(string)
	return s
}

// Int returns the int64 value for a key, or 0 when unset or not an integer.
func (inv *Invocation) Int(key string) int64 {
	n, _ := inv.Values[key].(int64)
	return n
}

// Parser drives the tokenize, resolve, gate, validate, invoke pipeline
// against one registry. One Parse call is one synchronous unit of work.
type Parser struct {
	registry *Registry
	log      logging.Logger
	bus      events.Publisher
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the parser's logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithPublisher makes the parser publish command.executed, command.failed,
// and command.denied events on the given bus.
func WithPublisher(bus events.Publisher) Option {
	return func(p *Parser) { p.bus = bus }
}

// NewParser returns a parser over the given registry.
func NewParser(reg *Registry, opts ...Option) *Parser {
	p := &Parser{
		registry: reg,
		log:      logging.NewDisabledLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the registry the parser resolves against.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Parse interprets one line of input. An empty line or an unknown command
// name is a silent no-op returning nil; the text probably was not meant as a
// command. Otherwise the assembled Invocation is returned, its handler having
// run only when the permission gate, every argument, and every predicate
// passed. Validation keeps going past the first failing argument so the user
// hears about every problem at once.
func (p *Parser) Parse(line string, ctx *Context) *Invocation {
	if ctx == nil {
		ctx = &Context{}
	}
	name, rest := SplitCommand(line)
	if name == "" {
		return nil
	}
	filing, ok := p.registry.Lookup(name)
	if !ok {
		p.log.Debug("unknown command", "name", name)
		return nil
	}
	cmd := filing.Command

	inv := &Invocation{
		RunID:   uuid.NewString(),
		Command: filing,
		Context: ctx,
		Values:  make(map[string]any, len(ctx.Extra)+2*len(cmd.Arguments)),
	}
	for k, v := range ctx.Extra {
		inv.Values[k] = v
	}

	denied := false
	if ctx.HasPermission != nil && !cmd.Permissionless {
		if perm := cmd.Permission(); !ctx.HasPermission(perm) {
			denied = true
			inv.Failed = true
			p.log.Debug("permission denied", "run", inv.RunID, "command", cmd.Name, "permission", perm)
			p.sendMessage(ctx, codeNoPermission, filing.Name)
			p.publish(events.CommandDeniedEvent{
				RunID:        inv.RunID,
				Command:      filing.Name,
				OriginalName: filing.OriginalName,
				Permission:   perm,
			})
		}
	}

	// Even a denied or failing run validates every argument, so the caller
	// can still see what the line carried.
	tokens := Tokenize(rest, len(cmd.Arguments))
	for i, arg := range cmd.Arguments {
		raw, present := "", false
		if i < len(tokens) {
			raw, present = tokens[i], true
		}
		var v any
		var verr *ValidationError
		if present {
			v, verr = cmd.validators[i].parse(unquote(raw), ctx)
		}
		v, absent, verr := resolveValue(arg, v, verr, !present)
		if verr != nil {
			inv.Failed = true
			inv.Errors = append(inv.Errors, verr)
			p.log.Debug("argument failed", "run", inv.RunID, "key", arg.Key, "code", verr.Code)
			p.reportFailure(ctx, verr)
			continue
		}
		if absent {
			continue
		}
		inv.Values[arg.Key] = v
		if camel := camelKey(arg.Key); camel != arg.Key {
			inv.Values[camel] = v
		}
	}

	if !inv.Failed {
		for _, check := range cmd.checks {
			if !check(inv) {
				inv.Failed = true
				p.log.Debug("predicate rejected", "run", inv.RunID, "command", cmd.Name)
				break
			}
		}
	}

	if inv.Failed {
		if !denied {
			p.publish(events.CommandFailedEvent{
				RunID:        inv.RunID,
				Command:      filing.Name,
				OriginalName: filing.OriginalName,
				Codes:        failureCodes(inv.Errors),
			})
		}
		return inv
	}

	if cmd.handler != nil {
		if err := cmd.handler(inv); err != nil {
			p.log.Error("handler failed", "run", inv.RunID, "command", cmd.Name, "error", err)
		}
		inv.Handled = true
	}
	p.publish(events.CommandExecutedEvent{
		RunID:        inv.RunID,
		Command:      filing.Name,
		OriginalName: filing.OriginalName,
	})
	return inv
}

func (p *Parser) publish(event interface{ Topic() string }) {
	if p.bus != nil {
		p.bus.Publish(event.Topic(), event)
	}
}

// reportFailure surfaces a validation failure to the user right away. With no
// localizer or no send channel the failure stays silent but still recorded.
func (p *Parser) reportFailure(ctx *Context, verr *ValidationError) {
	if ctx.Send == nil || ctx.Localize == nil {
		return
	}
	if msg, ok := ctx.Localize(verr.MessageCode(), verr.Arg, verr.Value); ok {
		ctx.Send(msg)
		return
	}
	typeName := verr.Type
	if tn, ok := ctx.Localize("argument_type_" + verr.Type); ok {
		typeName = tn
	}
	if msg, ok := ctx.Localize(codeArgumentInvalid, verr.Arg, typeName); ok {
		ctx.Send(msg)
	}
}

func (p *Parser) sendMessage(ctx *Context, code string, params ...any) {
	if ctx.Send == nil || ctx.Localize == nil {
		return
	}
	if msg, ok := ctx.Localize(code, params...); ok {
		ctx.Send(msg)
	}
}

func failureCodes(errs []*ValidationError) []string {
	if len(errs) == 0 {
		return nil
	}
	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	return codes
}

// unquote strips one pair of surrounding double quotes. Tokens keep their
// quotes through tokenization; values do not.
func unquote(tok string) string {
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return tok[1 : len(tok)-1]
	}
	return tok
}

// camelKey converts a snake_case key to its camelCase twin, so handlers can
// read either "ban_reason" or "banReason".
func camelKey(key string) string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return key
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
