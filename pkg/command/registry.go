package command

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Registry maps every command name and alias to its canonical record. It
// keeps a single record per command identity plus an alias table, instead of
// filing duplicated record copies under each name.
//
// The registry does no locking: registration is expected to happen at startup
// before lines are parsed, and parsing itself never mutates it.
type Registry struct {
	commands map[string]*Command // canonical name -> record
	aliases  map[string]string   // alias -> canonical name
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}
}

// Register normalizes one or more specifications into command records and
// files them under their canonical names and aliases. A malformed
// specification aborts registration of that command with a
// ConfigurationError; specifications before it stay registered.
func (r *Registry) Register(specs ...*Spec) error {
	for _, s := range specs {
		if err := r.register(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) register(s *Spec) error {
	name := s.Name
	if name == "" {
		name = s.Command
	}
	if name == "" {
		return &ConfigurationError{Reason: "specification has no name"}
	}

	cmd := &Command{
		Name:            name,
		Aliases:         append([]string(nil), s.Aliases...),
		Description:     s.Description,
		LongDescription: s.LongDescription,
		Category:        s.Category,
		Permissionless:  s.Permissionless,
		Arguments:       append([]*ArgSpec(nil), s.Arguments...),
		handler:         s.Handler,
	}
	if s.Check != nil {
		cmd.checks = append(cmd.checks, s.Check)
	}
	cmd.checks = append(cmd.checks, s.Checks...)

	for _, arg := range cmd.Arguments {
		if arg == nil || arg.Key == "" {
			return &ConfigurationError{Command: name, Reason: "argument with no key"}
		}
		v, err := newValidator(arg, r)
		if err != nil {
			return &ConfigurationError{Command: name, Reason: err.Error()}
		}
		cmd.validators = append(cmd.validators, v)
	}

	// Re-registering a name replaces whatever was filed there before,
	// whether it was a canonical record or an alias of another command.
	r.Deregister(name, false)
	r.commands[name] = cmd
	for _, alias := range cmd.Aliases {
		if alias == name {
			continue
		}
		r.Deregister(alias, false)
		r.aliases[alias] = name
	}
	return nil
}

// Lookup resolves a name or alias to its Filing. The Filing's Name always
// equals the looked-up key.
func (r *Registry) Lookup(name string) (*Filing, bool) {
	if cmd, ok := r.commands[name]; ok {
		return &Filing{
			Name:         name,
			OriginalName: cmd.Name,
			Aliases:      append([]string(nil), cmd.Aliases...),
			Command:      cmd,
		}, true
	}
	canonical, ok := r.aliases[name]
	if !ok {
		return nil, false
	}
	cmd, ok := r.commands[canonical]
	if !ok {
		return nil, false
	}
	siblings := make([]string, 0, len(cmd.Aliases))
	siblings = append(siblings, cmd.Name)
	for _, a := range cmd.Aliases {
		if a != name {
			siblings = append(siblings, a)
		}
	}
	return &Filing{
		Name:         name,
		OriginalName: cmd.Name,
		Aliases:      siblings,
		Command:      cmd,
	}, true
}

// Deregister removes a command. With includeAliases the whole identity goes:
// the canonical record and every alias pointing at it, resolved from either
// end. Without it only the exact key is removed; removing a canonical name
// this way still drops its alias links, since an alias cannot outlive the
// record it points to.
func (r *Registry) Deregister(name string, includeAliases bool) {
	if canonical, ok := r.aliases[name]; ok {
		if !includeAliases {
			delete(r.aliases, name)
			return
		}
		name = canonical
	}
	cmd, ok := r.commands[name]
	if !ok {
		return
	}
	delete(r.commands, name)
	for _, a := range cmd.Aliases {
		if r.aliases[a] == name {
			delete(r.aliases, a)
		}
	}
}

// Clear empties the registry.
func (r *Registry) Clear() {
	r.commands = make(map[string]*Command)
	r.aliases = make(map[string]string)
}

// All returns every canonical command record, sorted by name.
func (r *Registry) All() []*Command {
	list := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

// Names returns every registered name and alias, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands)+len(r.aliases))
	for n := range r.commands {
		names = append(names, n)
	}
	for a := range r.aliases {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of canonical commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

const suggestionThreshold = 0.5

// Suggest returns up to max registered names similar to the given one, best
// match first. Hosts can use this to hint after an unknown command; the
// parser itself stays silent on unknown names.
func (r *Registry) Suggest(name string, max int) []string {
	if max <= 0 {
		return nil
	}
	type scored struct {
		name  string
		ratio float64
	}
	target := strings.Split(strings.ToLower(name), "")
	var candidates []scored
	for _, n := range r.Names() {
		m := difflib.NewMatcher(target, strings.Split(strings.ToLower(n), ""))
		if ratio := m.Ratio(); ratio >= suggestionThreshold {
			candidates = append(candidates, scored{name: n, ratio: ratio})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
	})
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}
