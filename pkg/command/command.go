package command

// Handler is the side-effecting action invoked when a line fully parses,
// passes its gates, and validates every argument.
type Handler func(inv *Invocation) error

// Predicate gates handler invocation after arguments resolve. All predicates
// of a command must accept; they are expected to be side-effect-free with
// respect to the registry.
type Predicate func(inv *Invocation) bool

// Spec is the registration input for one command. Either Name or Command
// must be set; registration fails with a ConfigurationError otherwise.
type Spec struct {
	Name            string
	Command         string // accepted alternative to Name
	Aliases         []string
	Description     string
	LongDescription string
	Category        string
	Permissionless  bool
	Arguments       []*ArgSpec
	Check           Predicate   // single predicate, runs before Checks
	Checks          []Predicate // all must accept
	Handler         Handler
}

// Command is the canonical record for one registered command. There is
// exactly one Command per identity no matter how many aliases it is filed
// under; the per-name view is a Filing.
type Command struct {
	Name            string // canonical name
	Aliases         []string
	Description     string
	LongDescription string
	Category        string
	Permissionless  bool
	Arguments       []*ArgSpec

	checks     []Predicate
	handler    Handler
	validators []validator // one per argument, built at registration
}

// Permission returns the permission string gating this command, e.g.
// "commands.mod.ban" for command "ban" in category "mod".
func (c *Command) Permission() string {
	if c.Category != "" {
		return "commands." + c.Category + "." + c.Name
	}
	return "commands." + c.Name
}

// Filing is the registry's view of a command under one particular name.
// Looking up an alias yields a Filing whose Name is that alias and whose
// OriginalName is the canonical identity; Aliases lists the sibling names,
// excluding Name itself.
type Filing struct {
	Name         string
	OriginalName string
	Aliases      []string
	Command      *Command
}
