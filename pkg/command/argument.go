package command

// Argument type tags. Unknown tags are rejected at registration time.
const (
	TypeGeneric   = "generic"
	TypeString    = "string"
	TypeInteger   = "integer"
	TypeDuration  = "duration"
	TypeUser      = "user"
	TypeSubreddit = "subreddit"
	TypeCommand   = "command"
	TypeCustom    = "custom"
)

// CustomFunc validates a token for a TypeCustom argument. It receives the raw
// token, the parse context, and the registry the command lives in. Returning
// a *ValidationError keeps its code; any other error is reported as a generic
// invalid-argument failure.
type CustomFunc func(raw string, ctx *Context, reg *Registry) (any, error)

// ArgSpec declares one positional argument of a command. Immutable once the
// command is registered.
//
// An empty Type means TypeGeneric. Bound fields are optional; note that the
// length and magnitude bounds are exclusive: a string of exactly MinLength
// characters fails, as does an integer equal to Max. That mirrors the
// behavior moderators have relied on and is kept as the documented contract.
type ArgSpec struct {
	Key         string
	Type        string
	Description string
	Required    bool
	Default     any
	Choices     []any

	// TypeString and the handle types built on it
	MinLength *int
	MaxLength *int
	Matches   string // regular expression the value must match

	// TypeInteger
	Min *int64
	Max *int64

	// TypeCommand; nil means aliases resolve like canonical names
	FollowAlias *bool

	// TypeCustom
	Parse CustomFunc
}

func (a *ArgSpec) typeTag() string {
	if a.Type == "" {
		return TypeGeneric
	}
	return a.Type
}

// resolveValue is the single place where required, default, and choices
// semantics live. It runs identically for every argument type: a required
// argument with no token fails; a configured default replaces an absent or
// failed value (but never a successful one); a choices set then constrains
// whatever value remains.
//
// The returned bool reports whether the value is still absent after
// resolution, in which case no value is recorded for the argument.
func resolveValue(arg *ArgSpec, v any, verr *ValidationError, absent bool) (any, bool, *ValidationError) {
	if arg.Required && absent {
		return nil, true, newValidationError(arg.typeTag(), codeArgumentRequired, arg, nil)
	}
	if (absent || verr != nil) && arg.Default != nil {
		v, verr, absent = arg.Default, nil, false
	}
	if verr != nil {
		return nil, false, verr
	}
	if absent {
		return nil, true, nil
	}
	if len(arg.Choices) > 0 && !isChoice(v, arg.Choices) {
		return nil, false, newValidationError(arg.typeTag(), codeUnavailableChoice, arg, v)
	}
	return v, false, nil
}

func isChoice(v any, choices []any) bool {
	for _, c := range choices {
		if normalizeChoice(c) == normalizeChoice(v) {
			return true
		}
	}
	return false
}

// normalizeChoice widens integer kinds so a literal choice of 10 matches the
// int64 the integer type produces.
func normalizeChoice(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case float32:
		return float64(n)
	}
	return v
}
