package command

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// validator is the capability shared by all argument type variants. The
// dispatcher only calls parse when a token is present; absence is resolved
// by resolveValue, never by a variant.
type validator interface {
	parse(raw string, ctx *Context) (any, *ValidationError)
}

// newValidator selects and constructs the variant for a descriptor's type
// tag. It is the only place the tag set is enumerated.
func newValidator(arg *ArgSpec, reg *Registry) (validator, error) {
	switch arg.typeTag() {
	case TypeGeneric:
		return genericType{}, nil
	case TypeString:
		return newStringType(arg)
	case TypeUser:
		str, err := newStringType(arg)
		if err != nil {
			return nil, err
		}
		return userType{arg: arg, str: str}, nil
	case TypeSubreddit:
		str, err := newStringType(arg)
		if err != nil {
			return nil, err
		}
		return subredditType{arg: arg, str: str}, nil
	case TypeInteger:
		return integerType{arg: arg}, nil
	case TypeDuration:
		return durationType{arg: arg}, nil
	case TypeCommand:
		follow := true
		if arg.FollowAlias != nil {
			follow = *arg.FollowAlias
		}
		return commandType{arg: arg, reg: reg, followAlias: follow}, nil
	case TypeCustom:
		if arg.Parse == nil {
			return nil, fmt.Errorf("custom argument %q has no parse function", arg.Key)
		}
		return customType{arg: arg, reg: reg, fn: arg.Parse}, nil
	}
	return nil, fmt.Errorf("argument %q has unknown type %q", arg.Key, arg.Type)
}

// genericType passes the raw token through untouched.
type genericType struct{}

func (genericType) parse(raw string, _ *Context) (any, *ValidationError) {
	return raw, nil
}

// stringType checks a pattern (match-anything by default) and the exclusive
// length bounds.
type stringType struct {
	arg     *ArgSpec
	pattern *regexp.Regexp
}

func newStringType(arg *ArgSpec) (stringType, error) {
	t := stringType{arg: arg}
	if arg.Matches != "" {
		re, err := regexp.Compile(arg.Matches)
		if err != nil {
			return t, fmt.Errorf("argument %q has invalid pattern: %w", arg.Key, err)
		}
		t.pattern = re
	}
	return t, nil
}

func (t stringType) parse(raw string, _ *Context) (any, *ValidationError) {
	if t.pattern != nil && !t.pattern.MatchString(raw) {
		return nil, newValidationError(t.arg.typeTag(), codeStringNoMatch, t.arg, raw)
	}
	n := utf8.RuneCountInString(raw)
	if t.arg.MaxLength != nil && n >= *t.arg.MaxLength {
		return nil, newValidationError(t.arg.typeTag(), codeStringTooLong, t.arg, raw)
	}
	if t.arg.MinLength != nil && n <= *t.arg.MinLength {
		return nil, newValidationError(t.arg.typeTag(), codeStringTooShort, t.arg, raw)
	}
	return raw, nil
}

var userNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// userType validates a Reddit username, with or without its "u/" prefix, and
// yields the bare name.
type userType struct {
	arg *ArgSpec
	str stringType
}

func (t userType) parse(raw string, ctx *Context) (any, *ValidationError) {
	v, verr := t.str.parse(raw, ctx)
	if verr != nil {
		return nil, verr
	}
	name := v.(string)
	if len(name) >= 2 && strings.EqualFold(name[:2], "u/") {
		name = name[2:]
	}
	if !userNamePattern.MatchString(name) {
		return nil, newValidationError(TypeUser, codeUserInvalid, t.arg, raw)
	}
	if len(name) < 3 {
		return nil, newValidationError(TypeUser, codeUserTooShort, t.arg, raw)
	}
	if len(name) > 20 {
		return nil, newValidationError(TypeUser, codeUserTooLong, t.arg, raw)
	}
	return name, nil
}

var subredditNamePattern = regexp.MustCompile(`^[A-Za-z0-9]\w*$`)

// subredditType validates a subreddit name, with or without its "r/" prefix,
// and yields the bare name.
type subredditType struct {
	arg *ArgSpec
	str stringType
}

func (t subredditType) parse(raw string, ctx *Context) (any, *ValidationError) {
	v, verr := t.str.parse(raw, ctx)
	if verr != nil {
		return nil, verr
	}
	name := v.(string)
	if len(name) >= 2 && strings.EqualFold(name[:2], "r/") {
		name = name[2:]
	}
	if !subredditNamePattern.MatchString(name) {
		return nil, newValidationError(TypeSubreddit, codeSubredditInvalid, t.arg, raw)
	}
	if len(name) < 3 {
		return nil, newValidationError(TypeSubreddit, codeSubredditTooShort, t.arg, raw)
	}
	if len(name) > 20 {
		return nil, newValidationError(TypeSubreddit, codeSubredditTooLong, t.arg, raw)
	}
	return name, nil
}

// integerType parses a base-10 integer from the leading digits of the token,
// accepting partial numeric prefixes the way chat users type them ("7days").
// Magnitude bounds are exclusive.
type integerType struct {
	arg *ArgSpec
}

func (t integerType) parse(raw string, _ *Context) (any, *ValidationError) {
	v, ok := parseIntegerPrefix(raw)
	if !ok {
		return nil, newValidationError(TypeInteger, codeIntegerInvalid, t.arg, raw)
	}
	if t.arg.Max != nil && v >= *t.arg.Max {
		return nil, newValidationError(TypeInteger, codeIntegerTooBig, t.arg, raw)
	}
	if t.arg.Min != nil && v <= *t.arg.Min {
		return nil, newValidationError(TypeInteger, codeIntegerTooSmall, t.arg, raw)
	}
	return v, nil
}

func parseIntegerPrefix(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// durationType parses a human-readable duration expression into milliseconds.
type durationType struct {
	arg *ArgSpec
}

func (t durationType) parse(raw string, _ *Context) (any, *ValidationError) {
	ms, err := ParseDurationMillis(raw)
	if err != nil {
		return nil, newValidationError(TypeDuration, codeDurationInvalid, t.arg, raw)
	}
	return ms, nil
}

// commandType resolves the token against the registry and yields the Filing,
// so handlers can see both the name the user typed and the canonical one.
type commandType struct {
	arg         *ArgSpec
	reg         *Registry
	followAlias bool
}

func (t commandType) parse(raw string, _ *Context) (any, *ValidationError) {
	filing, ok := t.reg.Lookup(raw)
	if !ok {
		return nil, newValidationError(TypeCommand, codeCommandUnknown, t.arg, raw)
	}
	if !t.followAlias && filing.Name != filing.OriginalName {
		return nil, newValidationError(TypeCommand, codeCommandAliasNotAllowed, t.arg, raw)
	}
	return filing, nil
}

// customType delegates entirely to the caller-supplied function.
type customType struct {
	arg *ArgSpec
	reg *Registry
	fn  CustomFunc
}

func (t customType) parse(raw string, ctx *Context) (any, *ValidationError) {
	v, err := t.fn(raw, ctx, t.reg)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, newValidationError(TypeCustom, codeArgumentInvalid, t.arg, raw)
	}
	return v, nil
}
