package command

import (
	"fmt"
	"strings"
)

// Failure codes. The lowercase form doubles as the localization key; the
// uppercase form is what a ValidationError carries.
const (
	codeArgumentRequired       = "argument_required"
	codeArgumentInvalid        = "argument_invalid"
	codeUnavailableChoice      = "argument_unavailable_choice"
	codeNoPermission           = "no_permission"
	codeStringNoMatch          = "string_argument_no_match"
	codeStringTooShort         = "string_argument_too_short"
	codeStringTooLong          = "string_argument_too_long"
	codeUserInvalid            = "user_argument_invalid"
	codeUserTooShort           = "user_argument_too_short"
	codeUserTooLong            = "user_argument_too_long"
	codeSubredditInvalid       = "subreddit_argument_invalid"
	codeSubredditTooShort      = "subreddit_argument_too_short"
	codeSubredditTooLong       = "subreddit_argument_too_long"
	codeIntegerInvalid         = "integer_argument_invalid"
	codeIntegerTooSmall        = "integer_argument_too_small"
	codeIntegerTooBig          = "integer_argument_too_big"
	codeDurationInvalid        = "duration_argument_invalid"
	codeCommandUnknown         = "command_argument_unknown"
	codeCommandAliasNotAllowed = "command_argument_alias"
)

// ConfigurationError reports a malformed command specification. It is raised
// at registration time and aborts registration of the offending command;
// nothing else in the interpreter ever raises.
type ConfigurationError struct {
	Command string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Command == "" {
		return "command configuration: " + e.Reason
	}
	return fmt.Sprintf("command %q configuration: %s", e.Command, e.Reason)
}

// ValidationError records one argument failing its type rules. It is a
// returned value, never raised across the dispatch boundary.
type ValidationError struct {
	Type  string   // argument type tag that produced the failure
	Code  string   // uppercased failure code, e.g. "STRING_ARGUMENT_TOO_LONG"
	Arg   *ArgSpec // the descriptor that was being validated
	Value any      // offending value, nil when the token was absent
}

func newValidationError(typ, code string, arg *ArgSpec, value any) *ValidationError {
	return &ValidationError{
		Type:  typ,
		Code:  strings.ToUpper(code),
		Arg:   arg,
		Value: value,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("argument %q: %s", e.Arg.Key, e.MessageCode())
}

// MessageCode returns the lowercase localization key for the failure.
func (e *ValidationError) MessageCode() string {
	return strings.ToLower(e.Code)
}
