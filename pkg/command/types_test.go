package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int       { return &n }
func int64Ptr(n int64) *int64 { return &n }
func boolPtr(b bool) *bool    { return &b }

func mustValidator(t *testing.T, arg *ArgSpec, reg *Registry) validator {
	t.Helper()
	v, err := newValidator(arg, reg)
	require.NoError(t, err)
	return v
}

func TestGenericType(t *testing.T) {
	v := mustValidator(t, &ArgSpec{Key: "raw"}, New())

	got, verr := v.parse("anything at all", nil)
	require.Nil(t, verr)
	assert.Equal(t, "anything at all", got)
}

func TestStringType(t *testing.T) {
	t.Run("exclusive minimum bound", func(t *testing.T) {
		arg := &ArgSpec{Key: "s", Type: TypeString, MinLength: intPtr(3)}
		v := mustValidator(t, arg, New())

		_, verr := v.parse("abc", nil)
		require.NotNil(t, verr, "length exactly 3 fails the exclusive bound")
		assert.Equal(t, "STRING_ARGUMENT_TOO_SHORT", verr.Code)

		got, verr := v.parse("abcd", nil)
		require.Nil(t, verr)
		assert.Equal(t, "abcd", got)
	})

	t.Run("exclusive maximum bound", func(t *testing.T) {
		arg := &ArgSpec{Key: "s", Type: TypeString, MaxLength: intPtr(5)}
		v := mustValidator(t, arg, New())

		_, verr := v.parse("abcde", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "STRING_ARGUMENT_TOO_LONG", verr.Code)

		_, verr = v.parse("abcd", nil)
		assert.Nil(t, verr)
	})

	t.Run("pattern", func(t *testing.T) {
		arg := &ArgSpec{Key: "s", Type: TypeString, Matches: `^[a-z]+$`}
		v := mustValidator(t, arg, New())

		_, verr := v.parse("abc123", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "STRING_ARGUMENT_NO_MATCH", verr.Code)

		_, verr = v.parse("abc", nil)
		assert.Nil(t, verr)
	})

	t.Run("no constraints matches anything", func(t *testing.T) {
		v := mustValidator(t, &ArgSpec{Key: "s", Type: TypeString}, New())

		got, verr := v.parse("", nil)
		require.Nil(t, verr)
		assert.Equal(t, "", got)
	})
}

func TestUserType(t *testing.T) {
	v := mustValidator(t, &ArgSpec{Key: "u", Type: TypeUser}, New())

	tests := []struct {
		name     string
		raw      string
		want     any
		wantCode string
	}{
		{"prefixed handle", "u/Bob_2", "Bob_2", ""},
		{"uppercase prefix", "U/Bob_2", "Bob_2", ""},
		{"bare handle", "Bob_2", "Bob_2", ""},
		{"hyphenated ok", "some-user", "some-user", ""},
		{"too short", "u/a", nil, "USER_ARGUMENT_TOO_SHORT"},
		{"too long", "u/abcdefghijklmnopqrstu", nil, "USER_ARGUMENT_TOO_LONG"},
		{"bad characters", "u/some one", nil, "USER_ARGUMENT_INVALID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := v.parse(tt.raw, nil)
			if tt.wantCode != "" {
				require.NotNil(t, verr)
				assert.Equal(t, tt.wantCode, verr.Code)
				return
			}
			require.Nil(t, verr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubredditType(t *testing.T) {
	v := mustValidator(t, &ArgSpec{Key: "sub", Type: TypeSubreddit}, New())

	tests := []struct {
		name     string
		raw      string
		want     any
		wantCode string
	}{
		{"prefixed name", "r/golang", "golang", ""},
		{"bare name", "golang", "golang", ""},
		{"digit start", "3dprinting", "3dprinting", ""},
		{"underscore start rejected", "_hidden", nil, "SUBREDDIT_ARGUMENT_INVALID"},
		{"too short", "r/ab", nil, "SUBREDDIT_ARGUMENT_TOO_SHORT"},
		{"too long", "r/abcdefghijklmnopqrstu", nil, "SUBREDDIT_ARGUMENT_TOO_LONG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := v.parse(tt.raw, nil)
			if tt.wantCode != "" {
				require.NotNil(t, verr)
				assert.Equal(t, tt.wantCode, verr.Code)
				return
			}
			require.Nil(t, verr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntegerType(t *testing.T) {
	t.Run("plain integers", func(t *testing.T) {
		v := mustValidator(t, &ArgSpec{Key: "n", Type: TypeInteger}, New())

		got, verr := v.parse("42", nil)
		require.Nil(t, verr)
		assert.Equal(t, int64(42), got)

		got, verr = v.parse("-7", nil)
		require.Nil(t, verr)
		assert.Equal(t, int64(-7), got)
	})

	t.Run("numeric prefix is accepted", func(t *testing.T) {
		v := mustValidator(t, &ArgSpec{Key: "n", Type: TypeInteger}, New())

		got, verr := v.parse("7days", nil)
		require.Nil(t, verr)
		assert.Equal(t, int64(7), got)
	})

	t.Run("not a number", func(t *testing.T) {
		v := mustValidator(t, &ArgSpec{Key: "n", Type: TypeInteger}, New())

		_, verr := v.parse("days", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "INTEGER_ARGUMENT_INVALID", verr.Code)
	})

	t.Run("exclusive bounds", func(t *testing.T) {
		arg := &ArgSpec{Key: "n", Type: TypeInteger, Min: int64Ptr(0), Max: int64Ptr(10)}
		v := mustValidator(t, arg, New())

		_, verr := v.parse("10", nil)
		require.NotNil(t, verr, "value equal to max fails")
		assert.Equal(t, "INTEGER_ARGUMENT_TOO_BIG", verr.Code)

		got, verr := v.parse("9", nil)
		require.Nil(t, verr)
		assert.Equal(t, int64(9), got)

		_, verr = v.parse("0", nil)
		require.NotNil(t, verr, "value equal to min fails")
		assert.Equal(t, "INTEGER_ARGUMENT_TOO_SMALL", verr.Code)
	})
}

func TestDurationType(t *testing.T) {
	v := mustValidator(t, &ArgSpec{Key: "d", Type: TypeDuration}, New())

	got, verr := v.parse("1 week", nil)
	require.Nil(t, verr)
	assert.Equal(t, int64(7*24*60*60*1000), got)

	_, verr = v.parse("whenever", nil)
	require.NotNil(t, verr)
	assert.Equal(t, "DURATION_ARGUMENT_INVALID", verr.Code)
}

func TestCommandType(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(&Spec{Name: "ban", Aliases: []string{"b"}}))

	t.Run("resolves canonical and alias filings", func(t *testing.T) {
		v := mustValidator(t, &ArgSpec{Key: "c", Type: TypeCommand}, reg)

		got, verr := v.parse("b", nil)
		require.Nil(t, verr)
		filing := got.(*Filing)
		assert.Equal(t, "b", filing.Name)
		assert.Equal(t, "ban", filing.OriginalName)
	})

	t.Run("unknown name fails", func(t *testing.T) {
		v := mustValidator(t, &ArgSpec{Key: "c", Type: TypeCommand}, reg)

		_, verr := v.parse("nope", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "COMMAND_ARGUMENT_UNKNOWN", verr.Code)
	})

	t.Run("alias rejected when alias-following is off", func(t *testing.T) {
		arg := &ArgSpec{Key: "c", Type: TypeCommand, FollowAlias: boolPtr(false)}
		v := mustValidator(t, arg, reg)

		_, verr := v.parse("b", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "COMMAND_ARGUMENT_ALIAS", verr.Code)

		_, verr = v.parse("ban", nil)
		assert.Nil(t, verr)
	})
}

func TestCustomType(t *testing.T) {
	t.Run("value passes through", func(t *testing.T) {
		arg := &ArgSpec{
			Key:  "v",
			Type: TypeCustom,
			Parse: func(raw string, _ *Context, _ *Registry) (any, error) {
				return len(raw), nil
			},
		}
		v := mustValidator(t, arg, New())

		got, verr := v.parse("four", nil)
		require.Nil(t, verr)
		assert.Equal(t, 4, got)
	})

	t.Run("plain error becomes a generic failure", func(t *testing.T) {
		arg := &ArgSpec{
			Key:  "v",
			Type: TypeCustom,
			Parse: func(string, *Context, *Registry) (any, error) {
				return nil, errors.New("nope")
			},
		}
		v := mustValidator(t, arg, New())

		_, verr := v.parse("x", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "ARGUMENT_INVALID", verr.Code)
	})

	t.Run("validation error keeps its code", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Type: TypeCustom}
		arg.Parse = func(raw string, _ *Context, _ *Registry) (any, error) {
			return nil, newValidationError(TypeCustom, "custom_code", arg, raw)
		}
		v := mustValidator(t, arg, New())

		_, verr := v.parse("x", nil)
		require.NotNil(t, verr)
		assert.Equal(t, "CUSTOM_CODE", verr.Code)
	})

	t.Run("missing parse function is a factory error", func(t *testing.T) {
		_, err := newValidator(&ArgSpec{Key: "v", Type: TypeCustom}, New())
		assert.Error(t, err)
	})
}

func TestResolveValue(t *testing.T) {
	t.Run("required and absent", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Required: true}
		_, _, verr := resolveValue(arg, nil, nil, true)
		require.NotNil(t, verr)
		assert.Equal(t, "ARGUMENT_REQUIRED", verr.Code)
	})

	t.Run("default fills absence", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Default: "fallback"}
		v, absent, verr := resolveValue(arg, nil, nil, true)
		require.Nil(t, verr)
		assert.False(t, absent)
		assert.Equal(t, "fallback", v)
	})

	t.Run("default replaces a failed value", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Default: "fallback"}
		verrIn := newValidationError(TypeString, codeStringTooShort, arg, "x")
		v, absent, verr := resolveValue(arg, nil, verrIn, false)
		require.Nil(t, verr)
		assert.False(t, absent)
		assert.Equal(t, "fallback", v)
	})

	t.Run("default never overrides a successful value", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Default: "fallback"}
		v, _, verr := resolveValue(arg, "given", nil, false)
		require.Nil(t, verr)
		assert.Equal(t, "given", v)
	})

	t.Run("absent optional without default stays absent", func(t *testing.T) {
		arg := &ArgSpec{Key: "v"}
		_, absent, verr := resolveValue(arg, nil, nil, true)
		require.Nil(t, verr)
		assert.True(t, absent)
	})

	t.Run("choices accept members", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Choices: []any{"red", "blue"}}
		v, _, verr := resolveValue(arg, "red", nil, false)
		require.Nil(t, verr)
		assert.Equal(t, "red", v)
	})

	t.Run("choices reject non-members", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Choices: []any{"red", "blue"}}
		_, _, verr := resolveValue(arg, "green", nil, false)
		require.NotNil(t, verr)
		assert.Equal(t, "ARGUMENT_UNAVAILABLE_CHOICE", verr.Code)
	})

	t.Run("choices compare across integer widths", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Choices: []any{1, 2, 3}}
		v, _, verr := resolveValue(arg, int64(2), nil, false)
		require.Nil(t, verr)
		assert.Equal(t, int64(2), v)
	})

	t.Run("a default outside the choices is rejected at call time", func(t *testing.T) {
		arg := &ArgSpec{Key: "v", Choices: []any{"red"}, Default: "green"}
		_, _, verr := resolveValue(arg, nil, nil, true)
		require.NotNil(t, verr)
		assert.Equal(t, "ARGUMENT_UNAVAILABLE_CHOICE", verr.Code)
	})
}
