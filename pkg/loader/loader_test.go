package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snoolib/modcmd/pkg/command"
)

const banYAML = `
name: ban
aliases: [b]
category: mod
description: Ban a user
handler: ban
arguments:
  - key: target
    type: user
    required: true
  - key: duration
    type: duration
    default: 604800000
  - key: ban_reason
    type: string
`

func writeDefinition(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("registers the definition with its handler", func(t *testing.T) {
		reg := command.New()
		var ran bool
		ld := New(reg, map[string]command.Handler{
			"ban": func(*command.Invocation) error { ran = true; return nil },
		})

		path := writeDefinition(t, t.TempDir(), "ban.yaml", banYAML)
		require.NoError(t, ld.LoadFile(path))

		filing, ok := reg.Lookup("b")
		require.True(t, ok)
		assert.Equal(t, "ban", filing.OriginalName)
		assert.Equal(t, "mod", filing.Command.Category)

		parser := command.NewParser(reg)
		inv := parser.Parse("ban u/someuser", nil)
		require.NotNil(t, inv)
		assert.True(t, ran)
		assert.Equal(t, int64(604800000), inv.Values["duration"], "integer default widened to int64")
	})

	t.Run("unknown handler fails the file", func(t *testing.T) {
		reg := command.New()
		ld := New(reg, nil)

		path := writeDefinition(t, t.TempDir(), "ban.yaml", banYAML)
		err := ld.LoadFile(path)
		require.Error(t, err)
		assert.Equal(t, 0, reg.Len())
	})

	t.Run("fallback handler rescues unknown bindings", func(t *testing.T) {
		reg := command.New()
		var ran bool
		ld := New(reg, nil, WithFallbackHandler(func(*command.Invocation) error {
			ran = true
			return nil
		}))

		path := writeDefinition(t, t.TempDir(), "ban.yaml", banYAML)
		require.NoError(t, ld.LoadFile(path))

		command.NewParser(reg).Parse("ban u/someuser", nil)
		assert.True(t, ran)
	})

	t.Run("malformed yaml aborts with an error", func(t *testing.T) {
		reg := command.New()
		ld := New(reg, nil, WithFallbackHandler(func(*command.Invocation) error { return nil }))

		path := writeDefinition(t, t.TempDir(), "bad.yaml", "{nope")
		assert.Error(t, ld.LoadFile(path))
	})

	t.Run("nameless definition aborts with a configuration error", func(t *testing.T) {
		reg := command.New()
		ld := New(reg, nil, WithFallbackHandler(func(*command.Invocation) error { return nil }))

		path := writeDefinition(t, t.TempDir(), "anon.yaml", "description: who am i\n")
		err := ld.LoadFile(path)

		var cfgErr *command.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestLoadDir(t *testing.T) {
	fallback := func(*command.Invocation) error { return nil }

	t.Run("loads every definition file recursively", func(t *testing.T) {
		dir := t.TempDir()
		writeDefinition(t, dir, "ban.yaml", banYAML)
		sub := filepath.Join(dir, "misc")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		writeDefinition(t, sub, "ping.yml", "name: ping\n")
		writeDefinition(t, dir, "notes.txt", "not a definition")

		reg := command.New()
		ld := New(reg, nil, WithFallbackHandler(fallback))
		require.NoError(t, ld.LoadDir(dir))

		assert.Equal(t, 2, reg.Len())
	})

	t.Run("missing directory loads nothing", func(t *testing.T) {
		reg := command.New()
		ld := New(reg, nil, WithFallbackHandler(fallback))

		require.NoError(t, ld.LoadDir(filepath.Join(t.TempDir(), "absent")))
		assert.Equal(t, 0, reg.Len())
	})
}
