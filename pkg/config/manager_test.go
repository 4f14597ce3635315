package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvManager(t *testing.T) {
	m := NewManager()

	t.Run("get string", func(t *testing.T) {
		t.Setenv("MODCMD_TEST_KEY", "value")

		got, err := m.GetString("MODCMD_TEST_KEY")
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	})

	t.Run("missing key errors", func(t *testing.T) {
		_, err := m.GetString("MODCMD_TEST_MISSING")
		assert.Error(t, err)
	})

	t.Run("default applies when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", m.GetStringWithDefault("MODCMD_TEST_MISSING", "fallback"))
	})

	t.Run("bool values", func(t *testing.T) {
		t.Setenv("MODCMD_TEST_BOOL", "true")
		assert.True(t, m.GetBool("MODCMD_TEST_BOOL"))

		t.Setenv("MODCMD_TEST_BOOL", "0")
		assert.False(t, m.GetBool("MODCMD_TEST_BOOL"))
	})
}
