package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMillis(t *testing.T) {
	tests := []struct {
		expr string
		want int64
	}{
		{"250ms", 250},
		{"1s", 1000},
		{"5 seconds", 5000},
		{"3 min", 3 * 60 * 1000},
		{"2h", 2 * 60 * 60 * 1000},
		{"3d", 3 * 24 * 60 * 60 * 1000},
		{"1 week", 7 * 24 * 60 * 60 * 1000},
		{"1h 30m", 90 * 60 * 1000},
		{"1.5h", 90 * 60 * 1000},
		{"12 months", msPerYear},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseDurationMillis(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationExtendedUnits(t *testing.T) {
	year, err := ParseDurationMillis("1 year")
	require.NoError(t, err)

	decade, err := ParseDurationMillis("1 decade")
	require.NoError(t, err)
	assert.Equal(t, 10*year, decade)

	century, err := ParseDurationMillis("1 century")
	require.NoError(t, err)
	assert.Equal(t, 10*decade, century)

	millennium, err := ParseDurationMillis("2 millennia")
	require.NoError(t, err)
	assert.Equal(t, 20*century, millennium)
}

func TestParseDurationInvalid(t *testing.T) {
	for _, expr := range []string{"", "soon", "1", "1 fortnight", "week 1", "1week nonsense"} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseDurationMillis(expr)
			assert.Error(t, err)
		})
	}
}
