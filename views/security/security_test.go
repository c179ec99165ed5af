package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out := Render(150, 2)
	require.Contains(t, out, "Key Management")
	require.Contains(t, out, "2 active alerts")
	require.NotContains(t, Render(150, 0), "active alert")
}

func TestPlural(t *testing.T) {
	require.Equal(t, "1 active alert", plural(1, "active alert"))
	require.Equal(t, "3 active alerts", plural(3, "active alert"))
}
