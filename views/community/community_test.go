package community

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out := Render(150)
	require.Contains(t, out, "Community call scheduled next month.")
	require.Contains(t, out, "Sep 15, 2025")
}
