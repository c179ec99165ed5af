package developer

import (
	"testing"

	"quantumguard-tui/guardian"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out := Render(120)
	for _, topic := range guardian.DeveloperTopics {
		require.Contains(t, out, topic.Title)
	}
	require.Contains(t, out, "developer.algorand.org")
}
