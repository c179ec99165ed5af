package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadedAt(t *testing.T) {
	require.Equal(t, "loading…", LoadedAt(time.Now(), true))
	require.Equal(t, "never", LoadedAt(time.Time{}, false))
	require.Equal(t, "09:05:07", LoadedAt(time.Date(2025, 1, 1, 9, 5, 7, 0, time.UTC), false))
}

func TestAgo(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "just now", Ago(now.Add(-10*time.Second), now))
	require.Equal(t, "5m ago", Ago(now.Add(-5*time.Minute), now))
	require.Equal(t, "3h ago", Ago(now.Add(-3*time.Hour), now))
	require.Equal(t, "Sep 28", Ago(now.Add(-72*time.Hour), now))
}

func TestFadeStringKeepsText(t *testing.T) {
	require.Empty(t, FadeString("", "#7EE787", "#82CFFD"))
	out := FadeString("quantum guard", "#7EE787", "#82CFFD")
	require.Equal(t, "quantum guard", stripANSI(out))
}

func TestBar(t *testing.T) {
	require.Equal(t, "█████░░░░░", Bar(50, 10))
	require.Equal(t, "░░░░", Bar(-3, 4))
	require.Equal(t, "████", Bar(250, 4))
	require.Empty(t, Bar(50, 0))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "quan…", Truncate("quantum", 5))
	require.Equal(t, "…", Truncate("quantum", 1))
	require.Empty(t, Truncate("quantum", 0))
}

func TestMinMax(t *testing.T) {
	require.Equal(t, 3, Max(3, -1))
	require.Equal(t, -1, Min(3, -1))
}

// stripANSI drops SGR escape sequences
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
