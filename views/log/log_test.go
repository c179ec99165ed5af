package log

import (
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/require"
)

func TestPanelHeight(t *testing.T) {
	require.Equal(t, 4, PanelHeight(12))
	require.Equal(t, 10, PanelHeight(30))
	require.Equal(t, 15, PanelHeight(100))
}

func TestRender(t *testing.T) {
	vp := viewport.New(60, 5)
	require.Contains(t, Render(80, 30, false, "…", vp), "initializing")

	vp.SetContent("12:00:00 INFO Wallet connected")
	require.Contains(t, Render(80, 30, true, "", vp), "Wallet connected")
}
