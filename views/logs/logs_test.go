package logs

import (
	"testing"
	"time"

	"quantumguard-tui/guardian"

	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	cols := Columns(140)
	require.Len(t, cols, 6)
	require.Equal(t, "Description", cols[5].Title)
	require.Equal(t, 20, Columns(10)[5].Width)
}

func TestRowsFollowFilter(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	records := guardian.FilterLogs(guardian.SampleLogs(now), guardian.LogThreat, "")
	rows := Rows(records)
	require.Len(t, rows, 2)
	require.Equal(t, "11:58:00", rows[0][0])
	require.Equal(t, "threat", rows[0][1])
	require.Equal(t, "Transaction Monitor", rows[0][3])
}

func TestRenderEmpty(t *testing.T) {
	tbl := NewTable(120)
	out := Render(guardian.LogBlocked, "", tbl, 0, 4)
	require.Contains(t, out, "No events match")
	require.Contains(t, out, "0 of 4 events")
	require.Contains(t, out, "Blocked")
}
