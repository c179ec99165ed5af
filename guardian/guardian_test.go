package guardian

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func TestFilterLogs(t *testing.T) {
	logs := SampleLogs(now)

	t.Run("all sorted newest first", func(t *testing.T) {
		got := FilterLogs(logs, LogAll, "")
		require.Len(t, got, 4)
		for i := 1; i < len(got); i++ {
			require.True(t, got[i-1].Timestamp.After(got[i].Timestamp))
		}
	})

	t.Run("by type", func(t *testing.T) {
		got := FilterLogs(logs, LogThreat, "")
		require.Len(t, got, 2)
		for _, r := range got {
			require.Equal(t, LogThreat, r.Type)
		}
		require.Len(t, FilterLogs(logs, LogBlocked, ""), 1)
	})

	t.Run("case-insensitive search", func(t *testing.T) {
		got := FilterLogs(logs, LogAll, "GUARDIAN")
		require.Len(t, got, 1)
		require.Equal(t, "AI Guardian", got[0].Source)

		got = FilterLogs(logs, LogAll, "critical")
		require.Len(t, got, 1)
		require.Equal(t, SeverityCritical, got[0].Severity)

		require.Len(t, FilterLogs(logs, LogAll, "flagged"), 2)
		require.Empty(t, FilterLogs(logs, LogAnomaly, "flagged"))
	})

	t.Run("input untouched", func(t *testing.T) {
		shuffled := []LogRecord{logs[3], logs[0], logs[2], logs[1]}
		FilterLogs(shuffled, LogAll, "")
		require.Equal(t, "4", shuffled[0].ID)
	})
}

func TestActiveAlerts(t *testing.T) {
	alerts := SampleAlerts(now)
	active := ActiveAlerts(alerts)
	require.Len(t, active, 2)
	require.Equal(t, SeverityCritical, active[0].Severity)
	require.Equal(t, SeverityHigh, active[1].Severity)

	counts := CountBySeverity(alerts)
	require.Equal(t, 1, counts[SeverityLow])
	require.Equal(t, 1, counts[SeverityCritical])
}

func TestAlertMetadata(t *testing.T) {
	for _, a := range SampleAlerts(now) {
		require.NotEmpty(t, a.ID)
		require.NotNil(t, a.Meta)
		require.NotEmpty(t, a.Meta.Summary())

		switch m := a.Meta.(type) {
		case TransactionMeta:
			require.Equal(t, AlertSuspiciousTransaction, a.Type)
			require.Positive(t, m.Amount)
		case AccessMeta:
			require.NotEmpty(t, m.Location)
		case RecoveryMeta:
			require.Equal(t, AlertRecoveryAttempt, a.Type)
			require.Contains(t, m.Summary(), "approval required")
		default:
			t.Fatalf("unexpected metadata %T", m)
		}
	}
}

func TestSeverityRank(t *testing.T) {
	require.Less(t, SeverityLow.Rank(), SeverityMedium.Rank())
	require.Less(t, SeverityMedium.Rank(), SeverityHigh.Rank())
	require.Less(t, SeverityHigh.Rank(), SeverityCritical.Rank())
}

func TestPerformanceSeries(t *testing.T) {
	p := PerformanceSeries(rand.New(rand.NewSource(1)))
	require.Len(t, p.Latency, 12)
	require.Len(t, p.TPS, 10)
	require.Len(t, p.PQC, 8)
	require.Len(t, p.Cards, 4)

	for _, pt := range p.Latency {
		require.GreaterOrEqual(t, pt.Value, 35.0)
		require.LessOrEqual(t, pt.Value, 63.0)
	}
	for _, pt := range p.TPS {
		require.GreaterOrEqual(t, pt.Value, 460.0)
		require.LessOrEqual(t, pt.Value, 630.0)
	}
	for _, b := range p.PQC {
		require.True(t, b.Sign >= 2.5 && b.Sign <= 4.0)
		require.True(t, b.Verify >= 1.4 && b.Verify <= 2.6)
	}
	require.Equal(t, "Dilithium", p.PQC[4].Algo)

	// same seed, same series
	require.Equal(t, p, PerformanceSeries(rand.New(rand.NewSource(1))))
	require.Equal(t, []float64{1, 2}, Values([]Point{{"a", 1}, {"b", 2}}))
}

func TestDraftValidate(t *testing.T) {
	require.ErrorIs(t, Draft{Title: "  "}.Validate(), ErrTitleRequired)
	require.ErrorIs(t, Draft{Title: strings.Repeat("x", 81)}.Validate(), ErrTitleTooLong)
	require.ErrorIs(t, Draft{Title: "Kyber", Body: "too short"}.Validate(), ErrBodyTooShort)
	require.NoError(t, Draft{Title: "Kyber", Category: "PQC", Body: "How do key sizes compare to Ed25519?"}.Validate())
}

func TestCommunityPosts(t *testing.T) {
	require.Len(t, CommunityPosts, 3)
	for _, p := range CommunityPosts {
		require.False(t, p.Date.IsZero())
	}
}
