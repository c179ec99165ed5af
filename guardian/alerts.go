// Package guardian holds the sample data behind the AI Guardian dashboards:
// alerts, activity logs, performance series and community content.
package guardian

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Severity of an alert or log record
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities from low (0) to critical (3)
func (s Severity) Rank() int {
	switch s {
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	default:
		return 0
	}
}

// AlertType is the kind of event an alert reports
type AlertType string

const (
	AlertSuspiciousTransaction AlertType = "suspicious-transaction"
	AlertUnusualActivity       AlertType = "unusual-activity"
	AlertSecurityBreach        AlertType = "security-breach"
	AlertRecoveryAttempt       AlertType = "recovery-attempt"
)

// Metadata is the typed detail attached to an alert. It is one of
// TransactionMeta, AccessMeta or RecoveryMeta.
type Metadata interface {
	Summary() string
	isMetadata()
}

type TransactionMeta struct {
	TxID     string
	Amount   float64
	Receiver string
}

func (m TransactionMeta) Summary() string {
	return fmt.Sprintf("tx %s: %.2f ALGO to %s", m.TxID, m.Amount, m.Receiver)
}

type AccessMeta struct {
	Device     string
	Location   string
	DistanceKm int
}

func (m AccessMeta) Summary() string {
	return fmt.Sprintf("%s from %s (%dkm from usual)", m.Device, m.Location, m.DistanceKm)
}

type RecoveryMeta struct {
	Method           string
	Confidence       float64
	ApprovalRequired bool
}

func (m RecoveryMeta) Summary() string {
	s := fmt.Sprintf("%s, AI confidence %.0f%%", m.Method, m.Confidence*100)
	if m.ApprovalRequired {
		s += ", approval required"
	}
	return s
}

func (TransactionMeta) isMetadata() {}
func (AccessMeta) isMetadata()      {}
func (RecoveryMeta) isMetadata()    {}

// Alert is a single AI Guardian notification
type Alert struct {
	ID                 string
	Severity           Severity
	Type               AlertType
	Title              string
	Description        string
	Timestamp          time.Time
	Resolved           bool
	RecommendedActions []string
	Meta               Metadata
}

// SampleAlerts returns the demo alert feed relative to now
func SampleAlerts(now time.Time) []Alert {
	return []Alert{
		{
			ID:          uuid.NewString(),
			Severity:    SeverityCritical,
			Type:        AlertSecurityBreach,
			Title:       "Unrecognized device signing attempt",
			Description: "A signing request came from a device that has never accessed this wallet.",
			Timestamp:   now.Add(-3 * time.Minute),
			RecommendedActions: []string{
				"Rotate quantum-resistant signing keys",
				"Review active sessions",
			},
			Meta: AccessMeta{Device: "Android 14 / unknown build", Location: "Frankfurt, DE", DistanceKm: 2100},
		},
		{
			ID:          uuid.NewString(),
			Severity:    SeverityHigh,
			Type:        AlertSuspiciousTransaction,
			Title:       "Unusual transfer pattern",
			Description: "Several transfers to new addresses within one minute.",
			Timestamp:   now.Add(-12 * time.Minute),
			RecommendedActions: []string{
				"Confirm the receivers",
				"Lower the transaction amount threshold",
			},
			Meta: TransactionMeta{TxID: "QG7X4V2K", Amount: 1250, Receiver: "7ZUECA...B4HTLE"},
		},
		{
			ID:          uuid.NewString(),
			Severity:    SeverityMedium,
			Type:        AlertUnusualActivity,
			Title:       "Login outside usual hours",
			Description: "Account access at 03:12 local time deviates from the behavioral profile.",
			Timestamp:   now.Add(-50 * time.Minute),
			Resolved:    true,
			Meta:        AccessMeta{Device: "macOS / Firefox", Location: "Lisbon, PT", DistanceKm: 40},
		},
		{
			ID:          uuid.NewString(),
			Severity:    SeverityLow,
			Type:        AlertRecoveryAttempt,
			Title:       "Recovery policy exercised",
			Description: "Social recovery was started and verified by the AI Guardian.",
			Timestamp:   now.Add(-3 * time.Hour),
			Resolved:    true,
			RecommendedActions: []string{
				"Confirm you initiated the recovery",
			},
			Meta: RecoveryMeta{Method: "social-recovery", Confidence: 0.94, ApprovalRequired: true},
		},
	}
}

// ActiveAlerts returns unresolved alerts, most severe and newest first
func ActiveAlerts(alerts []Alert) []Alert {
	var out []Alert
	for _, a := range alerts {
		if !a.Resolved {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Severity.Rank() != out[j].Severity.Rank() {
			return out[i].Severity.Rank() > out[j].Severity.Rank()
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// CountBySeverity tallies alerts per severity
func CountBySeverity(alerts []Alert) map[Severity]int {
	counts := make(map[Severity]int, 4)
	for _, a := range alerts {
		counts[a.Severity]++
	}
	return counts
}
