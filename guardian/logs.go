package guardian

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// LogType classifies a log record. The zero value matches every type.
type LogType string

const (
	LogAll     LogType = ""
	LogThreat  LogType = "threat"
	LogAnomaly LogType = "anomaly"
	LogBlocked LogType = "blocked"
)

// LogTabs is the tab order of the logs view
var LogTabs = []LogType{LogAll, LogThreat, LogAnomaly, LogBlocked}

// Label is the tab title
func (t LogType) Label() string {
	switch t {
	case LogThreat:
		return "Threats"
	case LogAnomaly:
		return "Anomalies"
	case LogBlocked:
		return "Blocked"
	default:
		return "All"
	}
}

// LogRecord is one entry of the activity log
type LogRecord struct {
	ID          string
	Timestamp   time.Time
	Type        LogType
	Severity    Severity
	Source      string
	Action      string
	Description string
}

// SampleLogs returns the demo activity log relative to now
func SampleLogs(now time.Time) []LogRecord {
	records := []LogRecord{
		{
			Timestamp:   now.Add(-2 * time.Minute),
			Type:        LogThreat,
			Severity:    SeverityHigh,
			Source:      "Transaction Monitor",
			Action:      "Flagged",
			Description: "Unusual transfer pattern detected across multiple addresses.",
		},
		{
			Timestamp:   now.Add(-5 * time.Minute),
			Type:        LogBlocked,
			Severity:    SeverityCritical,
			Source:      "AI Guardian",
			Action:      "Blocked",
			Description: "Attempted withdrawal from unrecognized device blocked.",
		},
		{
			Timestamp:   now.Add(-15 * time.Minute),
			Type:        LogAnomaly,
			Severity:    SeverityMedium,
			Source:      "Behavioral Engine",
			Action:      "Observed",
			Description: "Login location deviates from historical profile (2,100km).",
		},
		{
			Timestamp:   now.Add(-45 * time.Minute),
			Type:        LogThreat,
			Severity:    SeverityLow,
			Source:      "Signature Verifier",
			Action:      "Flagged",
			Description: "Non-standard signing sequence detected; verified as safe.",
		},
	}
	for i := range records {
		records[i].ID = strconv.Itoa(i + 1)
	}
	return records
}

// FilterLogs keeps records of kind (LogAll for any) whose description,
// source, action or severity contains query, case-insensitively. The result
// is sorted newest first and records is left untouched.
func FilterLogs(records []LogRecord, kind LogType, query string) []LogRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]LogRecord, 0, len(records))
	for _, r := range records {
		if kind != LogAll && r.Type != kind {
			continue
		}
		if q != "" && !matches(r, q) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func matches(r LogRecord, q string) bool {
	for _, field := range []string{r.Description, r.Source, r.Action, string(r.Severity)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
