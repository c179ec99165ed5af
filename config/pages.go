package config

// Page identifies a top-level view
type Page int

const (
	PageHome Page = iota
	PageFeatures
	PageDeveloper
	PageSecurity
	PageAlerts
	PageLogs
	PagePerformance
	PageCommunity
	PageForum
)

// Pages lists every view in navigation order; the number keys 1-9 follow it
var Pages = []Page{
	PageHome,
	PageFeatures,
	PageDeveloper,
	PageSecurity,
	PageAlerts,
	PageLogs,
	PagePerformance,
	PageCommunity,
	PageForum,
}

func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageFeatures:
		return "Features"
	case PageDeveloper:
		return "Developer"
	case PageSecurity:
		return "Security"
	case PageAlerts:
		return "Alerts"
	case PageLogs:
		return "Logs"
	case PagePerformance:
		return "Dashboard"
	case PageCommunity:
		return "Community"
	case PageForum:
		return "Forum"
	default:
		return "Unknown"
	}
}
