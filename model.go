package main

import (
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"quantumguard-tui/config"
	"quantumguard-tui/guardian"
	"quantumguard-tui/ledger"
	"quantumguard-tui/session"
	"quantumguard-tui/styles"
	"quantumguard-tui/views/logs"
	"quantumguard-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	activePage config.Page
	cfg        config.Config
	configPath string

	// wallet connection
	machine *wallet.Machine

	// algod node
	ledger         *ledger.Client
	node           ledger.NodeStatus
	nodeConnected  bool
	nodeConnecting bool
	nodeErr        string

	// connect modal
	methodForm *huh.Form
	method     wallet.Method
	sess       *session.Session
	pairing    uint64 // bumped whenever a pending pairing session goes stale
	generating bool

	spin spinner.Model

	// clipboard feedback
	copiedMsg string

	// alerts view
	alerts        []guardian.Alert
	selectedAlert int
	showResolved  bool

	// logs view
	logRecords []guardian.LogRecord
	logTab     int
	logSearch  textinput.Model
	logTable   table.Model
	logShown   int

	// performance view
	perf guardian.Performance
	rng  *rand.Rand

	// forum view
	forumForm *huh.Form
	drafts    []guardian.Draft

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *lockedBuffer
	logSeen     int
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model

	now func() time.Time
}

// lockedBuffer collects log output. The bridge client logs from its own
// goroutine while the view reads the buffer.
type lockedBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newLogger creates the logger shown in the log panel
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "",
	})
	logger.SetLevel(log.DebugLevel)
	logger.SetStyles(&log.Styles{
		Timestamp: lipgloss.NewStyle().Foreground(cMuted),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
		Message:   lipgloss.NewStyle().Foreground(cText),
		Key:       lipgloss.NewStyle().Foreground(cAccent),
		Value:     lipgloss.NewStyle().Foreground(cText),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
			log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().Foreground(cError).SetString("ERROR"),
		},
	})
	return logger
}

// -------------------- INIT --------------------

// newModel creates the model. client may be nil when no algod node is configured.
func newModel(cfg config.Config, configPath string, machine *wallet.Machine, client *ledger.Client, logger *log.Logger, buf *lockedBuffer) model {
	now := time.Now

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// log search input
	search := textinput.New()
	search.Placeholder = "description, source, action or severity"
	search.Prompt = "Search: "
	search.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	search.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	search.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	search.CharLimit = 64
	search.Width = 48

	// Initialize log viewport
	vp := viewport.New(0, 20) // Will be resized in Update on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	// Initialize log spinner
	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	rng := rand.New(rand.NewSource(now().UnixNano()))

	m := model{
		activePage:     config.PageHome,
		cfg:            cfg,
		configPath:     configPath,
		machine:        machine,
		ledger:         client,
		nodeConnecting: client != nil,
		spin:           sp,
		alerts:         guardian.SampleAlerts(now()),
		logRecords:     guardian.SampleLogs(now()),
		logSearch:      search,
		logTable:       logs.NewTable(100),
		perf:           guardian.PerformanceSeries(rng),
		rng:            rng,
		logEnabled:     cfg.Logger,
		logger:         logger,
		logBuffer:      buf,
		logViewport:    vp,
		logSpinner:     logSpin,
		now:            now,
	}
	m.refreshLogTable()

	return m
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	if m.ledger != nil {
		cmds = append(cmds, probeNode(m.ledger, true))
	}
	return tea.Batch(cmds...)
}

// refreshLogTable re-applies the tab and search filter to the logs table
func (m *model) refreshLogTable() {
	records := guardian.FilterLogs(m.logRecords, guardian.LogTabs[m.logTab], m.logSearch.Value())
	m.logShown = len(records)
	m.logTable.SetRows(logs.Rows(records))
	if m.logTable.Cursor() >= len(records) {
		m.logTable.SetCursor(0)
	}
}
