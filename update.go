package main

import (
	"quantumguard-tui/config"
	"quantumguard-tui/guardian"
	"quantumguard-tui/ledger"
	"quantumguard-tui/views/alerts"
	"quantumguard-tui/views/connect"
	"quantumguard-tui/views/forum"
	"quantumguard-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// -------------------- UPDATE --------------------

// Update implements tea.Model. Forms get the message first, then the main handler.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.machine.Snapshot().ModalVisible {
		cmd, handled := m.updateModal(msg)
		cmds = append(cmds, cmd)
		if handled {
			m.updateLogViewport()
			return m, tea.Batch(cmds...)
		}
	}

	if m.forumForm != nil {
		cmd, handled := m.updateForumForm(msg)
		cmds = append(cmds, cmd)
		if handled {
			m.updateLogViewport()
			return m, tea.Batch(cmds...)
		}
	}

	cmds = append(cmds, m.handleMsg(msg))

	// the wallet machine and the bridge client log straight into the buffer
	m.updateLogViewport()
	return m, tea.Batch(cmds...)
}

// updateModal routes input to the connect modal. Key presses never leak to
// the page underneath.
func (m *model) updateModal(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "ctrl+c":
			return tea.Quit, true
		case "esc":
			m.closeModal()
			return nil, true
		}
	}

	if m.methodForm != nil {
		form, cmd := m.methodForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.methodForm = f

			if m.methodForm.State == huh.StateCompleted {
				m.methodForm = nil
				return m.startConnect(connect.ParseMethod(connect.TempMethod)), true
			}
			if m.methodForm.State == huh.StateAborted {
				m.closeModal()
				return nil, true
			}
		}
		return cmd, isKey
	}

	if !isKey {
		return nil, false
	}

	st := m.machine.Snapshot()
	switch keyMsg.String() {
	case "r":
		if st.Status == wallet.Error {
			return m.startConnect(m.method), true
		}
	case "m":
		if st.Status == wallet.Error {
			m.methodForm = connect.CreateForm()
		}
	case "y":
		if m.sess != nil {
			return copyToClipboard(m.sess.URI, "pairing URI"), true
		}
	}
	return nil, true
}

// updateForumForm routes input to the draft form
func (m *model) updateForumForm(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "esc" {
		m.forumForm = nil
		m.addLog("debug", "Draft discarded")
		return nil, true
	}

	form, cmd := m.forumForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.forumForm = f

		if m.forumForm.State == huh.StateCompleted {
			m.forumForm = nil
			d := forum.Draft()
			if err := d.Validate(); err != nil {
				m.addLog("warning", "Draft rejected", "err", err)
				return nil, true
			}
			m.drafts = append(m.drafts, d)
			m.addLog("success", "Draft saved locally", "title", d.Title, "category", d.Category)
			return nil, true
		}
		if m.forumForm.State == huh.StateAborted {
			m.forumForm = nil
			return nil, true
		}
	}
	return cmd, isKey
}

// handleMsg handles everything that is not captured by a form
func (m *model) handleMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case logInitMsg:
		if !m.logEnabled {
			return nil
		}
		m.logReady = true
		m.logSeen = -1
		m.addLog("info", "Logger enabled")
		return nil

	case nodeTickMsg:
		if m.ledger == nil {
			return nil
		}
		m.nodeConnecting = true
		return probeNode(m.ledger, true)

	case nodeProbedMsg:
		m.nodeConnecting = false
		if msg.res.Error != nil {
			if m.nodeConnected || m.nodeErr == "" {
				m.addLog("error", "Algod node unreachable", "url", m.ledger.URL, "err", msg.res.Error)
			}
			m.nodeConnected = false
			m.nodeErr = msg.res.Error.Error()
		} else {
			if !m.nodeConnected {
				m.addLog("success", "Algod node connected", "url", msg.res.Client.URL)
			}
			m.nodeConnected = true
			m.nodeErr = ""
			m.node = msg.res.Status
			m.addLog("debug", "Node status", "round", msg.res.Status.LastRound)
		}
		if msg.scheduled {
			return scheduleNodeProbe()
		}
		return nil

	case sessionReadyMsg:
		if msg.token != m.pairing || !m.generating {
			m.addLog("debug", "Dropping stale pairing session", "session", msg.sess.ID)
			return nil
		}
		m.generating = false
		sess := msg.sess
		m.sess = &sess
		if sess.RenderErr != nil {
			m.addLog("warning", "QR generation failed", "err", sess.RenderErr)
		} else {
			m.addLog("info", "Pairing session created", "session", sess.ID)
		}
		a := m.machine.Begin(wallet.MethodRemote, m.sess)
		return runAttempt(m.machine, a)

	case connectResultMsg:
		if !m.machine.Apply(msg.res) {
			return nil
		}
		// the pairing session ends with the attempt
		m.sess = nil
		m.copiedMsg = ""
		return nil

	case accountLoadedMsg:
		if m.machine.ApplyAccount(msg.address, msg.info, msg.err) && msg.err == nil {
			m.addLog("info", "Balance refreshed", "balance", ledger.FormatAmount(msg.info.Balance))
		}
		return nil

	case clipboardCopiedMsg:
		m.copiedMsg = "Copied " + msg.what + " to clipboard"
		return clearClipboardFeedback()

	case clearClipboardMsg:
		m.copiedMsg = ""
		return nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.logTable.SetWidth(max(0, msg.Width-8))
		m.logTable.SetHeight(max(4, msg.Height/3))

		if m.logEnabled {
			// Width accounts for border and padding
			m.logViewport.Width = max(0, msg.Width-6)
			if m.logReady {
				m.logSeen = -1
				m.updateLogViewport()
			}
		}
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.logSearch.Focused() {
		var cmd tea.Cmd
		m.logSearch, cmd = m.logSearch.Update(msg)
		return cmd
	}
	return nil
}

// handleKey handles global keys, then the keys of the active page
func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.activePage == config.PageLogs && m.logSearch.Focused() {
		switch key {
		case "ctrl+c":
			return tea.Quit
		case "esc":
			m.logSearch.SetValue("")
			m.logSearch.Blur()
			m.refreshLogTable()
			return nil
		case "enter":
			m.logSearch.Blur()
			return nil
		}
		var cmd tea.Cmd
		m.logSearch, cmd = m.logSearch.Update(msg)
		m.refreshLogTable()
		return cmd
	}

	st := m.machine.Snapshot()

	switch key {
	case "ctrl+c", "q":
		return tea.Quit

	case "esc":
		m.activePage = config.PageHome
		return nil

	case "l":
		return m.toggleLogger()

	case "pgup", "pgdown":
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return cmd
		}
		return nil

	case "tab":
		m.switchPage((int(m.activePage) + 1) % len(config.Pages))
		return nil

	case "shift+tab":
		m.switchPage((int(m.activePage) + len(config.Pages) - 1) % len(config.Pages))
		return nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.switchPage(int(key[0] - '1'))
		return nil

	case "c":
		if !st.IsConnected() {
			m.openModal()
		}
		return nil

	case "x":
		if st.IsConnected() {
			m.machine.Disconnect()
		}
		return nil

	case "r":
		if st.IsConnected() {
			m.addLog("debug", "Refreshing account", "address", st.Address)
			return refreshAccount(m.machine, st.RawAddress)
		}
		return nil

	case "y":
		if st.IsConnected() {
			return copyToClipboard(st.RawAddress, "address")
		}
		return nil
	}

	switch m.activePage {
	case config.PageFeatures:
		if key == "p" && m.ledger != nil && !m.nodeConnecting {
			m.nodeConnecting = true
			return probeNode(m.ledger, false)
		}

	case config.PageAlerts:
		visible := alerts.Visible(m.alerts, m.showResolved)
		switch key {
		case "up", "k":
			if m.selectedAlert > 0 {
				m.selectedAlert--
			}
		case "down", "j":
			if m.selectedAlert < len(visible)-1 {
				m.selectedAlert++
			}
		case "a":
			m.showResolved = !m.showResolved
			m.selectedAlert = 0
		}

	case config.PageLogs:
		switch key {
		case "/":
			m.logSearch.Focus()
			return textinput.Blink
		case "left", "h":
			m.logTab = (m.logTab + len(guardian.LogTabs) - 1) % len(guardian.LogTabs)
			m.refreshLogTable()
		case "right":
			m.logTab = (m.logTab + 1) % len(guardian.LogTabs)
			m.refreshLogTable()
		default:
			var cmd tea.Cmd
			m.logTable, cmd = m.logTable.Update(msg)
			return cmd
		}

	case config.PagePerformance:
		if key == "g" {
			m.perf = guardian.PerformanceSeries(m.rng)
			m.addLog("debug", "Performance series resampled")
		}

	case config.PageForum:
		if key == "n" {
			m.forumForm = forum.CreateForm()
		}
	}
	return nil
}

func (m *model) switchPage(idx int) {
	if idx < 0 || idx >= len(config.Pages) {
		return
	}
	m.activePage = config.Pages[idx]
}

func (m *model) toggleLogger() tea.Cmd {
	m.logEnabled = !m.logEnabled
	m.cfg.Logger = m.logEnabled
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.addLog("warning", "Could not save config", "err", err)
	}
	if m.logEnabled && !m.logReady {
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}
	return nil
}

// -------------------- CONNECT MODAL --------------------

func (m *model) openModal() {
	m.machine.OpenModal()
	m.sess = nil
	m.copiedMsg = ""
	m.methodForm = connect.CreateForm()
	m.addLog("debug", "Connect modal opened")
}

// closeModal hides the modal and abandons any pending pairing
func (m *model) closeModal() {
	m.machine.CloseModal()
	m.methodForm = nil
	m.sess = nil
	m.generating = false
	m.pairing++
	m.copiedMsg = ""
}

// startConnect begins an attempt with method. Remote attempts render a fresh
// pairing session first.
func (m *model) startConnect(method wallet.Method) tea.Cmd {
	m.method = method
	m.sess = nil
	m.machine.OpenModal()

	if method == wallet.MethodRemote {
		m.pairing++
		m.generating = true
		return generateSession(m.cfg.BridgeURL, m.pairing)
	}

	a := m.machine.Begin(method, nil)
	return runAttempt(m.machine, a)
}
