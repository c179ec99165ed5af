package main

import (
	"quantumguard-tui/ledger"
	"quantumguard-tui/session"
	"quantumguard-tui/wallet"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct {
	what string
}

// clearClipboardMsg clears the clipboard feedback
type clearClipboardMsg struct{}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// nodeProbedMsg contains result of an algod status probe
type nodeProbedMsg struct {
	res       ledger.ConnectResult
	scheduled bool
}

// nodeTickMsg schedules the next node probe
type nodeTickMsg struct{}

// sessionReadyMsg carries a freshly rendered pairing session. token ties it
// to the pairing that requested it.
type sessionReadyMsg struct {
	token uint64
	sess  session.Session
}

// connectResultMsg contains the outcome of a wallet connection attempt
type connectResultMsg struct {
	res wallet.Result
}

// accountLoadedMsg contains refreshed account info for address
type accountLoadedMsg struct {
	address string
	info    ledger.AccountInfo
	err     error
}
