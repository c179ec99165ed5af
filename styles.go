package main

import (
	"quantumguard-tui/styles"
)

// -------------------- THEME (Lip Gloss) --------------------
// Styles now come from the styles package

var (
	cBorder  = styles.CBorder
	cMuted   = styles.CMuted
	cText    = styles.CText
	cAccent  = styles.CAccent
	cAccent2 = styles.CAccent2
	cWarn    = styles.CWarn
	cError   = styles.CError

	appStyle   = styles.AppStyle
	panelStyle = styles.PanelStyle
)
