package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	// releaseAfterMS is how long a bound key may go without a repeat before it
	// counts as released. Terminals report presses only. It must exceed the
	// keyboard's auto-repeat delay (660ms by default on X11, 500ms on most
	// other systems) or a held key is released and pressed again.
	releaseAfterMS = 700

	// chrome lines around the view body: tab bar, status bar, help footer.
	chromeLines = 3
	// settingsDiagramIndent positions the key diagram inside the settings view.
	settingsDiagramIndent = 4
	// pickerWidthMax caps the file picker width.
	pickerWidthMax = 70
	// minBodyWidth keeps the glamour renderer usable on tiny terminals.
	minBodyWidth = 20

	DefaultReleaseAfter = time.Duration(releaseAfterMS) * time.Millisecond
)
