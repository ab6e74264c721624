package tui

// Message types for Bubble Tea update loop.

// intervalMsg fires one repetition of a pan loop interval.
type intervalMsg struct{ ID int }

// releaseCheckMsg asks whether a held key has stopped repeating since press Seq.
type releaseCheckMsg struct {
	Key string
	Seq uint64
}

// discoveredMsg carries the result of a vault walk.
type discoveredMsg struct {
	Entries []entryItem
	Err     error
}

// openFileMsg asks the workspace to open a document.
type openFileMsg struct{ Path string }
