package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SCROLL ACTIONS =====

type ScrollUpAction struct{}
type ScrollDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollTopAction struct{}
type ScrollBottomAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// HelpToggleAction shows or hides the key help overlay.
type HelpToggleAction struct{}

// HelpHideAction closes the key help overlay if it is open.
type HelpHideAction struct{}

// ===== NOTE ACTIONS =====

// ReloadAction re-reads the note file.
type ReloadAction struct{}

// EditFinishedAction re-reads the note after an editor session and trims
// its Markdown, saving the file back when trimming changed it.
type EditFinishedAction struct{}

// ClearLinkAction removes the documentation URL and saves the note.
type ClearLinkAction struct{}

// StatusAction replaces the footer message.
type StatusAction struct {
	Message string
}

// ===== APP ACTIONS (handled by the application, not the reducer) =====

type OpenEditorAction struct{}
type OpenLinkAction struct{}
type QuitAction struct{}

// SuspendAction stops the process and hands the terminal back to the shell.
type SuspendAction struct{}
