package state

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/kk-code-lab/docnote/internal/note"
)

// StateReducer applies actions to AppState. Note I/O goes through the
// load and save hooks so tests can run without files.
type StateReducer struct {
	load func(path string) (note.Note, error)
	save func(path string, n note.Note) error
}

func NewStateReducer() *StateReducer {
	return &StateReducer{
		load: note.Load,
		save: note.Save,
	}
}

// Reduce applies action to state. Unknown actions are ignored.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== SCROLL =====

	case ScrollDownAction:
		state.ScrollOffset++
		state.clampScroll()
	case ScrollUpAction:
		state.ScrollOffset--
		state.clampScroll()
	case ScrollPageDownAction:
		state.ScrollOffset += pageStep(state)
		state.clampScroll()
	case ScrollPageUpAction:
		state.ScrollOffset -= pageStep(state)
		state.clampScroll()
	case ScrollTopAction:
		state.ScrollOffset = 0
	case ScrollBottomAction:
		state.ScrollOffset = state.MaxScroll()

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.relayout()

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
	case HelpHideAction:
		state.HelpVisible = false

	case StatusAction:
		state.StatusMessage = a.Message

	// ===== NOTE =====

	case ReloadAction:
		n, err := r.loadOrEmpty(state.NotePath)
		if err != nil {
			return state, err
		}
		n.TrimMarkdown()
		state.SetNote(n)
		state.StatusMessage = "reloaded"

	case EditFinishedAction:
		n, err := r.loadOrEmpty(state.NotePath)
		if err != nil {
			return state, err
		}
		before := n.Markdown
		n.TrimMarkdown()
		if n.Markdown != before {
			if err := r.save(state.NotePath, n); err != nil {
				return state, fmt.Errorf("trim note: %w", err)
			}
		}
		state.SetNote(n)
		state.StatusMessage = "note updated"

	case ClearLinkAction:
		if !state.Note.HasLink() {
			return state, nil
		}
		n, err := r.loadOrEmpty(state.NotePath)
		if err != nil {
			return state, err
		}
		if n.HasLink() {
			n.DocumentationURL = ""
			if err := r.save(state.NotePath, n); err != nil {
				return state, err
			}
		}
		state.SetNote(n)
		state.StatusMessage = "link removed"
	}

	return state, nil
}

// loadOrEmpty treats a note file that does not exist yet as an empty note.
func (r *StateReducer) loadOrEmpty(path string) (note.Note, error) {
	n, err := r.load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return note.Note{}, nil
	}
	return n, err
}

func pageStep(state *AppState) int {
	step := state.BodyHeight() - 1
	if step < 1 {
		step = 1
	}
	return step
}
