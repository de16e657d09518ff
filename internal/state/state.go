package state

import (
	"github.com/kk-code-lab/docnote/internal/markdown"
	"github.com/kk-code-lab/docnote/internal/note"
)

// Rows taken by the header, link bar and status line.
const chromeRows = 3

// Columns of margin on each side of the note body.
const bodyMargin = 1

// AppState is the single source of truth
type AppState struct {
	NotePath string
	Note     note.Note

	// Derived from Note on every change; never edited directly.
	Blocks []markdown.Block
	Lines  []Line

	ScrollOffset int
	ScreenWidth  int
	ScreenHeight int

	Bullet   string
	TabWidth int

	EditorAvailable bool
	HelpVisible     bool
	StatusMessage   string
	LastError       error
}

// NewAppState builds the state for n as stored at path.
func NewAppState(path string, n note.Note, bullet string, tabWidth int) *AppState {
	s := &AppState{
		NotePath: path,
		Bullet:   bullet,
		TabWidth: tabWidth,
	}
	s.SetNote(n)
	return s
}

// SetNote replaces the note and rebuilds blocks and lines.
func (s *AppState) SetNote(n note.Note) {
	s.Note = n
	s.Blocks = markdown.Classify(n.Markdown)
	s.relayout()
}

// BodyWidth is the number of columns available to note text.
func (s *AppState) BodyWidth() int {
	w := s.ScreenWidth - 2*bodyMargin
	if w < 0 {
		return 0
	}
	return w
}

// BodyHeight is the number of rows available to note text.
func (s *AppState) BodyHeight() int {
	h := s.ScreenHeight - chromeRows
	if h < 0 {
		return 0
	}
	return h
}

// VisibleLines returns the lines inside the body viewport.
func (s *AppState) VisibleLines() []Line {
	start := s.ScrollOffset
	if start > len(s.Lines) {
		start = len(s.Lines)
	}
	end := start + s.BodyHeight()
	if end > len(s.Lines) {
		end = len(s.Lines)
	}
	return s.Lines[start:end]
}

// MaxScroll is the largest useful scroll offset.
func (s *AppState) MaxScroll() int {
	m := len(s.Lines) - s.BodyHeight()
	if m < 0 {
		return 0
	}
	return m
}

func (s *AppState) relayout() {
	s.Lines = LayoutBlocks(s.Blocks, LayoutOptions{
		Width:    s.BodyWidth(),
		Bullet:   s.Bullet,
		TabWidth: s.TabWidth,
	})
	s.clampScroll()
}

func (s *AppState) clampScroll() {
	if s.ScrollOffset > s.MaxScroll() {
		s.ScrollOffset = s.MaxScroll()
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}
