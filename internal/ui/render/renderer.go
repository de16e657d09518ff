package render

import (
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/docnote/internal/state"
	textutil "github.com/kk-code-lab/docnote/internal/textutil"
)

const (
	headerTitle = "Documentation Note"
	linkLabel   = "Link ↗ "
	noLinkLabel = "no link"
	bodyMargin  = 1
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	styles           *StyleTable
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a renderer using the shared default style table.
func NewRenderer(screen tcell.Screen) *Renderer {
	return NewRendererWithStyles(screen, DefaultStyleTable())
}

// NewRendererWithStyles creates a renderer with a caller-provided style table.
func NewRendererWithStyles(screen tcell.Screen, styles *StyleTable) *Renderer {
	if styles == nil {
		styles = DefaultStyleTable()
	}
	return &Renderer{
		screen: screen,
		styles: styles,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	if state == nil {
		r.screen.Show()
		return
	}

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	if state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawBody(state, w, h)
	r.drawLinkBar(state, w, h)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the title bar with the note file name and scroll position.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := r.styles.header
	r.fillRow(0, w, 0, style)

	x := r.drawTextLine(0, 0, w, " "+headerTitle, style.Bold(true))

	position := formatScrollPosition(state)
	positionWidth := r.measureTextWidth(position)
	nameLimit := w - positionWidth - 1

	if name := filepath.Base(state.NotePath); state.NotePath != "" && x+3 < nameLimit {
		name = textutil.SanitizeTerminalText(name)
		x = r.drawTextLine(x, 0, nameLimit-x, " · ", style)
		r.drawTextLine(x, 0, nameLimit-x, r.truncateTextToWidth(name, nameLimit-x), style)
	}

	if position != "" && positionWidth+1 < w {
		r.drawTextLine(w-positionWidth-1, 0, positionWidth, position, style)
	}
}

func (r *Renderer) drawBody(state *statepkg.AppState, w, h int) {
	bodyWidth := w - 2*bodyMargin
	if bodyWidth <= 0 {
		return
	}
	y := 1
	bottom := h - 2
	for _, line := range state.VisibleLines() {
		if y >= bottom {
			break
		}
		if line.Code {
			// Code rows get the block background across the full body width.
			r.fillRow(bodyMargin, bodyMargin+bodyWidth, y, r.styles.kinds[statepkg.TextStyleCodeBlock])
		}
		r.drawSegments(bodyMargin, y, bodyWidth, line.Segments)
		y++
	}
}

func (r *Renderer) drawSegments(startX, y, maxWidth int, segments []statepkg.StyledTextSegment) int {
	x := startX
	for _, seg := range segments {
		if x-startX >= maxWidth {
			break
		}
		x = r.drawTextLine(x, y, maxWidth-(x-startX), seg.Text, r.styles.Segment(seg))
	}
	return x
}

// drawLinkBar shows the documentation URL above the status line.
func (r *Renderer) drawLinkBar(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y <= 0 {
		return
	}
	base := r.styles.footer
	r.fillRow(0, w, y, base)

	x := r.drawTextLine(bodyMargin, y, w-bodyMargin, linkLabel, base.Bold(true))
	if !state.Note.HasLink() {
		r.drawTextLine(x, y, w-x, noLinkLabel, r.styles.kinds[statepkg.TextStylePlaceholder])
		return
	}
	url := textutil.SanitizeTerminalText(state.Note.DocumentationURL)
	r.drawTextLine(x, y, w-x, r.truncateTextToWidth(url, w-x-bodyMargin), r.styles.link)
}

// drawStatusLine shows the last error, the last status message or key hints.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y <= 0 {
		return
	}
	style := r.styles.footer
	r.fillRow(0, w, y, style)

	switch {
	case state.LastError != nil:
		text := " error: " + textutil.SanitizeTerminalText(state.LastError.Error())
		r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), r.styles.err)
	case state.StatusMessage != "":
		text := " " + textutil.SanitizeTerminalText(state.StatusMessage)
		r.drawTextLine(0, y, w, r.truncateTextToWidth(text, w), style)
	default:
		r.drawTextLine(0, y, w, r.truncateTextToWidth(buildFooterHelpText(state), w), style)
	}
}
