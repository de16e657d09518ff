package render

import (
	"fmt"
	"strings"

	textutil "github.com/kk-code-lab/docnote/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Scrolling",
		entries: []helpOverlayEntry{
			{keys: "↑/↓ or k/j", desc: "Scroll one line"},
			{keys: "PgUp/PgDn", desc: "Scroll one page"},
			{keys: "Space", desc: "Page down"},
			{keys: "Home/End, g/G", desc: "Jump to top/bottom"},
		},
	},
	{
		title: "Note",
		entries: []helpOverlayEntry{
			{keys: "e", desc: "Edit in external editor ($EDITOR)"},
			{keys: "o or ↵", desc: "Open documentation link"},
			{keys: "x", desc: "Remove documentation link"},
			{keys: "r", desc: "Reload note from disk"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "q or Esc", desc: "Quit"},
			{keys: "Ctrl+C", desc: "Quit immediately"},
			{keys: "Ctrl+Z", desc: "Suspend to shell"},
			{keys: "?", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 24)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}
	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-14s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := r.styles.base
	for y := 0; y < h; y++ {
		r.fillRow(0, w, y, baseStyle)
	}

	title := " Help "
	headerStyle := r.styles.header.Bold(true)
	r.fillRow(0, w, 0, headerStyle)
	titleStart := 0
	if titleWidth := r.measureTextWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	maxRow := h - 1
	for _, line := range buildHelpOverlayLines() {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.truncateTextToWidth(text, w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 1 {
		footer := r.truncateTextToWidth(" ? toggle · Esc/q close", w)
		r.fillRow(0, w, h-1, headerStyle)
		r.drawTextLine(0, h-1, w, footer, headerStyle)
	}
}
