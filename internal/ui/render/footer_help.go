package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/docnote/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles the key hints that apply to state.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	var segments []string
	if state.MaxScroll() > 0 {
		segments = append(segments, "↑↓/Pg: scroll")
	}
	if state.EditorAvailable {
		segments = append(segments, "e: edit")
	}
	if state.Note.HasLink() {
		segments = append(segments, "o: open link", "x: clear link")
	}
	segments = append(segments, "r: reload", "?: help", "q: quit")
	return segments
}
