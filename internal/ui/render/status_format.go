package render

import (
	"fmt"

	statepkg "github.com/kk-code-lab/docnote/internal/state"
)

// formatScrollPosition describes which body rows are on screen, e.g.
// "1-20/57". It is empty when the whole note fits.
func formatScrollPosition(state *statepkg.AppState) string {
	if state == nil {
		return ""
	}
	total := len(state.Lines)
	height := state.BodyHeight()
	if total == 0 || height <= 0 || total <= height {
		return ""
	}
	first := state.ScrollOffset + 1
	last := state.ScrollOffset + height
	if last > total {
		last = total
	}
	return fmt.Sprintf("%d-%d/%d", first, last, total)
}
