package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/docnote/internal/config"
	"github.com/kk-code-lab/docnote/internal/link"
	statepkg "github.com/kk-code-lab/docnote/internal/state"
)

func newSimApplication(t *testing.T, path string) (*Application, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	app, err := NewApplication(Options{
		NotePath: path,
		Settings: *config.Defaults(),
		Screen:   screen,
		Opener:   link.OpenerFunc(func(context.Context, string) error { return nil }),
	})
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app, screen
}

func TestNewApplicationLoadsAndTrimsNote(t *testing.T) {
	app, screen := newSimApplication(t, writeNoteFile(t, "\n\n# Title\n- item\n\n"))

	w, h := screen.Size()
	if app.state.ScreenWidth != w || app.state.ScreenHeight != h {
		t.Fatalf("state size %dx%d, screen %dx%d", app.state.ScreenWidth, app.state.ScreenHeight, w, h)
	}
	if app.state.Note.Markdown != "# Title\n- item" {
		t.Fatalf("expected trimmed markdown, got %q", app.state.Note.Markdown)
	}
	if len(app.state.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(app.state.Blocks))
	}
}

func TestNewApplicationMissingNoteIsEmpty(t *testing.T) {
	app, _ := newSimApplication(t, filepath.Join(t.TempDir(), "new.md"))

	if !app.state.Note.IsEmpty() {
		t.Fatalf("expected empty note, got %+v", app.state.Note)
	}
}

func TestNewApplicationRejectsBinaryNote(t *testing.T) {
	path := writeNoteFile(t, "\x00\x01\x02binary")
	_, err := NewApplication(Options{NotePath: path, Settings: *config.Defaults(), Screen: tcell.NewSimulationScreen("")})
	if err == nil {
		t.Fatalf("expected binary note to be rejected")
	}
}

func TestHandleEventDispatchesScroll(t *testing.T) {
	app, screen := newSimApplication(t, writeNoteFile(t, longMarkdown(200)))
	_, h := screen.Size()
	if len(app.state.Lines) <= h {
		t.Fatalf("test note must overflow the screen")
	}

	if !app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'j', 0)) {
		t.Fatalf("expected key event to request a render")
	}
	if !app.processActions() {
		t.Fatalf("expected queued scroll action to be processed")
	}
	if app.state.ScrollOffset != 1 {
		t.Fatalf("expected scroll offset 1, got %d", app.state.ScrollOffset)
	}

	app.handleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, 0))
	app.processActions()
	if app.state.ScrollOffset != app.state.MaxScroll() {
		t.Fatalf("expected bottom, got %d of %d", app.state.ScrollOffset, app.state.MaxScroll())
	}
}

func TestHandleEventQuit(t *testing.T) {
	app, _ := newSimApplication(t, writeNoteFile(t, "text"))

	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if !app.shouldQuit {
		t.Fatalf("expected q to quit")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	app, screen := newSimApplication(t, writeNoteFile(t, "# Title"))

	done := make(chan struct{})
	go func() {
		app.Run()
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after quit key")
	}
}

func TestResizeRelaysOut(t *testing.T) {
	app, _ := newSimApplication(t, writeNoteFile(t, "one two three four five six"))

	app.handleAction(statepkg.ResizeAction{Width: 10, Height: 10})
	if len(app.state.Lines) < 2 {
		t.Fatalf("expected paragraph to wrap at width 10, got %d lines", len(app.state.Lines))
	}
}

func longMarkdown(lines int) string {
	md := ""
	for i := 0; i < lines; i++ {
		md += "- entry\n"
	}
	return md
}
