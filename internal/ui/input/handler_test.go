package input

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/docnote/internal/state"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, 0)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, 0)
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name      string
		event     *tcell.EventKey
		want      statepkg.Action
		keepGoing bool
	}{
		{"down arrow", specialKey(tcell.KeyDown), statepkg.ScrollDownAction{}, true},
		{"j", runeKey('j'), statepkg.ScrollDownAction{}, true},
		{"up arrow", specialKey(tcell.KeyUp), statepkg.ScrollUpAction{}, true},
		{"k", runeKey('k'), statepkg.ScrollUpAction{}, true},
		{"page down", specialKey(tcell.KeyPgDn), statepkg.ScrollPageDownAction{}, true},
		{"space", runeKey(' '), statepkg.ScrollPageDownAction{}, true},
		{"page up", specialKey(tcell.KeyPgUp), statepkg.ScrollPageUpAction{}, true},
		{"home", specialKey(tcell.KeyHome), statepkg.ScrollTopAction{}, true},
		{"g", runeKey('g'), statepkg.ScrollTopAction{}, true},
		{"end", specialKey(tcell.KeyEnd), statepkg.ScrollBottomAction{}, true},
		{"G", runeKey('G'), statepkg.ScrollBottomAction{}, true},
		{"edit", runeKey('e'), statepkg.OpenEditorAction{}, true},
		{"open link", runeKey('o'), statepkg.OpenLinkAction{}, true},
		{"enter opens link", specialKey(tcell.KeyEnter), statepkg.OpenLinkAction{}, true},
		{"clear link", runeKey('x'), statepkg.ClearLinkAction{}, true},
		{"reload", runeKey('r'), statepkg.ReloadAction{}, true},
		{"help", runeKey('?'), statepkg.HelpToggleAction{}, true},
		{"ctrl-z suspends", specialKey(tcell.KeyCtrlZ), statepkg.SuspendAction{}, true},
		{"q quits", runeKey('q'), statepkg.QuitAction{}, false},
		{"escape quits", specialKey(tcell.KeyEscape), statepkg.QuitAction{}, false},
		{"ctrl-c quits", specialKey(tcell.KeyCtrlC), statepkg.QuitAction{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionChan := make(chan statepkg.Action, 1)
			handler := NewInputHandler(actionChan)
			handler.SetState(&statepkg.AppState{})

			if got := handler.ProcessEvent(tt.event); got != tt.keepGoing {
				t.Fatalf("ProcessEvent returned %v, want %v", got, tt.keepGoing)
			}

			select {
			case action := <-actionChan:
				if fmt.Sprintf("%T", action) != fmt.Sprintf("%T", tt.want) {
					t.Fatalf("Expected %T, got %T", tt.want, action)
				}
			default:
				t.Fatalf("Expected %T to be emitted", tt.want)
			}
		})
	}
}

func TestUnboundRuneEmitsNothing(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	if !handler.ProcessEvent(runeKey('z')) {
		t.Fatalf("expected loop to continue")
	}
	select {
	case action := <-actionChan:
		t.Fatalf("expected no action, got %T", action)
	default:
	}
}

func TestEscapeHidesHelpInsteadOfQuitting(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.AppState{HelpVisible: true})

	if !handler.ProcessEvent(specialKey(tcell.KeyEscape)) {
		t.Fatalf("expected escape to keep the loop running while help is open")
	}
	if action := <-actionChan; fmt.Sprintf("%T", action) != "state.HelpHideAction" {
		t.Fatalf("Expected HelpHideAction, got %T", action)
	}
}

func TestHelpSwallowsNoteKeys(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)
	handler.SetState(&statepkg.AppState{HelpVisible: true})

	handler.ProcessEvent(runeKey('x'))
	select {
	case action := <-actionChan:
		t.Fatalf("expected no action while help is open, got %T", action)
	default:
	}

	if handler.ProcessEvent(specialKey(tcell.KeyCtrlC)) {
		t.Fatalf("expected ctrl-c to quit even with help open")
	}
}

func TestResizeEmitsResizeAction(t *testing.T) {
	actionChan := make(chan statepkg.Action, 1)
	handler := NewInputHandler(actionChan)

	handler.ProcessEvent(tcell.NewEventResize(80, 24))

	action := <-actionChan
	resize, ok := action.(statepkg.ResizeAction)
	if !ok {
		t.Fatalf("Expected ResizeAction, got %T", action)
	}
	if resize.Width != 80 || resize.Height != 24 {
		t.Fatalf("unexpected resize %+v", resize)
	}
}
