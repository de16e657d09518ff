package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/docnote/internal/config"
	"github.com/kk-code-lab/docnote/internal/link"
	"github.com/kk-code-lab/docnote/internal/note"
	statepkg "github.com/kk-code-lab/docnote/internal/state"
	inputui "github.com/kk-code-lab/docnote/internal/ui/input"
	renderui "github.com/kk-code-lab/docnote/internal/ui/render"
	"go.uber.org/zap"
)

// Options configures a new Application.
type Options struct {
	NotePath string
	Settings config.Settings
	Logger   *zap.SugaredLogger

	// Screen and Opener default to the real terminal and system launcher.
	Screen tcell.Screen
	Opener link.Opener
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
	editorCmd  []string
	opener     link.Opener
	logger     *zap.SugaredLogger
}

// NewApplication loads the note at opts.NotePath and prepares the screen.
// A note file that does not exist yet is shown as an empty note.
func NewApplication(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	n, err := note.Load(opts.NotePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	n.TrimMarkdown()

	screen := opts.Screen
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	editorCmd, editorAvail := resolveEditorCommand(opts.Settings.Editor)

	state := statepkg.NewAppState(opts.NotePath, n, opts.Settings.Bullet, opts.Settings.TabWidth)
	state.EditorAvailable = editorAvail
	w, h := screen.Size()
	if _, err := statepkg.NewStateReducer().Reduce(state, statepkg.ResizeAction{Width: w, Height: h}); err != nil {
		screen.Fini()
		return nil, err
	}

	opener := opts.Opener
	if opener == nil {
		opener = link.NewSystemOpener(opts.Settings.Browser)
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	styles := renderui.NewStyleTable(renderui.ThemeFromSettings(opts.Settings.Theme))

	logger.Debugw("note loaded", "path", opts.NotePath, "blocks", len(state.Blocks), "editor", editorCmd)

	return &Application{
		screen:    screen,
		state:     state,
		reducer:   statepkg.NewStateReducer(),
		renderer:  renderui.NewRendererWithStyles(screen, styles),
		input:     inputHandler,
		actionCh:  actionCh,
		editorCmd: editorCmd,
		opener:    opener,
		logger:    logger,
	}, nil
}

// State returns the current view state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}
