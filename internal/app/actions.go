package app

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/kk-code-lab/docnote/internal/link"
	statepkg "github.com/kk-code-lab/docnote/internal/state"
)

const openLinkTimeout = 10 * time.Second

var commandBuilder = exec.Command

func actionName(action statepkg.Action) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", action), "state.")
}

func (app *Application) handleEditorOpen() bool {
	if !app.state.EditorAvailable || len(app.editorCmd) == 0 {
		app.state.StatusMessage = "no editor found; set $VISUAL, $EDITOR or editor in config"
		return true
	}

	app.logger.Infow("editing note", "path", app.state.NotePath, "editor", app.editorCmd[0])
	if err := app.openFileInEditor(app.state.NotePath); err != nil {
		app.logger.Errorw("editor failed", "path", app.state.NotePath, "error", err)
		app.state.LastError = fmt.Errorf("editor: %w", err)
		return true
	}

	if _, err := app.reducer.Reduce(app.state, statepkg.EditFinishedAction{}); err != nil {
		app.state.LastError = err
	}
	return true
}

func (app *Application) handleOpenLink() bool {
	if !app.state.Note.HasLink() {
		app.state.StatusMessage = "no documentation link"
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), openLinkTimeout)
	defer cancel()

	raw := app.state.Note.DocumentationURL
	if err := link.Open(ctx, raw, app.opener, app.logger); err != nil {
		app.state.LastError = err
		return true
	}
	app.state.StatusMessage = "opened " + raw
	return true
}

func (app *Application) openFileInEditor(filePath string) error {
	if len(app.editorCmd) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorArgs := app.editorArgsWithFile(filePath)
	useTTY := runtime.GOOS != "windows"
	var tty *os.File
	var err error

	if useTTY {
		tty, err = os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if err != nil {
			return app.openFileInEditorFallback(editorArgs)
		}
		defer func() {
			_ = tty.Close()
		}()
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := commandBuilder(editorArgs[0], editorArgs[1:]...)
	if useTTY {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	runErr := cmd.Run()
	_ = flushConsoleInput()

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()
	return runErr
}

func (app *Application) openFileInEditorFallback(args []string) error {
	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		_ = app.screen.Resume()
		app.screen.Sync()
	}()

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

func (app *Application) editorArgsWithFile(filePath string) []string {
	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath
	return args
}
