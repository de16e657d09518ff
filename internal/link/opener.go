package link

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// ErrNoOpener is returned when no browser launcher could be found.
var ErrNoOpener = errors.New("no browser launcher available")

// Opener hands a resolved URL to something that can show it.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, uri string) error

func (f OpenerFunc) Open(ctx context.Context, uri string) error {
	return f(ctx, uri)
}

// SystemOpener launches the platform's URL handler.
type SystemOpener struct {
	// Command overrides launcher detection, e.g. "firefox --new-tab".
	Command string

	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
	run      func(ctx context.Context, args []string) error
}

// NewSystemOpener returns an opener for the running platform.
func NewSystemOpener(command string) *SystemOpener {
	return &SystemOpener{
		Command:  command,
		goos:     runtime.GOOS,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		run:      runDetached,
	}
}

// Open starts the launcher and waits for it to exit. Launchers return as
// soon as the browser has the URL.
func (o *SystemOpener) Open(ctx context.Context, uri string) error {
	args, ok := o.launcher()
	if !ok {
		return ErrNoOpener
	}
	args = append(args, uri)
	if err := o.run(ctx, args); err != nil {
		return fmt.Errorf("open %s with %s: %w", uri, args[0], err)
	}
	return nil
}

func (o *SystemOpener) launcher() ([]string, bool) {
	if args := strings.Fields(o.Command); len(args) > 0 {
		return args, true
	}
	if o.getenv != nil {
		if args := strings.Fields(o.getenv("BROWSER")); len(args) > 0 {
			if path, err := o.lookPath(args[0]); err == nil && path != "" {
				args[0] = path
				return args, true
			}
		}
	}
	return detectLauncherInternal(o.goos, o.lookPath)
}

func detectLauncherInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	switch strings.ToLower(goos) {
	case "darwin":
		if path, err := lookPath("open"); err == nil && path != "" {
			return []string{path}, true
		}
		return nil, false
	case "windows":
		if path, err := lookPath("rundll32"); err == nil && path != "" {
			return []string{path, "url.dll,FileProtocolHandler"}, true
		}
		if path, err := lookPath("cmd"); err == nil && path != "" {
			return []string{path, "/c", "start", ""}, true
		}
		return nil, false
	}

	for _, candidate := range []string{"xdg-open", "wslview", "sensible-browser", "x-www-browser"} {
		if path, err := lookPath(candidate); err == nil && path != "" {
			return []string{path}, true
		}
	}
	return nil, false
}

func runDetached(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	return cmd.Run()
}

// Open resolves raw and passes it to opener. Failures are logged as well
// as returned so callers that only surface a status line lose nothing.
func Open(ctx context.Context, raw string, opener Opener, logger *zap.SugaredLogger) error {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	uri, err := Resolve(raw)
	if err != nil {
		logger.Warnw("invalid URL format", "link", raw, "error", err)
		return err
	}
	if opener == nil {
		return ErrNoOpener
	}

	logger.Infow("opening URL", "url", uri)
	if err := opener.Open(ctx, uri); err != nil {
		logger.Errorw("could not open URL", "url", uri, "error", err)
		return err
	}
	return nil
}
