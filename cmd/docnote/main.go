package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/docnote/internal/app"
	"github.com/kk-code-lab/docnote/internal/config"
	"github.com/kk-code-lab/docnote/internal/export"
	"github.com/kk-code-lab/docnote/internal/link"
	"github.com/kk-code-lab/docnote/internal/logging"
	"github.com/kk-code-lab/docnote/internal/markdown"
	"github.com/kk-code-lab/docnote/internal/note"
)

const helpText = `docnote - Terminal viewer for Markdown documentation notes

USAGE:
    docnote [OPTIONS] NOTE.md

OPTIONS:
    -h, --help            Show this help message and exit
    -c, --config FILE     Read settings from FILE instead of the default location
    -p, --print           Print the note as plain text and exit
        --html            Print the note as an HTML fragment and exit
    -o, --open            Open the note's documentation link in the browser and exit
        --init            Create NOTE.md from the template if it does not exist
        --reset           Clear the link and text of NOTE.md before anything else
`

type mode int

const (
	modeView mode = iota
	modePrint
	modeHTML
	modeOpen
)

type options struct {
	help       bool
	configPath string
	mode       mode
	init       bool
	reset      bool
	notePath   string
}

var newOpener = func(command string) link.Opener {
	return link.NewSystemOpener(command)
}

// runViewer is replaced in tests; the real viewer needs a terminal.
var runViewer = func(opts apppkg.Options) error {
	app, err := apppkg.NewApplication(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()
	app.Run()
	return nil
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseArgs(args []string) (options, error) {
	var opts options
	setMode := func(m mode, flag string) error {
		if opts.mode != modeView && opts.mode != m {
			return fmt.Errorf("%s cannot be combined with another output mode", flag)
		}
		opts.mode = m
		return nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-c" || arg == "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a file argument", arg)
			}
			i++
			opts.configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case arg == "-p" || arg == "--print":
			if err := setMode(modePrint, arg); err != nil {
				return opts, err
			}
		case arg == "--html":
			if err := setMode(modeHTML, arg); err != nil {
				return opts, err
			}
		case arg == "-o" || arg == "--open":
			if err := setMode(modeOpen, arg); err != nil {
				return opts, err
			}
		case arg == "--init":
			opts.init = true
		case arg == "--reset":
			opts.reset = true
		case strings.HasPrefix(arg, "-") && arg != "-":
			return opts, fmt.Errorf("unknown option %s", arg)
		default:
			if opts.notePath != "" {
				return opts, fmt.Errorf("only one note file may be given")
			}
			opts.notePath = arg
		}
	}

	if !opts.help && opts.notePath == "" {
		return opts, errors.New("missing NOTE.md argument")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "docnote: %v\n\n%s", err, helpText)
		return 2
	}
	if opts.help {
		fmt.Fprint(stdout, helpText)
		return 0
	}

	settings, err := config.Read(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "docnote: %v\n", err)
		return 1
	}

	if opts.reset {
		if err := resetNote(opts.notePath); err != nil {
			fmt.Fprintf(stderr, "docnote: %v\n", err)
			return 1
		}
	}

	if opts.init {
		created, err := initNote(opts.notePath)
		if err != nil {
			fmt.Fprintf(stderr, "docnote: %v\n", err)
			return 1
		}
		if created && opts.mode != modeView {
			fmt.Fprintf(stderr, "created %s\n", opts.notePath)
		}
	}

	if opts.mode == modeView {
		logger, err := logging.New(settings.Log.Level, settings.Log.File)
		if err != nil {
			fmt.Fprintf(stderr, "docnote: %v\n", err)
			return 1
		}
		defer func() { _ = logger.Sync() }()

		if err := runViewer(apppkg.Options{NotePath: opts.notePath, Settings: *settings, Logger: logger}); err != nil {
			fmt.Fprintf(stderr, "Error initializing application: %v\n", err)
			return 1
		}
		return 0
	}

	logger, err := logging.NewStderr(settings.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "docnote: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	n, err := note.Load(opts.notePath)
	if err != nil {
		logger.Errorw("could not load note", "path", opts.notePath, "error", err)
		return 1
	}
	n.TrimMarkdown()

	switch opts.mode {
	case modePrint:
		err = export.Plain(stdout, markdown.Classify(n.Markdown), export.PlainOptions{Bullet: settings.Bullet, TabWidth: settings.TabWidth})
	case modeHTML:
		err = export.HTML(stdout, markdown.Classify(n.Markdown))
	case modeOpen:
		if !n.HasLink() {
			err = fmt.Errorf("%s has no documentation link", opts.notePath)
			break
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err = link.Open(ctx, n.DocumentationURL, newOpener(settings.Browser), logger)
	}
	if err != nil {
		logger.Errorw("command failed", "path", opts.notePath, "error", err)
		return 1
	}
	return 0
}

// initNote writes the template note to path unless a file is already there.
func initNote(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := note.Save(path, note.Default()); err != nil {
		return false, err
	}
	return true, nil
}

// resetNote empties the note at path in place. A missing file is left alone.
func resetNote(path string) error {
	n, err := note.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	n.Reset()
	return note.Save(path, n)
}
