package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// resolveEditorCommand returns the argv used to edit a note: the configured
// command, then $VISUAL, then $EDITOR, then a platform default. The first
// candidate whose executable is found wins.
func resolveEditorCommand(configured string) ([]string, bool) {
	return editorCommand(configured, runtime.GOOS, os.Getenv, exec.LookPath)
}

func editorCommand(configured, goos string, getenv func(string) string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := []string{configured, getenv("VISUAL"), getenv("EDITOR")}
	if goos == "windows" {
		candidates = append(candidates, "code --wait", "notepad.exe")
	} else {
		candidates = append(candidates, "vim", "nano")
	}

	for _, candidate := range candidates {
		args := splitCommand(candidate)
		if len(args) == 0 {
			continue
		}
		if path, err := lookPath(expandHome(args[0])); err == nil {
			args[0] = path
			return args, true
		}
	}
	return nil, false
}

// splitCommand splits cmd on unquoted whitespace. Single and double quotes
// group words; a quote of the other kind inside them is literal.
func splitCommand(cmd string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)
	for _, r := range cmd {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote, inWord = r, true
		case quote == 0 && unicode.IsSpace(r):
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		args = append(args, current.String())
	}
	return args
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
