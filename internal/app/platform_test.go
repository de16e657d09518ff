package app

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func fakeLookPath(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		if slices.Contains(available, name) {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func noEnv(string) string { return "" }

func TestEditorCommandOrder(t *testing.T) {
	env := map[string]string{"VISUAL": "code --wait", "EDITOR": "vim"}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name       string
		configured string
		goos       string
		getenv     func(string) string
		available  []string
		want       []string
	}{
		{"configured wins", "nano -w", "linux", getenv, []string{"nano", "code", "vim"}, []string{"/usr/bin/nano", "-w"}},
		{"missing configured falls through", "subl", "linux", getenv, []string{"code", "vim"}, []string{"/usr/bin/code", "--wait"}},
		{"visual before editor", "", "linux", getenv, []string{"code", "vim"}, []string{"/usr/bin/code", "--wait"}},
		{"editor when visual missing", "", "linux", getenv, []string{"vim"}, []string{"/usr/bin/vim"}},
		{"unix default", "", "linux", noEnv, []string{"nano"}, []string{"/usr/bin/nano"}},
		{"windows default", "", "windows", noEnv, []string{"notepad.exe"}, []string{"/usr/bin/notepad.exe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := editorCommand(tt.configured, tt.goos, tt.getenv, fakeLookPath(tt.available...))
			if !ok || !slices.Equal(got, tt.want) {
				t.Fatalf("editorCommand = %v (ok=%v), want %v", got, ok, tt.want)
			}
		})
	}
}

func TestEditorCommandNoneAvailable(t *testing.T) {
	if got, ok := editorCommand("", "linux", noEnv, fakeLookPath()); ok {
		t.Fatalf("expected no editor, got %v", got)
	}
}

func TestSplitCommandQuoting(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"  ", nil},
		{"vim", []string{"vim"}},
		{`code --wait`, []string{"code", "--wait"}},
		{`"/Applications/My Editor" -n`, []string{"/Applications/My Editor", "-n"}},
		{`emacs -nw '--eval' "(setq x 'y)"`, []string{"emacs", "-nw", "--eval", "(setq x 'y)"}},
		{`vim ""`, []string{"vim", ""}},
	}

	for _, tt := range tests {
		if got := splitCommand(tt.input); !slices.Equal(got, tt.want) {
			t.Fatalf("splitCommand(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	if got, want := expandHome("~/bin/ed"), filepath.Join(home, "bin/ed"); got != want {
		t.Fatalf("expandHome = %q, want %q", got, want)
	}
	if got := expandHome("~user/ed"); got != "~user/ed" {
		t.Fatalf("expandHome changed %q", got)
	}
	if got, _ := os.UserHomeDir(); expandHome("~") != filepath.Clean(got) {
		t.Fatalf("expandHome(~) = %q", expandHome("~"))
	}
}
