package link

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"https kept", "https://example.com/wiki?q=1", "https://example.com/wiki?q=1"},
		{"http kept", "http://example.com", "http://example.com"},
		{"surrounding space trimmed", "  https://example.com/x \n", "https://example.com/x"},
		{"scheme added", "example.com/wiki/spaces", "http://example.com/wiki/spaces"},
		{"host and port", "localhost:8080/docs", "http://localhost:8080/docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.raw)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveRejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a url"} {
		if got, err := Resolve(raw); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("Resolve(%q) = (%q, %v), want ErrInvalidURL", raw, got, err)
		}
	}
}

func fakeLookPath(available ...string) func(string) (string, error) {
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
}

func TestDetectLauncherInternal(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		available []string
		want      []string
		ok        bool
	}{
		{"darwin open", "darwin", []string{"open"}, []string{"/usr/bin/open"}, true},
		{"linux xdg-open", "linux", []string{"xdg-open", "wslview"}, []string{"/usr/bin/xdg-open"}, true},
		{"wsl fallback", "linux", []string{"wslview"}, []string{"/usr/bin/wslview"}, true},
		{"windows rundll32", "windows", []string{"rundll32", "cmd"}, []string{"/usr/bin/rundll32", "url.dll,FileProtocolHandler"}, true},
		{"windows cmd start", "windows", []string{"cmd"}, []string{"/usr/bin/cmd", "/c", "start", ""}, true},
		{"nothing", "freebsd", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detectLauncherInternal(tt.goos, fakeLookPath(tt.available...))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("launcher mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSystemOpenerPrefersOverrides(t *testing.T) {
	var ran []string
	o := &SystemOpener{
		goos: "linux",
		getenv: func(key string) string {
			if key == "BROWSER" {
				return "w3m -o x"
			}
			return ""
		},
		lookPath: fakeLookPath("w3m", "xdg-open"),
		run: func(_ context.Context, args []string) error {
			ran = args
			return nil
		},
	}

	if err := o.Open(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if diff := cmp.Diff([]string{"/usr/bin/w3m", "-o", "x", "https://example.com"}, ran); diff != "" {
		t.Fatalf("BROWSER launcher mismatch (-want +got):\n%s", diff)
	}

	o.Command = "firefox --new-tab"
	if err := o.Open(context.Background(), "https://example.com"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if diff := cmp.Diff([]string{"firefox", "--new-tab", "https://example.com"}, ran); diff != "" {
		t.Fatalf("command override mismatch (-want +got):\n%s", diff)
	}
}

func TestSystemOpenerWithoutLauncher(t *testing.T) {
	o := &SystemOpener{
		goos:     "linux",
		getenv:   func(string) string { return "" },
		lookPath: fakeLookPath(),
		run: func(context.Context, []string) error {
			t.Fatalf("run must not be called without a launcher")
			return nil
		},
	}
	if err := o.Open(context.Background(), "https://example.com"); !errors.Is(err, ErrNoOpener) {
		t.Fatalf("Open error = %v, want ErrNoOpener", err)
	}
}

func TestOpenLogsAndDelegates(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	var opened string
	opener := OpenerFunc(func(_ context.Context, uri string) error {
		opened = uri
		return nil
	})

	if err := Open(context.Background(), "example.com", opener, logger); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if opened != "http://example.com" {
		t.Fatalf("opened %q, want http://example.com", opened)
	}
	if logs.FilterMessage("opening URL").Len() != 1 {
		t.Fatalf("expected one 'opening URL' entry, got %v", logs.All())
	}
}

func TestOpenInvalidLinkWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core).Sugar()

	opener := OpenerFunc(func(context.Context, string) error {
		t.Fatalf("opener must not be called for invalid links")
		return nil
	})

	err := Open(context.Background(), "not a url", opener, logger)
	if !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("Open error = %v, want ErrInvalidURL", err)
	}
	if logs.FilterMessage("invalid URL format").Len() != 1 {
		t.Fatalf("expected a warning, got %v", logs.All())
	}
}
