// Package note holds the documentation note model and its on-disk format.
//
// A note file is ordinary Markdown. The documentation link, when present,
// lives on the first line as an HTML comment so other Markdown viewers hide it:
//
//	<!-- link: https://example.com/wiki -->
//
//	# Heading
//	Some **bold** text.
package note

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotText is returned when a note file does not look like text.
var ErrNotText = errors.New("note file is not text")

const defaultMarkdown = "# Heading 1\n## Heading 2\nSome **bold** text."

var linkHeaderRegex = regexp.MustCompile(`^<!--\s*link:\s*(.*?)\s*-->\s*$`)

// Note is a short Markdown text plus a documentation URL.
type Note struct {
	DocumentationURL string
	Markdown         string
	Encoding         Encoding
}

// Default returns the template used for freshly created notes.
func Default() Note {
	return Note{Markdown: defaultMarkdown}
}

// Reset clears the link and the Markdown text. The encoding is kept.
func (n *Note) Reset() {
	n.DocumentationURL = ""
	n.Markdown = ""
}

// TrimMarkdown strips surrounding whitespace from the Markdown text. It runs
// whenever an edit session ends.
func (n *Note) TrimMarkdown() {
	n.Markdown = strings.TrimSpace(n.Markdown)
}

// HasLink reports whether a documentation URL is set.
func (n Note) HasLink() bool {
	return strings.TrimSpace(n.DocumentationURL) != ""
}

// IsEmpty reports whether there is nothing to render.
func (n Note) IsEmpty() bool {
	return n.Markdown == ""
}

// Parse decodes note file content. It never fails; content without a link
// header is all Markdown. The file's final newline is not part of the note.
func Parse(content []byte) Note {
	decoded, enc := decodeText(content)
	text := strings.ReplaceAll(decoded, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	first, rest, found := strings.Cut(text, "\n")
	m := linkHeaderRegex.FindStringSubmatch(first)
	if m == nil {
		return Note{Markdown: text, Encoding: enc}
	}
	if !found {
		rest = ""
	}
	// One blank separator line belongs to the header.
	if sep, body, ok := strings.Cut(rest, "\n"); ok && strings.TrimSpace(sep) == "" {
		rest = body
	} else if strings.TrimSpace(rest) == "" {
		rest = ""
	}
	return Note{DocumentationURL: m[1], Markdown: rest, Encoding: enc}
}

// Bytes encodes n in the note file format as UTF-8. Save converts the result
// to n.Encoding.
func (n Note) Bytes() []byte {
	var b strings.Builder
	if url := strings.TrimSpace(n.DocumentationURL); url != "" {
		fmt.Fprintf(&b, "<!-- link: %s -->\n\n", url)
	}
	b.WriteString(n.Markdown)
	if n.Markdown != "" && !strings.HasSuffix(n.Markdown, "\n") {
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Load reads and parses the note at path.
func Load(path string) (Note, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Note{}, fmt.Errorf("read note: %w", err)
	}
	if !looksLikeText(content) {
		return Note{}, fmt.Errorf("%s: %w", path, ErrNotText)
	}
	return Parse(content), nil
}

// Save writes n to path through a temporary file in the same directory.
func Save(path string, n Note) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	content, err := encodeText(n.Bytes(), n.Encoding)
	if err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save note: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save note: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}
