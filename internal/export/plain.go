// Package export writes classified notes out as plain text or HTML.
package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/kk-code-lab/docnote/internal/markdown"
	textutil "github.com/kk-code-lab/docnote/internal/textutil"
)

// PlainOptions tunes the plain text rendition.
type PlainOptions struct {
	Bullet   string
	TabWidth int
}

type plainPainter struct {
	w    *bufio.Writer
	opts PlainOptions
}

// Plain writes blocks as readable text: headings underlined, bullets kept,
// code indented. Inline markers are dropped and control characters are
// neutralised so the output is safe to cat. A note without blocks prints
// the same placeholder the viewer shows.
func Plain(w io.Writer, blocks []markdown.Block, opts PlainOptions) error {
	if opts.Bullet == "" {
		opts.Bullet = "•"
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = textutil.DefaultTabWidth
	}
	p := &plainPainter{w: bufio.NewWriter(w), opts: opts}
	if len(blocks) == 0 {
		p.line(markdown.EmptyText)
		return p.w.Flush()
	}
	markdown.Paint(blocks, p)
	return p.w.Flush()
}

func (p *plainPainter) line(s string) {
	_, _ = p.w.WriteString(s)
	_ = p.w.WriteByte('\n')
}

func (p *plainPainter) Heading(level int, text string) {
	text = textutil.SanitizeTerminalText(text)
	p.line(text)
	switch level {
	case 1:
		p.line(strings.Repeat("=", textutil.DisplayWidth(text)))
	case 2:
		p.line(strings.Repeat("-", textutil.DisplayWidth(text)))
	}
}

func (p *plainPainter) ListItem(spans []markdown.Span) {
	p.line(p.opts.Bullet + " " + textutil.SanitizeTerminalText(markdown.PlainText(spans)))
}

func (p *plainPainter) Paragraph(spans []markdown.Span) {
	p.line(textutil.SanitizeTerminalText(markdown.PlainText(spans)))
}

func (p *plainPainter) CodeBlock(lines []string, _ string) {
	for _, l := range lines {
		p.line("    " + textutil.SanitizeTerminalText(textutil.ExpandTabs(l, p.opts.TabWidth)))
	}
}

func (p *plainPainter) Spacer() {
	p.line("")
}
