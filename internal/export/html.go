package export

import (
	"bufio"
	"io"

	"github.com/kk-code-lab/docnote/internal/markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// md renders the documents built by htmlPainter; nothing is parsed with it.
var md = goldmark.New()

// htmlPainter turns classified blocks into a goldmark document. Text lives in
// source and nodes point at it through segments, the way goldmark's parser
// would leave them.
type htmlPainter struct {
	doc    *ast.Document
	list   *ast.List
	source []byte
}

// HTML writes blocks as an HTML fragment. Consecutive list items share one
// <ul>; spacers only close an open list. All text is escaped.
func HTML(w io.Writer, blocks []markdown.Block) error {
	p := &htmlPainter{doc: ast.NewDocument()}
	markdown.Paint(blocks, p)

	bw := bufio.NewWriter(w)
	if err := md.Renderer().Render(bw, p.source, p.doc); err != nil {
		return err
	}
	return bw.Flush()
}

func (p *htmlPainter) segment(s string) text.Segment {
	start := len(p.source)
	p.source = append(p.source, s...)
	return text.NewSegment(start, len(p.source))
}

func (p *htmlPainter) rawText(s string) *ast.Text {
	t := ast.NewTextSegment(p.segment(s))
	t.SetRaw(true)
	return t
}

func (p *htmlPainter) closeList() {
	p.list = nil
}

func (p *htmlPainter) Heading(level int, text string) {
	p.closeList()
	if level < 1 || level > 3 {
		level = 1
	}
	h := ast.NewHeading(level)
	h.AppendChild(h, p.rawText(text))
	p.doc.AppendChild(p.doc, h)
}

func (p *htmlPainter) ListItem(spans []markdown.Span) {
	if p.list == nil {
		p.list = ast.NewList('-')
		p.list.IsTight = true
		p.doc.AppendChild(p.doc, p.list)
	}
	item := ast.NewListItem(2)
	tb := ast.NewTextBlock()
	p.appendSpans(tb, spans)
	item.AppendChild(item, tb)
	p.list.AppendChild(p.list, item)
}

func (p *htmlPainter) Paragraph(spans []markdown.Span) {
	p.closeList()
	para := ast.NewParagraph()
	p.appendSpans(para, spans)
	p.doc.AppendChild(p.doc, para)
}

func (p *htmlPainter) CodeBlock(lines []string, info string) {
	p.closeList()
	var infoText *ast.Text
	if info != "" {
		infoText = ast.NewTextSegment(p.segment(info))
	}
	block := ast.NewFencedCodeBlock(infoText)
	for _, l := range lines {
		block.Lines().Append(p.segment(l + "\n"))
	}
	p.doc.AppendChild(p.doc, block)
}

func (p *htmlPainter) Spacer() {
	p.closeList()
}

// appendSpans nests nodes in a fixed order (strong, em, code) so combined
// styles always produce balanced markup.
func (p *htmlPainter) appendSpans(parent ast.Node, spans []markdown.Span) {
	for _, span := range spans {
		var node ast.Node = p.rawText(span.Text)
		if span.Style.Has(markdown.SpanCode) {
			code := ast.NewCodeSpan()
			code.AppendChild(code, node)
			node = code
		}
		if span.Style.Has(markdown.SpanItalic) {
			em := ast.NewEmphasis(1)
			em.AppendChild(em, node)
			node = em
		}
		if span.Style.Has(markdown.SpanBold) {
			strong := ast.NewEmphasis(2)
			strong.AppendChild(strong, node)
			node = strong
		}
		parent.AppendChild(parent, node)
	}
}
