package state

import (
	"strings"

	"github.com/kk-code-lab/docnote/internal/markdown"
	textutil "github.com/kk-code-lab/docnote/internal/textutil"
)

const placeholderText = markdown.EmptyText

// LayoutOptions controls how blocks become terminal rows.
type LayoutOptions struct {
	Width    int
	Bullet   string
	TabWidth int
}

// LayoutBlocks turns classified blocks into body rows for opts.Width
// columns. Headings, list items and paragraphs are word-wrapped; code lines
// are kept whole. An empty block list yields the placeholder row.
func LayoutBlocks(blocks []markdown.Block, opts LayoutOptions) []Line {
	if len(blocks) == 0 {
		return []Line{{Segments: []StyledTextSegment{{Text: placeholderText, Style: TextStylePlaceholder}}}}
	}
	if opts.Bullet == "" {
		opts.Bullet = "•"
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = textutil.DefaultTabWidth
	}
	p := &layoutPainter{opts: opts}
	markdown.Paint(blocks, p)
	return p.lines
}

type layoutPainter struct {
	opts  LayoutOptions
	lines []Line
}

func (p *layoutPainter) appendWrapped(rows [][]StyledTextSegment) {
	for _, row := range rows {
		p.lines = append(p.lines, Line{Segments: row})
	}
}

func (p *layoutPainter) Heading(level int, text string) {
	style := TextStyleHeading1
	switch level {
	case 2:
		style = TextStyleHeading2
	case 3:
		style = TextStyleHeading3
	}
	p.appendWrapped(wrapSegments([]StyledTextSegment{{Text: text, Style: style}}, p.opts.Width, p.opts.TabWidth))
}

func (p *layoutPainter) ListItem(spans []markdown.Span) {
	bullet := p.opts.Bullet + " "
	indent := textutil.DisplayWidth(bullet)
	width := p.opts.Width
	if width > 0 {
		width -= indent
		if width < 1 {
			width = 1
		}
	}

	rows := wrapSegments(spanSegments(spans), width, p.opts.TabWidth)
	for i, row := range rows {
		prefix := StyledTextSegment{Text: bullet, Style: TextStyleBullet}
		if i > 0 {
			prefix = StyledTextSegment{Text: strings.Repeat(" ", indent), Style: TextStylePlain}
		}
		p.lines = append(p.lines, Line{Segments: append([]StyledTextSegment{prefix}, row...)})
	}
}

func (p *layoutPainter) Paragraph(spans []markdown.Span) {
	p.appendWrapped(wrapSegments(spanSegments(spans), p.opts.Width, p.opts.TabWidth))
}

func (p *layoutPainter) CodeBlock(lines []string, _ string) {
	if len(lines) == 0 {
		p.lines = append(p.lines, Line{Segments: []StyledTextSegment{{Style: TextStyleCodeBlock}}, Code: true})
		return
	}
	for _, l := range lines {
		text := textutil.SanitizeTerminalText(textutil.ExpandTabs(l, p.opts.TabWidth))
		p.lines = append(p.lines, Line{Segments: []StyledTextSegment{{Text: text, Style: TextStyleCodeBlock}}, Code: true})
	}
}

func (p *layoutPainter) Spacer() {
	p.lines = append(p.lines, Line{})
}

func spanSegments(spans []markdown.Span) []StyledTextSegment {
	segments := make([]StyledTextSegment, 0, len(spans))
	for _, span := range spans {
		segments = append(segments, StyledTextSegment{Text: span.Text, Style: TextStylePlain, Inline: span.Style})
	}
	return segments
}

type wrapCell struct {
	r      rune
	width  int
	style  TextStyleKind
	inline markdown.SpanStyle
}

// wrapSegments breaks segments into rows of at most width cells, preferring
// to break at spaces. Tabs expand against the running column and control
// characters are neutralised first. A width <= 0 disables wrapping.
func wrapSegments(segments []StyledTextSegment, width, tabWidth int) [][]StyledTextSegment {
	cells := flattenSegments(segments, tabWidth)
	if len(cells) == 0 {
		return [][]StyledTextSegment{{}}
	}
	if width <= 0 {
		return [][]StyledTextSegment{groupCells(cells)}
	}

	var rows [][]StyledTextSegment
	start := 0
	for start < len(cells) {
		end, used, lastSpace := start, 0, -1
		for end < len(cells) {
			w := cells[end].width
			if used+w > width && end > start {
				break
			}
			if cells[end].r == ' ' {
				lastSpace = end
			}
			used += w
			end++
		}

		switch {
		case end == len(cells):
			rows = append(rows, groupCells(cells[start:end]))
			start = end
		case cells[end].r == ' ':
			rows = append(rows, groupCells(trimTrailingSpaces(cells[start:end])))
			start = end
		case lastSpace > start:
			rows = append(rows, groupCells(trimTrailingSpaces(cells[start:lastSpace])))
			start = lastSpace
		default:
			rows = append(rows, groupCells(cells[start:end]))
			start = end
		}
		for start < len(cells) && cells[start].r == ' ' {
			start++
		}
	}
	return rows
}

func flattenSegments(segments []StyledTextSegment, tabWidth int) []wrapCell {
	var cells []wrapCell
	column := 0
	for _, seg := range segments {
		for _, r := range textutil.SanitizeTerminalText(seg.Text) {
			if r == '\t' {
				spaces := 1
				if tabWidth > 0 {
					spaces = tabWidth - column%tabWidth
				}
				for i := 0; i < spaces; i++ {
					cells = append(cells, wrapCell{r: ' ', width: 1, style: seg.Style, inline: seg.Inline})
				}
				column += spaces
				continue
			}
			w := textutil.RuneWidth(r)
			cells = append(cells, wrapCell{r: r, width: w, style: seg.Style, inline: seg.Inline})
			column += w
		}
	}
	return cells
}

func trimTrailingSpaces(cells []wrapCell) []wrapCell {
	end := len(cells)
	for end > 0 && cells[end-1].r == ' ' {
		end--
	}
	return cells[:end]
}

func groupCells(cells []wrapCell) []StyledTextSegment {
	segments := []StyledTextSegment{}
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 && (cell.style != cells[i-1].style || cell.inline != cells[i-1].inline) {
			segments = append(segments, StyledTextSegment{Text: b.String(), Style: cells[i-1].style, Inline: cells[i-1].inline})
			b.Reset()
		}
		b.WriteRune(cell.r)
	}
	if b.Len() > 0 {
		last := cells[len(cells)-1]
		segments = append(segments, StyledTextSegment{Text: b.String(), Style: last.style, Inline: last.inline})
	}
	return segments
}
