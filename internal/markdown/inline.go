package markdown

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// SpanStyle is a set of inline styles. Styles combine when markers nest.
type SpanStyle uint8

const (
	SpanBold SpanStyle = 1 << iota
	SpanItalic
	SpanCode
)

// SpanPlain is the empty style set.
const SpanPlain SpanStyle = 0

// Has reports whether every bit of other is set in s.
func (s SpanStyle) Has(other SpanStyle) bool {
	return other != 0 && s&other == other
}

func (s SpanStyle) String() string {
	if s == SpanPlain {
		return "plain"
	}
	var parts []string
	if s.Has(SpanBold) {
		parts = append(parts, "bold")
	}
	if s.Has(SpanItalic) {
		parts = append(parts, "italic")
	}
	if s.Has(SpanCode) {
		parts = append(parts, "code")
	}
	return strings.Join(parts, "+")
}

// Span is a styled fragment of a transformed line.
type Span struct {
	Text  string
	Style SpanStyle
}

type inlinePass struct {
	re    *regexp.Regexp
	style SpanStyle
}

// Order matters: bold must claim "**" before italic sees single stars.
var inlinePasses = []inlinePass{
	{re: regexp.MustCompile(`\*\*(.+?)\*\*`), style: SpanBold},
	{re: regexp.MustCompile(`\*(.+?)\*`), style: SpanItalic},
	{re: regexp.MustCompile("`(.+?)`"), style: SpanCode},
}

// inlineCell is one source rune (kept as its original bytes) and the
// styles accumulated on it so far.
type inlineCell struct {
	text  string
	style SpanStyle
}

// Transform resolves bold, italic and inline code markers in text.
//
// Each pass runs over the whole line with the markers of earlier passes
// already removed, so markers inside a claimed span are still resolved and
// their styles add up: "**a *b* c**" yields a bold+italic "b". Markers
// without a partner are left as literal text.
func Transform(text string) []Span {
	if text == "" {
		return nil
	}

	cells := splitCells(text)
	for _, pass := range inlinePasses {
		cells = applyPass(cells, pass)
	}
	return mergeCells(cells)
}

// PlainText concatenates the text of spans, dropping their styles.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

func splitCells(text string) []inlineCell {
	cells := make([]inlineCell, 0, len(text))
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		cells = append(cells, inlineCell{text: text[i : i+size]})
		i += size
	}
	return cells
}

func applyPass(cells []inlineCell, pass inlinePass) []inlineCell {
	var b strings.Builder
	// offsets[i] is the byte offset of cells[i]; the extra entry marks the end.
	offsets := make(map[int]int, len(cells)+1)
	for i, cell := range cells {
		offsets[b.Len()] = i
		b.WriteString(cell.text)
	}
	offsets[b.Len()] = len(cells)

	matches := pass.re.FindAllStringSubmatchIndex(b.String(), -1)
	if len(matches) == 0 {
		return cells
	}

	out := make([]inlineCell, 0, len(cells))
	next := 0
	for _, m := range matches {
		start, end := offsets[m[0]], offsets[m[1]]
		innerStart, innerEnd := offsets[m[2]], offsets[m[3]]

		out = append(out, cells[next:start]...)
		for _, cell := range cells[innerStart:innerEnd] {
			cell.style |= pass.style
			out = append(out, cell)
		}
		next = end
	}
	return append(out, cells[next:]...)
}

func mergeCells(cells []inlineCell) []Span {
	var spans []Span
	var current strings.Builder
	style := SpanPlain

	flush := func() {
		if current.Len() == 0 {
			return
		}
		spans = append(spans, Span{Text: current.String(), Style: style})
		current.Reset()
	}

	for _, cell := range cells {
		if cell.style != style {
			flush()
			style = cell.style
		}
		current.WriteString(cell.text)
	}
	flush()
	return spans
}
