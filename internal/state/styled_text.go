package state

import "github.com/kk-code-lab/docnote/internal/markdown"

// TextStyleKind describes what a laid-out segment belongs to. Inline
// emphasis is carried separately in StyledTextSegment.Inline.
type TextStyleKind int

const (
	TextStylePlain TextStyleKind = iota
	TextStyleHeading1
	TextStyleHeading2
	TextStyleHeading3
	TextStyleBullet
	TextStyleCodeBlock
	TextStylePlaceholder
)

// StyledTextSegment is a chunk of text with an associated style.
type StyledTextSegment struct {
	Text   string
	Style  TextStyleKind
	Inline markdown.SpanStyle
}

// Line is one row of the note body. Code lines are clipped, never wrapped.
type Line struct {
	Segments []StyledTextSegment
	Code     bool
}

// Text returns the line without styling.
func (l Line) Text() string {
	return joinSegmentsText(l.Segments)
}

func joinSegmentsText(segments []StyledTextSegment) string {
	if len(segments) == 0 {
		return ""
	}
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	buf := make([]byte, 0, total)
	for _, seg := range segments {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}
