package markdown

// Painter draws classified blocks onto some surface. List item and
// paragraph text arrives already resolved into spans.
type Painter interface {
	Heading(level int, text string)
	ListItem(spans []Span)
	Paragraph(spans []Span)
	CodeBlock(lines []string, info string)
	Spacer()
}

// Paint feeds blocks to p in order.
func Paint(blocks []Block, p Painter) {
	for _, block := range blocks {
		switch b := block.(type) {
		case Heading:
			p.Heading(b.Level, b.Text)
		case ListItem:
			p.ListItem(Transform(b.Text))
		case Paragraph:
			p.Paragraph(Transform(b.Text))
		case CodeBlock:
			p.CodeBlock(b.Lines, b.Info)
		case Spacer:
			p.Spacer()
		}
	}
}
