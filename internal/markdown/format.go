package markdown

import "strings"

// Format writes blocks back out as note text. List items always use "- ",
// so Classify(Format(blocks)) reproduces blocks rather than the exact input.
func Format(blocks []Block) string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch b := block.(type) {
		case Heading:
			level := b.Level
			if level < 1 {
				level = 1
			}
			lines = append(lines, strings.Repeat("#", level)+" "+b.Text)
		case ListItem:
			lines = append(lines, "- "+b.Text)
		case Paragraph:
			lines = append(lines, b.Text)
		case CodeBlock:
			lines = append(lines, "```"+b.Info)
			lines = append(lines, b.Lines...)
			lines = append(lines, "```")
		case Spacer:
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}
