package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

var codeFenceRegex = regexp.MustCompile("^\\s*```")

// SplitLines normalizes CRLF line endings and splits raw into lines.
func SplitLines(raw string) []string {
	return strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
}

// Classify turns raw note text into a block sequence. It never fails:
// an unterminated fence is flushed at end of input and empty input yields nil.
func Classify(raw string) []Block {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var (
		blocks      []Block
		inCodeBlock bool
		codeLines   []string
		codeInfo    string
	)

	for _, rawLine := range SplitLines(raw) {
		line := strings.TrimRightFunc(rawLine, unicode.IsSpace)

		if codeFenceRegex.MatchString(line) {
			if inCodeBlock {
				blocks = append(blocks, CodeBlock{Lines: codeLines, Info: codeInfo})
				codeLines = nil
				codeInfo = ""
				inCodeBlock = false
			} else {
				codeInfo = fenceInfo(line)
				inCodeBlock = true
			}
			continue
		}

		if inCodeBlock {
			codeLines = append(codeLines, rawLine)
			continue
		}

		blocks = append(blocks, classifyLine(line))
	}

	if inCodeBlock && len(codeLines) > 0 {
		blocks = append(blocks, CodeBlock{Lines: codeLines, Info: codeInfo})
	}
	return blocks
}

// classifyLine handles a right-trimmed line outside any fence. Heading
// prefixes are checked longest first since they share the '#' marker.
func classifyLine(line string) Block {
	switch {
	case strings.TrimSpace(line) == "":
		return Spacer{}
	case strings.HasPrefix(line, "### "):
		return Heading{Level: 3, Text: line[4:]}
	case strings.HasPrefix(line, "## "):
		return Heading{Level: 2, Text: line[3:]}
	case strings.HasPrefix(line, "# "):
		return Heading{Level: 1, Text: line[2:]}
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
		return ListItem{Text: line[2:]}
	default:
		return Paragraph{Text: line}
	}
}

func fenceInfo(line string) string {
	idx := strings.Index(line, "```")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(line[idx:], "`"))
}
