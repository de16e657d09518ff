package markdown

// EmptyText stands in for a note with no blocks.
const EmptyText = "No documentation available."

// BlockKind identifies the concrete type behind a Block.
type BlockKind int

const (
	BlockSpacer BlockKind = iota
	BlockHeading
	BlockListItem
	BlockParagraph
	BlockCode
)

func (k BlockKind) String() string {
	switch k {
	case BlockSpacer:
		return "spacer"
	case BlockHeading:
		return "heading"
	case BlockListItem:
		return "list item"
	case BlockParagraph:
		return "paragraph"
	case BlockCode:
		return "code block"
	default:
		return "unknown"
	}
}

// Block is one classified unit of note structure.
type Block interface {
	Kind() BlockKind
}

// Heading is a level 1-3 heading. Its text is shown literally.
type Heading struct {
	Level int
	Text  string
}

// ListItem is a bullet line; Text still carries inline markers.
type ListItem struct {
	Text string
}

// Paragraph is a plain text line; Text still carries inline markers.
type Paragraph struct {
	Text string
}

// CodeBlock holds the raw lines between two fences.
type CodeBlock struct {
	Lines []string
	// Info is whatever followed the backticks on the opening fence.
	Info string
}

// Spacer stands for a blank line.
type Spacer struct{}

func (Heading) Kind() BlockKind   { return BlockHeading }
func (ListItem) Kind() BlockKind  { return BlockListItem }
func (Paragraph) Kind() BlockKind { return BlockParagraph }
func (CodeBlock) Kind() BlockKind { return BlockCode }
func (Spacer) Kind() BlockKind    { return BlockSpacer }
