package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Block
	}{
		{
			name: "h1",
			raw:  "# Title",
			want: []Block{Heading{Level: 1, Text: "Title"}},
		},
		{
			name: "h2 blank body",
			raw:  "## Sub\n\nBody text",
			want: []Block{Heading{Level: 2, Text: "Sub"}, Spacer{}, Paragraph{Text: "Body text"}},
		},
		{
			name: "h3 before shorter prefixes",
			raw:  "### Deep",
			want: []Block{Heading{Level: 3, Text: "Deep"}},
		},
		{
			name: "hash without space is a paragraph",
			raw:  "#hashtag",
			want: []Block{Paragraph{Text: "#hashtag"}},
		},
		{
			name: "four hashes fall through to paragraph",
			raw:  "#### too deep",
			want: []Block{Paragraph{Text: "#### too deep"}},
		},
		{
			name: "list items with both markers",
			raw:  "- item one\n* item two",
			want: []Block{ListItem{Text: "item one"}, ListItem{Text: "item two"}},
		},
		{
			name: "fenced code",
			raw:  "```\ncode line 1\ncode line 2\n```",
			want: []Block{CodeBlock{Lines: []string{"code line 1", "code line 2"}}},
		},
		{
			name: "unterminated fence is flushed",
			raw:  "```\nunterminated",
			want: []Block{CodeBlock{Lines: []string{"unterminated"}}},
		},
		{
			name: "unterminated empty fence yields nothing",
			raw:  "text\n```",
			want: []Block{Paragraph{Text: "text"}},
		},
		{
			name: "terminated empty fence yields empty block",
			raw:  "```\n```",
			want: []Block{CodeBlock{}},
		},
		{
			name: "code keeps raw lines and never classifies them",
			raw:  "```go\n  # not a heading  \n- not a list\n\n```",
			want: []Block{CodeBlock{Lines: []string{"  # not a heading  ", "- not a list", ""}, Info: "go"}},
		},
		{
			name: "indented fence",
			raw:  "  ```\nx\n   ```",
			want: []Block{CodeBlock{Lines: []string{"x"}}},
		},
		{
			name: "trailing whitespace trimmed, leading kept",
			raw:  "  indented paragraph \t",
			want: []Block{Paragraph{Text: "  indented paragraph"}},
		},
		{
			name: "crlf line endings",
			raw:  "# A\r\n\r\nbody\r\n",
			want: []Block{Heading{Level: 1, Text: "A"}, Spacer{}, Paragraph{Text: "body"}, Spacer{}},
		},
		{
			name: "whitespace-only line is a spacer",
			raw:  "a\n   \nb",
			want: []Block{Paragraph{Text: "a"}, Spacer{}, Paragraph{Text: "b"}},
		},
		{
			name: "dash without space is a paragraph",
			raw:  "-",
			want: []Block{Paragraph{Text: "-"}},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace input",
			raw:  " \n\t\r\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.raw)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("Classify(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	inputs := []string{
		"```", "```\n```\n```", "#", "# ", "##", "* ", "**", "\r", "\r\n\r\n",
		"\x00\xff\xfe", strings.Repeat("`", 100), "- \n-  \n*\t",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Classify(%q) panicked: %v", in, r)
				}
			}()
			_ = Classify(in)
		}()
	}
}

func TestClassifyCallsAreIndependent(t *testing.T) {
	// An unterminated fence in one call must not leak into the next.
	_ = Classify("```\nopen")
	got := Classify("# Title")
	want := []Block{Heading{Level: 1, Text: "Title"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected blocks (-want +got):\n%s", diff)
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\nc")
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("SplitLines mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockKinds(t *testing.T) {
	blocks := []Block{Spacer{}, Heading{}, ListItem{}, Paragraph{}, CodeBlock{}}
	want := []BlockKind{BlockSpacer, BlockHeading, BlockListItem, BlockParagraph, BlockCode}
	for i, block := range blocks {
		if block.Kind() != want[i] {
			t.Fatalf("block %T kind = %v, want %v", block, block.Kind(), want[i])
		}
	}
}
