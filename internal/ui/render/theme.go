package render

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/docnote/internal/config"
	"github.com/kk-code-lab/docnote/internal/markdown"
	statepkg "github.com/kk-code-lab/docnote/internal/state"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	HeaderBg      tcell.Color
	HeaderFg      tcell.Color
	HeadingFg     tcell.Color
	BodyFg        tcell.Color
	CodeBg        tcell.Color
	CodeFg        tcell.Color
	CodeBlockBg   tcell.Color
	CodeBlockFg   tcell.Color
	LinkFg        tcell.Color
	PlaceholderFg tcell.Color
	FooterBg      tcell.Color
	FooterFg      tcell.Color
	ErrorFg       tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		HeaderBg:      tcell.Color236,
		HeaderFg:      tcell.ColorWhite,
		HeadingFg:     tcell.ColorGray,
		BodyFg:        tcell.ColorDefault,
		CodeBg:        tcell.ColorDefault,
		CodeFg:        tcell.ColorWhite,
		CodeBlockBg:   tcell.Color234, // darker grey background for fenced code
		CodeBlockFg:   tcell.Color252, // light grey text for fenced code
		LinkFg:        tcell.Color33,
		PlaceholderFg: tcell.ColorLightSlateGray,
		FooterBg:      tcell.ColorDefault,
		FooterFg:      tcell.ColorDefault,
		ErrorFg:       tcell.ColorRed,
	}
}

// ThemeFromSettings applies configured color names on top of the defaults.
// Unknown names keep the default color.
func ThemeFromSettings(s config.ThemeSettings) ColorTheme {
	theme := GetColorTheme()
	override := func(dst *tcell.Color, name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if c := tcell.GetColor(name); c != tcell.ColorDefault {
			*dst = c
		}
	}
	override(&theme.HeadingFg, s.Heading)
	override(&theme.CodeFg, s.Code)
	override(&theme.CodeBlockFg, s.CodeBlockFg)
	override(&theme.CodeBlockBg, s.CodeBlockBg)
	override(&theme.LinkFg, s.Link)
	return theme
}

// StyleTable maps segment kinds to tcell styles. It is immutable once built
// and safe to share between renderers.
type StyleTable struct {
	theme  ColorTheme
	base   tcell.Style
	kinds  map[statepkg.TextStyleKind]tcell.Style
	code   tcell.Style
	header tcell.Style
	link   tcell.Style
	footer tcell.Style
	err    tcell.Style
}

// NewStyleTable precomputes every style used to paint a note.
func NewStyleTable(theme ColorTheme) *StyleTable {
	base := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	heading := base.Foreground(theme.HeadingFg).Bold(true)
	codeBlock := base.Foreground(theme.CodeBlockFg).Background(theme.CodeBlockBg)

	code := base
	if theme.CodeFg != tcell.ColorDefault {
		code = code.Foreground(theme.CodeFg)
	}
	if theme.CodeBg != tcell.ColorDefault {
		code = code.Background(theme.CodeBg)
	}

	return &StyleTable{
		theme: theme,
		base:  base,
		kinds: map[statepkg.TextStyleKind]tcell.Style{
			statepkg.TextStylePlain:       base.Foreground(theme.BodyFg),
			statepkg.TextStyleHeading1:    heading.Underline(true),
			statepkg.TextStyleHeading2:    heading,
			statepkg.TextStyleHeading3:    heading.Italic(true),
			statepkg.TextStyleBullet:      base.Foreground(theme.HeadingFg),
			statepkg.TextStyleCodeBlock:   codeBlock,
			statepkg.TextStylePlaceholder: base.Foreground(theme.PlaceholderFg).Italic(true),
		},
		code:   code,
		header: base.Background(theme.HeaderBg).Foreground(theme.HeaderFg),
		link:   base.Foreground(theme.LinkFg).Underline(true),
		footer: base.Background(theme.FooterBg).Foreground(theme.FooterFg),
		err:    base.Foreground(theme.ErrorFg).Bold(true),
	}
}

// DefaultStyleTable is built on first use and shared for the process lifetime.
var DefaultStyleTable = sync.OnceValue(func() *StyleTable {
	return NewStyleTable(GetColorTheme())
})

// Segment resolves the style of one laid-out segment.
func (t *StyleTable) Segment(seg statepkg.StyledTextSegment) tcell.Style {
	style, ok := t.kinds[seg.Style]
	if !ok {
		style = t.base
	}
	if seg.Inline.Has(markdown.SpanCode) {
		fg, bg, _ := t.code.Decompose()
		style = style.Foreground(fg)
		if bg != tcell.ColorDefault {
			style = style.Background(bg)
		}
	}
	if seg.Inline.Has(markdown.SpanBold) {
		style = style.Bold(true)
	}
	if seg.Inline.Has(markdown.SpanItalic) {
		style = style.Italic(true)
	}
	return style
}
