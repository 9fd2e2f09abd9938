// Package goldmark parses Markdown into mdrender node trees using goldmark
// with the GitHub Flavored Markdown extensions.
package goldmark

import (
	"strings"

	"github.com/fwojciec/mdrender"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var _ mdrender.Parser = (*Parser)(nil)

// Parser is an mdrender.Parser backed by goldmark. It is safe for
// concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// NewParser returns a Parser with tables, strikethrough, task lists and
// linkify enabled.
func NewParser() *Parser {
	return &Parser{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Parse converts source into a tree rooted at a document node.
func (p *Parser) Parse(source []byte) (*mdrender.Node, error) {
	doc := p.md.Parser().Parse(text.NewReader(source))
	c := converter{source: source}
	return mdrender.Elem(mdrender.KindDocument, c.blocks(doc)...), nil
}

type converter struct {
	source []byte
}

func (c *converter) blocks(parent ast.Node) []*mdrender.Node {
	var out []*mdrender.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.block(n)...)
	}
	return out
}

func (c *converter) block(node ast.Node) []*mdrender.Node {
	switch n := node.(type) {
	case *ast.Heading:
		h := mdrender.Elem(mdrender.KindHeading, c.inlines(n)...)
		h.Level = n.Level
		return one(h)

	case *ast.Paragraph:
		return one(mdrender.Elem(mdrender.KindParagraph, c.inlines(n)...))

	case *ast.TextBlock:
		p := mdrender.Elem(mdrender.KindParagraph, c.inlines(n)...)
		p.Tight = true
		return one(p)

	case *ast.FencedCodeBlock:
		return one(&mdrender.Node{
			Kind:     mdrender.KindCodeBlock,
			Language: string(n.Language(c.source)),
			Content:  c.lines(n.Lines()),
		})

	case *ast.CodeBlock:
		return one(&mdrender.Node{Kind: mdrender.KindCodeBlock, Content: c.lines(n.Lines())})

	case *ast.List:
		l := &mdrender.Node{Kind: mdrender.KindList, Ordered: n.IsOrdered()}
		if l.Ordered {
			l.Start = n.Start
		}
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			l.Children = append(l.Children, mdrender.Elem(mdrender.KindListItem, c.blocks(item)...))
		}
		return one(l)

	case *ast.Blockquote:
		return one(mdrender.Elem(mdrender.KindBlockquote, c.blocks(n)...))

	case *ast.ThematicBreak:
		return one(mdrender.Elem(mdrender.KindThematicBreak))

	case *ast.HTMLBlock:
		// Raw HTML is shown as text, never passed through.
		content := c.lines(n.Lines())
		if n.HasClosure() {
			content += string(n.ClosureLine.Value(c.source))
		}
		return one(mdrender.Elem(mdrender.KindParagraph, mdrender.Text(strings.TrimRight(content, "\n"))))

	case *east.Table:
		t := mdrender.Elem(mdrender.KindTable)
		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			r := mdrender.Elem(mdrender.KindTableRow, c.cells(row)...)
			_, r.Header = row.(*east.TableHeader)
			t.Children = append(t.Children, r)
		}
		return one(t)

	default:
		return c.blocks(node)
	}
}

func (c *converter) cells(row ast.Node) []*mdrender.Node {
	var out []*mdrender.Node
	for n := row.FirstChild(); n != nil; n = n.NextSibling() {
		cell := mdrender.Elem(mdrender.KindTableCell, c.inlines(n)...)
		if tc, ok := n.(*east.TableCell); ok {
			cell.Align = alignment(tc.Alignment)
		}
		out = append(out, cell)
	}
	return out
}

func alignment(a east.Alignment) mdrender.Alignment {
	switch a {
	case east.AlignLeft:
		return mdrender.AlignLeft
	case east.AlignCenter:
		return mdrender.AlignCenter
	case east.AlignRight:
		return mdrender.AlignRight
	default:
		return mdrender.AlignNone
	}
}

// inlines converts the inline children of parent, merging adjacent text runs.
func (c *converter) inlines(parent ast.Node) []*mdrender.Node {
	var out []*mdrender.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		for _, in := range c.inline(n) {
			if k := len(out); k > 0 && in.Kind == mdrender.KindText && out[k-1].Kind == mdrender.KindText {
				out[k-1].Content += in.Content
				continue
			}
			if k := len(out); k > 0 && in.Kind == mdrender.KindText && out[k-1].Kind == mdrender.KindCheckBox {
				in.Content = strings.TrimLeft(in.Content, " ")
			}
			out = append(out, in)
		}
	}
	return out
}

func (c *converter) inline(node ast.Node) []*mdrender.Node {
	switch n := node.(type) {
	case *ast.Text:
		v := n.Segment.Value(c.source)
		if !n.IsRaw() {
			v = util.ResolveEntityNames(util.ResolveNumericReferences(util.UnescapePunctuations(v)))
		}
		s := string(v)
		if n.SoftLineBreak() && !n.HardLineBreak() {
			s += "\n"
		}
		if n.HardLineBreak() {
			return []*mdrender.Node{mdrender.Text(s), mdrender.Elem(mdrender.KindHardBreak)}
		}
		return one(mdrender.Text(s))

	case *ast.String:
		return one(mdrender.Text(string(n.Value)))

	case *ast.Emphasis:
		kind := mdrender.KindEmphasis
		if n.Level >= 2 {
			kind = mdrender.KindStrong
		}
		return one(mdrender.Elem(kind, c.inlines(n)...))

	case *ast.CodeSpan:
		return one(&mdrender.Node{Kind: mdrender.KindCodeInline, Content: c.raw(n)})

	case *ast.Link:
		l := mdrender.Elem(mdrender.KindLink, c.inlines(n)...)
		l.Href = string(n.Destination)
		l.Title = string(n.Title)
		return one(l)

	case *ast.AutoLink:
		l := mdrender.Elem(mdrender.KindLink, mdrender.Text(string(n.Label(c.source))))
		l.Href = string(n.URL(c.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(l.Href), "mailto:") {
			l.Href = "mailto:" + l.Href
		}
		return one(l)

	case *ast.Image:
		alt := mdrender.Elem(mdrender.KindParagraph, c.inlines(n)...)
		return one(&mdrender.Node{
			Kind:  mdrender.KindImage,
			Src:   string(n.Destination),
			Title: string(n.Title),
			Alt:   alt.PlainText(),
		})

	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.source))
		}
		return one(mdrender.Text(b.String()))

	case *east.Strikethrough:
		return one(mdrender.Elem(mdrender.KindStrikethrough, c.inlines(n)...))

	case *east.TaskCheckBox:
		return one(&mdrender.Node{Kind: mdrender.KindCheckBox, Checked: n.IsChecked})

	default:
		return c.inlines(node)
	}
}

// raw concatenates the text of a code span without unescaping.
func (c *converter) raw(node ast.Node) string {
	var b strings.Builder
	for n := node.FirstChild(); n != nil; n = n.NextSibling() {
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(c.source))
		case *ast.String:
			b.Write(t.Value)
		default:
			b.WriteString(c.raw(n))
		}
	}
	return b.String()
}

func (c *converter) lines(segs *text.Segments) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

func one(n *mdrender.Node) []*mdrender.Node {
	return []*mdrender.Node{n}
}
