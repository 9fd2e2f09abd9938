package mdrender

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/util"
)

// Escape HTML-encodes s for use in element content and double-quoted
// attribute values.
func Escape(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}

// defaultRule returns the target-neutral rule for k. The defaults produce
// hypertext markup; other targets override what their format needs.
func defaultRule(k Kind) Rule {
	switch k {
	case KindHeading:
		return renderHeading
	case KindParagraph:
		return renderParagraph
	case KindText:
		return renderText
	case KindEmphasis:
		return Wrap("<em>", "</em>")
	case KindStrong:
		return Wrap("<strong>", "</strong>")
	case KindStrikethrough:
		return Wrap("<del>", "</del>")
	case KindCodeBlock:
		return renderCodeBlock
	case KindCodeInline:
		return renderCodeInline
	case KindLink:
		return renderLink
	case KindImage:
		return renderMedia
	case KindList:
		return renderList
	case KindListItem:
		return renderListItem
	case KindBlockquote:
		return Wrap("<blockquote>\n", "</blockquote>\n")
	case KindHardBreak:
		return Literal("<br>\n")
	case KindThematicBreak:
		return Literal("<hr>\n")
	case KindCheckBox:
		return renderCheckBox
	case KindTable:
		return renderTable
	case KindTableRow:
		return Wrap("<tr>\n", "</tr>\n")
	case KindTableCell:
		return renderTableCell
	default:
		return (*Walker).RenderChildren
	}
}

// Wrap returns a rule that surrounds the rendered children with before and after.
func Wrap(before, after string) Rule {
	return func(w *Walker, n *Node) (string, error) {
		s, err := w.RenderChildren(n)
		if err != nil {
			return "", err
		}
		return before + s + after, nil
	}
}

// Literal returns a rule that always renders s.
func Literal(s string) Rule {
	return func(*Walker, *Node) (string, error) { return s, nil }
}

// renderMedia classifies the image source and hands it to the matching media
// hook of the target.
func renderMedia(w *Walker, n *Node) (string, error) {
	c := Caption{Title: n.Title, Alt: n.Alt}
	src := w.ctx.Resolve(n.Src)
	m := Classify(n.Src)
	switch m.Kind {
	case MediaVimeo:
		return w.target.RenderVimeo(w.ctx, m.ID, c)
	case MediaYouTube:
		return w.target.RenderYouTube(w.ctx, m.ID, c)
	case MediaLocalVideo:
		return w.target.RenderLocalVideo(w.ctx, src, c)
	default:
		return w.target.RenderImage(w.ctx, src, c)
	}
}

func renderHeading(w *Walker, n *Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	tag := "h" + strconv.Itoa(n.Level)
	return "<" + tag + ">" + s + "</" + tag + ">\n", nil
}

func renderParagraph(w *Walker, n *Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	if n.Tight {
		return s, nil
	}
	return "<p>" + s + "</p>\n", nil
}

func renderText(w *Walker, n *Node) (string, error) {
	return Escape(n.Content), nil
}

func renderCodeBlock(w *Walker, n *Node) (string, error) {
	var b strings.Builder
	b.WriteString("<pre><code")
	if n.Language != "" {
		b.WriteString(` class="language-`)
		b.WriteString(Escape(n.Language))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(Escape(n.Content))
	b.WriteString("</code></pre>\n")
	return b.String(), nil
}

func renderCodeInline(w *Walker, n *Node) (string, error) {
	return "<code>" + Escape(n.Content) + "</code>", nil
}

func renderLink(w *Walker, n *Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(Escape(w.ctx.Resolve(n.Href)))
	b.WriteString(`"`)
	if n.Title != "" {
		b.WriteString(` title="`)
		b.WriteString(Escape(n.Title))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(s)
	b.WriteString("</a>")
	return b.String(), nil
}

func renderList(w *Walker, n *Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	if !n.Ordered {
		return "<ul>\n" + s + "</ul>\n", nil
	}
	if n.Start > 1 {
		return `<ol start="` + strconv.Itoa(n.Start) + `">` + "\n" + s + "</ol>\n", nil
	}
	return "<ol>\n" + s + "</ol>\n", nil
}

func renderListItem(w *Walker, n *Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	return "<li>" + strings.TrimSuffix(s, "\n") + "</li>\n", nil
}

func renderCheckBox(w *Walker, n *Node) (string, error) {
	if n.Checked {
		return `<input type="checkbox" disabled checked> `, nil
	}
	return `<input type="checkbox" disabled> `, nil
}

func renderTable(w *Walker, n *Node) (string, error) {
	var head, body strings.Builder
	for _, row := range n.Children {
		s, err := w.Render(row)
		if err != nil {
			return "", err
		}
		if row.Header {
			head.WriteString(s)
		} else {
			body.WriteString(s)
		}
	}
	var b strings.Builder
	b.WriteString("<table>\n")
	if head.Len() > 0 {
		b.WriteString("<thead>\n")
		b.WriteString(head.String())
		b.WriteString("</thead>\n")
	}
	if body.Len() > 0 {
		b.WriteString("<tbody>\n")
		b.WriteString(body.String())
		b.WriteString("</tbody>\n")
	}
	b.WriteString("</table>\n")
	return b.String(), nil
}

func renderTableCell(w *Walker, n *Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	tag := "td"
	if p := w.Parent(); p != nil && p.Header {
		tag = "th"
	}
	attr := ""
	if a := n.Align.String(); a != "" {
		attr = ` style="text-align:` + a + `"`
	}
	return "<" + tag + attr + ">" + s + "</" + tag + ">\n", nil
}
