// Package wml renders documents as WML 1.x card content. The dialect has no
// rich formatting, headings, lists or embeds: formatting is dropped, block
// structure is flattened into paragraphs with a leading sigil and every
// media hook fails with mdrender.ErrNotSupported.
package wml

import (
	"strings"

	"github.com/fwojciec/mdrender"
)

var _ mdrender.Target = (*Target)(nil)

// Target is the WML render target.
type Target struct {
	rules mdrender.Rules
}

// New returns a WML target.
func New() *Target {
	passthrough := (*mdrender.Walker).RenderChildren
	return &Target{
		rules: mdrender.Rules{
			mdrender.KindHeading:       renderParagraph,
			mdrender.KindParagraph:     renderParagraph,
			mdrender.KindText:          renderText,
			mdrender.KindEmphasis:      passthrough,
			mdrender.KindStrong:        passthrough,
			mdrender.KindStrikethrough: passthrough,
			mdrender.KindCodeBlock:     renderCodeBlock,
			mdrender.KindCodeInline:    renderCodeInline,
			mdrender.KindLink:          renderLink,
			mdrender.KindList:          passthrough,
			mdrender.KindListItem:      renderListItem,
			mdrender.KindBlockquote:    renderBlockquote,
			mdrender.KindHardBreak:     mdrender.Literal("<br/>"),
			mdrender.KindThematicBreak: mdrender.Literal("<p>---</p>\n"),
			mdrender.KindCheckBox:      renderCheckBox,
			mdrender.KindTable:         passthrough,
			mdrender.KindTableRow:      renderTableRow,
			mdrender.KindTableCell:     passthrough,
		},
	}
}

// ID returns mdrender.TargetWML.
func (t *Target) ID() mdrender.TargetID { return mdrender.TargetWML }

// Rules returns the node rules WML overrides.
func (t *Target) Rules() mdrender.Rules { return t.rules }

var dollarReplacer = strings.NewReplacer("$", "$$")

// escape encodes markup characters and doubles $, which WML reserves for
// variable references.
func escape(s string) string {
	return dollarReplacer.Replace(mdrender.Escape(s))
}

func renderText(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	return escape(n.Content), nil
}

func renderParagraph(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	if w.Inline() || n.Tight {
		return s, nil
	}
	return "<p>" + s + "</p>\n", nil
}

func renderCodeInline(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	return "<![CDATA[" + strings.ReplaceAll(n.Content, "]]>", "]]]]><![CDATA[>") + "]]>", nil
}

func renderCodeBlock(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	lines := strings.Split(strings.TrimSuffix(n.Content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = escape(line)
	}
	return "<p>" + strings.Join(lines, "<br/>\n") + "</p>\n", nil
}

func renderLink(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	href := escape(w.Context().Resolve(n.Href))
	caption, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	if caption == "" {
		caption = href
	}
	return `<anchor><go href="` + href + `"/>` + caption + "</anchor>", nil
}

// renderListItem emits the item text as one paragraph. Nested lists follow
// as paragraphs of their own since WML paragraphs cannot nest.
func renderListItem(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	var text []string
	var nested strings.Builder
	for _, c := range n.Children {
		if c.Kind == mdrender.KindList {
			s, err := w.Render(c)
			if err != nil {
				return "", err
			}
			nested.WriteString(s)
			continue
		}
		s, err := w.RenderInline(c)
		if err != nil {
			return "", err
		}
		if s != "" {
			text = append(text, strings.TrimSuffix(s, "\n"))
		}
	}
	return "<p>* " + strings.Join(text, " ") + "</p>\n" + nested.String(), nil
}

// renderBlockquote prefixes every quoted paragraph with "| ".
func renderBlockquote(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	var b strings.Builder
	for _, c := range n.Children {
		switch c.Kind {
		case mdrender.KindList, mdrender.KindBlockquote, mdrender.KindTable, mdrender.KindCodeBlock, mdrender.KindThematicBreak:
			s, err := w.Render(c)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		default:
			s, err := w.RenderInline(c)
			if err != nil {
				return "", err
			}
			b.WriteString("<p>| " + s + "</p>\n")
		}
	}
	return b.String(), nil
}

func renderCheckBox(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	if n.Checked {
		return "[x] ", nil
	}
	return "[ ] ", nil
}

func renderTableRow(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	cells := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		s, err := w.Render(c)
		if err != nil {
			return "", err
		}
		cells = append(cells, s)
	}
	return "<p>" + strings.Join(cells, " | ") + "</p>\n", nil
}

// RenderImage always fails: WML cannot reference images from Markdown content.
func (t *Target) RenderImage(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	return "", mdrender.NotSupported(t.ID(), mdrender.MediaImage)
}

// RenderLocalVideo always fails.
func (t *Target) RenderLocalVideo(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	return "", mdrender.NotSupported(t.ID(), mdrender.MediaLocalVideo)
}

// RenderYouTube always fails.
func (t *Target) RenderYouTube(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return "", mdrender.NotSupported(t.ID(), mdrender.MediaYouTube)
}

// RenderVimeo always fails.
func (t *Target) RenderVimeo(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return "", mdrender.NotSupported(t.ID(), mdrender.MediaVimeo)
}
