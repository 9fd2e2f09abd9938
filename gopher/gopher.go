// Package gopher renders documents as Gopher menus. Every output line starts
// with an item type: i for text, 9 for a local selector, h for a web URL and
// I for an image. Inline structure is reflowed into info lines; links and
// media become item lines of their own.
package gopher

import (
	"path"
	"strconv"
	"strings"

	"github.com/fwojciec/mdrender"
	"github.com/mattn/go-runewidth"
)

var _ mdrender.Target = (*Target)(nil)

// Target is the Gopher render target.
type Target struct {
	rules mdrender.Rules
}

// New returns a Gopher target.
func New() *Target {
	passthrough := (*mdrender.Walker).RenderChildren
	return &Target{
		rules: mdrender.Rules{
			mdrender.KindHeading:       renderHeading,
			mdrender.KindParagraph:     renderParagraph,
			mdrender.KindText:          renderText,
			mdrender.KindEmphasis:      passthrough,
			mdrender.KindStrong:        passthrough,
			mdrender.KindStrikethrough: passthrough,
			mdrender.KindCodeBlock:     renderCodeBlock,
			mdrender.KindCodeInline:    renderText,
			mdrender.KindLink:          renderLink,
			mdrender.KindImage:         renderImage,
			mdrender.KindList:          renderList,
			mdrender.KindListItem:      renderListItem,
			mdrender.KindBlockquote:    renderBlockquote,
			mdrender.KindHardBreak:     renderHardBreak,
			mdrender.KindThematicBreak: mdrender.Literal("i---\n" + spacer),
			mdrender.KindCheckBox:      renderCheckBox,
			mdrender.KindTable:         renderTable,
			mdrender.KindTableRow:      renderTableRow,
			mdrender.KindTableCell:     passthrough,
		},
	}
}

// ID returns mdrender.TargetGopher.
func (t *Target) ID() mdrender.TargetID { return mdrender.TargetGopher }

// Rules returns the node rules Gopher overrides.
func (t *Target) Rules() mdrender.Rules { return t.rules }

func renderHeading(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	caption, err := w.Caption(n)
	if err != nil {
		return "", err
	}
	if w.Inline() {
		return caption, nil
	}
	return "i" + strings.Repeat("#", n.Level) + " " + field(caption) + "\n" + spacer, nil
}

func renderParagraph(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	if w.Inline() {
		return w.RenderChildren(n)
	}
	var f flow
	if err := f.add(w, n); err != nil {
		return "", err
	}
	f.flush()
	if !n.Tight {
		f.out.WriteString(spacer)
	}
	return f.out.String(), nil
}

// flow collects the inline children of a block. Text accumulates into info
// lines; links and media break the text and become item lines.
type flow struct {
	text strings.Builder
	out  strings.Builder
}

func (f *flow) add(w *mdrender.Walker, n *mdrender.Node) error {
	for _, c := range n.Children {
		switch c.Kind {
		case mdrender.KindLink, mdrender.KindImage:
			f.flush()
			s, err := w.Render(c)
			if err != nil {
				return err
			}
			f.out.WriteString(s)
		case mdrender.KindHardBreak:
			f.flush()
			f.out.WriteString(spacer)
		case mdrender.KindEmphasis, mdrender.KindStrong, mdrender.KindStrikethrough:
			if err := f.add(w, c); err != nil {
				return err
			}
		default:
			s, err := w.RenderInline(c)
			if err != nil {
				return err
			}
			f.text.WriteString(s)
		}
	}
	return nil
}

func (f *flow) flush() {
	text := strings.TrimSpace(f.text.String())
	f.text.Reset()
	if text == "" {
		return
	}
	f.out.WriteString(info(text))
}

func renderText(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	if w.Inline() {
		return n.Content, nil
	}
	return info(n.Content), nil
}

func renderCodeBlock(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	return info(strings.TrimSuffix(n.Content, "\n")) + spacer, nil
}

func renderHardBreak(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	if w.Inline() {
		return "\n", nil
	}
	return spacer, nil
}

func renderCheckBox(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	box := "[ ] "
	if n.Checked {
		box = "[x] "
	}
	if w.Inline() {
		return box, nil
	}
	return info(box), nil
}

func renderLink(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	caption, err := w.Caption(n)
	if err != nil {
		return "", err
	}
	if w.Inline() {
		return caption, nil
	}
	caption = field(caption)
	if caption == "" {
		caption = field(n.Title)
	}
	if caption == "" {
		caption = n.Href
	}
	return linkItem(caption, n.Href, w.Context()), nil
}

// renderImage keeps classification in the default rule; inside a caption the
// image contributes its label only.
func renderImage(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	if w.Inline() {
		return mdrender.Caption{Title: n.Title, Alt: n.Alt}.Primary(), nil
	}
	return w.Default(n)
}

func renderList(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	return s + spacer, nil
}

func renderListItem(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	s = trimSpacer(s)
	if s == "" {
		s = spacer
	}
	marker := "* "
	if list := w.Parent(); list != nil && list.Ordered {
		start := list.Start
		if start == 0 {
			start = 1
		}
		marker = strconv.Itoa(start+mdrender.Index(list, n)) + ". "
	}
	return prefixLines(s, marker, strings.Repeat(" ", len(marker))), nil
}

func renderBlockquote(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	s, err := w.RenderChildren(n)
	if err != nil {
		return "", err
	}
	return prefixLines(trimSpacer(s), "> ", "> ") + spacer, nil
}

func renderTable(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	var b strings.Builder
	for _, row := range n.Children {
		s, err := w.Render(row)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		if row.Header {
			width := runewidth.StringWidth(strings.TrimSuffix(s[1:], "\n"))
			b.WriteString("i" + strings.Repeat("-", max(width, 3)) + "\n")
		}
	}
	b.WriteString(spacer)
	return b.String(), nil
}

func renderTableRow(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	cells := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		s, err := w.RenderInline(c)
		if err != nil {
			return "", err
		}
		cells = append(cells, field(s))
	}
	return "i" + strings.Join(cells, " | ") + "\n", nil
}

// RenderImage renders an I item for a server-local image followed by the
// alt text as info lines when the title took the caption. Images hosted
// elsewhere become h items.
func (t *Target) RenderImage(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	label := field(c.Primary())
	if label == "" {
		label = path.Base(src)
	}
	label = "Image: " + label
	var out string
	if mdrender.IsAbsoluteURL(src) {
		out = httpItem(label, absoluteURL(src, ctx), ctx)
	} else {
		out = item(typeImage, label, selector(src, ctx), ctx)
	}
	if alt := c.Secondary(); alt != "" {
		out += info(alt)
	}
	return out, nil
}

// RenderLocalVideo links to the video file over HTTP.
func (t *Target) RenderLocalVideo(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	u := absoluteURL(src, ctx)
	return httpItem(label(c, u), u, ctx), nil
}

// RenderYouTube links to the YouTube watch page.
func (t *Target) RenderYouTube(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return httpItem(label(c, "YouTube videoid "+id), mdrender.YouTubeWatchURL(id), ctx), nil
}

// RenderVimeo links to the Vimeo page.
func (t *Target) RenderVimeo(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return httpItem(label(c, "Vimeo videoid "+id), mdrender.VimeoURL(id), ctx), nil
}

func label(c mdrender.Caption, fallback string) string {
	if s := field(c.Primary()); s != "" {
		return s
	}
	return fallback
}
