// Package html5 renders documents as modern HTML with figure, video and
// iframe embeds and syntax-highlighted code blocks.
package html5

import (
	"path"
	"strings"

	"github.com/alecthomas/chroma"
	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/fwojciec/mdrender"
)

var _ mdrender.Target = (*Target)(nil)

// Target is the HTML5 render target.
type Target struct {
	highlight bool
	rules     mdrender.Rules
}

// Option configures a Target.
type Option func(*Target)

// WithHighlighting toggles chroma highlighting of fenced code blocks with a
// known language. It is enabled by default.
func WithHighlighting(enabled bool) Option {
	return func(t *Target) { t.highlight = enabled }
}

// New returns an HTML5 target.
func New(opts ...Option) *Target {
	t := &Target{highlight: true}
	for _, opt := range opts {
		opt(t)
	}
	t.rules = mdrender.Rules{
		mdrender.KindCodeBlock: t.renderCodeBlock,
	}
	return t
}

// ID returns mdrender.TargetHTML5.
func (t *Target) ID() mdrender.TargetID { return mdrender.TargetHTML5 }

// Rules returns the node rules HTML5 overrides.
func (t *Target) Rules() mdrender.Rules { return t.rules }

func (t *Target) renderCodeBlock(w *mdrender.Walker, n *mdrender.Node) (string, error) {
	if !t.highlight || n.Language == "" {
		return w.Default(n)
	}
	lexer := lexers.Get(n.Language)
	if lexer == nil {
		return w.Default(n)
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, n.Content)
	if err != nil {
		return w.Default(n)
	}
	var b strings.Builder
	if err := chromahtml.New(chromahtml.WithClasses(true)).Format(&b, styles.Get("github"), it); err != nil {
		return w.Default(n)
	}
	b.WriteString("\n")
	return b.String(), nil
}

// RenderImage renders a figure with the caption below the image.
func (t *Target) RenderImage(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	var b strings.Builder
	b.WriteString(`<figure><img src="`)
	b.WriteString(mdrender.Escape(src))
	b.WriteString(`"`)
	if c.Alt != "" {
		b.WriteString(` alt="`)
		b.WriteString(mdrender.Escape(c.Alt))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	writeFigcaption(&b, c)
	b.WriteString("</figure>")
	return b.String(), nil
}

var videoTypes = map[string]string{
	".webm": "video/webm",
	".mp4":  "video/mp4",
}

// RenderLocalVideo renders a video element with a single source.
func (t *Target) RenderLocalVideo(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	var b strings.Builder
	b.WriteString(`<figure><video controls><source src="`)
	b.WriteString(mdrender.Escape(src))
	b.WriteString(`"`)
	if typ, ok := videoTypes[strings.ToLower(path.Ext(src))]; ok {
		b.WriteString(` type="`)
		b.WriteString(typ)
		b.WriteString(`"`)
	}
	b.WriteString("></video>")
	writeFigcaption(&b, c)
	b.WriteString("</figure>")
	return b.String(), nil
}

// RenderYouTube renders a responsive YouTube player iframe.
func (t *Target) RenderYouTube(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return embed("https://www.youtube.com/embed/"+id, c), nil
}

// RenderVimeo renders a responsive Vimeo player iframe.
func (t *Target) RenderVimeo(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return embed("https://player.vimeo.com/video/"+id, c), nil
}

func embed(src string, c mdrender.Caption) string {
	var b strings.Builder
	b.WriteString(`<figure><div class="embed-responsive embed-responsive-16by9">`)
	b.WriteString(`<iframe class="embed-responsive-item" src="`)
	b.WriteString(mdrender.Escape(src))
	b.WriteString(`"`)
	if title := c.Primary(); title != "" {
		b.WriteString(` title="`)
		b.WriteString(mdrender.Escape(title))
		b.WriteString(`"`)
	}
	b.WriteString(` allowfullscreen></iframe></div>`)
	writeFigcaption(&b, c)
	b.WriteString("</figure>")
	return b.String()
}

func writeFigcaption(b *strings.Builder, c mdrender.Caption) {
	if caption := c.Primary(); caption != "" {
		b.WriteString("<figcaption>")
		b.WriteString(mdrender.Escape(caption))
		b.WriteString("</figcaption>")
	}
}
