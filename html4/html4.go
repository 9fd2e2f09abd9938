// Package html4 renders documents as HTML 4 for legacy browsers. Local video
// is embedded with the Windows Media Player plugin; hosted video services
// have no legacy equivalent and fail with mdrender.ErrNotSupported.
package html4

import (
	"fmt"
	"strings"

	"github.com/fwojciec/mdrender"
)

var _ mdrender.Target = (*Target)(nil)

// Target is the HTML 4 render target.
type Target struct {
	rules mdrender.Rules
}

// New returns an HTML 4 target.
func New() *Target {
	return &Target{
		rules: mdrender.Rules{
			mdrender.KindEmphasis:      mdrender.Wrap("<i>", "</i>"),
			mdrender.KindStrong:        mdrender.Wrap("<b>", "</b>"),
			mdrender.KindStrikethrough: mdrender.Wrap("<s>", "</s>"),
			mdrender.KindTableCell:     renderTableCell,
		},
	}
}

// ID returns mdrender.TargetHTML4.
func (t *Target) ID() mdrender.TargetID { return mdrender.TargetHTML4 }

// Rules returns the node rules HTML 4 overrides.
func (t *Target) Rules() mdrender.Rules { return t.rules }

func renderTableCell(w *mdrender.Walker, n *mdrender.Node) (string, error) {
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
		attr = ` align="` + a + `"`
	}
	return "<" + tag + attr + ">" + s + "</" + tag + ">\n", nil
}

// RenderImage renders the image with its caption in bold below it.
func (t *Target) RenderImage(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	var b strings.Builder
	b.WriteString(`<div><img src="`)
	b.WriteString(mdrender.Escape(src))
	b.WriteString(`"`)
	if c.Alt != "" {
		b.WriteString(` alt="`)
		b.WriteString(mdrender.Escape(c.Alt))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if caption := c.Primary(); caption != "" {
		b.WriteString("<br><b>")
		b.WriteString(mdrender.Escape(caption))
		b.WriteString("</b>")
	}
	b.WriteString("</div>")
	return b.String(), nil
}

const mediaPlayer = `<object id="MediaPlayer" width="320" height="286" classid="CLSID:22D6f312-B0F6-11D0-94AB-0080C74C7E95" standby="Loading Windows Media Player ..." type="application/x-oleobject" codebase="http://activex.microsoft.com/activex/controls/mplayer/en/nsmp2inf.cab#Version=6,4,7,1112">
<param name="filename" value="%[1]s">
<param name="Showcontrols" value="True">
<param name="autoStart" value="False">
<param name="wmode" value="transparent">
<embed type="application/x-mplayer2" src="%[1]s" name="MediaPlayer" autoStart="False" wmode="transparent" width="320" height="286"></embed>
</object>`

// RenderLocalVideo renders an object/embed pair for the Windows Media Player
// plugin.
func (t *Target) RenderLocalVideo(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, mediaPlayer, mdrender.Escape(src))
	if caption := c.Primary(); caption != "" {
		b.WriteString("\n<div>")
		b.WriteString(mdrender.Escape(caption))
		b.WriteString("</div>")
	}
	return b.String(), nil
}

// RenderYouTube always fails: HTML 4 has no embeddable player.
func (t *Target) RenderYouTube(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return "", mdrender.NotSupported(t.ID(), mdrender.MediaYouTube)
}

// RenderVimeo always fails: HTML 4 has no embeddable player.
func (t *Target) RenderVimeo(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return "", mdrender.NotSupported(t.ID(), mdrender.MediaVimeo)
}
