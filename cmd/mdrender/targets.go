package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/engine"
	"github.com/spf13/cobra"
)

var descriptions = map[mdrender.TargetID]string{
	mdrender.TargetHTML5:  "HTML5 with figures, video and embedded players",
	mdrender.TargetHTML4:  "HTML4 for legacy browsers",
	mdrender.TargetGopher: "Gopher menus (RFC 1436)",
	mdrender.TargetWML:    "WML decks for WAP devices",
}

func newTargetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List output targets and the media each can represent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(a.stdout, listTargets(engine.Default(), newStyles()))
			return err
		},
	}
}

// listTargets formats one line per registered target.
func listTargets(e *engine.Engine, s styles) string {
	var b strings.Builder
	for _, id := range e.Targets() {
		t, err := e.Target(id)
		if err != nil {
			continue
		}
		support := mediaSupport(t)
		media := make([]string, 0, len(support))
		for _, m := range []mdrender.MediaKind{
			mdrender.MediaImage,
			mdrender.MediaLocalVideo,
			mdrender.MediaYouTube,
			mdrender.MediaVimeo,
		} {
			style := s.Unsupported
			if support[m] {
				style = s.Supported
			}
			media = append(media, style.Render(m.String()))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			s.Name.Render(string(id)),
			s.Description.Render(descriptions[id]),
			strings.Join(media, " "),
		))
		b.WriteString("\n")
	}
	return b.String()
}

// mediaSupport probes each media hook of t and reports which ones render
// without mdrender.ErrNotSupported.
func mediaSupport(t mdrender.Target) map[mdrender.MediaKind]bool {
	ctx := mdrender.RenderContext{Hostname: "localhost"}
	c := mdrender.Caption{Alt: "probe"}
	probe := func(_ string, err error) bool {
		return !errors.Is(err, mdrender.ErrNotSupported)
	}
	return map[mdrender.MediaKind]bool{
		mdrender.MediaImage:      probe(t.RenderImage(ctx, "probe.png", c)),
		mdrender.MediaLocalVideo: probe(t.RenderLocalVideo(ctx, "probe.mp4", c)),
		mdrender.MediaYouTube:    probe(t.RenderYouTube(ctx, "probe", c)),
		mdrender.MediaVimeo:      probe(t.RenderVimeo(ctx, "1", c)),
	}
}
