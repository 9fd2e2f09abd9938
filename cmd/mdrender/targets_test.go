package main

import (
	"testing"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/engine"
	"github.com/fwojciec/mdrender/gopher"
	"github.com/fwojciec/mdrender/html4"
	"github.com/fwojciec/mdrender/html5"
	"github.com/fwojciec/mdrender/wml"
	"github.com/stretchr/testify/assert"
)

func TestMediaSupport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target mdrender.Target
		want   map[mdrender.MediaKind]bool
	}{
		{"html5", html5.New(), map[mdrender.MediaKind]bool{
			mdrender.MediaImage: true, mdrender.MediaLocalVideo: true, mdrender.MediaYouTube: true, mdrender.MediaVimeo: true,
		}},
		{"html4", html4.New(), map[mdrender.MediaKind]bool{
			mdrender.MediaImage: true, mdrender.MediaLocalVideo: true, mdrender.MediaYouTube: false, mdrender.MediaVimeo: false,
		}},
		{"gopher", gopher.New(), map[mdrender.MediaKind]bool{
			mdrender.MediaImage: true, mdrender.MediaLocalVideo: true, mdrender.MediaYouTube: true, mdrender.MediaVimeo: true,
		}},
		{"wml", wml.New(), map[mdrender.MediaKind]bool{
			mdrender.MediaImage: false, mdrender.MediaLocalVideo: false, mdrender.MediaYouTube: false, mdrender.MediaVimeo: false,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mediaSupport(tt.target))
		})
	}
}

func TestListTargets(t *testing.T) {
	t.Parallel()
	out := listTargets(engine.Default(), newStyles())
	for _, id := range mdrender.AllTargets() {
		assert.Contains(t, out, string(id))
		assert.Contains(t, out, descriptions[id])
	}
	assert.Contains(t, out, "YouTube video")
}

func TestNewStyles(t *testing.T) {
	t.Parallel()
	s := newStyles()
	assert.True(t, s.Name.GetBold())
	assert.True(t, s.Unsupported.GetStrikethrough())
	assert.True(t, s.Unsupported.GetFaint())
}
