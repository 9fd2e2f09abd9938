package mdrender_test

import (
	"testing"

	"github.com/fwojciec/mdrender"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want mdrender.Media
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", mdrender.Media{Kind: mdrender.MediaYouTube, ID: "dQw4w9WgXcQ"}},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&t=42", mdrender.Media{Kind: mdrender.MediaYouTube, ID: "dQw4w9WgXcQ"}},
		{"https://youtu.be/dQw4w9WgXcQ", mdrender.Media{Kind: mdrender.MediaYouTube, ID: "dQw4w9WgXcQ"}},
		{"youtu.be/dQw4w9WgXcQ?t=1", mdrender.Media{Kind: mdrender.MediaYouTube, ID: "dQw4w9WgXcQ"}},
		{"https://m.youtube.com/embed/abc123", mdrender.Media{Kind: mdrender.MediaYouTube, ID: "abc123"}},
		{"http://www.youtube.com/v/abc123", mdrender.Media{Kind: mdrender.MediaYouTube, ID: "abc123"}},
		{"https://vimeo.com/76979871", mdrender.Media{Kind: mdrender.MediaVimeo, ID: "76979871"}},
		{"https://www.vimeo.com/76979871/", mdrender.Media{Kind: mdrender.MediaVimeo, ID: "76979871"}},
		{"vimeo.com/123", mdrender.Media{Kind: mdrender.MediaVimeo, ID: "123"}},
		{"clip.mp4", mdrender.Media{Kind: mdrender.MediaLocalVideo}},
		{"/media/clip.WEBM", mdrender.Media{Kind: mdrender.MediaLocalVideo}},
		{"old.wmv", mdrender.Media{Kind: mdrender.MediaLocalVideo}},
		{"clip.mp4?t=3", mdrender.Media{Kind: mdrender.MediaLocalVideo}},
		{"https://cdn.example.com/clip.mp4", mdrender.Media{Kind: mdrender.MediaLocalVideo}},
		{"photo.png", mdrender.Media{Kind: mdrender.MediaImage}},
		{"https://vimeo.com/channels/staffpicks", mdrender.Media{Kind: mdrender.MediaImage}},
		{"movie.mov", mdrender.Media{Kind: mdrender.MediaImage}},
		{"", mdrender.Media{Kind: mdrender.MediaImage}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdrender.Classify(tt.src))
		})
	}
}

func TestMediaURLs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", mdrender.YouTubeWatchURL("abc"))
	assert.Equal(t, "https://www.vimeo.com/123", mdrender.VimeoURL("123"))
}

func TestCaption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		caption   mdrender.Caption
		primary   string
		secondary string
	}{
		{"title and alt", mdrender.Caption{Title: "T", Alt: "A"}, "T", "A"},
		{"title only", mdrender.Caption{Title: "T"}, "T", ""},
		{"alt only", mdrender.Caption{Alt: "A"}, "A", ""},
		{"neither", mdrender.Caption{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.primary, tt.caption.Primary())
			assert.Equal(t, tt.secondary, tt.caption.Secondary())
		})
	}
}

func TestMediaKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "image", mdrender.MediaImage.String())
	assert.Equal(t, "local video", mdrender.MediaLocalVideo.String())
	assert.Equal(t, "YouTube video", mdrender.MediaYouTube.String())
	assert.Equal(t, "Vimeo video", mdrender.MediaVimeo.String())
}
