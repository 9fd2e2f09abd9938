package wml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/goldmark"
	"github.com/fwojciec/mdrender/wml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, source string) (string, error) {
	t.Helper()
	tree, err := goldmark.NewParser().Parse([]byte(source))
	require.NoError(t, err)
	return mdrender.Render(tree, wml.New(), mdrender.RenderContext{Hostname: "example.com", BasePath: "/posts/"})
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "formatting is dropped",
			source: "plain *soft* **loud** ~~gone~~\n",
			want:   "<p>plain soft loud gone</p>\n",
		},
		{
			name:   "heading becomes paragraph",
			source: "# Title *here*\n",
			want:   "<p>Title here</p>\n",
		},
		{
			name:   "dollar and markup are escaped",
			source: "costs $5 & <more>\n",
			want:   "<p>costs $$5 &amp; &lt;more&gt;</p>\n",
		},
		{
			name:   "link",
			source: "[**Bold** text](https://example.com/)\n",
			want:   "<p><anchor><go href=\"https://example.com/\"/>Bold text</anchor></p>\n",
		},
		{
			name:   "relative link resolves against base path",
			source: "[next](next/)\n",
			want:   "<p><anchor><go href=\"/posts/next/\"/>next</anchor></p>\n",
		},
		{
			name:   "list items get a sigil",
			source: "- one\n- two\n",
			want:   "<p>* one</p>\n<p>* two</p>\n",
		},
		{
			name:   "ordered items use the same sigil",
			source: "1. one\n2. two\n",
			want:   "<p>* one</p>\n<p>* two</p>\n",
		},
		{
			name:   "nested list follows its item",
			source: "- outer\n  - inner\n",
			want:   "<p>* outer</p>\n<p>* inner</p>\n",
		},
		{
			name:   "loose list item",
			source: "- one\n\n- two\n",
			want:   "<p>* one</p>\n<p>* two</p>\n",
		},
		{
			name:   "blockquote lines get a sigil",
			source: "> quoted\n>\n> again\n",
			want:   "<p>| quoted</p>\n<p>| again</p>\n",
		},
		{
			name:   "code block",
			source: "```\na < b\nc\n```\n",
			want:   "<p>a &lt; b<br/>\nc</p>\n",
		},
		{
			name:   "inline code",
			source: "use `x]]>y`\n",
			want:   "<p>use <![CDATA[x]]]]><![CDATA[>y]]></p>\n",
		},
		{
			name:   "hard break",
			source: "a\\\nb\n",
			want:   "<p>a<br/>b</p>\n",
		},
		{
			name:   "thematic break",
			source: "---\n",
			want:   "<p>---</p>\n",
		},
		{
			name:   "task list",
			source: "- [ ] todo\n",
			want:   "<p>* [ ] todo</p>\n",
		},
		{
			name:   "table rows",
			source: "| a | b |\n|---|---|\n| 1 | 2 |\n",
			want:   "<p>a | b</p>\n<p>1 | 2</p>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := render(t, tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRender_MediaNotSupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		media  mdrender.MediaKind
	}{
		{"![Pic](pic.png)\n", mdrender.MediaImage},
		{"![Clip](clip.mp4)\n", mdrender.MediaLocalVideo},
		{"![Talk](https://youtu.be/abc)\n", mdrender.MediaYouTube},
		{"![Talk](https://vimeo.com/42)\n", mdrender.MediaVimeo},
	}
	for _, tt := range tests {
		t.Run(tt.media.String(), func(t *testing.T) {
			t.Parallel()
			out, err := render(t, "Intro\n\n"+tt.source)
			require.Error(t, err)
			assert.Empty(t, out)

			var ns *mdrender.NotSupportedError
			require.True(t, errors.As(err, &ns))
			assert.Equal(t, mdrender.TargetWML, ns.Target)
			assert.Equal(t, tt.media, ns.Media)
		})
	}
}

func TestRender_NoDoubleEmission(t *testing.T) {
	t.Parallel()
	out, err := render(t, "[**Bold** text](/x/)\n")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "Bold"))
}
