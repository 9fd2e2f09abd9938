package mdrender_test

import (
	"testing"

	"github.com/fwojciec/mdrender"
	"github.com/stretchr/testify/assert"
)

func TestRenderContext_Resolve(t *testing.T) {
	t.Parallel()

	ctx := mdrender.RenderContext{BasePath: "/posts/hello/"}
	tests := []struct {
		ref  string
		want string
	}{
		{"img.png", "/posts/hello/img.png"},
		{"./img.png", "/posts/hello/img.png"},
		{"../other/", "/posts/other/"},
		{"/about/", "/about/"},
		{"#section", "#section"},
		{"https://example.com/x", "https://example.com/x"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"//cdn.example.com/x.png", "//cdn.example.com/x.png"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ctx.Resolve(tt.ref))
		})
	}
}

func TestRenderContext_ResolveWithoutBasePath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "img.png", mdrender.RenderContext{}.Resolve("img.png"))
}

func TestRenderContext_ResolveNormalizesBasePath(t *testing.T) {
	t.Parallel()
	ctx := mdrender.RenderContext{BasePath: "posts/hello"}
	assert.Equal(t, "/posts/hello/img.png", ctx.Resolve("img.png"))
}

func TestRenderContext_Defaults(t *testing.T) {
	t.Parallel()
	var ctx mdrender.RenderContext
	assert.Equal(t, "http", ctx.SchemeOrDefault())
	assert.Equal(t, mdrender.DefaultGopherPort, ctx.PortOrDefault())

	ctx = mdrender.RenderContext{Scheme: "https", Port: 7070}
	assert.Equal(t, "https", ctx.SchemeOrDefault())
	assert.Equal(t, 7070, ctx.PortOrDefault())
}

func TestIsAbsoluteURL(t *testing.T) {
	t.Parallel()
	assert.True(t, mdrender.IsAbsoluteURL("https://example.com"))
	assert.True(t, mdrender.IsAbsoluteURL("http://example.com/a b"))
	assert.True(t, mdrender.IsAbsoluteURL("mailto:me@example.com"))
	assert.True(t, mdrender.IsAbsoluteURL("//cdn.example.com/x.png"))
	assert.False(t, mdrender.IsAbsoluteURL("/about/"))
	assert.False(t, mdrender.IsAbsoluteURL("img.png"))
	assert.False(t, mdrender.IsAbsoluteURL(""))
}
