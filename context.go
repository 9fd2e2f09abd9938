package mdrender

import (
	"net/url"
	"strings"
)

// DefaultGopherPort is the port advertised in Gopher item lines when
// RenderContext.Port is zero.
const DefaultGopherPort = 70

// RenderContext carries the per-call addressing information a target needs to
// qualify links and media. It is a value; renders never modify it.
type RenderContext struct {
	Hostname string
	BasePath string // prefix for document-relative references, e.g. "/posts/hello/"
	Scheme   string // protocol used to build absolute URLs, default "http"
	Port     int    // Gopher port, default 70
}

// SchemeOrDefault returns Scheme, or "http" when unset.
func (c RenderContext) SchemeOrDefault() string {
	if c.Scheme == "" {
		return "http"
	}
	return c.Scheme
}

// PortOrDefault returns Port, or DefaultGopherPort when unset.
func (c RenderContext) PortOrDefault() int {
	if c.Port <= 0 {
		return DefaultGopherPort
	}
	return c.Port
}

// Resolve qualifies a document-relative reference against BasePath.
// Absolute URLs, host-relative paths ("/x"), fragment-only and empty
// references are returned unchanged.
func (c RenderContext) Resolve(ref string) string {
	if ref == "" || c.BasePath == "" || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "#") {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() || u.Host != "" || u.Path == "" {
		return ref
	}
	base := c.BasePath
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return (&url.URL{Path: base}).ResolveReference(u).String()
}

// IsAbsoluteURL reports whether ref names a scheme or a host, such as
// "https://example.com/x", "mailto:me@example.com" or "//cdn.example.com/x".
func IsAbsoluteURL(ref string) bool {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return true
	}
	u, err := url.Parse(ref)
	return err == nil && (u.IsAbs() || u.Host != "")
}
