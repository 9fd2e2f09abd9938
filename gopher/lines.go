package gopher

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/mdrender"
)

// Item types of the menu lines this package emits.
const (
	typeInfo  = 'i'
	typeMenu  = '9'
	typeHTTP  = 'h'
	typeImage = 'I'
)

var (
	fieldReplacer = strings.NewReplacer("\t", " ", "\r", "", "\n", " ")
	infoReplacer  = strings.NewReplacer("\t", "    ", "\r", "")
)

// field makes s safe for a tab-separated item field.
func field(s string) string {
	return strings.TrimSpace(fieldReplacer.Replace(s))
}

// info splits text into info lines, one per source line.
func info(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(infoReplacer.Replace(text), "\n") {
		b.WriteByte(typeInfo)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// spacer is the blank info line that separates blocks.
const spacer = "i\n"

func item(typ byte, caption, selector string, ctx mdrender.RenderContext) string {
	var b strings.Builder
	b.WriteByte(typ)
	b.WriteString(field(caption))
	b.WriteByte('\t')
	b.WriteString(field(selector))
	b.WriteByte('\t')
	b.WriteString(ctx.Hostname)
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(ctx.PortOrDefault()))
	b.WriteByte('\n')
	return b.String()
}

// httpItem links to a URL outside gopherspace.
func httpItem(caption, u string, ctx mdrender.RenderContext) string {
	return item(typeHTTP, caption, "URL:"+u, ctx)
}

// linkItem renders href as an h item when it names a scheme and as a local
// selector otherwise.
func linkItem(caption, href string, ctx mdrender.RenderContext) string {
	if mdrender.IsAbsoluteURL(href) {
		return httpItem(caption, absoluteURL(href, ctx), ctx)
	}
	return item(typeMenu, caption, selector(href, ctx), ctx)
}

// selector resolves a relative reference against the configured host and
// keeps only the path.
func selector(ref string, ctx mdrender.RenderContext) string {
	base := &url.URL{Scheme: ctx.SchemeOrDefault(), Host: ctx.Hostname, Path: "/"}
	u, err := url.Parse(ctx.Resolve(ref))
	if err != nil {
		return "/" + strings.TrimLeft(ref, "/")
	}
	p := base.ResolveReference(u).Path
	if p == "" {
		return "/"
	}
	return p
}

// absoluteURL turns a relative reference into a URL on the configured host.
// Protocol-relative references take the configured scheme.
func absoluteURL(ref string, ctx mdrender.RenderContext) string {
	if strings.HasPrefix(ref, "//") {
		return ctx.SchemeOrDefault() + ":" + ref
	}
	if mdrender.IsAbsoluteURL(ref) {
		return ref
	}
	return (&url.URL{Scheme: ctx.SchemeOrDefault(), Host: ctx.Hostname, Path: selector(ref, ctx)}).String()
}

// prefixLines inserts prefix after the type character of every line; rest
// replaces prefix on lines after the first.
func prefixLines(s, first, rest string) string {
	var b strings.Builder
	p := first
	for _, line := range strings.SplitAfter(s, "\n") {
		if line == "" {
			continue
		}
		b.WriteByte(line[0])
		b.WriteString(p)
		b.WriteString(line[1:])
		p = rest
	}
	return b.String()
}

// trimSpacer drops one trailing blank info line.
func trimSpacer(s string) string {
	if s == spacer {
		return ""
	}
	if strings.HasSuffix(s, "\n"+spacer) {
		return s[:len(s)-len(spacer)]
	}
	return s
}
