package goldmark_test

import (
	"testing"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) *mdrender.Node {
	t.Helper()
	tree, err := goldmark.NewParser().Parse([]byte(source))
	require.NoError(t, err)
	require.Equal(t, mdrender.KindDocument, tree.Kind)
	return tree
}

func heading(level int, children ...*mdrender.Node) *mdrender.Node {
	h := mdrender.Elem(mdrender.KindHeading, children...)
	h.Level = level
	return h
}

func tight(children ...*mdrender.Node) *mdrender.Node {
	p := mdrender.Elem(mdrender.KindParagraph, children...)
	p.Tight = true
	return p
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "")
		assert.Empty(t, tree.Children)
	})

	t.Run("heading and paragraph", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "# Hello\n\nWorld\n")
		assert.Equal(t, []*mdrender.Node{
			heading(1, mdrender.Text("Hello")),
			mdrender.Elem(mdrender.KindParagraph, mdrender.Text("World")),
		}, tree.Children)
	})

	t.Run("emphasis and strong", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "a *b* **c**\n")
		assert.Equal(t, mdrender.Elem(mdrender.KindParagraph,
			mdrender.Text("a "),
			mdrender.Elem(mdrender.KindEmphasis, mdrender.Text("b")),
			mdrender.Text(" "),
			mdrender.Elem(mdrender.KindStrong, mdrender.Text("c")),
		), tree.Children[0])
	})

	t.Run("soft break stays in text", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "Hello\nWorld\n")
		assert.Equal(t, mdrender.Elem(mdrender.KindParagraph, mdrender.Text("Hello\nWorld")), tree.Children[0])
	})

	t.Run("hard break", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "a\\\nb\n")
		p := tree.Children[0]
		require.Len(t, p.Children, 3)
		assert.Equal(t, mdrender.KindText, p.Children[0].Kind)
		assert.Equal(t, mdrender.KindHardBreak, p.Children[1].Kind)
		assert.Equal(t, "b", p.Children[2].Content)
	})

	t.Run("link with title", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "[About](/about/ \"Info\")\n")
		link := tree.Children[0].Children[0]
		assert.Equal(t, mdrender.KindLink, link.Kind)
		assert.Equal(t, "/about/", link.Href)
		assert.Equal(t, "Info", link.Title)
		assert.Equal(t, "About", link.PlainText())
	})

	t.Run("autolink", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "<https://example.com/x>\n")
		link := tree.Children[0].Children[0]
		assert.Equal(t, mdrender.KindLink, link.Kind)
		assert.Equal(t, "https://example.com/x", link.Href)
		assert.Equal(t, "https://example.com/x", link.PlainText())
	})

	t.Run("email autolink gets mailto", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "<me@example.com>\n")
		link := tree.Children[0].Children[0]
		assert.Equal(t, "mailto:me@example.com", link.Href)
		assert.Equal(t, "me@example.com", link.PlainText())
	})

	t.Run("image title and alt", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "![A *red* car](car.png \"My car\")\n")
		img := tree.Children[0].Children[0]
		assert.Equal(t, &mdrender.Node{
			Kind:  mdrender.KindImage,
			Src:   "car.png",
			Title: "My car",
			Alt:   "A red car",
		}, img)
	})

	t.Run("fenced code block", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "```go\nfmt.Println(\"<hi>\")\n```\n")
		assert.Equal(t, &mdrender.Node{
			Kind:     mdrender.KindCodeBlock,
			Language: "go",
			Content:  "fmt.Println(\"<hi>\")\n",
		}, tree.Children[0])
	})

	t.Run("inline code is not unescaped", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "`a\\*b`\n")
		code := tree.Children[0].Children[0]
		assert.Equal(t, mdrender.KindCodeInline, code.Kind)
		assert.Equal(t, "a\\*b", code.Content)
	})

	t.Run("tight bullet list", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "- a\n- b\n")
		assert.Equal(t, &mdrender.Node{
			Kind: mdrender.KindList,
			Children: []*mdrender.Node{
				mdrender.Elem(mdrender.KindListItem, tight(mdrender.Text("a"))),
				mdrender.Elem(mdrender.KindListItem, tight(mdrender.Text("b"))),
			},
		}, tree.Children[0])
	})

	t.Run("ordered list start", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "3. x\n4. y\n")
		list := tree.Children[0]
		assert.True(t, list.Ordered)
		assert.Equal(t, 3, list.Start)
		assert.Len(t, list.Children, 2)
	})

	t.Run("task list", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "- [x] done\n- [ ] todo\n")
		items := tree.Children[0].Children
		require.Len(t, items, 2)
		assert.Equal(t, mdrender.Elem(mdrender.KindListItem, tight(
			&mdrender.Node{Kind: mdrender.KindCheckBox, Checked: true},
			mdrender.Text("done"),
		)), items[0])
		assert.False(t, items[1].Children[0].Children[0].Checked)
	})

	t.Run("blockquote", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "> quoted\n")
		assert.Equal(t, mdrender.Elem(mdrender.KindBlockquote,
			mdrender.Elem(mdrender.KindParagraph, mdrender.Text("quoted")),
		), tree.Children[0])
	})

	t.Run("thematic break", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "a\n\n---\n\nb\n")
		require.Len(t, tree.Children, 3)
		assert.Equal(t, mdrender.KindThematicBreak, tree.Children[1].Kind)
	})

	t.Run("strikethrough", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "~~gone~~\n")
		assert.Equal(t, mdrender.Elem(mdrender.KindStrikethrough, mdrender.Text("gone")), tree.Children[0].Children[0])
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "| a | b |\n|:--|--:|\n| 1 | 2 |\n")
		table := tree.Children[0]
		require.Equal(t, mdrender.KindTable, table.Kind)
		require.Len(t, table.Children, 2)

		head := table.Children[0]
		assert.True(t, head.Header)
		require.Len(t, head.Children, 2)
		assert.Equal(t, mdrender.AlignLeft, head.Children[0].Align)
		assert.Equal(t, mdrender.AlignRight, head.Children[1].Align)
		assert.Equal(t, "a", head.Children[0].PlainText())

		body := table.Children[1]
		assert.False(t, body.Header)
		assert.Equal(t, "2", body.Children[1].PlainText())
	})

	t.Run("entities are decoded", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "AT&amp;T \\*not emphasis\\*\n")
		assert.Equal(t, "AT&T *not emphasis*", tree.Children[0].PlainText())
	})

	t.Run("inline html becomes text", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "a <b>x</b>\n")
		assert.Equal(t, mdrender.Elem(mdrender.KindParagraph, mdrender.Text("a <b>x</b>")), tree.Children[0])
	})

	t.Run("html block becomes text", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "<div>hi</div>\n")
		assert.Equal(t, mdrender.Elem(mdrender.KindParagraph, mdrender.Text("<div>hi</div>")), tree.Children[0])
	})

	t.Run("parsed trees validate", func(t *testing.T) {
		t.Parallel()
		tree := parse(t, "# T\n\n- [x] a\n  > q\n\n| h |\n|---|\n| ![i](x.png) |\n\n1. `c`\n")
		assert.NoError(t, mdrender.ValidateTree(tree))
	})
}
