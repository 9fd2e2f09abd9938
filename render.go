package mdrender

import "strings"

type mark uint8

const markSuppressed mark = 1 << iota

// Walker is the state of one render call. It dispatches each node to the
// target's rule for its kind, falling back to the shared default rule, and
// tracks inline mode and suppression marks. Marks are keyed by node identity
// and live only as long as the Walker, so the tree itself is never touched.
type Walker struct {
	target Target
	rules  Rules
	ctx    RenderContext

	inline int
	stack  []*Node
	marks  map[*Node]mark
}

// Render validates tree and renders it for target t.
func Render(tree *Node, t Target, ctx RenderContext) (string, error) {
	if err := ValidateTree(tree); err != nil {
		return "", err
	}
	w := &Walker{
		target: t,
		rules:  t.Rules(),
		ctx:    ctx,
	}
	return w.Render(tree)
}

// Context returns the render context of the call.
func (w *Walker) Context() RenderContext { return w.ctx }

// Target returns the ID of the target being rendered.
func (w *Walker) Target() TargetID { return w.target.ID() }

// Inline reports whether the walker is rendering a caption or another run of
// text that is embedded in its parent's output.
func (w *Walker) Inline() bool { return w.inline > 0 }

// Parent returns the parent of the node whose rule is running, or nil at the
// root.
func (w *Walker) Parent() *Node {
	if len(w.stack) < 2 {
		return nil
	}
	return w.stack[len(w.stack)-2]
}

// Render renders n with the active target's rule. Suppressed nodes render
// as "".
func (w *Walker) Render(n *Node) (string, error) {
	if w.marks[n]&markSuppressed != 0 {
		return "", nil
	}
	return w.apply(w.rule(n.Kind), n)
}

// Default renders n with the shared default rule for its kind, bypassing any
// override of the target. It is meant to be called from within a rule for n.
func (w *Walker) Default(n *Node) (string, error) {
	return defaultRule(n.Kind)(w, n)
}

func (w *Walker) apply(r Rule, n *Node) (string, error) {
	w.stack = append(w.stack, n)
	defer func() { w.stack = w.stack[:len(w.stack)-1] }()
	return r(w, n)
}

func (w *Walker) rule(k Kind) Rule {
	if r := w.rules[k]; r != nil {
		return r
	}
	return defaultRule(k)
}

// RenderChildren renders the children of n left to right and concatenates
// the results.
func (w *Walker) RenderChildren(n *Node) (string, error) {
	var b strings.Builder
	for _, c := range n.Children {
		s, err := w.Render(c)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// RenderInline renders n in inline mode.
func (w *Walker) RenderInline(n *Node) (string, error) {
	w.inline++
	defer func() { w.inline-- }()
	return w.Render(n)
}

// RenderChildrenInline renders the children of n in inline mode.
func (w *Walker) RenderChildrenInline(n *Node) (string, error) {
	w.inline++
	defer func() { w.inline-- }()
	return w.RenderChildren(n)
}

// Caption renders the children of n in inline mode and then suppresses them
// and their descendants for the rest of the call, so the caption text is
// emitted exactly once.
func (w *Walker) Caption(n *Node) (string, error) {
	s, err := w.RenderChildrenInline(n)
	if err != nil {
		return "", err
	}
	for _, c := range n.Children {
		w.suppress(c)
	}
	return s, nil
}

func (w *Walker) suppress(n *Node) {
	if w.marks == nil {
		w.marks = make(map[*Node]mark)
	}
	w.marks[n] |= markSuppressed
	for _, c := range n.Children {
		w.suppress(c)
	}
}

// Index returns the position of n among its parent's children, or -1.
func Index(parent, n *Node) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}
