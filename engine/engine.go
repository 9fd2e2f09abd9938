// Package engine is the render entry point: it parses Markdown once and
// renders the tree with the requested target.
package engine

import (
	"fmt"
	"sort"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/goldmark"
	"github.com/fwojciec/mdrender/gopher"
	"github.com/fwojciec/mdrender/html4"
	"github.com/fwojciec/mdrender/html5"
	"github.com/fwojciec/mdrender/wml"
)

// Engine pairs a parser with a set of targets. It holds no per-render state
// and is safe for concurrent use as long as its parser and targets are.
type Engine struct {
	parser  mdrender.Parser
	targets map[mdrender.TargetID]mdrender.Target
}

// New returns an Engine that parses with p and renders with targets. A later
// target replaces an earlier one with the same ID.
func New(p mdrender.Parser, targets ...mdrender.Target) *Engine {
	e := &Engine{
		parser:  p,
		targets: make(map[mdrender.TargetID]mdrender.Target, len(targets)),
	}
	for _, t := range targets {
		e.targets[t.ID()] = t
	}
	return e
}

// Default returns an Engine with the goldmark parser and the four built-in
// targets.
func Default() *Engine {
	return New(goldmark.NewParser(), html5.New(), html4.New(), gopher.New(), wml.New())
}

// Targets returns the IDs of the registered targets, sorted.
func (e *Engine) Targets() []mdrender.TargetID {
	ids := make([]mdrender.TargetID, 0, len(e.targets))
	for id := range e.targets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Target looks up a registered target.
func (e *Engine) Target(id mdrender.TargetID) (mdrender.Target, error) {
	t, ok := e.targets[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, mdrender.ErrUnknownTarget)
	}
	return t, nil
}

// Parse parses source into a node tree.
func (e *Engine) Parse(source string) (*mdrender.Node, error) {
	tree, err := e.parser.Parse([]byte(source))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return tree, nil
}

// Render parses source and renders it for target.
func (e *Engine) Render(target mdrender.TargetID, source string, ctx mdrender.RenderContext) (string, error) {
	t, err := e.Target(target)
	if err != nil {
		return "", err
	}
	tree, err := e.Parse(source)
	if err != nil {
		return "", err
	}
	return mdrender.Render(tree, t, ctx)
}

// RenderTree renders an already parsed tree for target. The tree is not
// modified and may be rendered for several targets concurrently.
func (e *Engine) RenderTree(target mdrender.TargetID, tree *mdrender.Node, ctx mdrender.RenderContext) (string, error) {
	t, err := e.Target(target)
	if err != nil {
		return "", err
	}
	return mdrender.Render(tree, t, ctx)
}
