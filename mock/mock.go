// Package mock provides test doubles for mdrender interfaces using function fields.
package mock

import "github.com/fwojciec/mdrender"

// Interface compliance checks.
var (
	_ mdrender.Target = (*Target)(nil)
	_ mdrender.Parser = (*Parser)(nil)
)

// Target is a test double for mdrender.Target.
// Set the hook functions for the media kinds the test renders; a nil RulesFn
// leaves every node kind on its default rule.
type Target struct {
	TargetID           mdrender.TargetID
	RulesFn            func() mdrender.Rules
	RenderImageFn      func(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error)
	RenderLocalVideoFn func(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error)
	RenderYouTubeFn    func(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error)
	RenderVimeoFn      func(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error)
}

// ID returns TargetID.
func (t *Target) ID() mdrender.TargetID { return t.TargetID }

// Rules delegates to RulesFn, or returns nil when it is unset.
func (t *Target) Rules() mdrender.Rules {
	if t.RulesFn == nil {
		return nil
	}
	return t.RulesFn()
}

// RenderImage delegates to RenderImageFn.
func (t *Target) RenderImage(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	return t.RenderImageFn(ctx, src, c)
}

// RenderLocalVideo delegates to RenderLocalVideoFn.
func (t *Target) RenderLocalVideo(ctx mdrender.RenderContext, src string, c mdrender.Caption) (string, error) {
	return t.RenderLocalVideoFn(ctx, src, c)
}

// RenderYouTube delegates to RenderYouTubeFn.
func (t *Target) RenderYouTube(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return t.RenderYouTubeFn(ctx, id, c)
}

// RenderVimeo delegates to RenderVimeoFn.
func (t *Target) RenderVimeo(ctx mdrender.RenderContext, id string, c mdrender.Caption) (string, error) {
	return t.RenderVimeoFn(ctx, id, c)
}

// Parser is a test double for mdrender.Parser.
// Set ParseFn before calling Parse.
type Parser struct {
	ParseFn func(source []byte) (*mdrender.Node, error)
}

// Parse delegates to ParseFn.
func (p *Parser) Parse(source []byte) (*mdrender.Node, error) {
	return p.ParseFn(source)
}
