package mdrender

import "fmt"

// TargetID names an output encoding.
type TargetID string

const (
	TargetHTML5  TargetID = "html5"
	TargetHTML4  TargetID = "html4"
	TargetGopher TargetID = "gopher"
	TargetWML    TargetID = "wml"
)

// AllTargets lists the built-in targets in a stable order.
func AllTargets() []TargetID {
	return []TargetID{TargetHTML5, TargetHTML4, TargetGopher, TargetWML}
}

// ParseTargetID validates a target name. An unrecognized name is an error,
// never a silent fallback to another target.
func ParseTargetID(s string) (TargetID, error) {
	for _, id := range AllTargets() {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownTarget)
}

// Rule renders one node for one target. Rules decide whether and how to
// recurse into children through the Walker.
type Rule func(w *Walker, n *Node) (string, error)

// Rules maps node kinds to the rules a target overrides. Kinds missing from
// the map fall back to the shared default rule.
type Rules map[Kind]Rule

// Target is an output encoding. Each target presents the four media
// categories and overrides whichever node rules its format requires.
// Classification of image sources happens once, in the default image rule,
// before one of the media hooks is called.
type Target interface {
	ID() TargetID
	Rules() Rules

	RenderImage(ctx RenderContext, src string, c Caption) (string, error)
	RenderLocalVideo(ctx RenderContext, src string, c Caption) (string, error)
	RenderYouTube(ctx RenderContext, id string, c Caption) (string, error)
	RenderVimeo(ctx RenderContext, id string, c Caption) (string, error)
}

// Parser turns Markdown source into a node tree rooted at a KindDocument node.
type Parser interface {
	Parse(source []byte) (*Node, error)
}
