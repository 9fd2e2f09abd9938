package mdrender

import "fmt"

// ValidateTree checks the structural expectations the render rules depend on:
// a document root, children of the right class for each parent, leaf kinds
// without children and heading levels within 1-6.
func ValidateTree(root *Node) error {
	if root == nil {
		return &MalformedInputError{Reason: "nil tree"}
	}
	if root.Kind != KindDocument {
		return &MalformedInputError{Kind: root.Kind, Reason: "root must be a document"}
	}
	return validateNode(root, nil, map[*Node]bool{root: true})
}

// Validate checks the constraints on a Config.
func (c Config) Validate() error {
	if c.Hostname == "" {
		return fmt.Errorf("hostname must not be empty: %w", ErrValidation)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in [0, 65535], got %d: %w", c.Port, ErrValidation)
	}
	switch c.Scheme {
	case "", "http", "https":
	default:
		return fmt.Errorf("scheme must be http or https, got %q: %w", c.Scheme, ErrValidation)
	}
	for _, t := range c.Targets {
		if _, err := ParseTargetID(string(t)); err != nil {
			return fmt.Errorf("targets: %w: %w", err, ErrValidation)
		}
	}
	return nil
}

type kindAllow uint8

const (
	allowBlock kindAllow = 1 << iota
	allowInline
	allowListItem
	allowRow
	allowCell
)

var (
	blockKinds = map[Kind]bool{
		KindHeading:       true,
		KindParagraph:     true,
		KindCodeBlock:     true,
		KindList:          true,
		KindBlockquote:    true,
		KindThematicBreak: true,
		KindTable:         true,
	}
	inlineKinds = map[Kind]bool{
		KindText:          true,
		KindEmphasis:      true,
		KindStrong:        true,
		KindStrikethrough: true,
		KindCodeInline:    true,
		KindLink:          true,
		KindImage:         true,
		KindHardBreak:     true,
		KindCheckBox:      true,
	}
)

func allowedChildren(k Kind) kindAllow {
	switch k {
	case KindDocument, KindBlockquote:
		return allowBlock
	case KindListItem:
		return allowBlock | allowInline
	case KindHeading, KindParagraph, KindEmphasis, KindStrong, KindStrikethrough, KindLink, KindTableCell:
		return allowInline
	case KindList:
		return allowListItem
	case KindTable:
		return allowRow
	case KindTableRow:
		return allowCell
	default:
		return 0
	}
}

func allows(a kindAllow, k Kind) bool {
	switch {
	case blockKinds[k]:
		return a&allowBlock != 0
	case inlineKinds[k]:
		return a&allowInline != 0
	case k == KindListItem:
		return a&allowListItem != 0
	case k == KindTableRow:
		return a&allowRow != 0
	case k == KindTableCell:
		return a&allowCell != 0
	default:
		return false
	}
}

// validateNode checks n and its subtree. seen holds every node visited so
// far; meeting one again means a cycle or a node with two parents.
func validateNode(n *Node, path []int, seen map[*Node]bool) error {
	if n.Kind == KindHeading && (n.Level < 1 || n.Level > 6) {
		return &MalformedInputError{Path: path, Kind: n.Kind, Reason: fmt.Sprintf("heading level %d out of range", n.Level)}
	}
	allowed := allowedChildren(n.Kind)
	for i, c := range n.Children {
		childPath := append(path[:len(path):len(path)], i)
		if c == nil {
			return &MalformedInputError{Path: childPath, Reason: "nil child"}
		}
		if seen[c] {
			return &MalformedInputError{Path: childPath, Kind: c.Kind, Reason: "node has more than one parent"}
		}
		seen[c] = true
		if allowed == 0 {
			return &MalformedInputError{Path: path, Kind: n.Kind, Reason: "leaf node has children"}
		}
		if !allows(allowed, c.Kind) {
			return &MalformedInputError{Path: childPath, Kind: c.Kind, Reason: fmt.Sprintf("not allowed inside %s", n.Kind)}
		}
		if err := validateNode(c, childPath, seen); err != nil {
			return err
		}
	}
	return nil
}
