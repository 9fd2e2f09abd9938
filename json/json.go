// Package json encodes node trees as JSON so that trees produced by an
// external parser can be rendered, and parsed trees can be inspected.
package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/mdrender"
	"github.com/fwojciec/mdrender/fs"
)

var _ mdrender.Parser = (*Parser)(nil)

// envelope is the v1 wire format for a persisted tree.
type envelope struct {
	Version int     `json:"version"`
	Root    nodeDTO `json:"root"`
}

// nodeDTO is the JSON representation of a Node with a type discriminator.
type nodeDTO struct {
	Type     string    `json:"type"`
	Level    int       `json:"level,omitempty"`
	Ordered  bool      `json:"ordered,omitempty"`
	Start    int       `json:"start,omitempty"`
	Tight    bool      `json:"tight,omitempty"`
	Checked  bool      `json:"checked,omitempty"`
	Header   bool      `json:"header,omitempty"`
	Align    string    `json:"align,omitempty"`
	Content  string    `json:"content,omitempty"`
	Language string    `json:"language,omitempty"`
	Href     string    `json:"href,omitempty"`
	Src      string    `json:"src,omitempty"`
	Title    string    `json:"title,omitempty"`
	Alt      string    `json:"alt,omitempty"`
	Children []nodeDTO `json:"children,omitempty"`
}

// MarshalTree serializes a tree to JSON in v1 envelope format.
func MarshalTree(root *mdrender.Node) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("nil tree: %w", mdrender.ErrMalformedInput)
	}
	return json.MarshalIndent(envelope{Version: 1, Root: marshalNode(root)}, "", "  ")
}

// UnmarshalTree deserializes a tree from JSON in v1 envelope format.
func UnmarshalTree(data []byte) (*mdrender.Node, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return nil, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	return unmarshalNode(env.Root, nil)
}

// Save writes a tree to a JSON file, creating parent directories as needed.
func Save(path string, root *mdrender.Node) error {
	data, err := MarshalTree(root)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return fs.WriteFile(path, data)
}

// Load reads a tree from a JSON file.
func Load(path string) (*mdrender.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalTree(data)
}

// Parser adapts UnmarshalTree to mdrender.Parser, so an engine can render
// trees produced elsewhere.
type Parser struct{}

// Parse decodes source as a v1 tree envelope.
func (Parser) Parse(source []byte) (*mdrender.Node, error) {
	return UnmarshalTree(source)
}

func marshalNode(n *mdrender.Node) nodeDTO {
	dto := nodeDTO{
		Type:     n.Kind.String(),
		Level:    n.Level,
		Ordered:  n.Ordered,
		Start:    n.Start,
		Tight:    n.Tight,
		Checked:  n.Checked,
		Header:   n.Header,
		Align:    n.Align.String(),
		Content:  n.Content,
		Language: n.Language,
		Href:     n.Href,
		Src:      n.Src,
		Title:    n.Title,
		Alt:      n.Alt,
	}
	for _, c := range n.Children {
		if c != nil {
			dto.Children = append(dto.Children, marshalNode(c))
		}
	}
	return dto
}

func unmarshalNode(dto nodeDTO, path []int) (*mdrender.Node, error) {
	kind, ok := mdrender.ParseKind(dto.Type)
	if !ok {
		return nil, &mdrender.MalformedInputError{Path: path, Reason: fmt.Sprintf("unknown node type %q", dto.Type)}
	}
	align, err := parseAlign(dto.Align)
	if err != nil {
		return nil, &mdrender.MalformedInputError{Path: path, Kind: kind, Reason: err.Error()}
	}
	n := &mdrender.Node{
		Kind:     kind,
		Level:    dto.Level,
		Ordered:  dto.Ordered,
		Start:    dto.Start,
		Tight:    dto.Tight,
		Checked:  dto.Checked,
		Header:   dto.Header,
		Align:    align,
		Content:  dto.Content,
		Language: dto.Language,
		Href:     dto.Href,
		Src:      dto.Src,
		Title:    dto.Title,
		Alt:      dto.Alt,
	}
	for i, c := range dto.Children {
		child, err := unmarshalNode(c, append(path[:len(path):len(path)], i))
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func parseAlign(s string) (mdrender.Alignment, error) {
	switch s {
	case "":
		return mdrender.AlignNone, nil
	case "left":
		return mdrender.AlignLeft, nil
	case "center":
		return mdrender.AlignCenter, nil
	case "right":
		return mdrender.AlignRight, nil
	default:
		return mdrender.AlignNone, fmt.Errorf("unknown alignment %q", s)
	}
}
