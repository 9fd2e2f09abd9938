package mdrender

// Kind identifies the syntactic role of a Node.
type Kind uint8

const (
	KindDocument Kind = iota
	KindHeading
	KindParagraph
	KindText
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindCodeBlock
	KindCodeInline
	KindLink
	KindImage
	KindList
	KindListItem
	KindBlockquote
	KindHardBreak
	KindThematicBreak
	KindCheckBox
	KindTable
	KindTableRow
	KindTableCell
)

var kindNames = [...]string{
	KindDocument:      "document",
	KindHeading:       "heading",
	KindParagraph:     "paragraph",
	KindText:          "text",
	KindEmphasis:      "emphasis",
	KindStrong:        "strong",
	KindStrikethrough: "strikethrough",
	KindCodeBlock:     "code_block",
	KindCodeInline:    "code_inline",
	KindLink:          "link",
	KindImage:         "image",
	KindList:          "list",
	KindListItem:      "list_item",
	KindBlockquote:    "blockquote",
	KindHardBreak:     "hard_break",
	KindThematicBreak: "thematic_break",
	KindCheckBox:      "checkbox",
	KindTable:         "table",
	KindTableRow:      "table_row",
	KindTableCell:     "table_cell",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Alignment is the horizontal alignment of a table cell.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the CSS text-align value, or "" for AlignNone.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// Node is one element of a parsed document. Which fields are meaningful
// depends on Kind; the rest stay zero. A tree is never mutated by rendering,
// so one parsed tree can be rendered for several targets at once.
type Node struct {
	Kind Kind

	Level   int       // Heading: 1-6
	Ordered bool      // List
	Start   int       // List: first number of an ordered list
	Tight   bool      // Paragraph: inside a tight list item, no block wrapper
	Checked bool      // CheckBox
	Header  bool      // TableRow
	Align   Alignment // TableCell

	Content  string // Text, CodeBlock, CodeInline
	Language string // CodeBlock
	Href     string // Link
	Src      string // Image
	Title    string // Link, Image
	Alt      string // Image

	Children []*Node
}

// Text returns a text leaf.
func Text(content string) *Node {
	return &Node{Kind: KindText, Content: content}
}

// Elem returns a node of the given kind with children.
func Elem(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// PlainText concatenates the content of all text-bearing descendants of n.
func (n *Node) PlainText() string {
	var b []byte
	var walk func(*Node)
	walk = func(n *Node) {
		switch n.Kind {
		case KindText, KindCodeInline:
			b = append(b, n.Content...)
		case KindImage:
			b = append(b, n.Alt...)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return string(b)
}
