package styled

import (
	"strconv"
	"strings"
)

// Text is an immutable node of a styled document.
//
// A nil *Text is the absent value. It is not the same as [Empty], which
// is a document with zero segments.
type Text struct {
	content  string
	style    Style
	children []*Text
}

var empty = &Text{}

// ============================================================
// Constructors
// ============================================================

// Empty returns the canonical empty document.
func Empty() *Text {
	return empty
}

// New creates a node. Nil children are skipped.
func New(content string, style Style, children ...*Text) *Text {
	t := &Text{content: content, style: style}
	for _, c := range children {
		if c != nil {
			t.children = append(t.children, c)
		}
	}
	return t
}

// Plain creates an unstyled leaf.
func Plain(content string) *Text {
	return &Text{content: content}
}

// Join creates an unstyled, content-less parent of parts.
func Join(parts ...*Text) *Text {
	return New("", Style{}, parts...)
}

// ============================================================
// Accessors
// ============================================================

// Content returns the literal text of this node, excluding children.
func (t *Text) Content() string {
	if t == nil {
		return ""
	}
	return t.content
}

// Style returns the node's own style, excluding inherited fields.
func (t *Text) Style() Style {
	if t == nil {
		return Style{}
	}
	return t.style
}

// Children returns a copy of the child list.
func (t *Text) Children() []*Text {
	if t == nil || len(t.children) == 0 {
		return nil
	}
	out := make([]*Text, len(t.children))
	copy(out, t.children)
	return out
}

// ChildCount returns the number of children.
func (t *Text) ChildCount() int {
	if t == nil {
		return 0
	}
	return len(t.children)
}

// IsEmpty reports whether the document has no segments: no content and
// no children. The absent value (nil) is not empty.
func (t *Text) IsEmpty() bool {
	return t != nil && t.content == "" && len(t.children) == 0
}

// WithStyle returns a copy of t with its own style replaced.
func (t *Text) WithStyle(s Style) *Text {
	return &Text{content: t.Content(), style: s, children: t.Children()}
}

// Append returns a copy of t with more children.
func (t *Text) Append(children ...*Text) *Text {
	return New(t.Content(), t.Style(), append(t.Children(), children...)...)
}

// Equal reports whether two trees have the same shape, content and styles.
// Two nil trees are equal; nil never equals a non-nil tree.
func (t *Text) Equal(o *Text) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t == o {
		return true
	}
	if t.content != o.content || len(t.children) != len(o.children) {
		return false
	}
	if !t.style.Equal(o.style) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Flattening
// ============================================================

// Segment is a run of text with its fully resolved style.
type Segment struct {
	Text  string
	Style Style
}

// Segments flattens the tree depth-first into runs with effective styles.
// Nodes without content produce no segment.
func (t *Text) Segments() []Segment {
	var out []Segment
	t.appendSegments(&out, Style{})
	return out
}

func (t *Text) appendSegments(out *[]Segment, inherited Style) {
	if t == nil {
		return
	}
	effective := inherited.Merge(t.style)
	if t.content != "" {
		*out = append(*out, Segment{Text: t.content, Style: effective})
	}
	for _, c := range t.children {
		c.appendSegments(out, effective)
	}
}

// PlainText returns all content concatenated without styling.
func (t *Text) PlainText() string {
	var sb strings.Builder
	t.writePlain(&sb)
	return sb.String()
}

func (t *Text) writePlain(sb *strings.Builder) {
	if t == nil {
		return
	}
	sb.WriteString(t.content)
	for _, c := range t.children {
		c.writePlain(sb)
	}
}

// String returns a debug representation such as
// text("Hi" color=red)[text("!")].
func (t *Text) String() string {
	if t == nil {
		return "<absent>"
	}
	var sb strings.Builder
	t.writeDebug(&sb)
	return sb.String()
}

func (t *Text) writeDebug(sb *strings.Builder) {
	sb.WriteString("text(")
	sb.WriteString(strconv.Quote(t.content))
	if !t.style.IsEmpty() {
		sb.WriteByte(' ')
		sb.WriteString(t.style.String())
	}
	sb.WriteByte(')')
	if len(t.children) == 0 {
		return
	}
	sb.WriteByte('[')
	for i, c := range t.children {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.writeDebug(sb)
	}
	sb.WriteByte(']')
}
