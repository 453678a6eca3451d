// Package legacy decodes the nested legacy JSON component format into
// styled text.
//
// A component is one of:
//
//	"plain text"                       a text leaf
//	42, true                           a text leaf holding the literal
//	[first, more...]                   first, with more appended as children
//	{"text": "...", "color": "red",    an object component
//	 "bold": true, "extra": [...]}
//
// Object components understand text, color, bold, italic, underlined,
// strikethrough, obfuscated, insertion, font, clickEvent, hoverEvent and
// extra. Unknown members are ignored. Component kinds the document model
// cannot hold (translate, keybind, score, selector, nbt) are rejected.
package legacy

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/Neumenon/richtext/styled"
)

// DefaultMaxDepth bounds component nesting through extra and hover text.
const DefaultMaxDepth = 512

// FormatError reports a component that does not follow the format.
// Path is a JSON Pointer into the decoded document.
type FormatError struct {
	Path    string
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	if e.Err != nil {
		return fmt.Sprintf("legacy component at %s: %s: %v", path, e.Message, e.Err)
	}
	return fmt.Sprintf("legacy component at %s: %s", path, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Decoder decodes legacy component JSON. A Decoder is immutable and safe
// for concurrent use.
type Decoder struct {
	maxDepth int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxDepth sets the maximum component nesting depth.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.maxDepth = n
		}
	}
}

// NewDecoder creates a decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Decode decodes a component with the default decoder.
func Decode(input string) (*styled.Text, error) {
	return defaultDecoder.Decode(input)
}

// Decode decodes one JSON component. The tree is returned as described
// by the input, without compaction.
func (d *Decoder) Decode(input string) (*styled.Text, error) {
	return d.decodeValue(jsontext.Value(input), "", 0)
}

// ============================================================
// Component forms
// ============================================================

type rawComponent struct {
	Text          *string          `json:"text"`
	Color         *string          `json:"color"`
	Bold          *bool            `json:"bold"`
	Italic        *bool            `json:"italic"`
	Underlined    *bool            `json:"underlined"`
	Strikethrough *bool            `json:"strikethrough"`
	Obfuscated    *bool            `json:"obfuscated"`
	Insertion     *string          `json:"insertion"`
	Font          *string          `json:"font"`
	ClickEvent    *rawClickEvent   `json:"clickEvent"`
	HoverEvent    *rawHoverEvent   `json:"hoverEvent"`
	Extra         []jsontext.Value `json:"extra"`

	Translate jsontext.Value `json:"translate"`
	Keybind   jsontext.Value `json:"keybind"`
	Score     jsontext.Value `json:"score"`
	Selector  jsontext.Value `json:"selector"`
	NBT       jsontext.Value `json:"nbt"`
}

type rawClickEvent struct {
	Action string `json:"action"`
	Value  string `json:"value"`
}

type rawHoverEvent struct {
	Action   string         `json:"action"`
	Contents jsontext.Value `json:"contents"`
	Value    jsontext.Value `json:"value"`
}

func (d *Decoder) decodeValue(raw jsontext.Value, path string, depth int) (*styled.Text, error) {
	if depth > d.maxDepth {
		return nil, &FormatError{Path: path, Message: fmt.Sprintf("nesting exceeds %d levels", d.maxDepth)}
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, &FormatError{Path: path, Message: "empty input"}
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, &FormatError{Path: path, Message: "invalid string component", Err: err}
		}
		return styled.Plain(s), nil

	case '[':
		var items []jsontext.Value
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, &FormatError{Path: path, Message: "invalid component array", Err: err}
		}
		return d.decodeArray(items, path, depth)

	case '{':
		var obj rawComponent
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, &FormatError{Path: path, Message: "invalid component object", Err: err}
		}
		return d.decodeObject(&obj, path, depth)

	case 'n':
		return nil, &FormatError{Path: path, Message: "null is not a component"}

	default:
		// Numbers and booleans become their literal text.
		var literal jsontext.Value
		if err := json.Unmarshal(raw, &literal); err != nil {
			return nil, &FormatError{Path: path, Message: "invalid component", Err: err}
		}
		return styled.Plain(string(bytes.TrimSpace(literal))), nil
	}
}

func (d *Decoder) decodeArray(items []jsontext.Value, path string, depth int) (*styled.Text, error) {
	if len(items) == 0 {
		return nil, &FormatError{Path: path, Message: "empty component array"}
	}
	parts := make([]*styled.Text, 0, len(items))
	for i, item := range items {
		part, err := d.decodeValue(item, indexPath(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts[0].Append(parts[1:]...), nil
}

func (d *Decoder) decodeObject(obj *rawComponent, path string, depth int) (*styled.Text, error) {
	if obj.Text == nil {
		for _, kind := range []struct {
			name string
			raw  jsontext.Value
		}{
			{"translate", obj.Translate},
			{"keybind", obj.Keybind},
			{"score", obj.Score},
			{"selector", obj.Selector},
			{"nbt", obj.NBT},
		} {
			if len(kind.raw) > 0 {
				return nil, &FormatError{Path: path, Message: fmt.Sprintf("unsupported component type %q", kind.name)}
			}
		}
		return nil, &FormatError{Path: path, Message: "component has no text"}
	}

	style, err := d.decodeStyle(obj, path, depth)
	if err != nil {
		return nil, err
	}

	children := make([]*styled.Text, 0, len(obj.Extra))
	for i, raw := range obj.Extra {
		child, err := d.decodeValue(raw, indexPath(path+"/extra", i), depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return styled.New(*obj.Text, style, children...), nil
}

func (d *Decoder) decodeStyle(obj *rawComponent, path string, depth int) (styled.Style, error) {
	var style styled.Style

	if obj.Color != nil {
		c, err := styled.ParseColor(*obj.Color)
		if err != nil {
			return style, &FormatError{Path: path + "/color", Message: "invalid color", Err: err}
		}
		style = style.WithColor(c)
	}

	for _, deco := range []struct {
		d styled.Decoration
		v *bool
	}{
		{styled.Bold, obj.Bold},
		{styled.Italic, obj.Italic},
		{styled.Underlined, obj.Underlined},
		{styled.Strikethrough, obj.Strikethrough},
		{styled.Obfuscated, obj.Obfuscated},
	} {
		if deco.v != nil {
			style = style.WithDecoration(deco.d, styled.StateOf(*deco.v))
		}
	}

	if obj.Insertion != nil {
		style = style.WithInsertion(*obj.Insertion)
	}
	if obj.Font != nil {
		style = style.WithFont(*obj.Font)
	}

	if ev := obj.ClickEvent; ev != nil {
		action, err := styled.ParseClickAction(ev.Action)
		if err != nil {
			return style, &FormatError{Path: path + "/clickEvent/action", Message: "invalid click event", Err: err}
		}
		style = style.WithClick(styled.ClickEvent{Action: action, Value: ev.Value})
	}

	if ev := obj.HoverEvent; ev != nil {
		if ev.Action != "show_text" {
			return style, &FormatError{Path: path + "/hoverEvent/action", Message: fmt.Sprintf("unsupported hover action %q", ev.Action)}
		}
		raw, member := ev.Contents, "contents"
		if len(raw) == 0 {
			raw, member = ev.Value, "value"
		}
		if len(raw) == 0 {
			return style, &FormatError{Path: path + "/hoverEvent", Message: "hover event has no contents"}
		}
		hover, err := d.decodeValue(raw, path+"/hoverEvent/"+member, depth+1)
		if err != nil {
			return style, err
		}
		style = style.WithHover(hover)
	}

	return style, nil
}

func indexPath(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}
