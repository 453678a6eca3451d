package styled

import (
	"fmt"
	"strconv"
	"strings"
)

// Decoration is a text decoration that can be switched on or off.
type Decoration uint8

const (
	Bold Decoration = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated

	decorationCount
)

// String returns the decoration name.
func (d Decoration) String() string {
	switch d {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underlined:
		return "underlined"
	case Strikethrough:
		return "strikethrough"
	case Obfuscated:
		return "obfuscated"
	default:
		return "unknown"
	}
}

// Decorations returns every decoration in declaration order.
func Decorations() []Decoration {
	return []Decoration{Bold, Italic, Underlined, Strikethrough, Obfuscated}
}

// State is the tri-state value of a decoration.
type State uint8

const (
	StateUnset State = iota // inherit from the parent
	StateTrue
	StateFalse
)

// StateOf converts a bool to StateTrue or StateFalse.
func StateOf(b bool) State {
	if b {
		return StateTrue
	}
	return StateFalse
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateTrue:
		return "true"
	case StateFalse:
		return "false"
	default:
		return "unset"
	}
}

// ClickAction is the action performed when a segment is clicked.
type ClickAction uint8

const (
	ClickOpenURL ClickAction = iota
	ClickRunCommand
	ClickSuggestCommand
	ClickChangePage
	ClickCopyToClipboard
)

var clickActionNames = [...]string{
	ClickOpenURL:         "open_url",
	ClickRunCommand:      "run_command",
	ClickSuggestCommand:  "suggest_command",
	ClickChangePage:      "change_page",
	ClickCopyToClipboard: "copy_to_clipboard",
}

// String returns the wire name of the action.
func (a ClickAction) String() string {
	if int(a) < len(clickActionNames) {
		return clickActionNames[a]
	}
	return "unknown"
}

// ParseClickAction parses a click action by its wire name.
func ParseClickAction(s string) (ClickAction, error) {
	for i, name := range clickActionNames {
		if strings.EqualFold(s, name) {
			return ClickAction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown click action %q", s)
}

// ClickEvent pairs a click action with its argument (URL, command, page...).
type ClickEvent struct {
	Action ClickAction
	Value  string
}

// Style describes how a segment is displayed and how it reacts to input.
// The zero Style sets nothing and inherits everything.
type Style struct {
	color       Color
	hasColor    bool
	decorations [decorationCount]State
	click       *ClickEvent
	hover       *Text
	insertion   string
	font        string
}

// Color returns the color and whether one is set.
func (s Style) Color() (Color, bool) {
	return s.color, s.hasColor
}

// Decoration returns the state of a decoration.
func (s Style) Decoration(d Decoration) State {
	if d >= decorationCount {
		return StateUnset
	}
	return s.decorations[d]
}

// Click returns the click event and whether one is set.
func (s Style) Click() (ClickEvent, bool) {
	if s.click == nil {
		return ClickEvent{}, false
	}
	return *s.click, true
}

// HoverText returns the text shown on hover, or nil.
func (s Style) HoverText() *Text {
	return s.hover
}

// Insertion returns the text inserted into the input on shift-click.
func (s Style) Insertion() string {
	return s.insertion
}

// Font returns the font key.
func (s Style) Font() string {
	return s.font
}

// WithColor returns a copy of s with the color set.
func (s Style) WithColor(c Color) Style {
	s.color = c
	s.hasColor = true
	return s
}

// WithoutColor returns a copy of s with no color set.
func (s Style) WithoutColor() Style {
	s.color = Color{}
	s.hasColor = false
	return s
}

// WithDecoration returns a copy of s with a decoration state set.
func (s Style) WithDecoration(d Decoration, state State) Style {
	if d < decorationCount {
		s.decorations[d] = state
	}
	return s
}

// WithClick returns a copy of s with a click event.
func (s Style) WithClick(ev ClickEvent) Style {
	s.click = &ev
	return s
}

// WithHover returns a copy of s showing t on hover. A nil t clears it.
func (s Style) WithHover(t *Text) Style {
	s.hover = t
	return s
}

// WithInsertion returns a copy of s with the insertion set.
func (s Style) WithInsertion(text string) Style {
	s.insertion = text
	return s
}

// WithFont returns a copy of s with the font key set.
func (s Style) WithFont(key string) Style {
	s.font = key
	return s
}

// IsEmpty reports whether no field is set.
func (s Style) IsEmpty() bool {
	return s.Equal(Style{})
}

// Merge returns s with every field that is set in child laid on top.
func (s Style) Merge(child Style) Style {
	if child.hasColor {
		s.color = child.color
		s.hasColor = true
	}
	for i, st := range child.decorations {
		if st != StateUnset {
			s.decorations[i] = st
		}
	}
	if child.click != nil {
		s.click = child.click
	}
	if child.hover != nil {
		s.hover = child.hover
	}
	if child.insertion != "" {
		s.insertion = child.insertion
	}
	if child.font != "" {
		s.font = child.font
	}
	return s
}

// unmerge returns s without the fields that already have the same value
// in the inherited style.
func (s Style) unmerge(inherited Style) Style {
	if s.hasColor && inherited.hasColor && s.color == inherited.color {
		s = s.WithoutColor()
	}
	for i, st := range s.decorations {
		if st != StateUnset && st == inherited.decorations[i] {
			s.decorations[i] = StateUnset
		}
	}
	if s.click != nil && inherited.click != nil && *s.click == *inherited.click {
		s.click = nil
	}
	if s.hover != nil && s.hover.Equal(inherited.hover) {
		s.hover = nil
	}
	if s.insertion == inherited.insertion {
		s.insertion = ""
	}
	if s.font == inherited.font {
		s.font = ""
	}
	return s
}

// Equal reports whether two styles set the same fields to the same values.
func (s Style) Equal(o Style) bool {
	if s.hasColor != o.hasColor || s.color != o.color {
		return false
	}
	if s.decorations != o.decorations {
		return false
	}
	if (s.click == nil) != (o.click == nil) {
		return false
	}
	if s.click != nil && *s.click != *o.click {
		return false
	}
	if (s.hover == nil) != (o.hover == nil) {
		return false
	}
	if s.hover != nil && !s.hover.Equal(o.hover) {
		return false
	}
	return s.insertion == o.insertion && s.font == o.font
}

// String returns a compact debug form such as "color=red bold !italic".
func (s Style) String() string {
	var parts []string
	if s.hasColor {
		parts = append(parts, "color="+s.color.String())
	}
	for _, d := range Decorations() {
		switch s.decorations[d] {
		case StateTrue:
			parts = append(parts, d.String())
		case StateFalse:
			parts = append(parts, "!"+d.String())
		}
	}
	if s.click != nil {
		parts = append(parts, fmt.Sprintf("click=%s(%s)", s.click.Action, strconv.Quote(s.click.Value)))
	}
	if s.hover != nil {
		parts = append(parts, "hover="+s.hover.String())
	}
	if s.insertion != "" {
		parts = append(parts, "insertion="+strconv.Quote(s.insertion))
	}
	if s.font != "" {
		parts = append(parts, "font="+s.font)
	}
	return strings.Join(parts, " ")
}
