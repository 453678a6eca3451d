package markup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Neumenon/richtext/styled"
)

type tagKind uint8

const (
	tagUnknown tagKind = iota
	tagStyle
	tagNewline
	tagReset
)

type resolvedTag struct {
	kind  tagKind
	key   string
	style styled.Style
}

// Canonical keys for closing-tag matching. Every color tag closes with
// any color closer, e.g. <red>..</color>.
const (
	keyColor     = "color"
	keyClick     = "click"
	keyHover     = "hover"
	keyInsertion = "insertion"
	keyFont      = "font"
)

var decorationAliases = map[string]styled.Decoration{
	"bold":          styled.Bold,
	"b":             styled.Bold,
	"italic":        styled.Italic,
	"i":             styled.Italic,
	"em":            styled.Italic,
	"underlined":    styled.Underlined,
	"u":             styled.Underlined,
	"strikethrough": styled.Strikethrough,
	"st":            styled.Strikethrough,
	"obfuscated":    styled.Obfuscated,
	"obf":           styled.Obfuscated,
}

var errMissingArgument = errors.New("missing argument")

// closingKey returns the key a closing tag matches against.
func closingKey(name string) (string, bool) {
	if d, ok := decorationAliases[name]; ok {
		return d.String(), true
	}
	if isColorName(name) {
		return keyColor, true
	}
	switch name {
	case "click":
		return keyClick, true
	case "hover":
		return keyHover, true
	case "insert", "insertion":
		return keyInsertion, true
	case "font":
		return keyFont, true
	case "newline", "br", "reset":
		// closing a self-closing tag is a no-op
		return "", true
	}
	return "", false
}

func isColorName(name string) bool {
	if name == "color" || name == "colour" || name == "c" || strings.HasPrefix(name, "#") {
		return true
	}
	_, ok := styled.Named(name)
	return ok
}

func resolveTag(name string, args []string, negated bool, p *Parser) (resolvedTag, error) {
	if d, ok := decorationAliases[name]; ok {
		state := styled.StateTrue
		if negated {
			state = styled.StateFalse
		}
		if len(args) > 0 {
			switch strings.ToLower(args[0]) {
			case "true":
			case "false":
				state = styled.StateFalse
			default:
				return resolvedTag{}, fmt.Errorf("decoration flag must be true or false, got %q", args[0])
			}
		}
		return resolvedTag{kind: tagStyle, key: d.String(), style: styled.Style{}.WithDecoration(d, state)}, nil
	}

	if negated {
		return resolvedTag{}, nil
	}

	switch name {
	case "color", "colour", "c":
		if len(args) == 0 {
			return resolvedTag{}, errMissingArgument
		}
		c, err := styled.ParseColor(args[0])
		if err != nil {
			return resolvedTag{}, err
		}
		return colorTag(c), nil

	case "click":
		if len(args) < 2 {
			return resolvedTag{}, errMissingArgument
		}
		action, err := styled.ParseClickAction(args[0])
		if err != nil {
			return resolvedTag{}, err
		}
		ev := styled.ClickEvent{Action: action, Value: joinArgs(args[1:])}
		return resolvedTag{kind: tagStyle, key: keyClick, style: styled.Style{}.WithClick(ev)}, nil

	case "hover":
		if len(args) < 2 {
			return resolvedTag{}, errMissingArgument
		}
		if !strings.EqualFold(args[0], "show_text") {
			return resolvedTag{}, fmt.Errorf("unsupported hover action %q", args[0])
		}
		hover, err := p.Parse(joinArgs(args[1:]))
		if err != nil {
			return resolvedTag{}, fmt.Errorf("hover text: %w", err)
		}
		return resolvedTag{kind: tagStyle, key: keyHover, style: styled.Style{}.WithHover(hover.Compact())}, nil

	case "insert", "insertion":
		if len(args) == 0 {
			return resolvedTag{}, errMissingArgument
		}
		return resolvedTag{kind: tagStyle, key: keyInsertion, style: styled.Style{}.WithInsertion(joinArgs(args))}, nil

	case "font":
		if len(args) == 0 {
			return resolvedTag{}, errMissingArgument
		}
		return resolvedTag{kind: tagStyle, key: keyFont, style: styled.Style{}.WithFont(joinArgs(args))}, nil

	case "newline", "br":
		return resolvedTag{kind: tagNewline}, nil

	case "reset":
		return resolvedTag{kind: tagReset}, nil
	}

	if strings.HasPrefix(name, "#") {
		c, err := styled.ParseColor(name)
		if err != nil {
			return resolvedTag{}, err
		}
		return colorTag(c), nil
	}
	if c, ok := styled.Named(name); ok {
		return colorTag(c), nil
	}
	return resolvedTag{}, nil
}

func colorTag(c styled.Color) resolvedTag {
	return resolvedTag{kind: tagStyle, key: keyColor, style: styled.Style{}.WithColor(c)}
}
