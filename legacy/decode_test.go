package legacy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/richtext/styled"
)

func TestDecode(t *testing.T) {
	red := styled.Style{}.WithColor(styled.Red)
	gold := styled.Style{}.WithColor(styled.Gold)
	bold := styled.Style{}.WithDecoration(styled.Bold, styled.StateTrue)
	italic := styled.Style{}.WithDecoration(styled.Italic, styled.StateTrue)

	tests := []struct {
		name  string
		input string
		want  *styled.Text
	}{
		{"string", `"plain"`, styled.Plain("plain")},
		{"empty string", `""`, styled.Plain("")},
		{"number", `42`, styled.Plain("42")},
		{"number keeps literal", `1.50`, styled.Plain("1.50")},
		{"boolean", `true`, styled.Plain("true")},
		{"object", `{"text":"Hello","color":"red","bold":true}`, styled.New("Hello", red.Merge(bold))},
		{"hex color", `{"text":"x","color":"#ff8800"}`, styled.New("x", styled.Style{}.WithColor(styled.Hex(0xff8800)))},
		{"false decoration", `{"text":"x","italic":false}`, styled.New("x", styled.Style{}.WithDecoration(styled.Italic, styled.StateFalse))},
		{"null member ignored", `{"text":"x","bold":null}`, styled.Plain("x")},
		{"unknown member ignored", `{"text":"x","shadow_color":-1}`, styled.Plain("x")},
		{
			"array",
			`["a", {"text":"b","italic":true}, "c"]`,
			styled.New("a", styled.Style{}, styled.New("b", italic), styled.Plain("c")),
		},
		{
			"extra",
			`{"text":"","color":"gold","extra":["x",{"text":"y","bold":true}]}`,
			styled.New("", gold, styled.Plain("x"), styled.New("y", bold)),
		},
		{
			"insertion and font",
			`{"text":"x","insertion":"/home","font":"minecraft:uniform"}`,
			styled.New("x", styled.Style{}.WithInsertion("/home").WithFont("minecraft:uniform")),
		},
		{
			"click and hover contents",
			`{"text":"go","clickEvent":{"action":"open_url","value":"https://example.com"},` +
				`"hoverEvent":{"action":"show_text","contents":{"text":"tip","color":"gray"}}}`,
			styled.New("go", styled.Style{}.
				WithClick(styled.ClickEvent{Action: styled.ClickOpenURL, Value: "https://example.com"}).
				WithHover(styled.New("tip", styled.Style{}.WithColor(styled.Gray)))),
		},
		{
			"hover value",
			`{"text":"x","hoverEvent":{"action":"show_text","value":"tip"}}`,
			styled.New("x", styled.Style{}.WithHover(styled.Plain("tip"))),
		},
		{"surrounding whitespace", " \n {\"text\":\"x\"} ", styled.Plain("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%s) mismatch (-want +got):\n%s\ngot: %s", tt.input, diff, got)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
	}{
		{"malformed", `{"text":`, ""},
		{"trailing data", `{"text":"x"} {}`, ""},
		{"null", `null`, ""},
		{"empty", ``, ""},
		{"empty array", `[]`, ""},
		{"no text", `{}`, ""},
		{"translatable", `{"translate":"chat.type.text","with":["a"]}`, ""},
		{"keybind", `{"keybind":"key.jump"}`, ""},
		{"wrong member type", `{"text":"x","bold":"yes"}`, ""},
		{"duplicate member", `{"text":"a","text":"b"}`, ""},
		{"bad color", `{"text":"x","color":"nope"}`, "/color"},
		{"bad color in array", `["a", {"text":"b","color":"nope"}]`, "/1/color"},
		{"bad click", `{"text":"x","extra":[{"text":"y","clickEvent":{"action":"boom","value":""}}]}`, "/extra/0/clickEvent/action"},
		{"bad hover action", `{"text":"x","hoverEvent":{"action":"show_item","contents":"stone"}}`, "/hoverEvent/action"},
		{"hover without contents", `{"text":"x","hoverEvent":{"action":"show_text"}}`, "/hoverEvent"},
		{"bad hover contents", `{"text":"x","hoverEvent":{"action":"show_text","contents":{"color":"red"}}}`, "/hoverEvent/contents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)

			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr), "want *FormatError, got %T: %v", err, err)
			assert.Equal(t, tt.path, formatErr.Path)
		})
	}
}

func TestDecode_MaxDepth(t *testing.T) {
	input := `{"text":"","extra":[{"text":"","extra":[{"text":"","extra":["deep"]}]}]}`

	_, err := NewDecoder(WithMaxDepth(2)).Decode(input)
	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, "/extra/0/extra/0/extra/0", formatErr.Path)

	got, err := NewDecoder(WithMaxDepth(3)).Decode(input)
	require.NoError(t, err)
	assert.Equal(t, "deep", got.PlainText())
}

func TestFormatError_Message(t *testing.T) {
	err := &FormatError{Path: "/extra/1", Message: "invalid color", Err: errors.New(`unknown color "nope"`)}
	assert.Equal(t, `legacy component at /extra/1: invalid color: unknown color "nope"`, err.Error())
	assert.Equal(t, "legacy component at /: null is not a component", (&FormatError{Message: "null is not a component"}).Error())
}
