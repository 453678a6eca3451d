package styled

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Color Tests
// ============================================================

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"red", Red},
		{"RED", Red},
		{"dark_grey", DarkGray},
		{"grey", Gray},
		{"#ff0000", Hex(0xff0000)},
		{"#00AAff", Hex(0x00aaff)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, input := range []string{"", "reddish", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseColor(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "gold", Gold.String())
	assert.Equal(t, "#0a0b0c", RGB(10, 11, 12).String())

	r, g, b := Hex(0x102030).Components()
	assert.Equal(t, []uint8{0x10, 0x20, 0x30}, []uint8{r, g, b})
	assert.NotEqual(t, Red, Hex(Red.Value()), "named and hex colors are distinct")
}

// ============================================================
// Style Tests
// ============================================================

func TestStyle_Merge(t *testing.T) {
	parent := Style{}.WithColor(Red).WithDecoration(Bold, StateTrue).WithFont("uniform")
	child := Style{}.WithColor(Blue).WithDecoration(Italic, StateTrue).WithDecoration(Bold, StateFalse)

	merged := parent.Merge(child)

	c, ok := merged.Color()
	require.True(t, ok)
	assert.Equal(t, Blue, c)
	assert.Equal(t, StateFalse, merged.Decoration(Bold))
	assert.Equal(t, StateTrue, merged.Decoration(Italic))
	assert.Equal(t, "uniform", merged.Font())
}

func TestStyle_Equal(t *testing.T) {
	a := Style{}.WithClick(ClickEvent{Action: ClickOpenURL, Value: "https://example.com"}).WithHover(Plain("tip"))
	b := Style{}.WithClick(ClickEvent{Action: ClickOpenURL, Value: "https://example.com"}).WithHover(Plain("tip"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.WithHover(Plain("other"))))
	assert.False(t, a.Equal(b.WithClick(ClickEvent{Action: ClickRunCommand, Value: "/spawn"})))
	assert.True(t, Style{}.IsEmpty())
	assert.False(t, a.IsEmpty())
}

func TestStyle_String(t *testing.T) {
	s := Style{}.WithColor(Gold).WithDecoration(Bold, StateTrue).WithDecoration(Italic, StateFalse)
	assert.Equal(t, "color=gold bold !italic", s.String())
}

func TestParseClickAction(t *testing.T) {
	a, err := ParseClickAction("suggest_command")
	require.NoError(t, err)
	assert.Equal(t, ClickSuggestCommand, a)
	assert.Equal(t, "copy_to_clipboard", ClickCopyToClipboard.String())

	_, err = ParseClickAction("explode")
	assert.Error(t, err)
}

// ============================================================
// Text Tests
// ============================================================

func TestText_EmptyAndAbsent(t *testing.T) {
	var absent *Text

	assert.True(t, Empty().IsEmpty())
	assert.False(t, absent.IsEmpty())
	assert.False(t, absent.Equal(Empty()))
	assert.True(t, absent.Equal(nil))
	assert.Equal(t, "<absent>", absent.String())
	assert.Equal(t, "", absent.PlainText())
}

func TestText_Immutable(t *testing.T) {
	child := Plain("a")
	parent := New("", Style{}, child)

	kids := parent.Children()
	kids[0] = Plain("mutated")

	assert.Equal(t, "a", parent.Children()[0].Content())
}

func TestText_Segments(t *testing.T) {
	doc := New("", Style{}.WithColor(Red),
		Plain("Hello, "),
		New("world", Style{}.WithDecoration(Bold, StateTrue)),
		New("", Style{}),
	)

	segs := doc.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, "Hello, ", segs[0].Text)
	assert.Equal(t, "world", segs[1].Text)

	c, _ := segs[1].Style.Color()
	assert.Equal(t, Red, c)
	assert.Equal(t, StateTrue, segs[1].Style.Decoration(Bold))
	assert.Equal(t, "Hello, world", doc.PlainText())
}

func TestText_String(t *testing.T) {
	doc := New("Hi", Style{}.WithColor(Red), Plain("!"))
	assert.Equal(t, `text("Hi" color=red)[text("!")]`, doc.String())
}

func TestText_Equal(t *testing.T) {
	a := New("x", Style{}.WithColor(Red), Plain("y"))
	b := New("x", Style{}.WithColor(Red), Plain("y"))
	c := New("x", Style{}.WithColor(Red), Plain("z"))

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("trees differ (-a +b):\n%s", diff)
	}
	assert.False(t, a.Equal(c))
	assert.True(t, a.Append(Plain("z")).Equal(New("x", Style{}.WithColor(Red), Plain("y"), Plain("z"))))
}
