package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Neumenon/richtext/styled"
)

// colorAuto asks the renderer to detect the profile from the output.
const colorAuto termenv.Profile = -1

func parseColorMode(mode string) (termenv.Profile, error) {
	switch strings.ToLower(mode) {
	case "", "auto":
		return colorAuto, nil
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "256":
		return termenv.ANSI256, nil
	case "16", "ansi":
		return termenv.ANSI, nil
	case "none", "ascii":
		return termenv.Ascii, nil
	default:
		return colorAuto, fmt.Errorf("unknown color mode %q", mode)
	}
}

// preview renders styled text as terminal output.
type preview struct {
	renderer *lipgloss.Renderer
}

func newPreview(w io.Writer, profile termenv.Profile) *preview {
	if profile == colorAuto {
		return &preview{renderer: lipgloss.NewRenderer(w)}
	}
	// SetColorProfile is needed as well: the renderer re-detects from the
	// environment unless a profile was set explicitly.
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return &preview{renderer: r}
}

// Render renders every segment of t with its effective style.
func (p *preview) Render(t *styled.Text) string {
	var sb strings.Builder
	for _, seg := range t.Segments() {
		// Styles do not survive line breaks in every terminal; render lines
		// separately.
		lines := strings.Split(seg.Text, "\n")
		style := p.style(seg.Style)
		for i, line := range lines {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if line != "" {
				sb.WriteString(style.Render(line))
			}
		}
	}
	return sb.String()
}

func (p *preview) style(s styled.Style) lipgloss.Style {
	ls := p.renderer.NewStyle()
	if c, ok := s.Color(); ok {
		ls = ls.Foreground(lipgloss.Color(c.HexString()))
	}
	ls = ls.
		Bold(s.Decoration(styled.Bold) == styled.StateTrue).
		Italic(s.Decoration(styled.Italic) == styled.StateTrue).
		Underline(s.Decoration(styled.Underlined) == styled.StateTrue).
		Strikethrough(s.Decoration(styled.Strikethrough) == styled.StateTrue).
		Faint(s.Decoration(styled.Obfuscated) == styled.StateTrue)
	return ls
}
