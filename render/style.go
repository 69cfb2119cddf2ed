package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls when output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorEnabled resolves mode for w. In auto mode color is used only when w is
// a terminal and $NO_COLOR is unset.
func ColorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type styler struct {
	enabled bool
	art     lipgloss.Style
	label   lipgloss.Style
	rule    lipgloss.Style
}

func newStyler(w io.Writer, enabled bool) styler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return styler{
		enabled: enabled,
		art:     r.NewStyle().Foreground(lipgloss.Color("1")),
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func (s styler) render(st lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return st.Render(text)
}

func (s styler) Art(text string) string   { return s.render(s.art, text) }
func (s styler) Label(text string) string { return s.render(s.label, text) }
func (s styler) Rule(text string) string  { return s.render(s.rule, text) }
