package logger

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// palette holds the terminal style of each kind. A nil palette writes plain text.
type palette struct {
	styles map[Kind]lipgloss.Style
}

func newPalette(out io.Writer, mode ColorMode) *palette {
	switch mode {
	case ColorNever:
		return nil
	case ColorAuto:
		if !isTerminal(out) {
			return nil
		}
	}

	r := lipgloss.NewRenderer(out)
	if mode == ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	return &palette{styles: map[Kind]lipgloss.Style{
		KindError:     r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		KindWarn:      r.NewStyle().Foreground(lipgloss.Color("3")),
		KindDebug:     r.NewStyle().Foreground(lipgloss.Color("8")),
		KindHighlight: r.NewStyle().Background(lipgloss.Color("2")),
	}}
}

func (p *palette) render(kind Kind, line string) string {
	if p == nil {
		return line
	}
	st, ok := p.styles[kind]
	if !ok {
		return line
	}
	return st.Render(line)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
