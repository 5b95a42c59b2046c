package text

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"my-reboot/internal/options"
)

// Colors for option values: the first value of each catalog is blue, the
// second green, an unset value red.
const (
	colorFirst     = lipgloss.Color("4")
	colorSecond    = lipgloss.Color("2")
	colorUndefined = lipgloss.Color("1")
	colorWarning   = lipgloss.Color("3")
)

// Painter styles values for one output. Escape codes are only emitted
// when the output is a color-capable terminal.
type Painter struct {
	renderer *lipgloss.Renderer
}

// NewPainter returns a Painter that detects the color profile of w.
func NewPainter(w io.Writer) *Painter {
	return &Painter{renderer: lipgloss.NewRenderer(w)}
}

// PlainPainter returns a Painter that never emits escape codes.
func PlainPainter() *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return &Painter{renderer: r}
}

// Renderer exposes the underlying renderer, for the dialog styles.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

func (p *Painter) bold(color lipgloss.Color, s string) string {
	return p.renderer.NewStyle().Bold(true).Foreground(color).Render(s)
}

// Warning renders s as a warning.
func (p *Painter) Warning(s string) string {
	return p.renderer.NewStyle().Foreground(colorWarning).Render(s)
}

// OperatingSystem renders os, or "indefinido" when nil.
func (p *Painter) OperatingSystem(os *options.OperatingSystem) string {
	return paintTwoValued(p, os, options.Windows, options.Linux, OSUndefined)
}

// Display renders d, or "indefinida" when nil.
func (p *Painter) Display(d *options.Display) string {
	return paintTwoValued(p, d, options.TV, options.Monitor, DisplayUndefined)
}

func paintTwoValued[O options.Option](p *Painter, value *O, first, second O, undefined string) string {
	if value == nil {
		return p.bold(colorUndefined, undefined)
	}
	color := colorSecond
	if *value == first {
		color = colorFirst
	}
	return p.bold(color, (*value).String())
}
