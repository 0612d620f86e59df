package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathviz/gridgraph"
)

// Terminal footprint of one grid cell.
const (
	CellWidth  = 2
	CellHeight = 1
)

var glyphs = map[gridgraph.State]string{
	gridgraph.Unvisited: "· ",
	gridgraph.Open:      "o ",
	gridgraph.Closed:    "x ",
	gridgraph.Barrier:   "██",
	gridgraph.Start:     "S ",
	gridgraph.End:       "E ",
	gridgraph.Path:      "* ",
}

// Glyph returns the two-column text of s.
func Glyph(s gridgraph.State) string {
	if g, ok := glyphs[s]; ok {
		return g
	}
	return "? "
}

// Renderer draws frames with a fixed palette.
type Renderer struct {
	plain  bool
	styles map[gridgraph.State]lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables colour: frames are glyphs only.
func WithPlain(plain bool) Option {
	return func(r *Renderer) { r.plain = plain }
}

// New builds a Renderer for p. States missing from p fall back to the
// default palette.
func New(p Palette, opts ...Option) *Renderer {
	def := DefaultPalette()
	r := &Renderer{styles: make(map[gridgraph.State]lipgloss.Style, len(def))}
	for _, s := range gridgraph.States() {
		c, ok := p[s]
		if !ok {
			c = def[s]
		}
		r.styles[s] = lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#F5F5F5"))
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cell renders one state.
func (r *Renderer) Cell(s gridgraph.State) string {
	if r.plain {
		return Glyph(s)
	}
	return r.styles[s].Render(Glyph(s))
}

// Frame renders a row-major snapshot with cols cells per line. Lines are
// separated by '\n' with no trailing newline. cols < 1 yields "".
func (r *Renderer) Frame(states []gridgraph.State, cols int) string {
	if cols < 1 || len(states) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range states {
		if i > 0 && i%cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Cell(s))
	}
	return b.String()
}

// Grid renders g's current state.
func (r *Renderer) Grid(g *gridgraph.Grid) string {
	return r.Frame(g.Snapshot(), g.Cols())
}

// Legend renders one sample of every state followed by its name.
func (r *Renderer) Legend() string {
	parts := make([]string, 0, len(glyphs))
	for _, s := range []gridgraph.State{
		gridgraph.Start, gridgraph.End, gridgraph.Barrier, gridgraph.Open,
		gridgraph.Closed, gridgraph.Path, gridgraph.Unvisited,
	} {
		parts = append(parts, r.Cell(s)+" "+s.String())
	}
	return strings.Join(parts, "  ")
}
