package render

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathviz/gridgraph"
)

var (
	// ErrUnknownState is returned for a palette override naming no state.
	ErrUnknownState = errors.New("render: unknown state name")
	// ErrBadColor is returned for a colour that is not #RRGGBB.
	ErrBadColor = errors.New("render: colour must be #RRGGBB")
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Palette maps each state to a colour.
type Palette map[gridgraph.State]lipgloss.Color

// DefaultPalette returns the standard colours.
func DefaultPalette() Palette {
	return Palette{
		gridgraph.Closed:    lipgloss.Color("#F4442E"),
		gridgraph.Open:      lipgloss.Color("#982649"),
		gridgraph.Start:     lipgloss.Color("#06BCC1"),
		gridgraph.End:       lipgloss.Color("#FF579F"),
		gridgraph.Unvisited: lipgloss.Color("#444554"),
		gridgraph.Barrier:   lipgloss.Color("#031926"),
		gridgraph.Path:      lipgloss.Color("#84DCC6"),
	}
}

// With returns a copy of p with overrides applied. Keys are state names
// ("closed", "path", ...), values #RRGGBB.
func (p Palette) With(overrides map[string]string) (Palette, error) {
	out := make(Palette, len(p))
	for s, c := range p {
		out[s] = c
	}
	for name, color := range overrides {
		s, ok := gridgraph.ParseState(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownState, name)
		}
		if !hexColor.MatchString(color) {
			return nil, fmt.Errorf("%w: %s=%q", ErrBadColor, name, color)
		}
		out[s] = lipgloss.Color(color)
	}
	return out, nil
}
