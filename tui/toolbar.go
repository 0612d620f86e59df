package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathviz/search"
)

// button is one clickable toolbar label occupying columns [x0, x1).
type button struct {
	label  string
	x0, x1 int
	alg    search.Algorithm
	clear  bool
}

// toolbar lays out one button per algorithm followed by the clear button.
type toolbar struct {
	buttons []button
}

func newToolbar(algs []search.Algorithm) toolbar {
	var tb toolbar
	x := 0
	add := func(b button) {
		b.x0 = x
		b.x1 = x + lipgloss.Width(b.label)
		tb.buttons = append(tb.buttons, b)
		x = b.x1 + 1
	}
	for i, alg := range algs {
		add(button{label: fmt.Sprintf("[%d %s]", i+1, alg.Label()), alg: alg})
	}
	add(button{label: "[c Clear]", clear: true})
	return tb
}

// hit returns the button under column x.
func (tb toolbar) hit(x int) (button, bool) {
	for _, b := range tb.buttons {
		if x >= b.x0 && x < b.x1 {
			return b, true
		}
	}
	return button{}, false
}

// view renders the toolbar, dimming every button while disabled.
func (tb toolbar) view(disabled bool) string {
	style := buttonStyle
	if disabled {
		style = disabledStyle
	}
	labels := make([]string, len(tb.buttons))
	for i, b := range tb.buttons {
		labels[i] = style.Render(b.label)
	}
	return strings.Join(labels, " ")
}
