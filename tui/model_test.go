package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

func newTestModel(t *testing.T, rows, cols int) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Rows, cfg.Grid.Cols = rows, cols
	cfg.Search.StepDelay = 0
	m, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)
	return m
}

// update feeds msg to m and asserts the concrete model type.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// click presses a mouse button over cell (row, col).
func click(t *testing.T, m Model, row, col int, btn tea.MouseButton) Model {
	t.Helper()
	m, _ = update(t, m, tea.MouseMsg{
		X:      col * render.CellWidth,
		Y:      gridTop + row*render.CellHeight,
		Action: tea.MouseActionPress,
		Button: btn,
	})
	return m
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// next runs cmd with a timeout so a broken handshake fails instead of hanging.
func next(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("no message from the search goroutine")
		return nil
	}
}

// drive pumps messages until the search reports completion and returns the
// number of frames taken.
func drive(t *testing.T, m Model, cmd tea.Cmd) (Model, int) {
	t.Helper()
	frames := 0
	for m.started {
		msg := next(t, cmd)
		if _, ok := msg.(stepMsg); ok {
			frames++
		}
		m, cmd = update(t, m, msg)
	}
	return m, frames
}

func TestMouse_PlaceStartEndBarrier(t *testing.T) {
	m := newTestModel(t, 4, 4)

	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	require.Same(t, m.grid.Cell(0, 0), m.start)
	require.True(t, m.start.IsStart())

	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	require.Nil(t, m.end, "start cannot become end")

	m = click(t, m, 3, 2, tea.MouseButtonLeft)
	require.Same(t, m.grid.Cell(3, 2), m.end)

	m = click(t, m, 1, 1, tea.MouseButtonLeft)
	m = click(t, m, 3, 2, tea.MouseButtonLeft)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	assert.True(t, m.grid.Cell(1, 1).IsBarrier())
	assert.True(t, m.end.IsEnd())
	assert.True(t, m.start.IsStart())
	assert.Equal(t, 1, m.grid.Count(gridgraph.Barrier))

	// drag paints barriers
	m, _ = update(t, m, tea.MouseMsg{
		X: 2 * render.CellWidth, Y: gridTop + 2,
		Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft,
	})
	assert.True(t, m.grid.Cell(2, 2).IsBarrier())
}

func TestMouse_RightClickForgets(t *testing.T) {
	m := newTestModel(t, 4, 4)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	m = click(t, m, 1, 0, tea.MouseButtonLeft)
	m = click(t, m, 2, 0, tea.MouseButtonLeft)

	m = click(t, m, 0, 0, tea.MouseButtonRight)
	assert.Nil(t, m.start)
	assert.NotNil(t, m.end)
	m = click(t, m, 2, 0, tea.MouseButtonRight)
	assert.True(t, m.grid.Cell(2, 0).Is(gridgraph.Unvisited))

	// the next left click places start again, not a barrier
	m = click(t, m, 3, 3, tea.MouseButtonLeft)
	assert.Same(t, m.grid.Cell(3, 3), m.start)
}

func TestMouse_OutsideGridIgnored(t *testing.T) {
	m := newTestModel(t, 3, 3)
	for _, p := range [][2]int{{0, 0}, {3 * render.CellWidth, gridTop}, {-1, gridTop}, {0, 100}} {
		m, _ = update(t, m, tea.MouseMsg{X: p[0], Y: p[1], Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	}
	assert.Nil(t, m.start)
	assert.Equal(t, 9, m.grid.Count(gridgraph.Unvisited))
}

func TestLaunch_RequiresEndpoints(t *testing.T) {
	m := newTestModel(t, 3, 3)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)

	m, cmd := press(t, m, "1")
	assert.Nil(t, cmd)
	assert.False(t, m.started)
	assert.True(t, m.failed)
}

func TestRun_Handshake(t *testing.T) {
	m := newTestModel(t, 5, 5)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	m = click(t, m, 4, 4, tea.MouseButtonLeft)
	m = click(t, m, 1, 1, tea.MouseButtonLeft)

	m, cmd := press(t, m, "1")
	require.True(t, m.started)
	require.NotNil(t, m.frame)

	// input is ignored while the search runs
	m = click(t, m, 3, 3, tea.MouseButtonLeft)
	m, c := press(t, m, "c")
	assert.Nil(t, c)
	assert.Same(t, m.grid.Cell(0, 0), m.start)

	m, frames := drive(t, m, cmd)
	require.False(t, m.started)
	require.Nil(t, m.frame)
	require.NotNil(t, m.last)
	assert.True(t, m.last.Found)
	assert.Equal(t, search.AlgBFS, m.last.Algorithm)
	assert.Equal(t, 8, m.last.PathLength)
	assert.Equal(t, m.last.Steps, frames, "one frame per step")
	assert.Equal(t, 7, m.grid.Count(gridgraph.Path))
	assert.False(t, m.grid.Cell(3, 3).IsBarrier())
}

func TestRun_EveryAlgorithm(t *testing.T) {
	for i, alg := range search.Algorithms() {
		m := newTestModel(t, 4, 4)
		m = click(t, m, 0, 0, tea.MouseButtonLeft)
		m = click(t, m, 3, 3, tea.MouseButtonLeft)

		m, cmd := press(t, m, string(rune('1'+i)))
		m, _ = drive(t, m, cmd)
		require.NotNil(t, m.last, alg.Label())
		assert.Equal(t, alg, m.last.Algorithm)
		assert.True(t, m.last.Found, alg.Label())
	}
}

func TestRun_SecondRunClearsMarks(t *testing.T) {
	m := newTestModel(t, 4, 4)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	m = click(t, m, 3, 3, tea.MouseButtonLeft)

	m, cmd := press(t, m, "2")
	m, _ = drive(t, m, cmd)
	dfsPath := m.last.PathLength

	m, cmd = press(t, m, "1")
	m, _ = drive(t, m, cmd)
	assert.Equal(t, 6, m.last.PathLength)
	assert.Equal(t, 5, m.grid.Count(gridgraph.Path))
	assert.GreaterOrEqual(t, dfsPath, 6)
}

func TestQuit_CancelsRunningSearch(t *testing.T) {
	m := newTestModel(t, 5, 5)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	m = click(t, m, 4, 4, tea.MouseButtonLeft)

	m, cmd := press(t, m, "3")
	msg := next(t, cmd)
	step, ok := msg.(stepMsg)
	require.True(t, ok)

	r := m.run
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// the search is released from the handshake and exits without reporting
	select {
	case got, open := <-r.events:
		require.False(t, open, "unexpected message after quit: %#v", got)
	case <-time.After(5 * time.Second):
		t.Fatal("search goroutine did not exit")
	}
	select {
	case <-step.ack:
		t.Fatal("step was acknowledged")
	default:
	}

	// a pending await returns instead of blocking forever
	assert.Nil(t, next(t, r.await()))
}

// TestRun_FirstFrameBeforeSearch runs a long BFS; the launch frame holds
// only the endpoints. Run with -race to check the grid is never read while
// the search writes it.
func TestRun_FirstFrameBeforeSearch(t *testing.T) {
	m := newTestModel(t, 30, 30)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	m = click(t, m, 29, 29, tea.MouseButtonLeft)

	m, cmd := press(t, m, "1")
	require.True(t, m.started)
	require.Len(t, m.frame, 30*30)
	counts := map[gridgraph.State]int{}
	for _, s := range m.frame {
		counts[s]++
	}
	assert.Equal(t, map[gridgraph.State]int{
		gridgraph.Unvisited: 30*30 - 2,
		gridgraph.Start:     1,
		gridgraph.End:       1,
	}, counts)

	m, frames := drive(t, m, cmd)
	require.NotNil(t, m.last)
	assert.True(t, m.last.Found)
	assert.Equal(t, 58, m.last.PathLength)
	assert.Equal(t, m.last.Steps, frames)
}

func TestKeys_ClearAndWipe(t *testing.T) {
	m := newTestModel(t, 3, 3)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	m = click(t, m, 2, 2, tea.MouseButtonLeft)
	m = click(t, m, 1, 0, tea.MouseButtonLeft)

	m, cmd := press(t, m, "1")
	m, _ = drive(t, m, cmd)
	require.Positive(t, m.grid.Count(gridgraph.Path))

	m, _ = press(t, m, "r")
	assert.Zero(t, m.grid.Count(gridgraph.Path))
	assert.Zero(t, m.grid.Count(gridgraph.Closed))
	assert.Equal(t, 1, m.grid.Count(gridgraph.Barrier))
	assert.NotNil(t, m.start)

	m, _ = press(t, m, "c")
	assert.Nil(t, m.start)
	assert.Nil(t, m.end)
	assert.Equal(t, 9, m.grid.Count(gridgraph.Unvisited))

	m, _ = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
}

func TestToolbar(t *testing.T) {
	tb := newToolbar(search.Algorithms())
	require.Len(t, tb.buttons, 9)

	b, ok := tb.hit(0)
	require.True(t, ok)
	assert.Equal(t, search.AlgBFS, b.alg)

	first := tb.buttons[0]
	_, ok = tb.hit(first.x1)
	assert.False(t, ok, "gap between buttons")

	last := tb.buttons[len(tb.buttons)-1]
	b, ok = tb.hit(last.x0)
	require.True(t, ok)
	assert.True(t, b.clear)
}

func TestToolbar_Click(t *testing.T) {
	m := newTestModel(t, 3, 3)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)
	m = click(t, m, 2, 2, tea.MouseButtonLeft)

	astar := m.toolbar.buttons[2]
	require.Equal(t, search.AlgAStar, astar.alg)
	m, cmd := update(t, m, tea.MouseMsg{
		X: astar.x0 + 1, Y: m.toolbarRow(),
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	require.True(t, m.started)
	m, _ = drive(t, m, cmd)
	assert.Equal(t, search.AlgAStar, m.last.Algorithm)

	clr := m.toolbar.buttons[len(m.toolbar.buttons)-1]
	m, _ = update(t, m, tea.MouseMsg{
		X: clr.x0, Y: m.toolbarRow(),
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	assert.Nil(t, m.start)
}

func TestHandshake_ReleasedByCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg)
	hook := handshake(ctx, events, time.Hour)

	done := make(chan struct{})
	go func() {
		hook()
		close(done)
	}()

	msg := <-events
	close(msg.(stepMsg).ack)
	cancel() // interrupts the step delay

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("hook did not return after cancel")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, 3, 3)
	m = click(t, m, 0, 0, tea.MouseButtonLeft)

	v := m.View()
	assert.Contains(t, v, "pathviz")
	assert.Contains(t, v, "[1 BFS]")
	assert.Contains(t, v, "[8 IDA*]")
	assert.Contains(t, v, "start")

	lines := strings.Split(v, "\n")
	require.Greater(t, len(lines), m.toolbarRow())
	assert.Contains(t, lines[gridTop], "S")
	assert.Contains(t, lines[m.toolbarRow()], "[c Clear]")
}
