package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
)

// gridTop is the terminal row where the grid starts, below the title line.
const gridTop = 1

// Model is the bubbletea model of the visualizer.
type Model struct {
	ctx context.Context
	cfg config.Config
	log *slog.Logger

	grid       *gridgraph.Grid
	start, end *gridgraph.Cell

	renderer *render.Renderer
	algs     []search.Algorithm
	toolbar  toolbar
	keys     keyMap
	help     help.Model

	// started is true from launch until doneMsg; input is ignored meanwhile.
	started bool
	run     *runner
	// frame is the last snapshot taken in the handshake.
	frame []gridgraph.State

	status string
	failed bool
	last   *search.Result
}

// New builds a Model for cfg. Searches run under ctx.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	palette, err := cfg.ResolvePalette()
	if err != nil {
		return Model{}, err
	}
	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	g, err := gridgraph.NewGrid(rows, cols, cols*render.CellWidth, rows*render.CellHeight)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	algs := search.Algorithms()
	labels := make([]string, len(algs))
	for i, a := range algs {
		labels[i] = a.Label()
	}

	return Model{
		ctx:      ctx,
		cfg:      cfg,
		log:      logger,
		grid:     g,
		renderer: render.New(palette),
		algs:     algs,
		toolbar:  newToolbar(algs),
		keys:     newKeyMap(labels),
		help:     help.New(),
		status:   "left click: start, end, barriers · right click: erase",
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.started {
			return m, nil
		}
		return m.handleMouse(msg)

	case stepMsg:
		m.frame = m.grid.Snapshot()
		close(msg.ack)
		return m, m.run.await()

	case doneMsg:
		return m.finish(msg), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.started {
			m.run.cancel()
			m.log.Info("search cancelled", "run_id", m.run.id, "reason", "quit")
		}
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.started {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Clear):
		return m.clearGrid(), nil
	case key.Matches(msg, m.keys.Wipe):
		m.grid.ClearSearch()
		m.last = nil
		m.setStatus("search marks cleared", false)
		return m, nil
	}
	for i, b := range m.keys.Run {
		if key.Matches(msg, b) {
			return m.launch(m.algs[i])
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease {
		return m, nil
	}

	if msg.Y == m.toolbarRow() {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		b, ok := m.toolbar.hit(msg.X)
		switch {
		case !ok:
			return m, nil
		case b.clear:
			return m.clearGrid(), nil
		default:
			return m.launch(b.alg)
		}
	}

	row, col := m.grid.CellAt(msg.X, msg.Y-gridTop)
	if !m.grid.InBounds(row, col) {
		return m, nil
	}
	spot := m.grid.Cell(row, col)

	switch msg.Button {
	case tea.MouseButtonLeft:
		switch {
		case m.start == nil && spot != m.end:
			m.start = spot
			spot.MakeStart()
		case m.end == nil && spot != m.start:
			m.end = spot
			spot.MakeEnd()
		case spot != m.start && spot != m.end:
			spot.MakeBarrier()
		}
	case tea.MouseButtonRight:
		spot.Reset()
		switch spot {
		case m.start:
			m.start = nil
		case m.end:
			m.end = nil
		}
	}
	return m, nil
}

// launch starts alg in a goroutine and returns the command that waits for
// its first message.
func (m Model) launch(alg search.Algorithm) (tea.Model, tea.Cmd) {
	if m.start == nil || m.end == nil {
		m.setStatus("place a start and an end cell first", true)
		return m, nil
	}

	m.grid.ClearSearch()
	m.grid.UpdateAllNeighbors()

	ctx, cancel := context.WithCancel(m.ctx)
	r := &runner{
		id:     uuid.NewString(),
		events: make(chan tea.Msg),
		cancel: cancel,
	}
	g, start, end := m.grid, m.start, m.end
	params := m.cfg.Params(start, end)
	opts := []search.Option{
		search.WithHeuristic(m.cfg.Heuristic()),
		search.WithOnStep(handshake(ctx, r.events, m.cfg.Search.StepDelay)),
	}

	m.log.Info("search started",
		"run_id", r.id,
		"algorithm", alg.String(),
		"start", fmt.Sprintf("%d,%d", start.Row, start.Col),
		"end", fmt.Sprintf("%d,%d", end.Row, end.Col),
	)

	m.frame = g.Snapshot()

	go func() {
		defer close(r.events)
		res, err := search.Run(ctx, alg, g, start, end, params, opts...)
		if ctx.Err() != nil {
			return // quit: nobody is listening
		}
		select {
		case r.events <- doneMsg{runID: r.id, result: res, err: err}:
		case <-ctx.Done():
		}
	}()

	m.started = true
	m.run = r
	m.last = nil
	m.setStatus(alg.Label()+" running…", false)
	return m, r.await()
}

// finish records the outcome of the running search.
func (m Model) finish(msg doneMsg) Model {
	if m.run != nil {
		m.run.cancel()
	}
	m.started = false
	m.run = nil
	m.frame = nil

	res := msg.result
	attrs := []any{
		"run_id", msg.runID,
		"algorithm", res.Algorithm.String(),
		"found", res.Found,
		"steps", res.Steps,
		"path_length", res.PathLength,
		"elapsed", res.Elapsed,
	}
	if msg.err != nil {
		m.log.Warn("search failed", append(attrs, "error", msg.err)...)
		m.setStatus(fmt.Sprintf("%s: %v", res.Algorithm.Label(), msg.err), true)
		return m
	}
	m.log.Info("search finished", attrs...)
	m.last = &res
	m.setStatus(res.String(), !res.Found)
	return m
}

// clearGrid resets every cell and forgets start and end.
func (m Model) clearGrid() Model {
	m.grid.Reset()
	m.start, m.end = nil, nil
	m.last = nil
	m.setStatus("grid cleared", false)
	return m
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// toolbarRow is the terminal row of the toolbar.
func (m Model) toolbarRow() int {
	return gridTop + m.grid.Rows()*render.CellHeight
}

// View implements tea.Model.
func (m Model) View() string {
	status := statusStyle.Render(m.status)
	if m.failed {
		status = errorStyle.Render(m.status)
	}
	header := titleStyle.Render("pathviz") + "  " + status

	var body string
	if m.started {
		body = m.renderer.Frame(m.frame, m.grid.Cols())
	} else {
		body = m.renderer.Grid(m.grid)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.toolbar.view(m.started),
		m.renderer.Legend(),
		m.help.View(m.keys),
	)
}
