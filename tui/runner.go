package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathviz/search"
)

// stepMsg announces one search step. The search is blocked until ack is
// closed.
type stepMsg struct {
	ack chan struct{}
}

// doneMsg carries the outcome of a finished search.
type doneMsg struct {
	runID  string
	result search.Result
	err    error
}

// runner is one search in flight.
type runner struct {
	id     string
	events chan tea.Msg
	cancel context.CancelFunc
}

// handshake returns the OnStep hook: publish a step, wait for the event
// loop to acknowledge it, then hold for delay. Every wait also ends on
// cancellation, after which the search sees ctx.Err at its next poll.
func handshake(ctx context.Context, events chan<- tea.Msg, delay time.Duration) func() {
	return func() {
		if ctx.Err() != nil {
			return
		}
		ack := make(chan struct{})
		select {
		case events <- stepMsg{ack: ack}:
		case <-ctx.Done():
			return
		}
		select {
		case <-ack:
		case <-ctx.Done():
			return
		}
		if delay <= 0 {
			return
		}
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
		}
	}
}

// await blocks until the runner publishes its next message. It yields nil
// once the search goroutine has exited and closed events.
func (r *runner) await() tea.Cmd {
	events := r.events
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}
