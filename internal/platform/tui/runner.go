package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-astar/internal/astar"
	"github.com/vovakirdan/tui-astar/internal/grid"
)

// frameMsg carries a snapshot of the grid taken after one search step.
type frameMsg struct {
	run  *searchRun
	grid *grid.Grid
	step astar.Step
}

// runDoneMsg is sent once the search goroutine returns.
type runDoneMsg struct {
	run     *searchRun
	grid    *grid.Grid
	result  astar.Result
	err     error
	elapsed time.Duration
}

// searchRun owns a grid while A* runs on it in its own goroutine.
// The UI only sees clones handed over through frames.
type searchRun struct {
	cancel context.CancelFunc
	frames chan frameMsg
	done   chan runDoneMsg
}

// startSearch launches A* on g. The caller must not touch g until the
// runDoneMsg for this run arrives.
func startSearch(parent context.Context, g *grid.Grid, animate bool, opts ...astar.Option) *searchRun {
	ctx, cancel := context.WithCancel(parent)
	run := &searchRun{
		cancel: cancel,
		frames: make(chan frameMsg),
		done:   make(chan runDoneMsg, 1),
	}

	var observer astar.Observer
	if animate {
		observer = func(step astar.Step) {
			frame := frameMsg{run: run, grid: g.Clone(), step: step}
			select {
			case run.frames <- frame:
			case <-ctx.Done():
			}
		}
	}

	go func() {
		began := time.Now()
		res, err := astar.Run(ctx, g, observer, opts...)
		run.done <- runDoneMsg{run: run, grid: g, result: res, err: err, elapsed: time.Since(began)}
		close(run.frames)
		cancel()
	}()

	return run
}

// next waits for the following frame, or the final result once the
// search goroutine is finished.
func (r *searchRun) next() tea.Cmd {
	return func() tea.Msg {
		if frame, ok := <-r.frames; ok {
			return frame
		}
		return <-r.done
	}
}

// stop asks the search to give up. It is safe to call more than once.
func (r *searchRun) stop() {
	r.cancel()
}
