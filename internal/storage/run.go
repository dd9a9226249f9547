package storage

import (
	"time"

	"github.com/vovakirdan/tui-astar/internal/astar"
)

// NewRun builds a history record from a finished search.
func NewRun(layout string, size int, res astar.Result, policy astar.Policy, elapsed time.Duration) Run {
	return Run{
		Layout:     layout,
		Size:       size,
		Outcome:    res.Outcome.String(),
		PathLength: res.Length(),
		Expanded:   res.Expanded,
		Duration:   elapsed,
		Policy:     policy.String(),
	}
}
