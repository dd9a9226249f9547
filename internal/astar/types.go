package astar

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

var (
	// ErrInvalidEndpoints is returned when start or end cannot be searched:
	// missing, out of bounds, or on a Barrier.
	ErrInvalidEndpoints = errors.New("astar: invalid endpoints")

	// ErrEmptyFrontier is returned by Frontier.PopMin on an empty queue.
	// The engine never pops an empty frontier.
	ErrEmptyFrontier = errors.New("astar: pop from empty frontier")

	// ErrNoPath is returned when the predecessor chain is broken or cyclic.
	// Chains produced by the engine are acyclic, so this indicates a bug.
	ErrNoPath = errors.New("astar: no path in predecessor map")
)

// Outcome is how a search run terminated.
type Outcome int

const (
	// OutcomeSucceeded means the end cell was reached; Result.Path is set.
	OutcomeSucceeded Outcome = iota + 1
	// OutcomeExhausted means the frontier emptied: no path exists.
	OutcomeExhausted
	// OutcomeCancelled means the context was done before the search finished.
	OutcomeCancelled
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Policy selects what happens when a better route is found to a cell that
// is already queued.
type Policy int

const (
	// PolicyKeepStale updates the cell's scores but leaves its queue entry
	// at the original priority.
	PolicyKeepStale Policy = iota
	// PolicyDecreaseKey moves the queued entry to the improved priority.
	PolicyDecreaseKey
)

// String returns the config name of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyKeepStale:
		return "stale"
	case PolicyDecreaseKey:
		return "decrease-key"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a config name into a Policy.
func ParsePolicy(name string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "stale", "keep-stale":
		return PolicyKeepStale, true
	case "decrease-key", "decrease":
		return PolicyDecreaseKey, true
	default:
		return PolicyKeepStale, false
	}
}

// Phase tells an Observer which part of the run produced a Step.
type Phase int

const (
	PhaseSearch Phase = iota // a cell was expanded
	PhasePath                // a path cell was revealed
)

func (p Phase) String() string {
	if p == PhasePath {
		return "path"
	}
	return "search"
}

// Step is passed to the Observer after each expansion and each path step.
type Step struct {
	Phase     Phase
	Current   grid.Coord
	Cost      int // g-score of Current
	Iteration int
}

// Observer is called synchronously during a run. The grid is consistent
// while it runs and may be read (or cloned) but must not be edited.
type Observer func(Step)

// Result describes a finished run.
type Result struct {
	Outcome  Outcome
	Path     []grid.Coord // start..end inclusive, only on success
	Cost     int          // g-score of end on success
	Expanded int          // number of cells popped and expanded
}

// Found reports whether the run succeeded.
func (r Result) Found() bool {
	return r.Outcome == OutcomeSucceeded
}

// Length returns the number of moves along the path.
func (r Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Options defines parameters for a search.
type Options struct {
	Policy    Policy
	Heuristic Heuristic
	Logger    *log.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithPolicy selects the frontier update policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithHeuristic replaces the Manhattan heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithLogger sets a logger for run summaries at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
