package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-astar/internal/astar"
	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/layout"
	"github.com/vovakirdan/tui-astar/internal/registry"
	"github.com/vovakirdan/tui-astar/internal/storage"
)

// sourceCustom names hand-edited boards in the run history.
const sourceCustom = "custom"

// Options configures an editor session.
type Options struct {
	// Context bounds every search started from the editor. Defaults to
	// context.Background().
	Context context.Context

	Size      int
	Policy    astar.Policy
	StepDelay time.Duration // pause after each expansion frame, 0 = no animation delay
	PathDelay time.Duration // pause after each path frame
	Theme     string

	// Board to start from. Layout wins over Pattern.
	Layout   *grid.Grid
	LayoutID string
	Pattern  string
	Seed     int64

	// LayoutDir is where ctrl+s saves the board; empty disables saving.
	LayoutDir string

	Store  *storage.Store // may be nil
	Logger *log.Logger    // may be nil
}

// Model is the Bubble Tea model for the grid editor and search animation.
type Model struct {
	opts      Options
	grid      *grid.Grid // owned by the search while run != nil
	snapshot  *grid.Grid // what View draws while a search runs
	cursor    grid.Coord
	run       *searchRun
	progress  astar.Step
	stopping  bool
	last      *astar.Result
	status    string
	statusErr bool
	source    string
	theme     Theme
	themeName string
	patterns  []registry.PatternInfo
	patternAt int
	rng       *rand.Rand
	keys      EditorKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
}

// NewModel creates an editor model from opts.
func NewModel(opts Options) (Model, error) {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	m := Model{
		opts:      opts,
		source:    sourceCustom,
		patterns:  registry.List(),
		patternAt: -1,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		keys:      DefaultEditorKeyMap(),
		help:      help.New(),
	}
	m.setTheme(opts.Theme)

	switch {
	case opts.Layout != nil:
		m.grid = opts.Layout.Clone()
		if opts.LayoutID != "" {
			m.source = opts.LayoutID
		}
	default:
		g, err := grid.New(opts.Size)
		if err != nil {
			return Model{}, err
		}
		m.grid = g
		if opts.Pattern != "" {
			if err := m.applyPattern(opts.Pattern); err != nil {
				return Model{}, err
			}
		}
	}

	m.status = "place a start, an end and barriers, then press space"
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.handleFrame(msg)

	case TickMsg:
		if m.run == nil {
			return m, nil
		}
		return m, m.run.next()

	case runDoneMsg:
		return m.handleDone(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case ActionQuit:
		if m.run != nil {
			m.run.stop()
		}
		m.quitting = true
		return m, tea.Quit
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case ActionTheme:
		m.cycleTheme()
		return m, nil
	case ActionCancel:
		if m.run != nil {
			m.run.stop()
			m.stopping = true
			m.setStatus("cancelling...")
		}
		return m, nil
	}

	// Everything below edits the grid, which belongs to the search while it runs
	if m.run != nil {
		return m, nil
	}

	switch action {
	case ActionUp:
		m.moveCursor(-1, 0)
	case ActionDown:
		m.moveCursor(1, 0)
	case ActionLeft:
		m.moveCursor(0, -1)
	case ActionRight:
		m.moveCursor(0, 1)
	case ActionPaint:
		m.paint(m.cursor)
	case ActionErase:
		m.erase(m.cursor)
	case ActionRun:
		return m.startRun()
	case ActionClearAll:
		m.grid = m.grid.ResetAll()
		m.last = nil
		m.source = sourceCustom
		m.setStatus("grid cleared")
	case ActionClearMarks:
		m.grid.ClearSearch()
		m.last = nil
		m.setStatus("search marks cleared")
	case ActionPattern:
		m.nextPattern()
	case ActionPolicy:
		m.togglePolicy()
	case ActionSave:
		m.save()
	}

	return m, nil
}

// handleMouse maps clicks and drags onto cells: left places, right erases.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.run != nil {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	c, ok := CellAt(msg.X, msg.Y, m.grid.Size())
	if !ok {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		m.cursor = c
		m.paint(c)
	case tea.MouseButtonRight:
		m.cursor = c
		m.erase(c)
	}
	return m, nil
}

// paint places Start first, then End, then Barriers. Start and End
// themselves are never overwritten by a click.
func (m *Model) paint(c grid.Coord) {
	start, hasStart := m.grid.Start()
	end, hasEnd := m.grid.End()

	var s grid.State
	switch {
	case !hasStart && !(hasEnd && c == end):
		s = grid.Start
	case !hasEnd && !(hasStart && c == start):
		s = grid.End
	case (!hasStart || c != start) && (!hasEnd || c != end):
		s = grid.Barrier
	default:
		return
	}

	if err := m.grid.SetState(c, s); err != nil {
		m.setError(err)
		return
	}
	m.source = sourceCustom
}

// erase resets c to Empty, dropping its Start or End designation.
func (m *Model) erase(c grid.Coord) {
	if err := m.grid.SetState(c, grid.Empty); err != nil {
		m.setError(err)
		return
	}
	m.source = sourceCustom
}

func (m *Model) moveCursor(dr, dc int) {
	next := m.cursor.Add(dr, dc)
	if m.grid.InBounds(next) {
		m.cursor = next
	}
}

// startRun hands the grid to a search goroutine.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	if _, ok := m.grid.Start(); !ok {
		m.setStatus("place a start cell first")
		return m, nil
	}
	if _, ok := m.grid.End(); !ok {
		m.setStatus("place an end cell first")
		return m, nil
	}

	m.snapshot = m.grid.Clone()
	m.snapshot.ClearSearch()
	m.last = nil
	m.progress = astar.Step{}
	m.stopping = false

	opts := []astar.Option{astar.WithPolicy(m.opts.Policy)}
	if m.opts.Logger != nil {
		opts = append(opts, astar.WithLogger(m.opts.Logger))
	}
	m.run = startSearch(m.opts.Context, m.grid, true, opts...)
	m.setStatus("searching...")
	return m, m.run.next()
}

// handleFrame shows one search step and paces the next one.
func (m Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.run != m.run {
		return m, nil
	}
	m.snapshot = msg.grid
	m.progress = msg.step

	delay := m.opts.StepDelay
	if msg.step.Phase == astar.PhasePath {
		delay = m.opts.PathDelay
	}
	if delay <= 0 {
		return m, m.run.next()
	}
	return m, tickCmd(delay)
}

// handleDone takes the grid back from the search and records the run.
func (m Model) handleDone(msg runDoneMsg) (tea.Model, tea.Cmd) {
	if msg.run != m.run {
		return m, nil
	}
	m.run = nil
	m.snapshot = nil
	m.stopping = false
	m.grid = msg.grid

	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}

	res := msg.result
	m.last = &res
	switch res.Outcome {
	case astar.OutcomeSucceeded:
		m.setStatus(fmt.Sprintf("path found: %d steps, %d cells expanded", res.Length(), res.Expanded))
	case astar.OutcomeExhausted:
		m.setStatus(fmt.Sprintf("no path: %d cells expanded", res.Expanded))
	case astar.OutcomeCancelled:
		m.setStatus("search cancelled")
	}

	if m.opts.Store != nil {
		run := storage.NewRun(m.source, m.grid.Size(), res, m.opts.Policy, msg.elapsed)
		//nolint:errcheck // Best-effort save, editor continues regardless
		m.opts.Store.SaveRun(run)
	}
	return m, nil
}

// applyPattern replaces the barriers with the named pattern.
func (m *Model) applyPattern(id string) error {
	p, err := registry.Create(id)
	if err != nil {
		return err
	}
	p.Apply(m.grid, m.rng)
	m.source = p.ID()
	for i, info := range m.patterns {
		if info.ID == id {
			m.patternAt = i
		}
	}
	return nil
}

func (m *Model) nextPattern() {
	if len(m.patterns) == 0 {
		m.setStatus("no patterns registered")
		return
	}
	m.patternAt = (m.patternAt + 1) % len(m.patterns)
	info := m.patterns[m.patternAt]
	if err := m.applyPattern(info.ID); err != nil {
		m.setError(err)
		return
	}
	m.last = nil
	m.setStatus("pattern: " + info.Title)
}

func (m *Model) togglePolicy() {
	if m.opts.Policy == astar.PolicyKeepStale {
		m.opts.Policy = astar.PolicyDecreaseKey
	} else {
		m.opts.Policy = astar.PolicyKeepStale
	}
	m.setStatus("frontier policy: " + m.opts.Policy.String())
}

func (m *Model) setTheme(name string) {
	theme, ok := ThemeByName(name)
	if !ok {
		name = "default"
	}
	m.theme = theme
	m.themeName = name
}

func (m *Model) cycleTheme() {
	names := ThemeNames()
	next := names[0]
	for i, name := range names {
		if name == m.themeName {
			next = names[(i+1)%len(names)]
		}
	}
	m.setTheme(next)
}

// save writes the board as a layout file.
func (m *Model) save() {
	if m.opts.LayoutDir == "" {
		m.setStatus("saving is disabled: no layout directory")
		return
	}
	id := m.source
	if id == sourceCustom {
		id = "layout-" + time.Now().Format("20060102_150405")
	}
	path, err := layout.NewLoader(m.opts.LayoutDir).Save(id, id, m.grid)
	if err != nil {
		m.setError(err)
		return
	}
	m.source = id
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := m.grid
	if m.run != nil {
		board = m.snapshot
	}

	var b strings.Builder

	// Title line; the board starts right below it
	b.WriteString(m.theme.HUDTitle.Render("A* PATHFINDER"))
	b.WriteString(m.theme.HUDControls.Render(fmt.Sprintf("  %dx%d  policy ", board.Size(), board.Size())))
	b.WriteString(m.theme.HUDValue.Render(m.opts.Policy.String()))
	b.WriteString(m.theme.HUDControls.Render("  board "))
	b.WriteString(m.theme.HUDValue.Render(m.source))
	b.WriteString(m.theme.HUDControls.Render("  theme "))
	b.WriteString(m.theme.HUDValue.Render(m.themeName))
	b.WriteString("\n")

	var cursor *grid.Coord
	if m.run == nil {
		cursor = &m.cursor
	}
	b.WriteString(RenderGrid(board, m.theme, cursor))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(legend(m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.HUDControls.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) statusLine() string {
	if m.statusErr {
		return m.theme.HUDError.Render(m.status)
	}
	if m.run != nil && !m.stopping && m.progress.Iteration > 0 {
		switch m.progress.Phase {
		case astar.PhaseSearch:
			return m.theme.HUDValue.Render(fmt.Sprintf("searching: %d expanded, g=%d at %v",
				m.progress.Iteration, m.progress.Cost, m.progress.Current))
		case astar.PhasePath:
			return m.theme.HUDValue.Render(fmt.Sprintf("tracing path: %d cells", m.progress.Iteration))
		}
	}
	return m.theme.HUDValue.Render(m.status)
}

// Grid returns the editor's board. While a search runs it returns the
// latest snapshot instead.
func (m Model) Grid() *grid.Grid {
	if m.run != nil {
		return m.snapshot
	}
	return m.grid
}

// Running reports whether a search is in progress.
func (m Model) Running() bool {
	return m.run != nil
}

// LastResult returns the result of the latest finished search, if any.
func (m Model) LastResult() (astar.Result, bool) {
	if m.last == nil {
		return astar.Result{}, false
	}
	return *m.last, true
}

// Policy returns the frontier policy used for the next search.
func (m Model) Policy() astar.Policy {
	return m.opts.Policy
}

// Run starts the Bubble Tea program with the editor model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and drags paint cells
	)

	_, err = p.Run()
	return err
}
