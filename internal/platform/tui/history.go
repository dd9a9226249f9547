package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-astar/internal/storage"
)

// History layout constants
const (
	maxRuns     = 200 // Max runs to load
	allBoards   = ""  // filter value meaning every board
	minTableRow = 3
)

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	store    *storage.Store
	boards   []string // allBoards first, then board names seen in history
	boardAt  int
	runs     []storage.Run
	stats    storage.Stats
	err      error
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		boards: []string{allBoards},
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	if store != nil {
		if recent, err := store.RecentRuns(maxRuns); err == nil {
			m.boards = append(m.boards, boardNames(recent)...)
		} else {
			m.err = err
		}
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// boardNames returns the distinct board names of runs in sorted order.
func boardNames(runs []storage.Run) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range runs {
		if !seen[r.Layout] {
			seen[r.Layout] = true
			names = append(names, r.Layout)
		}
	}
	sort.Strings(names)
	return names
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 14},
		{Title: "Size", Width: 5},
		{Title: "Outcome", Width: 10},
		{Title: "Path", Width: 6},
		{Title: "Expanded", Width: 9},
		{Title: "Time", Width: 8},
		{Title: "Policy", Width: 12},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, stats, help and margins
	if height < minTableRow {
		height = minTableRow
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs for the selected board.
func (m *HistoryModel) loadRuns() {
	m.runs = nil
	m.stats = storage.Stats{}
	if m.store == nil {
		m.updateTableRows()
		return
	}

	board := m.boards[m.boardAt]
	var err error
	if board == allBoards {
		m.runs, err = m.store.RecentRuns(maxRuns)
	} else {
		m.runs, err = m.store.RunsByLayout(board, maxRuns)
		if err == nil {
			m.stats, err = m.store.LayoutStats(board)
		}
	}
	m.err = err
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		path := "-"
		if r.Outcome == "succeeded" {
			path = fmt.Sprintf("%d", r.PathLength)
		}
		rows[i] = table.Row{
			r.Layout,
			fmt.Sprintf("%d", r.Size),
			r.Outcome,
			path,
			fmt.Sprintf("%d", r.Expanded),
			r.Duration.String(),
			r.Policy,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard):
			m.boardAt = (m.boardAt + 1) % len(m.boards)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			m.boardAt--
			if m.boardAt < 0 {
				m.boardAt = len(m.boards) - 1
			}
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("RUN HISTORY - " + m.boardTitle()))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if board := m.boards[m.boardAt]; board != allBoards {
		best := "-"
		if m.stats.Succeeded > 0 {
			best = fmt.Sprintf("%d", m.stats.BestLength)
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("runs %d  solved %d  best path %s  avg expanded %.1f",
			m.stats.Runs, m.stats.Succeeded, best, m.stats.AvgExpanded)))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error()))
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs recorded yet.\nSolve a board to fill the history!")))
	default:
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) boardTitle() string {
	if board := m.boards[m.boardAt]; board != allBoards {
		return board
	}
	return "all boards"
}

// Board returns the board filter currently shown; "" means every board.
func (m HistoryModel) Board() string {
	return m.boards[m.boardAt]
}

// Runs returns the runs currently listed.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// RunHistory runs the history screen.
func RunHistory(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
