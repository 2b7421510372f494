// Package tui provides a Bubble Tea terminal browser for the library analysis.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/thowi/pytunes/internal/analysis"
	"github.com/thowi/pytunes/internal/config"
	"github.com/thowi/pytunes/internal/library"
	"github.com/thowi/pytunes/internal/model"
	"github.com/thowi/pytunes/internal/report"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E1E")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateBrowsing
	StateError
)

// chromeHeight is the number of lines around the list.
const chromeHeight = 14

// tab is one browsable report section.
type tab struct {
	name    string
	section report.Section
	title   string
	rows    []string
}

var tabNames = map[report.Section]string{
	report.SectionIncomplete:    "Incomplete",
	report.SectionBest:          "Best",
	report.SectionWorst:         "Worst",
	report.SectionCrappySingles: "Crappy singles",
	report.SectionCrappyAlbums:  "Crappy albums",
	report.SectionDuplicates:    "Duplicates",
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	settings *config.Settings
	spinner  spinner.Model
	progress progress.Model
	filter   textinput.Model
	err      error

	tabs   []tab
	active int
	cursor int

	trackCount   int
	albumCount   int
	completeness float64

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.CharLimit = 200
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	return Model{
		state:    StateLoading,
		settings: settings,
		spinner:  sp,
		progress: prog,
		filter:   ti,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadLibrary(m.settings))
}

// LoadedMsg is sent when the library has been loaded and grouped.
type LoadedMsg struct {
	Tracks []*model.Track
	Albums []*model.Album
	Err    error
}

// loadLibrary loads and groups the library in the background.
func loadLibrary(settings *config.Settings) tea.Cmd {
	return func() tea.Msg {
		lib, err := library.NewLoader(nil).Load(settings.ToLibraryOptions())
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{
			Tracks: lib.Tracks,
			Albums: analysis.Group(lib.Tracks, settings.ToGroupOptions()),
		}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if m.filter.Focused() {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			return m, nil
		}
		m.state = StateBrowsing
		m.tabs = buildTabs(msg.Tracks, msg.Albums, m.settings.ToReportOptions())
		m.trackCount = len(msg.Tracks)
		m.albumCount = len(msg.Albums)
		m.completeness = ratingCompleteness(msg.Tracks)
		m.cursor = 0
		return m, nil
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		}
		return m, tea.Quit

	case "r":
		if m.state != StateLoading {
			m.state = StateLoading
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, loadLibrary(m.settings))
		}
	}

	if m.state != StateBrowsing {
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.cursor = 0
		return m, m.filter.Focus()

	case "tab", "right", "l":
		m.active = (m.active + 1) % len(m.tabs)
		m.cursor = 0

	case "shift+tab", "left", "h":
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
		m.cursor = 0

	case "down", "j":
		if m.cursor < len(m.visibleRows())-1 {
			m.cursor++
		}

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "home", "g":
		m.cursor = 0

	case "end", "G":
		m.cursor = max(len(m.visibleRows())-1, 0)
	}

	return m, nil
}

// buildTabs renders every report section once and keeps its lines as rows.
func buildTabs(tracks []*model.Track, albums []*model.Album, opts report.Options) []tab {
	tabs := make([]tab, 0, len(report.Sections))
	for _, section := range report.Sections {
		var buf bytes.Buffer
		// Writing to a buffer cannot fail.
		_ = report.NewReporter(&buf, opts).Write([]report.Section{section}, tracks, albums)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		tabs = append(tabs, tab{
			name:    tabNames[section],
			section: section,
			title:   lines[0],
			rows:    lines[1:],
		})
	}
	return tabs
}

// ratingCompleteness returns the share of rated tracks in the library.
func ratingCompleteness(tracks []*model.Track) float64 {
	if len(tracks) == 0 {
		return 0
	}
	return float64(lo.CountBy(tracks, (*model.Track).IsRated)) / float64(len(tracks))
}

// visibleRows returns the rows of the active tab matching the filter.
func (m Model) visibleRows() []string {
	if len(m.tabs) == 0 {
		return nil
	}
	rows := m.tabs[m.active].rows
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return rows
	}
	return lo.Filter(rows, func(row string, _ int) bool {
		return strings.Contains(strings.ToLower(row), query)
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♫ Tunes"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Browse your music library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateBrowsing:
		b.WriteString(m.viewBrowsing())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading library..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewBrowsing() string {
	var b strings.Builder

	b.WriteString(infoStyle.Render(fmt.Sprintf("Tracks: %d | Albums: %d | Rated: %.0f%%",
		m.trackCount, m.albumCount, m.completeness*100)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.completeness))
	b.WriteString("\n\n")

	names := make([]string, 0, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.active {
			names = append(names, activeTabStyle.Render(t.name))
		} else {
			names = append(names, tabStyle.Render(t.name))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, names...))
	b.WriteString("\n\n")

	if m.filter.Focused() || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	active := m.tabs[m.active]
	rows := m.visibleRows()
	b.WriteString(subtitleStyle.Render(active.title))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d)", len(rows))))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("  Nothing here."))
		b.WriteString("\n")
		return b.String()
	}

	start, end := m.window(len(rows))
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + rows[i]))
		} else {
			b.WriteString("  " + rows[i])
		}
		b.WriteString("\n")
	}

	return b.String()
}

// window returns the range of rows that fits on screen around the cursor.
func (m Model) window(n int) (start, end int) {
	size := n
	if m.height > 0 {
		size = max(m.height-chromeHeight, 5)
	}
	if size >= n {
		return 0, n
	}
	start = max(m.cursor-size/2, 0)
	start = min(start, n-size)
	return start, start + size
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch {
	case m.state == StateLoading:
		return "ctrl+c: quit"
	case m.state == StateError:
		return "r: retry • q: quit"
	case m.filter.Focused():
		return "enter: apply • esc: done"
	}
	return "←/→: tab • ↑/↓: move • /: filter • r: reload • q: quit"
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
