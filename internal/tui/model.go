package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripboard/internal/completion"
	"github.com/julianstephens/tripboard/internal/gesture"
	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/models"
	"github.com/julianstephens/tripboard/internal/presenter"
	"github.com/julianstephens/tripboard/internal/selector"
	"github.com/julianstephens/tripboard/internal/snapshot"
	"github.com/julianstephens/tripboard/internal/tui/components/clock"
)

type SessionState int

const (
	StateBoard SessionState = iota
	StatePickTrip
)

// headerHeight is the number of lines above the agenda viewport.
const headerHeight = 2

// Options are the dependencies of the interactive view.
type Options struct {
	Trips    []models.Trip
	Store    *completion.Store
	Locale   *locale.Locale
	Location *time.Location
	Exporter *snapshot.Exporter
	Now      func() time.Time
}

type pickForm struct {
	TripID string
}

type Model struct {
	opts      Options
	presenter *presenter.Presenter
	selector  *selector.Controller
	clock     clock.Model
	viewport  viewport.Model
	keys      KeyMap
	help      help.Model
	state     SessionState
	form      *huh.Form
	pick      *pickForm
	board     presenter.Board
	rowLines  []lineSpan
	focus     int
	drag      gesture.Drag
	dragRow   int
	settling  bool
	status    string
	quitting  bool
	width     int
	height    int
}

// lineSpan is the [start, end) content lines occupied by a row.
type lineSpan struct {
	start, end int
}

func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Locale == nil {
		opts.Locale = locale.New("")
	}

	m := Model{
		opts:      opts,
		presenter: presenter.New(opts.Location, opts.Locale, opts.Store),
		selector:  selector.New(opts.Trips),
		clock:     clock.New(opts.Now(), opts.Location),
		viewport:  viewport.New(80, 20),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		dragRow:   -1,
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// Init starts the clock. The empty state never ticks.
func (m Model) Init() tea.Cmd {
	if m.selector.Empty() {
		return nil
	}
	return m.clock.Init()
}

// Board returns the board currently on screen.
func (m Model) Board() presenter.Board {
	return m.board
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// refresh rebuilds the board for the selected trip at the clock's time and
// re-renders the viewport content.
func (m *Model) refresh() {
	trip, ok := m.selector.Selected()
	if !ok {
		m.board = presenter.Board{}
		m.rowLines = nil
		m.viewport.SetContent("")
		return
	}
	m.board = m.presenter.Build(trip, m.clock.Time)
	if n := len(m.board.Rows()); m.focus >= n {
		m.focus = n - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
	m.viewport.SetContent(m.renderBoard())
}

// reload discards all view state and rebuilds from the trip collection.
func (m *Model) reload() {
	m.selector = selector.New(m.opts.Trips)
	m.focus = 0
	m.drag.Cancel()
	m.dragRow = -1
	m.viewport.GotoTop()
	m.refresh()
}

func (m *Model) openPicker() tea.Cmd {
	m.pick = &pickForm{TripID: m.selector.SelectedID()}
	options := make([]huh.Option[string], 0, len(m.selector.Visible()))
	for _, t := range m.selector.Visible() {
		options = append(options, huh.NewOption(t.Title, t.ID))
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(m.opts.Locale.T(locale.MsgSelectTrip)).
				Options(options...).
				Value(&m.pick.TripID),
		),
	).WithShowHelp(false)
	m.state = StatePickTrip
	return m.form.Init()
}

// resize fits the viewport between the header and the help footer so the
// view is exactly the terminal height and rowAt stays aligned with the screen.
func (m *Model) resize() {
	if m.height <= 0 {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerHeight-lipgloss.Height(m.help.View(m)), 1)
	m.refresh()
	m.scrollToFocus()
}

func (m *Model) scrollToFocus() {
	if m.focus < 0 || m.focus >= len(m.rowLines) {
		return
	}
	span := m.rowLines[m.focus]
	if span.start < m.viewport.YOffset {
		m.viewport.SetYOffset(span.start)
	} else if span.end > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(span.end - m.viewport.Height)
	}
}

// rowAt maps a screen row to the agenda row under it, or -1.
func (m Model) rowAt(y int) int {
	line := y - headerHeight + m.viewport.YOffset
	if y < headerHeight || y >= headerHeight+m.viewport.Height {
		return -1
	}
	for i, span := range m.rowLines {
		if line >= span.start && line < span.end {
			return i
		}
	}
	return -1
}
