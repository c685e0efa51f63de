package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripboard/internal/constants"
)

var clockStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// TickMsg carries the wall time of one clock tick.
type TickMsg time.Time

// Model is a once-per-second clock shown in a fixed zone.
type Model struct {
	Time time.Time
	loc  *time.Location
}

func New(now time.Time, loc *time.Location) Model {
	if loc == nil {
		loc = time.Local
	}
	return Model{Time: now.In(loc), loc: loc}
}

func tick() tea.Cmd {
	return tea.Tick(constants.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init starts the tick chain. Each tick schedules exactly one successor.
func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg).In(m.loc)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	return clockStyle.Render(m.Time.Format(constants.ClockFormat))
}
