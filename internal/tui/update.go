package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/snapshot"
	"github.com/julianstephens/tripboard/internal/tui/components/clock"
)

// springMsg advances the drag spring-back by one frame.
type springMsg struct{}

// exportDoneMsg reports the outcome of an asynchronous export.
type exportDoneMsg struct {
	path string
	ok   bool
}

func springFrame() tea.Cmd {
	return tea.Tick(constants.SpringFrameDelay, func(time.Time) tea.Msg {
		return springMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
		m.resize()
	}

	if m.state == StatePickTrip {
		return m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, nil

	case clock.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		m.refresh()
		return m, cmd

	case springMsg:
		if m.drag.Active() {
			m.settling = false
			return m, nil
		}
		if m.drag.Settle() {
			m.refresh()
			return m, springFrame()
		}
		m.settling = false
		m.dragRow = -1
		m.refresh()
		return m, nil

	case exportDoneMsg:
		if msg.ok {
			m.status = m.opts.Locale.Tf(locale.MsgExportSaved, map[string]any{"Path": msg.path})
		} else {
			m.status = m.opts.Locale.T(locale.MsgExportFailed)
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	if m.selector.Empty() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.focus > 0 {
			m.focus--
		}
		m.refresh()
		m.scrollToFocus()
	case key.Matches(msg, m.keys.Down):
		if m.focus < len(m.board.Rows())-1 {
			m.focus++
		}
		m.refresh()
		m.scrollToFocus()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleRow(m.focus)
	case key.Matches(msg, m.keys.PickTrip):
		return m, m.openPicker()
	case key.Matches(msg, m.keys.NextTrip):
		m.selector.Next()
		m.focus = 0
		m.viewport.GotoTop()
		m.refresh()
	case key.Matches(msg, m.keys.PrevTrip):
		m.selector.Prev()
		m.focus = 0
		m.viewport.GotoTop()
		m.refresh()
	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.Reset):
		m.resetAll()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateBoard
		return m, nil
	}
	// Keep the clock running while the picker is open.
	var clockCmd tea.Cmd
	if tick, ok := msg.(clock.TickMsg); ok {
		m.clock, clockCmd = m.clock.Update(tick)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.selector.Select(m.pick.TripID); err != nil {
			logger.Warn("failed to select trip", "id", m.pick.TripID, "error", err)
		}
		m.focus = 0
		m.viewport.GotoTop()
		m.state = StateBoard
		m.refresh()
		return m, clockCmd
	case huh.StateAborted:
		m.state = StateBoard
		return m, clockCmd
	}
	return m, tea.Batch(cmd, clockCmd)
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.selector.Empty() {
		return m, nil
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		row := m.rowAt(msg.Y)
		if row < 0 {
			return m, nil
		}
		m.focus = row
		m.dragRow = row
		m.drag.Press(msg.X)
		m.refresh()

	case tea.MouseActionMotion:
		if !m.drag.Active() {
			return m, nil
		}
		m.drag.Move(msg.X)
		m.refresh()

	case tea.MouseActionRelease:
		if !m.drag.Active() {
			return m, nil
		}
		if m.drag.Release(msg.X) {
			m.toggleRow(m.dragRow)
		}
		m.refresh()
		if !m.settling {
			m.settling = true
			return m, springFrame()
		}
	}
	return m, nil
}

// toggleRow flips the completion flag of the row at index i.
func (m *Model) toggleRow(i int) {
	rows := m.board.Rows()
	if i < 0 || i >= len(rows) || m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.Toggle(rows[i].Key); err != nil {
		logger.Error("failed to toggle completion", "key", rows[i].Key, "error", err)
		return
	}
	m.refresh()
}

// resetAll clears the whole store and reloads the view from scratch.
func (m *Model) resetAll() {
	if m.opts.Store != nil {
		if err := m.opts.Store.ResetAll(); err != nil {
			logger.Error("reset failed", "error", err)
			return
		}
	}
	logger.Info("all state cleared")
	m.reload()
	m.status = m.opts.Locale.T(locale.MsgResetDone)
}

// exportCmd captures the current board and exports it off the update loop.
func (m Model) exportCmd() tea.Cmd {
	if m.opts.Exporter == nil || len(m.board.Sections) == 0 {
		return nil
	}
	exp := m.opts.Exporter
	req := snapshot.NewRequest(m.board)
	return func() tea.Msg {
		path, ok := exp.ExportLogged(context.Background(), req)
		return exportDoneMsg{path: path, ok: ok}
	}
}
