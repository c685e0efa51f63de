package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/tui/components/card"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.selector.Empty() {
		return emptyStyle.Render(m.opts.Locale.T(locale.MsgNoTrips))
	}

	if m.state == StatePickTrip && m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.viewHeader(),
			m.form.View(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewport.View(),
		m.help.View(m),
	)
}

// viewHeader is exactly headerHeight lines: title with clock, then status.
func (m Model) viewHeader() string {
	title := titleStyle.Render(m.board.Title)
	clk := m.clock.View()
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(clk)
	if gap < 1 {
		gap = 1
	}
	top := title + strings.Repeat(" ", gap) + clk
	return top + "\n" + statusStyle.Render(m.status)
}

// renderBoard renders every section and records which content lines each
// row occupies for mouse hit testing.
func (m *Model) renderBoard() string {
	width := m.viewport.Width
	var (
		b     strings.Builder
		line  int
		index int
	)
	m.rowLines = nil

	write := func(s string) {
		if line > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s)
		line += lipgloss.Height(s)
	}

	for _, sec := range m.board.Sections {
		if sec.Heading != "" {
			write(headingStyle.Render(sec.Heading))
		}
		for _, row := range sec.Rows {
			offset := 0
			if index == m.dragRow {
				offset = m.drag.OffsetCells()
			}
			rendered := card.Render(row, card.Options{
				Width:        width,
				Focused:      index == m.focus,
				OffsetCells:  offset,
				CurrentLabel: m.board.CurrentLabel,
				NoteLabel:    m.board.NoteLabel,
			})
			start := line
			write(rendered)
			m.rowLines = append(m.rowLines, lineSpan{start: start, end: line})
			index++
		}
	}
	return b.String()
}
