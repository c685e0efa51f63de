package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/tripboard/internal/presenter"
)

var (
	baseStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	currentBorder = lipgloss.Color("34")
	focusBorder   = lipgloss.Color("62")

	timeStyle     = lipgloss.NewStyle().Bold(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(currentBorder).Padding(0, 1)
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	labelStyle    = lipgloss.NewStyle().Background(lipgloss.Color("237"))

	doneBar    = lipgloss.NewStyle().Foreground(currentBorder).Render("┃")
	pendingBar = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("┃")
)

// Options control how a row is drawn.
type Options struct {
	Width        int
	Focused      bool
	OffsetCells  int
	CurrentLabel string
	NoteLabel    string
}

// Render draws one agenda row as a bordered card shifted right by the drag
// offset.
func Render(row presenter.Row, opts Options) string {
	inner := opts.Width - 4
	if inner < 20 {
		inner = 20
	}

	head := timeStyle.Render(row.Time)
	if row.Current {
		head += " " + badgeStyle.Render(opts.CurrentLabel)
	}
	if row.Duration != "" {
		gap := inner - 1 - lipgloss.Width(head) - lipgloss.Width(row.Duration)
		if gap < 1 {
			gap = 1
		}
		head += strings.Repeat(" ", gap) + durationStyle.Render(row.Duration)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		lipgloss.NewStyle().Bold(true).Render(row.Activity),
		mutedStyle.Render(row.Location),
		noteStyle.Render(labelStyle.Render(opts.NoteLabel)+" "+row.Note),
	)

	bar := pendingBar
	if row.Done {
		bar = doneBar
	}
	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = bar + " " + lines[i]
	}
	body = strings.Join(lines, "\n")

	style := baseStyle.Width(inner)
	switch {
	case row.Current:
		style = style.BorderForeground(currentBorder).Border(lipgloss.ThickBorder())
	case opts.Focused:
		style = style.BorderForeground(focusBorder)
	}
	if row.Done {
		style = style.Background(lipgloss.Color("237"))
	}
	if row.Past {
		style = style.Faint(true)
	}

	out := style.Render(body)
	if opts.OffsetCells > 0 {
		out = lipgloss.NewStyle().MarginLeft(opts.OffsetCells).Render(out)
	}
	return out
}
