package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/presenter"
)

type ShowCmd struct {
	Trip string `arg:"" optional:"" help:"Trip id (defaults to the first visible trip)."`
}

func (cmd *ShowCmd) Run(ctx *Context) error {
	trip, err := ctx.ResolveTrip(cmd.Trip)
	if err != nil {
		if _, ok := err.(errNoTrips); ok {
			_, _ = fmt.Fprintln(ctx.Out, err.Error())
			return nil
		}
		return err
	}

	now := ctx.Now().In(ctx.Location)
	board := ctx.Presenter().Build(trip, now)
	printBoard(ctx, board, now.Format(constants.ClockFormat))
	return nil
}

func printBoard(ctx *Context, board presenter.Board, clock string) {
	title := color.New(color.Bold, color.Underline)
	heading := color.New(color.Bold)
	faint := color.New(color.Faint)
	current := color.New(color.FgGreen, color.Bold)

	_, _ = title.Fprint(ctx.Out, board.Title)
	_, _ = faint.Fprintf(ctx.Out, "  %s\n", clock)

	for _, sec := range board.Sections {
		if sec.Heading != "" {
			_, _ = fmt.Fprintln(ctx.Out)
			_, _ = heading.Fprintln(ctx.Out, sec.Heading)
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.MaxColWidth = 40
		tbl.Wrap = true
		for _, row := range sec.Rows {
			marker := " "
			switch {
			case row.Done:
				marker = "✓"
			case row.Current:
				marker = "▶"
			}
			cells := []interface{}{marker, row.Time, row.Activity, row.Location, row.Duration, board.NoteLabel + ": " + row.Note}
			switch {
			case row.Current:
				for i, c := range cells {
					cells[i] = current.Sprint(c)
				}
			case row.Past:
				for i, c := range cells {
					cells[i] = faint.Sprint(c)
				}
			}
			tbl.AddRow(cells...)
		}
		_, _ = fmt.Fprintln(ctx.Out, tbl)
	}
}
