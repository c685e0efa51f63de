package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/trips"
)

type ListCmd struct {
	All bool `help:"Include hidden trips."`
}

func (cmd *ListCmd) Run(ctx *Context) error {
	all, err := ctx.Trips()
	if err != nil {
		return err
	}

	shown := all
	if !cmd.All {
		shown = trips.Visible(all)
	}
	if len(shown) == 0 {
		_, _ = fmt.Fprintln(ctx.Out, ctx.Locale.T(locale.MsgNoTrips))
		return nil
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Dates"), bold.Sprint("Items"))
	for _, t := range shown {
		start, end := t.DateRange()
		dates := orPlaceholder(start)
		if end != "" && end != start {
			dates += " → " + end
		}
		title := t.Title
		if !t.IsVisible {
			title = faint.Sprint(title + " (hidden)")
		}
		tbl.AddRow(t.ID, title, dates, t.ItemCount())
	}

	_, _ = fmt.Fprintln(ctx.Out, tbl)
	return nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return constants.Placeholder
	}
	return s
}
