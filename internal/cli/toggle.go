package cli

import (
	"fmt"

	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/models"
)

type ToggleCmd struct {
	Trip string `arg:"" help:"Trip id."`
	Time string `arg:"" help:"Agenda time field, e.g. \"09:00\" or \"09:00 - 10:30\"."`
	Date string `help:"Day of a multi-day trip (YYYY-MM-DD). Defaults to the first day containing the time."`
}

func (cmd *ToggleCmd) Run(ctx *Context) error {
	trip, err := ctx.ResolveTrip(cmd.Trip)
	if err != nil {
		return err
	}

	date, ok := findItemDay(trip, cmd.Time, cmd.Date)
	if !ok {
		return fmt.Errorf("no agenda item at %q in trip %q", cmd.Time, trip.ID)
	}

	store := ctx.Completion()
	done, err := store.Toggle(store.Key(trip.ID, date, cmd.Time))
	if err != nil {
		return err
	}

	state := "not done"
	if done {
		state = ctx.Locale.T(locale.MsgDone)
	}
	_, _ = fmt.Fprintf(ctx.Out, "%s %s: %s\n", trip.Title, cmd.Time, state)
	return nil
}

// findItemDay returns the date of the day holding an item with the given
// time field, restricted to date when set.
func findItemDay(trip models.Trip, itemTime, date string) (string, bool) {
	for _, day := range trip.Days() {
		if date != "" && day.Date != date {
			continue
		}
		for _, item := range day.Items {
			if item.Time == itemTime {
				return day.Date, true
			}
		}
	}
	return "", false
}
