// Package presenter derives the display state of a trip's agenda at a given
// instant: headings, durations, past and current flags, completion.
package presenter

import (
	"time"

	"github.com/julianstephens/tripboard/internal/agenda"
	"github.com/julianstephens/tripboard/internal/completion"
	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/models"
)

// Row is one agenda item ready for rendering.
type Row struct {
	Key      string
	Time     string
	Activity string
	Location string
	Note     string
	Duration string
	Past     bool
	Current  bool
	Done     bool
}

// Section is one day of the agenda. Heading is empty for single-day trips.
type Section struct {
	Date    string
	Heading string
	Rows    []Row
}

// Board is a trip's agenda as displayed at one instant.
type Board struct {
	TripID       string
	Title        string
	Sections     []Section
	CurrentLabel string
	NoteLabel    string
}

// Presenter builds boards. It only reads completion flags.
type Presenter struct {
	Loc    *time.Location
	Locale *locale.Locale
	Store  *completion.Store
}

// New returns a presenter for the given zone, language and store.
func New(loc *time.Location, l *locale.Locale, store *completion.Store) *Presenter {
	return &Presenter{Loc: loc, Locale: l, Store: store}
}

// Build derives the board for trip at now.
func (p *Presenter) Build(trip models.Trip, now time.Time) Board {
	b := Board{
		TripID:       trip.ID,
		Title:        trip.Title,
		CurrentLabel: p.Locale.T(locale.MsgCurrent),
		NoteLabel:    p.Locale.T(locale.MsgNote),
	}

	for _, day := range trip.Days() {
		sec := Section{Date: day.Date}
		if trip.IsMultiDay() {
			if d, ok := agenda.Day(day.Date, p.Loc); ok {
				sec.Heading = p.Locale.LongDate(d)
			} else {
				sec.Heading = day.Date
			}
		}

		current := agenda.CurrentIndex(day.Items, now, day.Date, p.Loc)
		for i, item := range day.Items {
			sec.Rows = append(sec.Rows, p.row(trip.ID, day.Date, item, now, i == current))
		}
		b.Sections = append(b.Sections, sec)
	}
	return b
}

func (p *Presenter) row(tripID, date string, item models.AgendaItem, now time.Time, current bool) Row {
	r := Row{
		Time:     item.Time,
		Activity: item.Activity,
		Location: item.Location,
		Note:     item.Note,
		Past:     agenda.IsPast(item, now, date, p.Loc),
		Current:  current,
	}
	if r.Note == "" {
		r.Note = constants.Placeholder
	}
	if mins, ok := agenda.Duration(item.Time); ok {
		r.Duration = p.Locale.DurationText(mins)
	}
	if p.Store != nil {
		r.Key = p.Store.Key(tripID, date, item.Time)
		r.Done = p.Store.IsCompleted(r.Key)
	}
	return r
}

// Rows returns every row of the board in display order.
func (b Board) Rows() []Row {
	var out []Row
	for _, s := range b.Sections {
		out = append(out, s.Rows...)
	}
	return out
}
