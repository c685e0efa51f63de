package models

// AgendaKind discriminates the two agenda shapes a trip can carry.
type AgendaKind string

const (
	AgendaSingleDay AgendaKind = "single"
	AgendaMultiDay  AgendaKind = "multi"
)

// AgendaItem is one scheduled activity. Time is "HH:MM" or "HH:MM - HH:MM".
type AgendaItem struct {
	Time     string `json:"time" yaml:"time" toml:"time"`
	Activity string `json:"activity" yaml:"activity" toml:"activity"`
	Location string `json:"location" yaml:"location" toml:"location"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty" toml:"note,omitempty"`
}

// DayAgenda groups the items of one calendar day of a multi-day trip.
type DayAgenda struct {
	Date  string       `json:"date" yaml:"date" toml:"date"` // YYYY-MM-DD format
	Items []AgendaItem `json:"items" yaml:"items" toml:"items"`
}

// Agenda holds exactly one of Items (single-day) or Days (multi-day),
// selected by Kind.
type Agenda struct {
	Kind  AgendaKind
	Items []AgendaItem
	Days  []DayAgenda
}

// Trip is one travel plan.
type Trip struct {
	ID        string
	Title     string
	Date      string // YYYY-MM-DD
	StartDate string
	EndDate   string
	IsVisible bool
	Agenda    Agenda
}

// DayContext pairs a calendar date with the items rendered against it.
type DayContext struct {
	Date  string
	Items []AgendaItem
}

// IsMultiDay reports whether the trip uses per-day agendas.
func (t Trip) IsMultiDay() bool {
	return t.Agenda.Kind == AgendaMultiDay
}

// Days flattens the agenda into day contexts. A single-day trip yields one
// context dated with the trip's own date.
func (t Trip) Days() []DayContext {
	if t.IsMultiDay() {
		out := make([]DayContext, 0, len(t.Agenda.Days))
		for _, d := range t.Agenda.Days {
			out = append(out, DayContext{Date: d.Date, Items: d.Items})
		}
		return out
	}
	return []DayContext{{Date: t.Date, Items: t.Agenda.Items}}
}

// ItemCount returns the total number of agenda items.
func (t Trip) ItemCount() int {
	n := 0
	for _, d := range t.Days() {
		n += len(d.Items)
	}
	return n
}

// DateRange returns a display range for the trip: the single date, the
// start/end pair, or the first and last day of a multi-day agenda.
func (t Trip) DateRange() (string, string) {
	if t.StartDate != "" || t.EndDate != "" {
		return t.StartDate, t.EndDate
	}
	if t.IsMultiDay() && len(t.Agenda.Days) > 0 {
		return t.Agenda.Days[0].Date, t.Agenda.Days[len(t.Agenda.Days)-1].Date
	}
	return t.Date, t.Date
}

// TripCollection is the static trip document.
type TripCollection struct {
	Trips []Trip
}
