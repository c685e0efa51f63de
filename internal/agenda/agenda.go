// Package agenda derives display state for agenda items: parsed times,
// range durations, start instants and past/current flags.
package agenda

import (
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/models"
)

const minutesPerDay = 24 * 60

// ParseTime splits "HH:MM" into hour and minute. The input is not
// validated; unparsable components read as zero.
func ParseTime(s string) (int, int) {
	s = strings.TrimSpace(s)
	hh, mm, _ := strings.Cut(s, ":")
	h, _ := strconv.Atoi(strings.TrimSpace(hh))
	m, _ := strconv.Atoi(strings.TrimSpace(mm))
	return h, m
}

// SplitRange returns the start and end halves of an "HH:MM - HH:MM" field.
// ok is false when the field holds a single time.
func SplitRange(field string) (start, end string, ok bool) {
	start, end, ok = strings.Cut(field, constants.RangeSeparator)
	if !ok {
		return field, "", false
	}
	return strings.TrimSpace(start), strings.TrimSpace(end), true
}

// StartOf returns the start time of a time field ("HH:MM" of either form).
func StartOf(field string) string {
	start, _, _ := SplitRange(field)
	return strings.TrimSpace(start)
}

// Duration returns the length of a ranged time field in minutes. A range
// whose end is before its start crosses midnight. ok is false for a single
// time.
func Duration(field string) (int, bool) {
	start, end, ok := SplitRange(field)
	if !ok {
		return 0, false
	}
	sh, sm := ParseTime(start)
	eh, em := ParseTime(end)
	diff := (eh*60 + em) - (sh*60 + sm)
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, true
}

// Day returns midnight of a YYYY-MM-DD date in loc. ok is false when the
// date is empty or malformed.
func Day(date string, loc *time.Location) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(constants.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func at(day time.Time, field string) time.Time {
	h, m := ParseTime(field)
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

// StartInstant combines the day date with the item's start time.
func StartInstant(item models.AgendaItem, date string, loc *time.Location) (time.Time, bool) {
	day, ok := Day(date, loc)
	if !ok {
		return time.Time{}, false
	}
	return at(day, StartOf(item.Time)), true
}

// IsPast reports whether now is strictly after the item's start instant.
// Items without a usable day date are never past.
func IsPast(item models.AgendaItem, now time.Time, date string, loc *time.Location) bool {
	start, ok := StartInstant(item, date, loc)
	if !ok {
		return false
	}
	return now.After(start)
}

// Window returns the interval during which an item counts as current. A
// range runs [start, end), rolling end to the next day when it crosses
// midnight. A single time runs until next, the start field of the following
// item on the same day, or until end of day when next is empty.
func Window(item models.AgendaItem, next string, date string, loc *time.Location) (time.Time, time.Time, bool) {
	day, ok := Day(date, loc)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	start := at(day, StartOf(item.Time))

	var end time.Time
	if _, rangeEnd, isRange := SplitRange(item.Time); isRange {
		end = at(day, rangeEnd)
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
	} else if next != "" {
		end = at(day, StartOf(next))
	} else {
		end = day.AddDate(0, 0, 1)
	}
	return start, end, true
}

// IsCurrent reports whether now falls inside the item's window.
func IsCurrent(item models.AgendaItem, next string, now time.Time, date string, loc *time.Location) bool {
	start, end, ok := Window(item, next, date, loc)
	if !ok {
		return false
	}
	return !now.Before(start) && now.Before(end)
}

// CurrentIndex returns the index of the first current item of a day, or -1.
func CurrentIndex(items []models.AgendaItem, now time.Time, date string, loc *time.Location) int {
	for i, item := range items {
		next := ""
		if i+1 < len(items) {
			next = items[i+1].Time
		}
		if IsCurrent(item, next, now, date, loc) {
			return i
		}
	}
	return -1
}
