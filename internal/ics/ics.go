// Package ics exports a trip agenda as an iCalendar document.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/julianstephens/tripboard/internal/agenda"
	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/models"
)

// Build returns the trip's agenda as a VCALENDAR. Items on days without a
// usable date are skipped. stamp becomes every event's DTSTAMP.
func Build(trip models.Trip, loc *time.Location, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//%s//%s//EN", constants.AppName, constants.Version))
	cal.SetXWRCalName(trip.Title)
	cal.SetXWRTimezone(loc.String())

	count := 0
	for _, day := range trip.Days() {
		for i, item := range day.Items {
			next := ""
			if i+1 < len(day.Items) {
				next = day.Items[i+1].Time
			}
			start, end, ok := agenda.Window(item, next, day.Date, loc)
			if !ok {
				logger.Debug("skipping undated agenda item", "trip", trip.ID, "time", item.Time)
				continue
			}

			ev := cal.AddEvent(UID(trip.ID, day.Date, i))
			ev.SetDtStampTime(stamp)
			ev.SetStartAt(start)
			ev.SetEndAt(end)
			ev.SetSummary(item.Activity)
			if item.Location != "" {
				ev.SetLocation(item.Location)
			}
			if item.Note != "" {
				ev.SetDescription(item.Note)
			}
			count++
		}
	}

	logger.Debug("built calendar", "trip", trip.ID, "events", count)
	return cal.Serialize()
}

// UID identifies one agenda item across exports.
func UID(tripID, date string, index int) string {
	return fmt.Sprintf("%s-%s-%d@%s", strings.ReplaceAll(tripID, "@", "_"), date, index, constants.AppName)
}
