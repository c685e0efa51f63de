package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/julianstephens/tripboard/internal/models"
)

func TestBuild(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		t.Fatal(err)
	}
	trip := models.Trip{
		ID: "bkk", Title: "Bangkok", Date: "2024-05-01",
		Agenda: models.Agenda{Kind: models.AgendaSingleDay, Items: []models.AgendaItem{
			{Time: "09:00 - 10:30", Activity: "Temple", Location: "Wat Pho", Note: "Dress code"},
			{Time: "12:00", Activity: "Lunch"},
			{Time: "23:30 - 00:15", Activity: "Night market"},
		}},
	}

	out := Build(trip, loc, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Fatalf("not a calendar: %s", out)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar failed: %v", err)
	}
	events := cal.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	tests := []struct {
		idx        int
		summary    string
		start, end time.Time
	}{
		{0, "Temple", time.Date(2024, 5, 1, 9, 0, 0, 0, loc), time.Date(2024, 5, 1, 10, 30, 0, 0, loc)},
		{1, "Lunch", time.Date(2024, 5, 1, 12, 0, 0, 0, loc), time.Date(2024, 5, 1, 23, 30, 0, 0, loc)},
		{2, "Night market", time.Date(2024, 5, 1, 23, 30, 0, 0, loc), time.Date(2024, 5, 2, 0, 15, 0, 0, loc)},
	}
	for _, tt := range tests {
		ev := events[tt.idx]
		if p := ev.GetProperty(ical.ComponentPropertySummary); p == nil || p.Value != tt.summary {
			t.Errorf("event %d summary = %v, want %q", tt.idx, p, tt.summary)
		}
		start, err := ev.GetStartAt()
		if err != nil || !start.Equal(tt.start) {
			t.Errorf("event %d start = %v (%v), want %v", tt.idx, start, err, tt.start)
		}
		end, err := ev.GetEndAt()
		if err != nil || !end.Equal(tt.end) {
			t.Errorf("event %d end = %v (%v), want %v", tt.idx, end, err, tt.end)
		}
	}

	if p := events[0].GetProperty(ical.ComponentPropertyLocation); p == nil || p.Value != "Wat Pho" {
		t.Errorf("location = %v", p)
	}
	if p := events[1].GetProperty(ical.ComponentPropertyLocation); p != nil {
		t.Errorf("expected no location on event 1, got %q", p.Value)
	}
}

func TestBuildSkipsUndatedItems(t *testing.T) {
	trip := models.Trip{ID: "x", Agenda: models.Agenda{Items: []models.AgendaItem{{Time: "09:00", Activity: "A"}}}}
	out := Build(trip, time.UTC, time.Now())
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("expected no events for an undated trip")
	}
}

func TestUID(t *testing.T) {
	if got := UID("a@b", "2024-05-01", 2); got != "a_b-2024-05-01-2@tripboard" {
		t.Errorf("UID() = %q", got)
	}
}
