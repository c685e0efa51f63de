package trips

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/tripboard/internal/models"
)

func TestBundled(t *testing.T) {
	coll, err := Bundled()
	if err != nil {
		t.Fatalf("Bundled() error = %v", err)
	}
	if len(coll.Trips) == 0 {
		t.Fatal("bundled document has no trips")
	}

	bkk, ok := Find(coll.Trips, "bangkok-day")
	if !ok {
		t.Fatal("bundled trip bangkok-day missing")
	}
	if bkk.IsMultiDay() {
		t.Error("bangkok-day should decode as single-day")
	}

	cnx, ok := Find(coll.Trips, "chiang-mai")
	if !ok {
		t.Fatal("bundled trip chiang-mai missing")
	}
	if !cnx.IsMultiDay() || len(cnx.Agenda.Days) != 2 {
		t.Errorf("chiang-mai agenda = %+v, want 2 days", cnx.Agenda)
	}
}

func TestDecodeLegacyProbe(t *testing.T) {
	doc := `{"trips": [
		{"id": "flat", "title": "Flat", "date": "2024-05-01", "isVisible": true,
		 "agenda": [{"time": "09:00", "activity": "A", "location": "L"}]},
		{"id": "days", "title": "Days", "isVisible": true,
		 "agenda": [{"date": "2024-05-01", "items": [{"time": "09:00", "activity": "B", "location": "L"}]}]},
		{"id": "empty", "title": "Empty", "isVisible": true, "agenda": []}
	]}`

	coll, err := Decode([]byte(doc), ".json")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	tests := []struct {
		id   string
		kind models.AgendaKind
	}{
		{id: "flat", kind: models.AgendaSingleDay},
		{id: "days", kind: models.AgendaMultiDay},
		{id: "empty", kind: models.AgendaSingleDay},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			trip, ok := Find(coll.Trips, tt.id)
			if !ok {
				t.Fatalf("trip %s missing", tt.id)
			}
			if trip.Agenda.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", trip.Agenda.Kind, tt.kind)
			}
		})
	}

	days, _ := Find(coll.Trips, "days")
	if got := days.Agenda.Days[0].Items[0].Activity; got != "B" {
		t.Errorf("day item activity = %q, want B", got)
	}
}

func TestDecodeExplicitTagWins(t *testing.T) {
	// Tagged multi with an empty agenda must not fall back to single.
	doc := `{"trips": [{"id": "x", "title": "X", "isVisible": true, "agendaKind": "multi", "agenda": []}]}`
	coll, err := Decode([]byte(doc), ".json")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !coll.Trips[0].IsMultiDay() {
		t.Error("explicit agendaKind multi was ignored")
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `
trips:
  - title: Ayutthaya
    date: "2024-06-01"
    isVisible: true
    agenda:
      - time: "08:00 - 09:30"
        activity: Train
        location: Hua Lamphong
`
	coll, err := Decode([]byte(doc), ".yaml")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	trip := coll.Trips[0]
	if trip.ID != StableID("Ayutthaya") {
		t.Errorf("ID = %q, want stable id derived from title", trip.ID)
	}
	if len(trip.Agenda.Items) != 1 || trip.Agenda.Items[0].Time != "08:00 - 09:30" {
		t.Errorf("items = %+v", trip.Agenda.Items)
	}
}

func TestDecodeTOML(t *testing.T) {
	doc := `
[[trips]]
id = "krabi"
title = "Krabi"
isVisible = true
agendaKind = "multi"

[[trips.agenda]]
date = "2024-07-01"

[[trips.agenda.items]]
time = "10:00"
activity = "Longtail boat"
location = "Ao Nang"
`
	coll, err := Decode([]byte(doc), ".toml")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	trip := coll.Trips[0]
	if !trip.IsMultiDay() || trip.Agenda.Days[0].Items[0].Location != "Ao Nang" {
		t.Errorf("trip = %+v", trip)
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode([]byte("{}"), ".xml")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Decode() error = %v, want ErrUnknownFormat", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.yml")
	doc := "trips:\n  - id: a\n    title: A\n    isVisible: false\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	coll, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(coll.Trips) != 1 || coll.Trips[0].IsVisible {
		t.Errorf("Load() = %+v", coll)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestVisiblePreservesOrder(t *testing.T) {
	all := []models.Trip{
		{ID: "a", IsVisible: true},
		{ID: "b", IsVisible: false},
		{ID: "c", IsVisible: true},
	}
	got := Visible(all)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Visible() = %+v", got)
	}
	if len(Visible(nil)) != 0 {
		t.Error("Visible(nil) should be empty")
	}
}

func TestStableIDDeterministic(t *testing.T) {
	if StableID("Hua Hin") != StableID("Hua Hin") {
		t.Error("StableID is not deterministic")
	}
	if StableID("Hua Hin") == StableID("Pattaya") {
		t.Error("StableID collides for different titles")
	}
}

func TestDecodeCamelCaseTripFields(t *testing.T) {
	doc := `{"trips": [{"id": "r", "title": "Range", "startDate": "2024-12-06",
		"endDate": "2024-12-07", "isVisible": true, "agenda": []},
		{"id": "s", "title": "Snake", "start_date": "2024-12-06", "is_visible": true, "agenda": []}]}`

	c, err := Decode([]byte(doc), ".json")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	r := c.Trips[0]
	if r.StartDate != "2024-12-06" || r.EndDate != "2024-12-07" || !r.IsVisible {
		t.Errorf("camelCase fields not decoded: %+v", r)
	}
	s := c.Trips[1]
	if s.StartDate != "" || s.IsVisible {
		t.Errorf("snake_case keys are not part of the format: %+v", s)
	}
}
