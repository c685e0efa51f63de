package presenter

import (
	"testing"
	"time"

	"github.com/julianstephens/tripboard/internal/completion"
	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/models"
	"github.com/julianstephens/tripboard/internal/storage"
)

func newPresenter(t *testing.T, lang string) (*Presenter, *completion.Store) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		t.Fatal(err)
	}
	store := completion.New(storage.NewMemoryStore(), completion.LegacyKeys)
	return New(loc, locale.New(lang), store), store
}

func TestBuildSingleDay(t *testing.T) {
	p, store := newPresenter(t, "th")
	trip := models.Trip{
		ID: "bkk", Title: "Bangkok", Date: "2024-05-01", IsVisible: true,
		Agenda: models.Agenda{Kind: models.AgendaSingleDay, Items: []models.AgendaItem{
			{Time: "08:00", Activity: "Breakfast", Location: "Hotel"},
			{Time: "09:00 - 10:30", Activity: "Temple", Location: "Wat Pho", Note: "Dress code"},
			{Time: "12:00", Activity: "Lunch", Location: "Market"},
		}},
	}
	if _, err := store.Toggle(store.Key("bkk", "2024-05-01", "08:00")); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 5, 1, 9, 15, 0, 0, p.Loc)
	b := p.Build(trip, now)

	if b.Title != "Bangkok" || len(b.Sections) != 1 {
		t.Fatalf("unexpected board: %+v", b)
	}
	if b.Sections[0].Heading != "" {
		t.Errorf("single-day section should have no heading, got %q", b.Sections[0].Heading)
	}
	if b.CurrentLabel != "ปัจจุบัน" || b.NoteLabel != "โน๊ต" {
		t.Errorf("labels = %q, %q", b.CurrentLabel, b.NoteLabel)
	}

	rows := b.Rows()
	tests := []struct {
		idx      int
		past     bool
		current  bool
		done     bool
		duration string
		note     string
	}{
		{0, true, false, true, "", "-"},
		{1, true, true, false, "1 ชั่วโมง 30 นาที", "Dress code"},
		{2, false, false, false, "", "-"},
	}
	for _, tt := range tests {
		r := rows[tt.idx]
		if r.Past != tt.past || r.Current != tt.current || r.Done != tt.done {
			t.Errorf("row %d flags = past %v current %v done %v", tt.idx, r.Past, r.Current, r.Done)
		}
		if r.Duration != tt.duration {
			t.Errorf("row %d duration = %q, want %q", tt.idx, r.Duration, tt.duration)
		}
		if r.Note != tt.note {
			t.Errorf("row %d note = %q, want %q", tt.idx, r.Note, tt.note)
		}
	}
}

func TestBuildMultiDayHeadings(t *testing.T) {
	p, _ := newPresenter(t, "en")
	trip := models.Trip{
		ID: "cm", Title: "Chiang Mai", IsVisible: true,
		Agenda: models.Agenda{Kind: models.AgendaMultiDay, Days: []models.DayAgenda{
			{Date: "2024-05-01", Items: []models.AgendaItem{{Time: "09:00", Activity: "Fly"}}},
			{Date: "2024-05-02", Items: []models.AgendaItem{{Time: "09:00", Activity: "Hike"}}},
		}},
	}

	b := p.Build(trip, time.Date(2024, 5, 1, 10, 0, 0, 0, p.Loc))
	if len(b.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(b.Sections))
	}
	if got := b.Sections[0].Heading; got != "Wednesday, May 1, 2024" {
		t.Errorf("heading = %q", got)
	}
	if !b.Sections[0].Rows[0].Past || b.Sections[1].Rows[0].Past {
		t.Error("past flags should use each day's own date")
	}
	if !b.Sections[0].Rows[0].Current || b.Sections[1].Rows[0].Current {
		t.Error("current flag should use each day's own date")
	}
}

func TestBuildWithoutStore(t *testing.T) {
	loc := time.UTC
	p := New(loc, locale.New("en"), nil)
	trip := models.Trip{ID: "x", Date: "2024-05-01", Agenda: models.Agenda{Items: []models.AgendaItem{{Time: "09:00"}}}}
	rows := p.Build(trip, time.Date(2024, 5, 1, 8, 0, 0, 0, loc)).Rows()
	if len(rows) != 1 || rows[0].Done || rows[0].Key != "" {
		t.Errorf("unexpected rows: %+v", rows)
	}
}
