package agenda

import (
	"testing"
	"time"

	"github.com/julianstephens/tripboard/internal/models"
)

func bangkok(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	return loc
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		h, m int
	}{
		{"09:30", 9, 30},
		{"00:00", 0, 0},
		{"23:59", 23, 59},
		{" 7:05 ", 7, 5},
		{"garbage", 0, 0},
	}
	for _, tt := range tests {
		h, m := ParseTime(tt.in)
		if h != tt.h || m != tt.m {
			t.Errorf("ParseTime(%q) = %d,%d, want %d,%d", tt.in, h, m, tt.h, tt.m)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		want   int
		wantOK bool
	}{
		{"zero length", "09:00 - 09:00", 0, true},
		{"half hour", "09:00 - 09:30", 30, true},
		{"crosses midnight", "23:30 - 00:15", 45, true},
		{"hours and minutes", "08:15 - 10:45", 150, true},
		{"single time", "09:00", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Duration(tt.field)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Duration(%q) = %d,%v, want %d,%v", tt.field, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsPast(t *testing.T) {
	loc := bangkok(t)
	item := models.AgendaItem{Time: "09:00 - 10:00"}
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, loc)

	tests := []struct {
		name string
		now  time.Time
		date string
		want bool
	}{
		{"before start", start.Add(-time.Minute), "2024-05-01", false},
		{"exactly at start", start, "2024-05-01", false},
		{"after start", start.Add(time.Second), "2024-05-01", true},
		{"other zone same instant", start.UTC(), "2024-05-01", false},
		{"missing date", start.Add(time.Hour), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPast(item, tt.now, tt.date, loc); got != tt.want {
				t.Errorf("IsPast() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentIndex(t *testing.T) {
	loc := bangkok(t)
	items := []models.AgendaItem{
		{Time: "08:00"},
		{Time: "09:00 - 10:00"},
		{Time: "12:00"},
		{Time: "23:30 - 00:15"},
	}
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"before first", time.Date(2024, 5, 1, 7, 0, 0, 0, loc), -1},
		{"single until next", time.Date(2024, 5, 1, 8, 59, 0, 0, loc), 0},
		{"range start inclusive", time.Date(2024, 5, 1, 9, 0, 0, 0, loc), 1},
		{"range end exclusive", time.Date(2024, 5, 1, 10, 0, 0, 0, loc), -1},
		{"single runs to next start", time.Date(2024, 5, 1, 23, 0, 0, 0, loc), 2},
		{"midnight rollover", time.Date(2024, 5, 2, 0, 10, 0, 0, loc), 3},
		{"after rollover", time.Date(2024, 5, 2, 0, 15, 0, 0, loc), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentIndex(items, tt.now, "2024-05-01", loc); got != tt.want {
				t.Errorf("CurrentIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLastSingleItemRunsToEndOfDay(t *testing.T) {
	loc := bangkok(t)
	items := []models.AgendaItem{{Time: "20:00"}}
	if got := CurrentIndex(items, time.Date(2024, 5, 1, 23, 59, 0, 0, loc), "2024-05-01", loc); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", got)
	}
	if got := CurrentIndex(items, time.Date(2024, 5, 2, 0, 0, 0, 0, loc), "2024-05-01", loc); got != -1 {
		t.Errorf("CurrentIndex() after midnight = %d, want -1", got)
	}
}
