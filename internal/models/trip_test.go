package models

import "testing"

func TestTripDays(t *testing.T) {
	single := Trip{
		Date: "2024-05-01",
		Agenda: Agenda{
			Kind:  AgendaSingleDay,
			Items: []AgendaItem{{Time: "09:00"}, {Time: "10:00 - 11:00"}},
		},
	}
	days := single.Days()
	if len(days) != 1 || days[0].Date != "2024-05-01" || len(days[0].Items) != 2 {
		t.Errorf("single-day Days() = %+v", days)
	}

	multi := Trip{
		Agenda: Agenda{
			Kind: AgendaMultiDay,
			Days: []DayAgenda{
				{Date: "2024-05-01", Items: []AgendaItem{{Time: "09:00"}}},
				{Date: "2024-05-02", Items: []AgendaItem{{Time: "08:00"}, {Time: "12:00"}}},
			},
		},
	}
	days = multi.Days()
	if len(days) != 2 || days[1].Date != "2024-05-02" {
		t.Errorf("multi-day Days() = %+v", days)
	}
	if got := multi.ItemCount(); got != 3 {
		t.Errorf("ItemCount() = %d, want 3", got)
	}
}

func TestTripDateRange(t *testing.T) {
	tests := []struct {
		name      string
		trip      Trip
		wantStart string
		wantEnd   string
	}{
		{
			name:      "explicit range wins",
			trip:      Trip{Date: "2024-01-01", StartDate: "2024-02-01", EndDate: "2024-02-03"},
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-03",
		},
		{
			name: "multi-day derives from days",
			trip: Trip{Agenda: Agenda{Kind: AgendaMultiDay, Days: []DayAgenda{
				{Date: "2024-03-01"}, {Date: "2024-03-04"},
			}}},
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-04",
		},
		{
			name:      "single date",
			trip:      Trip{Date: "2024-04-10"},
			wantStart: "2024-04-10",
			wantEnd:   "2024-04-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.trip.DateRange()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("DateRange() = (%q, %q), want (%q, %q)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
