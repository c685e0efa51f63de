package clock

import (
	"testing"
	"time"
)

func TestUpdateAdvancesAndRearms(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		t.Fatal(err)
	}
	m := New(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), loc)
	if got := m.Time.Format("15:04:05"); got != "07:00:00" {
		t.Errorf("initial time = %s, want 07:00:00", got)
	}

	m, cmd := m.Update(TickMsg(time.Date(2024, 5, 1, 2, 30, 15, 0, time.UTC)))
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	if got := m.Time.Format("15:04:05"); got != "09:30:15" {
		t.Errorf("time after tick = %s, want 09:30:15", got)
	}

	_, cmd = m.Update("unrelated")
	if cmd != nil {
		t.Error("unrelated messages must not schedule ticks")
	}
}
