// Package selector tracks which visible trip is selected.
package selector

import (
	"errors"

	"github.com/julianstephens/tripboard/internal/models"
	"github.com/julianstephens/tripboard/internal/trips"
)

// ErrTripNotVisible is returned when selecting a hidden or unknown trip.
var ErrTripNotVisible = errors.New("trip is not visible")

// Controller holds the visible trips and the current selection.
type Controller struct {
	visible  []models.Trip
	selected string
}

// New filters trips to the visible ones and selects the first.
func New(all []models.Trip) *Controller {
	c := &Controller{}
	c.SetTrips(all)
	return c
}

// SetTrips re-evaluates visibility. The selection survives if its trip is
// still visible; otherwise it falls back to the first visible trip.
func (c *Controller) SetTrips(all []models.Trip) {
	c.visible = trips.Visible(all)
	if _, ok := trips.Find(c.visible, c.selected); ok && c.selected != "" {
		return
	}
	c.selected = ""
	if len(c.visible) > 0 {
		c.selected = c.visible[0].ID
	}
}

// Visible returns the visible trips in document order.
func (c *Controller) Visible() []models.Trip {
	return c.visible
}

// Empty reports the no-trips-visible state.
func (c *Controller) Empty() bool {
	return len(c.visible) == 0
}

// SelectedID returns the selected trip id, empty when none.
func (c *Controller) SelectedID() string {
	return c.selected
}

// Selected returns the selected trip.
func (c *Controller) Selected() (models.Trip, bool) {
	if c.selected == "" {
		return models.Trip{}, false
	}
	return trips.Find(c.visible, c.selected)
}

// Select makes id the selection. Selecting the current trip is a no-op.
func (c *Controller) Select(id string) error {
	if id == c.selected && id != "" {
		return nil
	}
	if _, ok := trips.Find(c.visible, id); !ok {
		return ErrTripNotVisible
	}
	c.selected = id
	return nil
}

// Next moves the selection forward, wrapping around.
func (c *Controller) Next() {
	c.step(1)
}

// Prev moves the selection backward, wrapping around.
func (c *Controller) Prev() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	n := len(c.visible)
	if n == 0 {
		return
	}
	idx := 0
	for i, t := range c.visible {
		if t.ID == c.selected {
			idx = i
			break
		}
	}
	c.selected = c.visible[((idx+delta)%n+n)%n].ID
}
