// Package gesture tracks a horizontal drag on an agenda row and decides
// whether it qualifies as a completion swipe.
package gesture

import "github.com/julianstephens/tripboard/internal/constants"

// Drag is the state of one row's drag. The zero value is at rest.
type Drag struct {
	active bool
	startX int
	offset int
}

// CellsToUnits converts a terminal column delta to drag units.
func CellsToUnits(cells int) int {
	return cells * constants.UnitsPerCell
}

// Press starts a drag at column x.
func (d *Drag) Press(x int) {
	d.active = true
	d.startX = x
	d.offset = 0
}

// Move updates the displayed offset, clamped to [0, SwipeMaxOffset].
func (d *Drag) Move(x int) {
	if !d.active {
		return
	}
	d.offset = clamp(CellsToUnits(x-d.startX), 0, constants.SwipeMaxOffset)
}

// Release ends the drag and reports whether the raw displacement exceeded
// the swipe threshold. The offset is left in place for the spring-back.
func (d *Drag) Release(x int) bool {
	if !d.active {
		return false
	}
	d.active = false
	d.Move(x)
	return CellsToUnits(x-d.startX) > constants.SwipeThreshold
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Offset returns the current displayed offset in units.
func (d *Drag) Offset() int {
	return d.offset
}

// OffsetCells returns the offset rounded down to whole cells.
func (d *Drag) OffsetCells() int {
	return d.offset / constants.UnitsPerCell
}

// Settle advances the spring-back by one frame, halving the offset. It
// returns true while further frames are needed.
func (d *Drag) Settle() bool {
	if d.active {
		return false
	}
	d.offset /= 2
	return d.offset > 0
}

// Cancel abandons the drag and snaps back to rest.
func (d *Drag) Cancel() {
	d.active = false
	d.offset = 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
