package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateTripID ConflictType = "duplicate_trip_id"
	ConflictMissingTitle    ConflictType = "missing_title"
	ConflictMissingDate     ConflictType = "missing_date"
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictNoVisibleTrips  ConflictType = "no_visible_trips"
)

// Conflict represents a structural problem in the trip document
type Conflict struct {
	Type        ConflictType
	Description string
	TripID      string
	Date        string // YYYY-MM-DD format (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks a trip collection for structural problems. Agenda time
// strings are deliberately left alone.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateTrips checks ids, titles and day dates.
func (v *Validator) ValidateTrips(all []models.Trip) ValidationResult {
	result := ValidationResult{}
	seen := make(map[string]bool, len(all))
	visible := 0

	for _, trip := range all {
		if trip.IsVisible {
			visible++
		}
		if seen[trip.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTripID,
				Description: fmt.Sprintf("trip id %q is used more than once", trip.ID),
				TripID:      trip.ID,
			})
		}
		seen[trip.ID] = true

		if trip.Title == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingTitle,
				Description: fmt.Sprintf("trip %q has no title", trip.ID),
				TripID:      trip.ID,
			})
		}

		for _, day := range trip.Days() {
			if day.Date == "" {
				if len(day.Items) == 0 {
					continue
				}
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictMissingDate,
					Description: fmt.Sprintf("trip %q has agenda items without a date", trip.ID),
					TripID:      trip.ID,
				})
				continue
			}
			if !isValidDate(day.Date) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDate,
					Description: fmt.Sprintf("trip %q has invalid date %q (expected YYYY-MM-DD)", trip.ID, day.Date),
					TripID:      trip.ID,
					Date:        day.Date,
				})
			}
		}
	}

	if visible == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNoVisibleTrips,
			Description: "no trip is marked visible",
		})
	}

	return result
}

func isValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}
