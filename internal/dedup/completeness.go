package dedup

import (
	"strings"

	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

// Completeness rates how fully populated an event record is, 0 to 100.
// Each check is a strict boolean worth a fixed number of points; there is no
// partial credit. Used to decide which of two duplicate records to keep.
//
// Rubric: base fields 40 (title, description, date, time at 10 each), venue
// 20 (name, address, capacity, amenities at 5 each), ticket categories 20
// (any category 10, any description 5, any benefits 5), extras 20 (images,
// tags, organizer name, category at 5 each).
func Completeness(e *models.Event) int {
	score := 0

	if present(e.Title) {
		score += 10
	}

	if present(e.Description) {
		score += 10
	}

	if present(e.Date) {
		score += 10
	}

	if present(e.Time) {
		score += 10
	}

	if present(e.Venue.Name) {
		score += 5
	}

	if present(e.Venue.Address) {
		score += 5
	}

	if e.Venue.Capacity > 0 {
		score += 5
	}

	if len(e.Venue.Amenities) > 0 {
		score += 5
	}

	if len(e.TicketCategories) > 0 {
		score += 10
	}

	if anyCategory(e, func(c models.TicketCategory) bool { return present(c.Description) }) {
		score += 5
	}

	if anyCategory(e, func(c models.TicketCategory) bool { return len(c.Benefits) > 0 }) {
		score += 5
	}

	if len(e.Images) > 0 {
		score += 5
	}

	if len(e.Tags) > 0 {
		score += 5
	}

	if present(e.Organizer.Name) {
		score += 5
	}

	if present(e.Category) {
		score += 5
	}

	return score
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func anyCategory(e *models.Event, check func(models.TicketCategory) bool) bool {
	for _, c := range e.TicketCategories {
		if check(c) {
			return true
		}
	}

	return false
}
