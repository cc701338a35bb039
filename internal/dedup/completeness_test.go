package dedup

import (
	"testing"

	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

func fullEvent() *models.Event {
	return &models.Event{
		Title:       "Summer Fest",
		Description: "Annual outdoor music festival",
		Date:        "2024-07-15",
		Time:        "19:00",
		Category:    "music",
		Venue: models.Venue{
			Name:      "Central Park",
			Address:   "New York, NY",
			Capacity:  5000,
			Amenities: []string{"parking", "accessible"},
		},
		TicketCategories: []models.TicketCategory{
			{
				Name:        "General Admission",
				Description: "Standing room",
				Price:       45,
				Capacity:    4000,
				Benefits:    []string{"entry"},
			},
		},
		Images:    []string{"poster.jpg"},
		Tags:      []string{"music", "outdoor"},
		Organizer: models.Organizer{Name: "TicketForge Events"},
	}
}

func TestCompleteness_EmptyEvent(t *testing.T) {
	if got := Completeness(&models.Event{}); got != 0 {
		t.Errorf("Completeness(empty) = %d, want 0", got)
	}
}

func TestCompleteness_FullEvent(t *testing.T) {
	if got := Completeness(fullEvent()); got != 100 {
		t.Errorf("Completeness(full) = %d, want 100", got)
	}
}

func TestCompleteness_Monotonic(t *testing.T) {
	// Filling in any previously-missing field never lowers the score.
	steps := []struct {
		name  string
		apply func(*models.Event)
	}{
		{name: "title", apply: func(e *models.Event) { e.Title = "Summer Fest" }},
		{name: "description", apply: func(e *models.Event) { e.Description = "desc" }},
		{name: "date", apply: func(e *models.Event) { e.Date = "2024-07-15" }},
		{name: "time", apply: func(e *models.Event) { e.Time = "19:00" }},
		{name: "venue name", apply: func(e *models.Event) { e.Venue.Name = "Central Park" }},
		{name: "venue address", apply: func(e *models.Event) { e.Venue.Address = "NYC" }},
		{name: "venue capacity", apply: func(e *models.Event) { e.Venue.Capacity = 100 }},
		{name: "amenities", apply: func(e *models.Event) { e.Venue.Amenities = []string{"parking"} }},
		{name: "ticket category", apply: func(e *models.Event) {
			e.TicketCategories = []models.TicketCategory{{Name: "GA", Price: 10, Capacity: 50}}
		}},
		{name: "category description", apply: func(e *models.Event) {
			e.TicketCategories[0].Description = "standing"
		}},
		{name: "category benefits", apply: func(e *models.Event) {
			e.TicketCategories[0].Benefits = []string{"entry"}
		}},
		{name: "images", apply: func(e *models.Event) { e.Images = []string{"a.jpg"} }},
		{name: "tags", apply: func(e *models.Event) { e.Tags = []string{"music"} }},
		{name: "organizer", apply: func(e *models.Event) { e.Organizer.Name = "Org" }},
		{name: "event category", apply: func(e *models.Event) { e.Category = "music" }},
	}

	event := &models.Event{}
	prev := Completeness(event)

	for _, step := range steps {
		step.apply(event)

		got := Completeness(event)
		if got < prev {
			t.Errorf("score decreased after filling %s: %d -> %d", step.name, prev, got)
		}

		prev = got
	}

	if prev != 100 {
		t.Errorf("final score = %d, want 100", prev)
	}
}

func TestCompleteness_NoPartialCredit(t *testing.T) {
	e := &models.Event{Venue: models.Venue{Capacity: -1}}
	if got := Completeness(e); got != 0 {
		t.Errorf("Completeness with negative capacity = %d, want 0", got)
	}

	e.Title = "   " // whitespace only is not present
	if got := Completeness(e); got != 0 {
		t.Errorf("Completeness with blank title = %d, want 0", got)
	}
}
