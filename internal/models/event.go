// Package models defines the core domain types for the ticketing pipeline.
package models

import "time"

// Event represents a ticketed occurrence with a venue, date/time, and one or
// more ticket categories. The deduplication engine treats events as immutable
// input snapshots; it selects records but never mutates them.
type Event struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Date             string           `json:"date"` // YYYY-MM-DD
	Time             string           `json:"time"` // HH:MM, 24-hour
	Category         string           `json:"category"`
	Venue            Venue            `json:"venue"`
	TicketCategories []TicketCategory `json:"ticketCategories"`
	Bundles          []TicketBundle   `json:"bundles,omitempty"`
	Images           []string         `json:"images,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
	Organizer        Organizer        `json:"organizer"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Venue describes where an event takes place. Address is free text; no
// street/city parsing is attempted anywhere in the pipeline.
type Venue struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Capacity  int      `json:"capacity"`
	Amenities []string `json:"amenities,omitempty"`
}

// TicketCategory is a priced admission tier within an event.
type TicketCategory struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Sold        int      `json:"sold"`
	Reserved    int      `json:"reserved"`
	Benefits    []string `json:"benefits,omitempty"`
}

// Available returns the number of unsold, unreserved tickets in the category.
func (c *TicketCategory) Available() int {
	return c.Capacity - c.Sold - c.Reserved
}

// TicketBundle groups ticket categories into a discounted package.
type TicketBundle struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories"`
	Price       float64  `json:"price"`
	Quantity    int      `json:"quantity"`
}

// Organizer identifies who runs the event.
type Organizer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
