package dedup

import (
	"fmt"
	"strings"
	"time"

	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

// Validator checks events against the publishing rules. It accumulates every
// violated rule rather than failing fast, and takes the current time as a
// parameter so the past-date rule stays deterministic under test.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns every rule the event violates. Business-rule violations
// never produce an error return; callers decide what to do with the list.
func (v *Validator) Validate(e *models.Event, now time.Time) models.ValidationResult {
	var errs []string

	if !present(e.Title) {
		errs = append(errs, "title is required")
	}

	errs = v.checkDate(e, now, errs)
	errs = v.checkTime(e, errs)

	if !present(e.Venue.Name) {
		errs = append(errs, "venue name is required")
	}

	if !present(e.Venue.Address) {
		errs = append(errs, "venue address is required")
	}

	if len(e.TicketCategories) == 0 {
		errs = append(errs, "at least one ticket category is required")
	}

	for i, c := range e.TicketCategories {
		if !present(c.Name) {
			errs = append(errs, fmt.Sprintf("ticket category %d: name is required", i+1))
		}

		if c.Price <= 0 {
			errs = append(errs, fmt.Sprintf("ticket category %d: price must be greater than zero", i+1))
		}

		if c.Capacity <= 0 {
			errs = append(errs, fmt.Sprintf("ticket category %d: capacity must be greater than zero", i+1))
		}
	}

	return models.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func (v *Validator) checkDate(e *models.Event, now time.Time, errs []string) []string {
	date := strings.TrimSpace(e.Date)
	if date == "" {
		return append(errs, "date is required")
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return append(errs, "date must use YYYY-MM-DD format")
	}

	// Date-only comparison in UTC to match time.Parse; an event today is
	// still valid.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return append(errs, "date cannot be in the past")
	}

	return errs
}

func (v *Validator) checkTime(e *models.Event, errs []string) []string {
	t := strings.TrimSpace(e.Time)
	if t == "" {
		return append(errs, "time is required")
	}

	if _, ok := parseMinutes(t); !ok {
		return append(errs, "time must use HH:MM 24-hour format")
	}

	return errs
}
