package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

// CSV parsing errors.
var (
	ErrMissingHeader       = errors.New("csv file has no header row")
	ErrMissingTitleColumn  = errors.New("csv header is missing the title column")
	ErrMissingDateColumn   = errors.New("csv header is missing the date column")
	ErrRowMissingTitle     = errors.New("row has no title")
	ErrRowInvalidCapacity  = errors.New("venue_capacity is not a number")
	ErrRowInvalidPrice     = errors.New("ticket_price is not a number")
	ErrRowInvalidTimestamp = errors.New("updated_at is not an RFC 3339 timestamp")
)

// Recognized CSV columns. Unknown columns are ignored so merchants can keep
// extra bookkeeping columns in their export sheets.
const (
	colTitle          = "title"
	colDescription    = "description"
	colDate           = "date"
	colTime           = "time"
	colCategory       = "category"
	colVenueName      = "venue_name"
	colVenueAddress   = "venue_address"
	colVenueCapacity  = "venue_capacity"
	colOrganizerName  = "organizer_name"
	colOrganizerEmail = "organizer_email"
	colTicketName     = "ticket_name"
	colTicketPrice    = "ticket_price"
	colTicketCapacity = "ticket_capacity"
	colTags           = "tags"
	colUpdatedAt      = "updated_at"
)

// LoadCSV reads events from a headered CSV export, one event per row. Bad
// rows are collected as errors and skipped; parsing continues to the end of
// the file.
func (i *Importer) LoadCSV(path string) ([]*models.Event, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are a row-level error, not fatal

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMissingHeader, err)
	}

	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	if _, ok := cols[colTitle]; !ok {
		return nil, nil, ErrMissingTitleColumn
	}

	if _, ok := cols[colDate]; !ok {
		return nil, nil, ErrMissingDateColumn
	}

	var (
		events    []*models.Event
		rowErrors []error
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			rowErrors = append(rowErrors, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		event, err := parseRow(record, cols)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		events = append(events, event)
	}

	if len(rowErrors) > 0 {
		i.logger.Warn("csv import finished with row errors",
			"rows", len(events), "errors", len(rowErrors))
	}

	return events, rowErrors, nil
}

func parseRow(record []string, cols map[string]int) (*models.Event, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	title := field(colTitle)
	if title == "" {
		return nil, ErrRowMissingTitle
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: field(colDescription),
		Date:        field(colDate),
		Time:        field(colTime),
		Category:    field(colCategory),
		Venue: models.Venue{
			Name:    field(colVenueName),
			Address: field(colVenueAddress),
		},
		Organizer: models.Organizer{
			Name:  field(colOrganizerName),
			Email: field(colOrganizerEmail),
		},
	}

	if raw := field(colVenueCapacity); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrRowInvalidCapacity, raw)
		}

		event.Venue.Capacity = capacity
	}

	if name := field(colTicketName); name != "" {
		category := models.TicketCategory{Name: name}

		if raw := field(colTicketPrice); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrRowInvalidPrice, raw)
			}

			category.Price = price
		}

		if raw := field(colTicketCapacity); raw != "" {
			capacity, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrRowInvalidCapacity, raw)
			}

			category.Capacity = capacity
		}

		event.TicketCategories = []models.TicketCategory{category}
	}

	if raw := field(colTags); raw != "" {
		for _, tag := range strings.Split(raw, ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				event.Tags = append(event.Tags, tag)
			}
		}
	}

	if raw := field(colUpdatedAt); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrRowInvalidTimestamp, raw)
		}

		event.UpdatedAt = ts
	}

	return event, nil
}
