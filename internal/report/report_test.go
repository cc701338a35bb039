package report

import (
	"strings"
	"testing"

	"github.com/zerzus666/ticketforge-app-sub001/internal/dedup"
	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

func TestWrite(t *testing.T) {
	kept := &models.Event{
		Title: "Summer Fest",
		Date:  "2024-07-15",
		Time:  "19:00",
		Venue: models.Venue{Name: "Central Park", Address: "NYC"},
	}
	discarded := &models.Event{
		Title: "Summer Festival",
		Date:  "2024-07-15",
		Venue: models.Venue{Name: "Central Park", Address: "NYC"},
	}

	stats := dedup.Stats{
		Input:      2,
		Unique:     1,
		Duplicates: 1,
		Matches: []models.DuplicateMatch{
			{Candidate: discarded, Existing: kept, Score: 89.3, Reasons: []string{"same date"}},
		},
	}

	var b strings.Builder
	if err := Write(&b, stats, []*models.Event{kept}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := b.String()

	for _, want := range []string{
		"# Deduplication Report",
		"Input events: 2",
		"Unique events: 1",
		"Duplicates collapsed: 1",
		"Summer Fest",
		"Summer Festival",
		"89.3",
		"same date",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_TableAlignment(t *testing.T) {
	events := []*models.Event{
		{Title: "A", Date: "2024-07-15", Time: "19:00", Venue: models.Venue{Name: "Venue"}},
		{Title: "A much longer event title", Date: "2024-08-01", Time: "20:00", Venue: models.Venue{Name: "V"}},
	}

	var b strings.Builder
	if err := Write(&b, dedup.Stats{Input: 2, Unique: 2}, events); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	// Every row of the kept-events table must have the same width.
	var tableWidths []int

	for _, line := range strings.Split(b.String(), "\n") {
		if strings.HasPrefix(line, "|") {
			tableWidths = append(tableWidths, len(line))
		}
	}

	if len(tableWidths) < 4 {
		t.Fatalf("expected a rendered table, got lines %v", tableWidths)
	}

	for i := 1; i < 4; i++ {
		if tableWidths[i] != tableWidths[0] {
			t.Errorf("table row %d width %d != header width %d", i, tableWidths[i], tableWidths[0])
		}
	}
}

func TestWrite_EmptyCatalog(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, dedup.Stats{}, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, "No events.") || !strings.Contains(out, "No duplicates found.") {
		t.Errorf("empty report missing placeholders:\n%s", out)
	}
}
