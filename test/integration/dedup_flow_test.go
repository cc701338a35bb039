package integration

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/zerzus666/ticketforge-app-sub001/internal/dedup"
	"github.com/zerzus666/ticketforge-app-sub001/internal/importer"
	"github.com/zerzus666/ticketforge-app-sub001/internal/logger"
)

func TestDedupFlow(t *testing.T) {
	fixturePath := filepath.Join("..", "fixtures", "events.json")

	// 1. Import
	imp := importer.NewImporter(logger.NewDiscard())

	events, err := imp.LoadJSON(fixturePath)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 events in fixture, got %d", len(events))
	}

	// 2. Validate
	validator := dedup.NewValidator()
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, event := range events {
		result := validator.Validate(event, now)
		if !result.IsValid {
			t.Errorf("fixture event %q failed validation: %v", event.Title, result.Errors)
		}
	}

	// 3. Deduplicate
	detector := dedup.NewDetector(logger.NewDiscard())
	unique, stats := detector.DetectWithStats(events)

	if len(unique) != 2 {
		t.Fatalf("expected 2 unique events, got %d", len(unique))
	}

	if stats.Duplicates != 1 {
		t.Errorf("stats.Duplicates = %d, want 1", stats.Duplicates)
	}

	// The first Summer Fest record is more complete and must survive the
	// collision with the sparser near-duplicate.
	titles := map[string]bool{}
	for _, e := range unique {
		titles[e.Title] = true
	}

	if !titles["Summer Fest"] || !titles["Winter Gala"] {
		t.Errorf("unexpected surviving events: %v", titles)
	}

	if len(stats.Matches) != 1 {
		t.Fatalf("expected 1 recorded match, got %d", len(stats.Matches))
	}

	match := stats.Matches[0]
	if match.Candidate.ID != "evt-2" || match.Existing.ID != "evt-1" {
		t.Errorf("unexpected match pairing: candidate=%s existing=%s",
			match.Candidate.ID, match.Existing.ID)
	}

	if match.Score < dedup.DuplicateThreshold {
		t.Errorf("match score %.2f below threshold", match.Score)
	}
}
