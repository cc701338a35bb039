package dedup

import (
	"fmt"

	"github.com/zerzus666/ticketforge-app-sub001/internal/logger"
	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

// Detector finds and collapses duplicate events in a catalog.
type Detector struct {
	logger *logger.Logger
}

// NewDetector creates a detector that logs match diagnostics to log.
func NewDetector(log *logger.Logger) *Detector {
	return &Detector{logger: log}
}

// Stats summarizes a deduplication pass.
type Stats struct {
	Input      int
	Unique     int
	Duplicates int
	Replaced   int
	Matches    []models.DuplicateMatch
}

// Detect scans events in input order and returns the deduplicated list.
// Discarded duplicates are logged but not returned; use DetectWithStats when
// the caller needs them.
func (d *Detector) Detect(events []*models.Event) []*models.Event {
	unique, _ := d.DetectWithStats(events)
	return unique
}

// DetectWithStats is Detect plus per-match diagnostics.
//
// The pass is order-dependent on purpose: each candidate is compared against
// the events already kept, in order, and the FIRST kept event scoring at or
// above DuplicateThreshold wins (not the best-scoring one). Given a chain
// A~B~C where A and C are not direct matches, the result depends on input
// order; that is the documented contract, not a bug.
//
// On a match, the more complete record is kept; a completeness tie goes to
// the record with the strictly later UpdatedAt. The pass never errors:
// missing fields degrade to empty-string comparisons.
func (d *Detector) DetectWithStats(events []*models.Event) ([]*models.Event, Stats) {
	stats := Stats{Input: len(events)}

	var unique []*models.Event

	for _, candidate := range events {
		idx, score, reasons := findDuplicateMatch(candidate, unique)
		if idx < 0 {
			unique = append(unique, candidate)
			continue
		}

		existing := unique[idx]
		stats.Duplicates++
		stats.Matches = append(stats.Matches, models.DuplicateMatch{
			Candidate: candidate,
			Existing:  existing,
			Score:     score,
			Reasons:   reasons,
		})

		if d.shouldReplace(existing, candidate) {
			unique[idx] = candidate
			stats.Replaced++

			d.logger.Debug("duplicate resolved, candidate kept",
				"kept", candidate.Title, "discarded", existing.Title,
				"score", fmt.Sprintf("%.1f", score))
		} else {
			d.logger.Debug("duplicate resolved, existing kept",
				"kept", existing.Title, "discarded", candidate.Title,
				"score", fmt.Sprintf("%.1f", score))
		}
	}

	stats.Unique = len(unique)

	d.logger.Info("deduplication completed",
		"input", stats.Input, "unique", stats.Unique,
		"duplicates", stats.Duplicates, "replaced", stats.Replaced)

	return unique, stats
}

// findDuplicateMatch returns the index of the first event in unique whose
// similarity with candidate meets DuplicateThreshold, along with the score
// and match reasons. Returns -1 when nothing matches.
func findDuplicateMatch(candidate *models.Event, unique []*models.Event) (int, float64, []string) {
	for i, existing := range unique {
		score, reasons := scoreEvents(candidate, existing)
		if score >= DuplicateThreshold {
			return i, score, reasons
		}
	}

	return -1, 0, nil
}

// shouldReplace reports whether the candidate should displace the stored
// event: strictly higher completeness wins, a tie goes to the strictly later
// UpdatedAt, otherwise the stored event stays.
func (d *Detector) shouldReplace(existing, candidate *models.Event) bool {
	existingScore := Completeness(existing)
	candidateScore := Completeness(candidate)

	if candidateScore != existingScore {
		return candidateScore > existingScore
	}

	return candidate.UpdatedAt.After(existing.UpdatedAt)
}
