package dedup

import (
	"fmt"
	"strings"
	"time"

	"github.com/zerzus666/ticketforge-app-sub001/internal/models"
)

// DuplicateThreshold is the fixed score at or above which two events are
// considered duplicates. It is deliberately not configurable.
const DuplicateThreshold = 80.0

// Date and time dimension point awards.
const (
	datePointsExact      = 25.0
	datePointsWithinDay  = 20.0
	datePointsWithinWeek = 10.0

	timePointsExact       = 10.0
	timePointsWithinHour  = 8.0
	timePointsWithin3Hour = 5.0
)

// dimension is one row of the scoring rule table: a scored aspect of an
// event pair worth up to maxPoints. The score func returns awarded points
// plus a human-readable reason when the dimension signals a likely match
// (empty reason otherwise).
type dimension struct {
	name      string
	maxPoints float64
	score     func(a, b *models.Event) (float64, string)
}

// dimensions lists every scored aspect. Max points sum to 100, so the total
// is bounded by construction. Adding a dimension means adding a row here and
// rebalancing the weights.
var dimensions = []dimension{
	{name: "title", maxPoints: 40, score: scoreTitle},
	{name: "date", maxPoints: 25, score: scoreDate},
	{name: "venue", maxPoints: 25, score: scoreVenue},
	{name: "time", maxPoints: 10, score: scoreTime},
}

// EventSimilarity returns the weighted similarity of two events in [0,100].
func EventSimilarity(a, b *models.Event) float64 {
	total, _ := scoreEvents(a, b)
	return total
}

// scoreEvents runs every dimension and collects the total plus match reasons.
func scoreEvents(a, b *models.Event) (float64, []string) {
	var (
		total   float64
		reasons []string
	)

	for _, dim := range dimensions {
		points, reason := dim.score(a, b)
		total += points

		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	return total, reasons
}

func scoreTitle(a, b *models.Event) (float64, string) {
	sim := StringSimilarity(a.Title, b.Title)
	points := sim * 0.40

	if sim >= 80 {
		return points, fmt.Sprintf("titles %.0f%% similar", sim)
	}

	return points, ""
}

func scoreVenue(a, b *models.Event) (float64, string) {
	sim := VenueSimilarity(a.Venue, b.Venue)
	points := sim * 0.25

	if sim >= 80 {
		return points, fmt.Sprintf("venues %.0f%% similar", sim)
	}

	return points, ""
}

func scoreDate(a, b *models.Event) (float64, string) {
	da := strings.TrimSpace(a.Date)
	db := strings.TrimSpace(b.Date)

	if da == db {
		return datePointsExact, "same date"
	}

	ta, errA := time.Parse("2006-01-02", da)
	tb, errB := time.Parse("2006-01-02", db)

	// Unparseable dates cannot be compared; the dimension contributes nothing.
	if errA != nil || errB != nil {
		return 0, ""
	}

	days := ta.Sub(tb).Hours() / 24
	if days < 0 {
		days = -days
	}

	switch {
	case days <= 1:
		return datePointsWithinDay, "dates within 1 day"
	case days <= 7:
		return datePointsWithinWeek, "dates within 7 days"
	default:
		return 0, ""
	}
}

func scoreTime(a, b *models.Event) (float64, string) {
	ta := strings.TrimSpace(a.Time)
	tb := strings.TrimSpace(b.Time)

	if ta == tb {
		return timePointsExact, "same time"
	}

	ma, okA := parseMinutes(ta)
	mb, okB := parseMinutes(tb)

	if !okA || !okB {
		return 0, ""
	}

	diff := ma - mb
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff <= 60:
		return timePointsWithinHour, "times within 1 hour"
	case diff <= 180:
		return timePointsWithin3Hour, "times within 3 hours"
	default:
		return 0, ""
	}
}

// parseMinutes converts an HH:MM 24-hour string to minutes since midnight.
func parseMinutes(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}

	return t.Hour()*60 + t.Minute(), true
}
