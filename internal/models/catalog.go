package models

// Catalog is the JSON envelope the pipeline reads and writes: the event list
// plus derived summary statistics.
type Catalog struct {
	Events  []*Event       `json:"events"`
	Summary CatalogSummary `json:"summary"`
}

// CatalogSummary holds aggregate statistics for a catalog.
type CatalogSummary struct {
	TotalEvents   int    `json:"totalEvents"`
	TotalCapacity int    `json:"totalCapacity"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

// BuildSummary computes summary statistics over a list of events. Date bounds
// are lexicographic, which matches chronological order for YYYY-MM-DD dates.
func BuildSummary(events []*Event) CatalogSummary {
	summary := CatalogSummary{
		TotalEvents: len(events),
	}

	for _, event := range events {
		summary.TotalCapacity += event.Venue.Capacity

		if event.Date == "" {
			continue
		}

		if summary.StartDate == "" || event.Date < summary.StartDate {
			summary.StartDate = event.Date
		}

		if summary.EndDate == "" || event.Date > summary.EndDate {
			summary.EndDate = event.Date
		}
	}

	return summary
}
