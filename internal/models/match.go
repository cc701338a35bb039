package models

// DuplicateMatch pairs a candidate event with an already-seen event it
// collided with. Created transiently during a deduplication pass for
// diagnostics and reporting; never persisted.
type DuplicateMatch struct {
	Candidate *Event   `json:"candidate"`
	Existing  *Event   `json:"existing"`
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons"`
}

// ValidationResult collects every rule an event violated. IsValid is true
// only when Errors is empty.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
