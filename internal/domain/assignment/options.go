package assignment

import "time"

// ListOptions provides filtering options for listing assignments. Statuses
// filters on the stored status, not the derived one.
type ListOptions struct {
	Statuses  []Status
	Subjects  []string
	DueBefore *time.Time
	Limit     int
	Offset    int
}
