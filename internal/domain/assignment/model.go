package assignment

import "time"

// Status represents the workflow state of an assignment
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	// StatusOverdue is derived from the due date at read time and is never
	// stored or set by a caller.
	StatusOverdue Status = "overdue"
)

// MaxPriority is the top of the ordinal priority scale.
const MaxPriority = 5

// Assignment represents a course assignment with a deadline
type Assignment struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Subject        string    `json:"subject"`
	DueDate        time.Time `json:"due_date"`
	Status         Status    `json:"status"`
	Priority       int       `json:"priority"`
	EstimatedHours float64   `json:"estimated_hours"`
	Tags           []string  `json:"tags,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EffectiveStatus derives the visible status, folding in overdue from the
// due date so the stored state can never disagree with the clock.
func (a Assignment) EffectiveStatus(now time.Time) Status {
	if a.Status != StatusCompleted && !a.DueDate.IsZero() && !a.DueDate.After(now) {
		return StatusOverdue
	}
	return a.Status
}

// HoursUntilDue returns the signed number of hours until the due date.
func (a Assignment) HoursUntilDue(now time.Time) float64 {
	return a.DueDate.Sub(now).Hours()
}

// DefaultSubjects seeds the subject registry. The set is open: new subjects
// register themselves on first use.
var DefaultSubjects = []string{"math", "science", "computer_science", "other"}
