package note

import "time"

// Priority ranks a note's importance
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Note represents a personal note
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  Priority  `json:"priority"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultCategories seeds the category registry. The set is open: new
// categories register themselves on first use.
var DefaultCategories = []string{"school", "personal", "work", "other"}
