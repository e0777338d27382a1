package schedule

import (
	"time"

	"github.com/acortes/studytrack/internal/domain/risk"
)

// Entry is one allocation of hours to an assignment within a specific day.
// A plan is derived output and is never persisted.
type Entry struct {
	AssignmentID   int64      `json:"assignment_id"`
	Rank           int        `json:"rank"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	AllocatedHours float64    `json:"allocated_hours"`
	Class          risk.Class `json:"class"`
	Overdue        bool       `json:"overdue"`
}
