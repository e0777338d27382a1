package schedule

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/domain/risk"
)

// hour chunks smaller than this are rounding residue, not real work
const epsilonHours = 1e-9

// Planner produces an ordered work plan from a snapshot of assignments. It is
// a pure function of its inputs: no state carries between calls, and the
// input slice is never mutated.
type Planner struct {
	scorer risk.Scorer
}

// NewPlanner creates a planner over the given scoring strategy.
func NewPlanner(scorer risk.Scorer) *Planner {
	return &Planner{scorer: scorer}
}

// Plan ranks the non-completed assignments and greedily allocates their
// estimated hours into sequential daily slots of hoursPerDay, starting at
// now. An assignment whose hours exceed a day's remaining budget splits
// across days; no day ever exceeds the budget, and nothing is scheduled
// before now. Overdue assignments stay in the plan, flagged, and rank first
// through their critical class. An assignment with a zero hour estimate
// keeps its rank as a single zero-length entry. Budgets at or below
// epsilonHours can never fit a chunk, so they are rejected up front.
func (p *Planner) Plan(assignments []assignment.Assignment, hoursPerDay float64, now time.Time) ([]Entry, error) {
	if hoursPerDay <= epsilonHours {
		return nil, fmt.Errorf("%w: daily hours budget must exceed %g, got %g", ErrInvalidInput, epsilonHours, hoursPerDay)
	}

	type ranked struct {
		a  assignment.Assignment
		as risk.Assessment
	}
	items := make([]ranked, 0, len(assignments))
	for _, a := range assignments {
		if a.Status == assignment.StatusCompleted {
			continue
		}
		as, err := p.scorer.Assess(a, now)
		if err != nil {
			return nil, fmt.Errorf("assessing assignment %d: %w", a.ID, err)
		}
		items = append(items, ranked{a: a, as: as})
	}

	// class desc, due asc, priority desc, id asc; the id tie-break keeps the
	// plan deterministic
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].as.Class.Rank() != items[j].as.Class.Rank() {
			return items[i].as.Class.Rank() > items[j].as.Class.Rank()
		}
		if !items[i].a.DueDate.Equal(items[j].a.DueDate) {
			return items[i].a.DueDate.Before(items[j].a.DueDate)
		}
		if items[i].a.Priority != items[j].a.Priority {
			return items[i].a.Priority > items[j].a.Priority
		}
		return items[i].a.ID < items[j].a.ID
	})

	entries := make([]Entry, 0, len(items))
	day := 0
	used := 0.0
	for i, it := range items {
		remaining := it.a.EstimatedHours
		if remaining <= epsilonHours {
			start := slotTime(now, day, used)
			entries = append(entries, Entry{
				AssignmentID:   it.a.ID,
				Rank:           i + 1,
				Start:          start,
				End:            start,
				AllocatedHours: 0,
				Class:          it.as.Class,
				Overdue:        it.as.Overdue,
			})
			continue
		}
		for {
			avail := hoursPerDay - used
			if avail <= epsilonHours && remaining > epsilonHours {
				day++
				used = 0
				continue
			}

			chunk := math.Min(remaining, avail)
			start := slotTime(now, day, used)
			entries = append(entries, Entry{
				AssignmentID:   it.a.ID,
				Rank:           i + 1,
				Start:          start,
				End:            slotTime(now, day, used+chunk),
				AllocatedHours: chunk,
				Class:          it.as.Class,
				Overdue:        it.as.Overdue,
			})
			used += chunk
			remaining -= chunk
			if remaining <= epsilonHours {
				break
			}
		}
	}

	return entries, nil
}

// slotTime places an offset of allocated hours within the day-th 24h window
// after now.
func slotTime(now time.Time, day int, hours float64) time.Time {
	offset := float64(day)*24 + hours
	return now.Add(time.Duration(offset * float64(time.Hour)))
}
