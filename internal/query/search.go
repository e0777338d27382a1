// Package query filters and sorts in-memory entity snapshots for the
// interaction shell. Filtering is stable and side-effect free: with no
// filters the input comes back in its original order.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/domain/note"
)

// Notes applies a predicate spec to a note snapshot.
func Notes(in []note.Note, spec Spec) ([]note.Note, error) {
	if len(spec.StatusIn) > 0 {
		return nil, fmt.Errorf("%w: status_in does not apply to notes", ErrInvalidFilter)
	}
	if spec.TextContains != nil {
		switch spec.TextContains.Field {
		case "title", "content", "category":
		default:
			return nil, fmt.Errorf("%w: unrecognized note field %q", ErrInvalidFilter, spec.TextContains.Field)
		}
	}
	if spec.Sort == SortDueDate {
		return nil, fmt.Errorf("%w: notes have no due date", ErrInvalidFilter)
	}
	priorities, err := parseNotePriorities(spec.PriorityIn)
	if err != nil {
		return nil, err
	}

	out := make([]note.Note, 0, len(in))
	for _, n := range in {
		if spec.TextContains != nil && !noteFieldContains(n, *spec.TextContains) {
			continue
		}
		if len(spec.TagIn) > 0 && !tagsIntersect(n.Tags, spec.TagIn) {
			continue
		}
		if spec.DateRange != nil && !inRange(n.CreatedAt, *spec.DateRange) {
			continue
		}
		if len(priorities) > 0 && !notePriorityMatches(priorities, n.Priority) {
			continue
		}
		out = append(out, n)
	}

	switch spec.Sort {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortCreatedAt:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return notePriorityRank(out[i].Priority) > notePriorityRank(out[j].Priority)
		})
	}
	return out, nil
}

// Assignments applies a predicate spec to an assignment snapshot. Status
// filters match the derived status at now, so status_in=overdue finds
// assignments past due even though overdue is never stored.
func Assignments(in []assignment.Assignment, spec Spec, now time.Time) ([]assignment.Assignment, error) {
	if spec.TextContains != nil {
		switch spec.TextContains.Field {
		case "title", "description", "subject":
		default:
			return nil, fmt.Errorf("%w: unrecognized assignment field %q", ErrInvalidFilter, spec.TextContains.Field)
		}
	}
	statuses, err := parseStatuses(spec.StatusIn)
	if err != nil {
		return nil, err
	}
	priorities, err := parsePriorities(spec.PriorityIn)
	if err != nil {
		return nil, err
	}

	out := make([]assignment.Assignment, 0, len(in))
	for _, a := range in {
		if spec.TextContains != nil && !assignmentFieldContains(a, *spec.TextContains) {
			continue
		}
		if len(spec.TagIn) > 0 && !tagsIntersect(a.Tags, spec.TagIn) {
			continue
		}
		if spec.DateRange != nil && !inRange(a.DueDate, *spec.DateRange) {
			continue
		}
		if len(statuses) > 0 && !statusMatches(statuses, a.EffectiveStatus(now)) {
			continue
		}
		if len(priorities) > 0 && !intsContain(priorities, a.Priority) {
			continue
		}
		out = append(out, a)
	}

	switch spec.Sort {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortCreatedAt:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case SortDueDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	}
	return out, nil
}

func noteFieldContains(n note.Note, f TextFilter) bool {
	var field string
	switch f.Field {
	case "title":
		field = n.Title
	case "content":
		field = n.Content
	case "category":
		field = n.Category
	}
	return containsInsensitive(field, f.Substring)
}

func assignmentFieldContains(a assignment.Assignment, f TextFilter) bool {
	var field string
	switch f.Field {
	case "title":
		field = a.Title
	case "description":
		field = a.Description
	case "subject":
		field = a.Subject
	}
	return containsInsensitive(field, f.Substring)
}

func parseStatuses(in []string) ([]assignment.Status, error) {
	out := make([]assignment.Status, 0, len(in))
	for _, s := range in {
		status := assignment.Status(strings.ToLower(strings.TrimSpace(s)))
		switch status {
		case assignment.StatusPending, assignment.StatusInProgress,
			assignment.StatusCompleted, assignment.StatusOverdue:
			out = append(out, status)
		default:
			return nil, fmt.Errorf("%w: unrecognized status %q", ErrInvalidFilter, s)
		}
	}
	return out, nil
}

func parsePriorities(in []string) ([]int, error) {
	out := make([]int, 0, len(in))
	for _, s := range in {
		p, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || p < 1 || p > assignment.MaxPriority {
			return nil, fmt.Errorf("%w: priority must be 1..%d, got %q", ErrInvalidFilter, assignment.MaxPriority, s)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseNotePriorities(in []string) ([]note.Priority, error) {
	out := make([]note.Priority, 0, len(in))
	for _, s := range in {
		p := note.Priority(strings.ToLower(strings.TrimSpace(s)))
		switch p {
		case note.PriorityLow, note.PriorityMedium, note.PriorityHigh:
			out = append(out, p)
		default:
			return nil, fmt.Errorf("%w: note priority must be low, medium, or high, got %q", ErrInvalidFilter, s)
		}
	}
	return out, nil
}

func notePriorityMatches(want []note.Priority, got note.Priority) bool {
	for _, p := range want {
		if p == got {
			return true
		}
	}
	return false
}

func statusMatches(want []assignment.Status, got assignment.Status) bool {
	for _, s := range want {
		if s == got {
			return true
		}
	}
	return false
}

func intsContain(want []int, got int) bool {
	for _, w := range want {
		if w == got {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func containsInsensitive(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func tagsIntersect(tags, want []string) bool {
	for _, w := range want {
		if containsFold(tags, w) {
			return true
		}
	}
	return false
}

func inRange(t time.Time, dr DateRange) bool {
	if !dr.From.IsZero() && t.Before(dr.From) {
		return false
	}
	if !dr.To.IsZero() && t.After(dr.To) {
		return false
	}
	return true
}

func notePriorityRank(p note.Priority) int {
	switch p {
	case note.PriorityHigh:
		return 2
	case note.PriorityMedium:
		return 1
	default:
		return 0
	}
}
