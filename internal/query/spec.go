package query

import (
	"fmt"
	"strings"
	"time"
)

// Filter keys recognized by ParseSpec. Anything else is rejected.
const (
	KeyTextContains = "text_contains"
	KeyTagIn        = "tag_in"
	KeyDateRange    = "date_range"
	KeyStatusIn     = "status_in"
	KeyPriorityIn   = "priority_in"
	KeySort         = "sort"
)

// SortKey selects an explicit result ordering. Empty preserves input order.
type SortKey string

const (
	SortNone      SortKey = ""
	SortTitle     SortKey = "title"
	SortCreatedAt SortKey = "created_at"
	SortDueDate   SortKey = "due_date"
	SortPriority  SortKey = "priority"
)

// TextFilter matches a case-insensitive substring in a named field.
type TextFilter struct {
	Field     string
	Substring string
}

// DateRange is an inclusive [From, To] window. Zero bounds are open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Spec is the restricted predicate description used by search. It is a fixed
// enumerated filter set, not an expression language.
type Spec struct {
	TextContains *TextFilter
	TagIn        []string
	DateRange    *DateRange
	StatusIn     []string
	PriorityIn   []string
	Sort         SortKey
}

// Empty reports whether the spec has no filters and no sort.
func (s Spec) Empty() bool {
	return s.TextContains == nil && len(s.TagIn) == 0 && s.DateRange == nil &&
		len(s.StatusIn) == 0 && len(s.PriorityIn) == 0 && s.Sort == SortNone
}

// ParseSpec builds a Spec from key=value expressions, e.g.
//
//	text_contains=title:homework
//	tag_in=urgent,exam
//	date_range=2026-01-01..2026-02-01
//	status_in=pending,in_progress
//	priority_in=4,5
//	sort=due_date
//
// Unrecognized keys fail with ErrInvalidFilter.
func ParseSpec(exprs []string) (Spec, error) {
	var spec Spec
	for _, expr := range exprs {
		key, value, ok := strings.Cut(expr, "=")
		if !ok {
			return Spec{}, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidFilter, expr)
		}
		key = strings.TrimSpace(key)

		switch key {
		case KeyTextContains:
			field, substr, ok := strings.Cut(value, ":")
			if !ok || strings.TrimSpace(field) == "" || substr == "" {
				return Spec{}, fmt.Errorf("%w: text_contains expects field:substring", ErrInvalidFilter)
			}
			spec.TextContains = &TextFilter{Field: strings.TrimSpace(field), Substring: substr}
		case KeyTagIn:
			spec.TagIn = splitList(value)
		case KeyDateRange:
			dr, err := parseDateRange(value)
			if err != nil {
				return Spec{}, err
			}
			spec.DateRange = dr
		case KeyStatusIn:
			spec.StatusIn = splitList(value)
		case KeyPriorityIn:
			spec.PriorityIn = splitList(value)
		case KeySort:
			sortKey, err := parseSortKey(value)
			if err != nil {
				return Spec{}, err
			}
			spec.Sort = sortKey
		default:
			return Spec{}, fmt.Errorf("%w: unrecognized filter key %q", ErrInvalidFilter, key)
		}
	}
	return spec, nil
}

func parseSortKey(value string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(value)) {
	case SortTitle:
		return SortTitle, nil
	case SortCreatedAt:
		return SortCreatedAt, nil
	case SortDueDate:
		return SortDueDate, nil
	case SortPriority:
		return SortPriority, nil
	}
	return SortNone, fmt.Errorf("%w: unrecognized sort key %q", ErrInvalidFilter, value)
}

func parseDateRange(value string) (*DateRange, error) {
	fromStr, toStr, ok := strings.Cut(value, "..")
	if !ok {
		return nil, fmt.Errorf("%w: date_range expects from..to", ErrInvalidFilter)
	}
	var dr DateRange
	var err error
	if strings.TrimSpace(fromStr) != "" {
		if dr.From, err = parseDate(fromStr); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(toStr) != "" {
		if dr.To, err = parseDate(toStr); err != nil {
			return nil, err
		}
	}
	return &dr, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable date %q", ErrInvalidFilter, s)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
