package query_test

import (
	"testing"
	"time"

	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/domain/note"
	"github.com/acortes/studytrack/internal/query"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleNotes() []note.Note {
	return []note.Note{
		{ID: 1, Title: "Biology flashcards", Content: "mitosis", Category: "school", Priority: note.PriorityHigh, Tags: []string{"exam"}, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 2, Title: "Groceries", Content: "milk, eggs", Category: "personal", Priority: note.PriorityLow, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 3, Title: "Algebra review", Content: "matrices", Category: "school", Priority: note.PriorityMedium, Tags: []string{"exam", "math"}, CreatedAt: now},
	}
}

func sampleAssignments() []assignment.Assignment {
	return []assignment.Assignment{
		{ID: 1, Title: "Essay draft", Subject: "other", Status: assignment.StatusPending, Priority: 2, DueDate: now.Add(100 * time.Hour), CreatedAt: now.Add(-72 * time.Hour)},
		{ID: 2, Title: "Problem set 5", Subject: "math", Status: assignment.StatusInProgress, Priority: 4, DueDate: now.Add(20 * time.Hour), Tags: []string{"exam"}, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: 3, Title: "Lab writeup", Subject: "science", Status: assignment.StatusPending, Priority: 5, DueDate: now.Add(-3 * time.Hour), CreatedAt: now.Add(-24 * time.Hour)},
	}
}

func TestParseSpec_UnrecognizedKey(t *testing.T) {
	_, err := query.ParseSpec([]string{"colour=red"})
	require.ErrorIs(t, err, query.ErrInvalidFilter)
}

func TestParseSpec_MalformedExpressions(t *testing.T) {
	for _, expr := range []string{
		"text_contains",
		"text_contains=titleonly",
		"date_range=2026-01-01",
		"date_range=notadate..2026-01-01",
		"sort=size",
	} {
		_, err := query.ParseSpec([]string{expr})
		require.ErrorIs(t, err, query.ErrInvalidFilter, "expr %q", expr)
	}
}

func TestNotes_EmptySpecIsIdentity(t *testing.T) {
	in := sampleNotes()
	out, err := query.Notes(in, query.Spec{})
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestNotes_TextContains(t *testing.T) {
	spec, err := query.ParseSpec([]string{"text_contains=title:ALGEBRA"})
	require.NoError(t, err)

	out, err := query.Notes(sampleNotes(), spec)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(3), out[0].ID)
}

func TestNotes_PriorityUnknownValue(t *testing.T) {
	spec, err := query.ParseSpec([]string{"priority_in=banana"})
	require.NoError(t, err)

	_, err = query.Notes(sampleNotes(), spec)
	require.ErrorIs(t, err, query.ErrInvalidFilter)
}

func TestNotes_TagAndPriority(t *testing.T) {
	spec, err := query.ParseSpec([]string{"tag_in=exam", "priority_in=high,medium"})
	require.NoError(t, err)

	out, err := query.Notes(sampleNotes(), spec)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, int64(1), out[0].ID)
	require.Equal(t, int64(3), out[1].ID)
}

func TestNotes_StatusFilterRejected(t *testing.T) {
	spec, err := query.ParseSpec([]string{"status_in=pending"})
	require.NoError(t, err)

	_, err = query.Notes(sampleNotes(), spec)
	require.ErrorIs(t, err, query.ErrInvalidFilter)
}

func TestNotes_UnknownField(t *testing.T) {
	spec, err := query.ParseSpec([]string{"text_contains=due_date:x"})
	require.NoError(t, err)

	_, err = query.Notes(sampleNotes(), spec)
	require.ErrorIs(t, err, query.ErrInvalidFilter)
}

func TestNotes_SortByTitle(t *testing.T) {
	spec, err := query.ParseSpec([]string{"sort=title"})
	require.NoError(t, err)

	out, err := query.Notes(sampleNotes(), spec)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2}, noteIDs(out))
}

func TestAssignments_EmptySpecIsIdentity(t *testing.T) {
	in := sampleAssignments()
	out, err := query.Assignments(in, query.Spec{}, now)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestAssignments_StatusInMatchesDerivedOverdue(t *testing.T) {
	spec, err := query.ParseSpec([]string{"status_in=overdue"})
	require.NoError(t, err)

	out, err := query.Assignments(sampleAssignments(), spec, now)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, int64(3), out[0].ID)
}

func TestAssignments_PriorityIn(t *testing.T) {
	spec, err := query.ParseSpec([]string{"priority_in=4,5"})
	require.NoError(t, err)

	out, err := query.Assignments(sampleAssignments(), spec, now)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 3}, assignmentIDs(out))
}

func TestAssignments_PriorityOutOfRange(t *testing.T) {
	spec, err := query.ParseSpec([]string{"priority_in=12"})
	require.NoError(t, err)

	_, err = query.Assignments(sampleAssignments(), spec, now)
	require.ErrorIs(t, err, query.ErrInvalidFilter)
}

func TestAssignments_DateRangeOnDueDate(t *testing.T) {
	spec, err := query.ParseSpec([]string{"date_range=2026-03-01..2026-03-03"})
	require.NoError(t, err)

	out, err := query.Assignments(sampleAssignments(), spec, now)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 3}, assignmentIDs(out))
}

func TestAssignments_SortByDueDate(t *testing.T) {
	spec, err := query.ParseSpec([]string{"sort=due_date"})
	require.NoError(t, err)

	out, err := query.Assignments(sampleAssignments(), spec, now)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 2, 1}, assignmentIDs(out))
}

func TestAssignments_FilteringIsStable(t *testing.T) {
	spec, err := query.ParseSpec([]string{"status_in=pending"})
	require.NoError(t, err)

	out, err := query.Assignments(sampleAssignments(), spec, now)
	require.NoError(t, err)
	// id 3 is pending in storage but derives to overdue
	require.Equal(t, []int64{1}, assignmentIDs(out))
}

func noteIDs(in []note.Note) []int64 {
	out := make([]int64, len(in))
	for i, n := range in {
		out[i] = n.ID
	}
	return out
}

func assignmentIDs(in []assignment.Assignment) []int64 {
	out := make([]int64, len(in))
	for i, a := range in {
		out[i] = a.ID
	}
	return out
}
