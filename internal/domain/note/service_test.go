package note_test

import (
	"context"
	"testing"

	"github.com/acortes/studytrack/internal/domain/note"
	"github.com/acortes/studytrack/internal/repository"
	"github.com/acortes/studytrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()
	notesRepo := &mocks.NoteRepository{}
	notesRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*note.Note).ID = 1
	}).Return(nil)

	svc := note.NewService(notesRepo, nil, nil)
	n, err := svc.Create(ctx, note.CreateRequest{
		Title:   "Lecture recap",
		Content: "Chapter 4 summary",
		Tags:    []string{"Exam", "exam", " ", "week2"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), n.ID)
	require.Equal(t, note.PriorityMedium, n.Priority)
	require.Equal(t, "other", n.Category)
	require.Equal(t, []string{"exam", "week2"}, n.Tags)
	require.False(t, n.CreatedAt.IsZero())
	require.False(t, n.UpdatedAt.Before(n.CreatedAt))
}

func TestNoteService_Create_EmptyTitle(t *testing.T) {
	ctx := context.Background()
	notesRepo := &mocks.NoteRepository{}

	svc := note.NewService(notesRepo, nil, nil)
	_, err := svc.Create(ctx, note.CreateRequest{
		Title:   "   ",
		Content: "body",
	})
	require.ErrorIs(t, err, note.ErrValidation)
	notesRepo.AssertNotCalled(t, "Create")
}

func TestNoteService_Create_BadPriority(t *testing.T) {
	ctx := context.Background()
	notesRepo := &mocks.NoteRepository{}

	svc := note.NewService(notesRepo, nil, nil)
	_, err := svc.Create(ctx, note.CreateRequest{
		Title:    "t",
		Content:  "c",
		Priority: "urgent",
	})
	require.ErrorIs(t, err, note.ErrValidation)
	notesRepo.AssertNotCalled(t, "Create")
}

func TestNoteService_Create_RegistersCategory(t *testing.T) {
	ctx := context.Background()
	notesRepo := &mocks.NoteRepository{}
	notesRepo.On("Create", ctx, mock.Anything).Return(nil)

	svc := note.NewService(notesRepo, nil, nil)
	_, err := svc.Create(ctx, note.CreateRequest{
		Title:    "t",
		Content:  "c",
		Category: "Chemistry",
	})
	require.NoError(t, err)
	require.Contains(t, svc.Categories(), "chemistry")
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()
	notesRepo := &mocks.NoteRepository{}
	notesRepo.On("Get", ctx, int64(3)).Return(&note.Note{
		ID: 3, Title: "old", Content: "body", Priority: note.PriorityLow, Category: "school",
	}, nil)
	notesRepo.On("Update", ctx, mock.Anything).Return(nil)

	svc := note.NewService(notesRepo, nil, nil)
	title := "new title"
	n, err := svc.Update(ctx, note.UpdateRequest{ID: 3, Title: &title})
	require.NoError(t, err)
	require.Equal(t, "new title", n.Title)
	require.Equal(t, "body", n.Content)
	require.False(t, n.UpdatedAt.IsZero())
}

func TestNoteService_SetArchived(t *testing.T) {
	ctx := context.Background()
	notesRepo := &mocks.NoteRepository{}
	notesRepo.On("Get", ctx, int64(2)).Return(&note.Note{ID: 2, Title: "t", Content: "c"}, nil)
	notesRepo.On("Update", ctx, mock.Anything).Return(nil)

	svc := note.NewService(notesRepo, nil, nil)
	n, err := svc.SetArchived(ctx, 2, true)
	require.NoError(t, err)
	require.True(t, n.Archived)
}

func TestNoteService_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	notesRepo := &mocks.NoteRepository{}
	notesRepo.On("Get", ctx, int64(9)).Return(nil, repository.ErrNotFound)

	svc := note.NewService(notesRepo, nil, nil)
	_, err := svc.Get(ctx, 9)
	require.ErrorIs(t, err, note.ErrNoteNotFound)
}
