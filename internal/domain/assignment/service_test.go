package assignment_test

import (
	"context"
	"testing"
	"time"

	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignmentService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssignmentRepository{}
	repo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*assignment.Assignment).ID = 1
	}).Return(nil)

	svc := assignment.NewService(repo, nil, nil)
	a, err := svc.Create(ctx, assignment.CreateRequest{
		Title:          "Physics lab report",
		Subject:        "Science",
		DueDate:        time.Now().Add(72 * time.Hour),
		EstimatedHours: 4,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, assignment.StatusPending, a.Status)
	require.Equal(t, "science", a.Subject)
	require.Equal(t, 3, a.Priority)
}

func TestAssignmentService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssignmentRepository{}
	svc := assignment.NewService(repo, nil, nil)

	_, err := svc.Create(ctx, assignment.CreateRequest{
		Title:   "no due date",
		DueDate: time.Time{},
	})
	require.ErrorIs(t, err, assignment.ErrValidation)

	_, err = svc.Create(ctx, assignment.CreateRequest{
		Title:          "negative effort",
		DueDate:        time.Now().Add(time.Hour),
		EstimatedHours: -2,
	})
	require.ErrorIs(t, err, assignment.ErrValidation)

	_, err = svc.Create(ctx, assignment.CreateRequest{
		Title:    "priority out of range",
		DueDate:  time.Now().Add(time.Hour),
		Priority: 9,
	})
	require.ErrorIs(t, err, assignment.ErrValidation)

	repo.AssertNotCalled(t, "Create")
}

func TestAssignmentService_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssignmentRepository{}
	repo.On("Get", ctx, int64(1)).Return(&assignment.Assignment{
		ID: 1, Status: assignment.StatusPending,
	}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	svc := assignment.NewService(repo, nil, nil)
	a, err := svc.SetStatus(ctx, 1, assignment.StatusInProgress)
	require.NoError(t, err)
	require.Equal(t, assignment.StatusInProgress, a.Status)
}

func TestAssignmentService_SetStatus_CompletedIsTerminal(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssignmentRepository{}
	repo.On("Get", ctx, int64(1)).Return(&assignment.Assignment{
		ID: 1, Status: assignment.StatusCompleted,
	}, nil)

	svc := assignment.NewService(repo, nil, nil)
	_, err := svc.SetStatus(ctx, 1, assignment.StatusPending)
	require.ErrorIs(t, err, assignment.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update")
}

func TestAssignmentService_SetStatus_OverdueNotSettable(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssignmentRepository{}
	repo.On("Get", ctx, int64(1)).Return(&assignment.Assignment{
		ID: 1, Status: assignment.StatusPending,
	}, nil)

	svc := assignment.NewService(repo, nil, nil)
	_, err := svc.SetStatus(ctx, 1, assignment.StatusOverdue)
	require.ErrorIs(t, err, assignment.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update")
}

func TestAssignmentService_Update_CompletedRejected(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.AssignmentRepository{}
	repo.On("Get", ctx, int64(1)).Return(&assignment.Assignment{
		ID: 1, Status: assignment.StatusCompleted,
	}, nil)

	svc := assignment.NewService(repo, nil, nil)
	title := "late edit"
	_, err := svc.Update(ctx, assignment.UpdateRequest{ID: 1, Title: &title})
	require.ErrorIs(t, err, assignment.ErrCompleted)
	repo.AssertNotCalled(t, "Update")
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		from, to assignment.Status
		ok       bool
	}{
		{assignment.StatusPending, assignment.StatusInProgress, true},
		{assignment.StatusInProgress, assignment.StatusPending, true},
		{assignment.StatusPending, assignment.StatusCompleted, true},
		{assignment.StatusInProgress, assignment.StatusCompleted, true},
		{assignment.StatusCompleted, assignment.StatusPending, false},
		{assignment.StatusCompleted, assignment.StatusInProgress, false},
		{assignment.StatusPending, assignment.StatusOverdue, false},
		{assignment.StatusInProgress, assignment.StatusOverdue, false},
	}
	for _, c := range cases {
		err := assignment.ValidateTransition(c.from, c.to)
		if c.ok {
			require.NoError(t, err, "%s -> %s", c.from, c.to)
		} else {
			require.ErrorIs(t, err, assignment.ErrInvalidTransition, "%s -> %s", c.from, c.to)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	pastDue := assignment.Assignment{Status: assignment.StatusInProgress, DueDate: now.Add(-time.Minute)}
	require.Equal(t, assignment.StatusOverdue, pastDue.EffectiveStatus(now))

	completed := assignment.Assignment{Status: assignment.StatusCompleted, DueDate: now.Add(-time.Hour)}
	require.Equal(t, assignment.StatusCompleted, completed.EffectiveStatus(now))

	upcoming := assignment.Assignment{Status: assignment.StatusPending, DueDate: now.Add(time.Hour)}
	require.Equal(t, assignment.StatusPending, upcoming.EffectiveStatus(now))
}
