package mocks

import (
	"context"

	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/domain/note"
	"github.com/stretchr/testify/mock"
)

// NoteRepository is a mock for note.Repository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Get(ctx context.Context, id int64) (*note.Note, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*note.Note); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NoteRepository) List(ctx context.Context, opts note.ListOptions) ([]note.Note, error) {
	args := m.Called(ctx, opts)
	if notes, ok := args.Get(0).([]note.Note); ok {
		return notes, args.Error(1)
	}
	return nil, args.Error(1)
}

// AssignmentRepository is a mock for assignment.Repository.
type AssignmentRepository struct {
	mock.Mock
}

func (m *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssignmentRepository) Get(ctx context.Context, id int64) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*assignment.Assignment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssignmentRepository) List(ctx context.Context, opts assignment.ListOptions) ([]assignment.Assignment, error) {
	args := m.Called(ctx, opts)
	if assignments, ok := args.Get(0).([]assignment.Assignment); ok {
		return assignments, args.Error(1)
	}
	return nil, args.Error(1)
}
