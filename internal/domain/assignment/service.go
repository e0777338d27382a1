package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/acortes/studytrack/internal/domain/enumset"
	"github.com/acortes/studytrack/internal/repository"
)

// Service handles assignment business logic.
type Service struct {
	assignments Repository
	subjects    *enumset.Set
	logger      *slog.Logger
}

// NewService creates a new assignment service.
func NewService(assignments Repository, subjects *enumset.Set, logger *slog.Logger) *Service {
	if subjects == nil {
		subjects = enumset.New(DefaultSubjects...)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		assignments: assignments,
		subjects:    subjects,
		logger:      logger,
	}
}

// CreateRequest describes an assignment creation request.
type CreateRequest struct {
	Title          string `validate:"required,notblank"`
	Description    string
	Subject        string
	DueDate        time.Time `validate:"required"`
	Priority       int       `validate:"omitempty,gte=1,lte=5"`
	EstimatedHours float64   `validate:"gte=0"`
	Tags           []string
}

// UpdateRequest describes an assignment update request. Nil fields are left
// as-is. Status changes go through SetStatus, not here.
type UpdateRequest struct {
	ID             int64
	Title          *string `validate:"omitempty,notblank"`
	Description    *string
	Subject        *string
	DueDate        *time.Time
	Priority       *int     `validate:"omitempty,gte=1,lte=5"`
	EstimatedHours *float64 `validate:"omitempty,gte=0"`
	Tags           []string
}

// Create validates and persists a new assignment. Nothing is stored on a
// validation failure.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Assignment, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == 0 {
		priority = 3
	}
	subject := enumset.Normalize(req.Subject)
	if subject == "" {
		subject = "other"
	}

	a := &Assignment{
		Title:          req.Title,
		Description:    req.Description,
		Subject:        subject,
		DueDate:        req.DueDate,
		Status:         StatusPending,
		Priority:       priority,
		EstimatedHours: req.EstimatedHours,
		Tags:           normalizeTags(req.Tags),
		CreatedAt:      time.Now(),
	}

	if err := repository.Retry(func() error { return s.assignments.Create(ctx, a) }); err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}
	s.subjects.Register(subject)

	s.logger.Info("assignment created", "id", a.ID, "due", a.DueDate, "subject", a.Subject)
	return a, nil
}

// Update modifies a non-completed assignment's attributes.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Assignment, error) {
	if err := ValidateUpdateInput(req); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if current.Status == StatusCompleted {
		return nil, ErrCompleted
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Subject != nil {
		subject := enumset.Normalize(*req.Subject)
		if subject == "" {
			return nil, fmt.Errorf("%w: subject cannot be blank", ErrValidation)
		}
		updated.Subject = subject
	}
	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			return nil, fmt.Errorf("%w: due date is required", ErrValidation)
		}
		updated.DueDate = *req.DueDate
	}
	if req.Priority != nil {
		updated.Priority = *req.Priority
	}
	if req.EstimatedHours != nil {
		updated.EstimatedHours = *req.EstimatedHours
	}
	if req.Tags != nil {
		updated.Tags = normalizeTags(req.Tags)
	}

	if err := repository.Retry(func() error { return s.assignments.Update(ctx, &updated) }); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("updating assignment: %w", err)
	}
	s.subjects.Register(updated.Subject)

	return &updated, nil
}

// SetStatus applies a validated status transition.
func (s *Service) SetStatus(ctx context.Context, id int64, to Status) (*Assignment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(current.Status, to); err != nil {
		return nil, err
	}

	updated := *current
	updated.Status = to

	if err := repository.Retry(func() error { return s.assignments.Update(ctx, &updated) }); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("transitioning assignment: %w", err)
	}

	s.logger.Info("assignment status changed", "id", id, "from", current.Status, "to", to)
	return &updated, nil
}

// Get returns an assignment by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Assignment, error) {
	a, err := s.assignments.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("getting assignment: %w", err)
	}
	return a, nil
}

// List returns assignments matching the given options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Assignment, error) {
	var assignments []Assignment
	err := repository.Retry(func() error {
		var listErr error
		assignments, listErr = s.assignments.List(ctx, opts)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	return assignments, nil
}

// ListActive returns the non-completed assignments, the working set for
// scoring and planning.
func (s *Service) ListActive(ctx context.Context) ([]Assignment, error) {
	return s.List(ctx, ListOptions{
		Statuses: []Status{StatusPending, StatusInProgress},
	})
}

// Delete removes an assignment. Its identifier is never reused.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := repository.Retry(func() error { return s.assignments.Delete(ctx, id) })
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("deleting assignment: %w", err)
	}
	s.logger.Info("assignment deleted", "id", id)
	return nil
}

// Subjects returns the known subject values.
func (s *Service) Subjects() []string {
	return s.subjects.Values()
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = enumset.Normalize(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
