package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/acortes/studytrack/internal/domain/enumset"
	"github.com/acortes/studytrack/internal/repository"
)

// Service handles note business logic.
type Service struct {
	notes      Repository
	categories *enumset.Set
	logger     *slog.Logger
}

// NewService creates a new note service.
func NewService(notes Repository, categories *enumset.Set, logger *slog.Logger) *Service {
	if categories == nil {
		categories = enumset.New(DefaultCategories...)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		notes:      notes,
		categories: categories,
		logger:     logger,
	}
}

// CreateRequest describes a note creation request.
type CreateRequest struct {
	Title    string   `validate:"required,notblank"`
	Content  string   `validate:"required,notblank"`
	Priority Priority `validate:"omitempty,oneof=low medium high"`
	Category string
	Tags     []string
}

// UpdateRequest describes a note update request. Nil fields are left as-is.
type UpdateRequest struct {
	ID       int64
	Title    *string   `validate:"omitempty,notblank"`
	Content  *string   `validate:"omitempty,notblank"`
	Priority *Priority `validate:"omitempty,oneof=low medium high"`
	Category *string
	Tags     []string
}

// Create validates and persists a new note. Nothing is stored on a
// validation failure.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Note, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	category := enumset.Normalize(req.Category)
	if category == "" {
		category = "other"
	}

	now := time.Now()
	n := &Note{
		Title:     req.Title,
		Content:   req.Content,
		Priority:  priority,
		Category:  category,
		Tags:      uniqueTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repository.Retry(func() error { return s.notes.Create(ctx, n) }); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	s.categories.Register(category)

	s.logger.Info("note created", "id", n.ID, "category", n.Category)
	return n, nil
}

// Update modifies an existing note and refreshes its updated timestamp.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Note, error) {
	if err := ValidateUpdateInput(req); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Title != nil {
		updated.Title = *req.Title
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}
	if req.Priority != nil {
		updated.Priority = *req.Priority
	}
	if req.Category != nil {
		category := enumset.Normalize(*req.Category)
		if category == "" {
			return nil, fmt.Errorf("%w: category cannot be blank", ErrValidation)
		}
		updated.Category = category
	}
	if req.Tags != nil {
		updated.Tags = uniqueTags(req.Tags)
	}
	updated.UpdatedAt = time.Now()

	if err := repository.Retry(func() error { return s.notes.Update(ctx, &updated) }); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("updating note: %w", err)
	}
	s.categories.Register(updated.Category)

	return &updated, nil
}

// SetArchived flips the archived flag on a note.
func (s *Service) SetArchived(ctx context.Context, id int64, archived bool) (*Note, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Archived == archived {
		return current, nil
	}

	updated := *current
	updated.Archived = archived
	updated.UpdatedAt = time.Now()

	if err := repository.Retry(func() error { return s.notes.Update(ctx, &updated) }); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("archiving note: %w", err)
	}

	s.logger.Info("note archived flag set", "id", id, "archived", archived)
	return &updated, nil
}

// Get returns a note by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Note, error) {
	n, err := s.notes.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("getting note: %w", err)
	}
	return n, nil
}

// List returns notes matching the given options.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Note, error) {
	var notes []Note
	err := repository.Retry(func() error {
		var listErr error
		notes, listErr = s.notes.List(ctx, opts)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

// Delete removes a note. Its identifier is never reused.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := repository.Retry(func() error { return s.notes.Delete(ctx, id) })
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("deleting note: %w", err)
	}
	s.logger.Info("note deleted", "id", id)
	return nil
}

// Categories returns the known category values.
func (s *Service) Categories() []string {
	return s.categories.Values()
}

func uniqueTags(tags []string) []string {
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
