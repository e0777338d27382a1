package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/acortes/studytrack/internal/domain/assignment"
	"github.com/acortes/studytrack/internal/repository"
)

// AssignmentRepository implements assignment.Repository for SQLite
type AssignmentRepository struct {
	db *DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts an assignment and assigns its generated id.
func (r *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) error {
	query := `
		INSERT INTO assignments (
			title, description, subject, due_date, status,
			priority, estimated_hours, tags, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		a.Title,
		a.Description,
		a.Subject,
		a.DueDate,
		a.Status,
		a.Priority,
		a.EstimatedHours,
		joinTags(a.Tags),
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read assignment id: %w", err)
	}
	a.ID = id

	return nil
}

// Get retrieves an assignment by ID
func (r *AssignmentRepository) Get(ctx context.Context, id int64) (*assignment.Assignment, error) {
	query := `
		SELECT id, title, description, subject, due_date, status,
		       priority, estimated_hours, tags, created_at
		FROM assignments
		WHERE id = ?
	`

	var a assignment.Assignment
	var tags string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Subject,
		&a.DueDate,
		&a.Status,
		&a.Priority,
		&a.EstimatedHours,
		&tags,
		&a.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	a.Tags = splitTags(tags)

	return &a, nil
}

// Update overwrites an assignment's mutable fields.
func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	query := `
		UPDATE assignments
		SET title = ?, description = ?, subject = ?, due_date = ?,
		    status = ?, priority = ?, estimated_hours = ?, tags = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		a.Title,
		a.Description,
		a.Subject,
		a.DueDate,
		a.Status,
		a.Priority,
		a.EstimatedHours,
		joinTags(a.Tags),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete deletes an assignment. The id is never reassigned.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns assignments matching the given options in id order.
func (r *AssignmentRepository) List(ctx context.Context, opts assignment.ListOptions) ([]assignment.Assignment, error) {
	query := `
		SELECT id, title, description, subject, due_date, status,
		       priority, estimated_hours, tags, created_at
		FROM assignments
	`

	args := []interface{}{}
	conditions := []string{}

	if len(opts.Statuses) > 0 {
		placeholders := make([]string, len(opts.Statuses))
		for i, status := range opts.Statuses {
			placeholders[i] = "?"
			args = append(args, status)
		}
		conditions = append(conditions, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(opts.Subjects) > 0 {
		placeholders := make([]string, len(opts.Subjects))
		for i, subject := range opts.Subjects {
			placeholders[i] = "?"
			args = append(args, subject)
		}
		conditions = append(conditions, fmt.Sprintf("subject IN (%s)", strings.Join(placeholders, ",")))
	}

	if opts.DueBefore != nil {
		conditions = append(conditions, "due_date < ?")
		args = append(args, *opts.DueBefore)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY id ASC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		var tags string
		err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&a.Subject,
			&a.DueDate,
			&a.Status,
			&a.Priority,
			&a.EstimatedHours,
			&tags,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Tags = splitTags(tags)
		assignments = append(assignments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}

	return assignments, nil
}
