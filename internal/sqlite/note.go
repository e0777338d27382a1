package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/acortes/studytrack/internal/domain/note"
	"github.com/acortes/studytrack/internal/repository"
)

// NoteRepository implements note.Repository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note and assigns its generated id.
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	query := `
		INSERT INTO notes (title, content, priority, category, tags, archived, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		n.Title,
		n.Content,
		n.Priority,
		n.Category,
		joinTags(n.Tags),
		n.Archived,
		n.CreatedAt,
		n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read note id: %w", err)
	}
	n.ID = id

	return nil
}

// Get retrieves a note by ID
func (r *NoteRepository) Get(ctx context.Context, id int64) (*note.Note, error) {
	query := `
		SELECT id, title, content, priority, category, tags, archived, created_at, updated_at
		FROM notes
		WHERE id = ?
	`

	var n note.Note
	var tags string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID,
		&n.Title,
		&n.Content,
		&n.Priority,
		&n.Category,
		&tags,
		&n.Archived,
		&n.CreatedAt,
		&n.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	n.Tags = splitTags(tags)

	return &n, nil
}

// Update overwrites a note's mutable fields.
func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	query := `
		UPDATE notes
		SET title = ?, content = ?, priority = ?, category = ?, tags = ?, archived = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		n.Title,
		n.Content,
		n.Priority,
		n.Category,
		joinTags(n.Tags),
		n.Archived,
		n.UpdatedAt,
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
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

// Delete deletes a note. The id is never reassigned.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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

// List returns notes matching the given options in id order.
func (r *NoteRepository) List(ctx context.Context, opts note.ListOptions) ([]note.Note, error) {
	query := `
		SELECT id, title, content, priority, category, tags, archived, created_at, updated_at
		FROM notes
	`

	args := []interface{}{}
	conditions := []string{}

	if opts.Archived != nil {
		conditions = append(conditions, "archived = ?")
		args = append(args, *opts.Archived)
	}

	if len(opts.Categories) > 0 {
		placeholders := make([]string, len(opts.Categories))
		for i, category := range opts.Categories {
			placeholders[i] = "?"
			args = append(args, category)
		}
		conditions = append(conditions, fmt.Sprintf("category IN (%s)", strings.Join(placeholders, ",")))
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
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		var tags string
		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Content,
			&n.Priority,
			&n.Category,
			&tags,
			&n.Archived,
			&n.CreatedAt,
			&n.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		n.Tags = splitTags(tags)
		notes = append(notes, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return notes, nil
}
