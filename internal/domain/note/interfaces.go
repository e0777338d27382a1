package note

import "context"

// Repository provides persistence for notes. Create assigns the note a
// monotonically increasing identifier that is never reused.
type Repository interface {
	Create(ctx context.Context, n *Note) error
	Get(ctx context.Context, id int64) (*Note, error)
	Update(ctx context.Context, n *Note) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, opts ListOptions) ([]Note, error)
}
