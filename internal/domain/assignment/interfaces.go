package assignment

import "context"

// Repository provides persistence for assignments. Create assigns the
// assignment a monotonically increasing identifier that is never reused.
type Repository interface {
	Create(ctx context.Context, a *Assignment) error
	Get(ctx context.Context, id int64) (*Assignment, error)
	Update(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, opts ListOptions) ([]Assignment, error)
}
