package roles

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Role, error)
	GetByID(ctx context.Context, id int64) (Role, error)
	Create(ctx context.Context, r Role) (int64, error)
	Update(ctx context.Context, r Role) error
	Delete(ctx context.Context, id int64) error
}
