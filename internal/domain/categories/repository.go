package categories

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, c Category) (int64, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id int64) error
}
