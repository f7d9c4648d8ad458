package subcategories

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Subcategory, error)
	GetByID(ctx context.Context, id int64) (Subcategory, error)
	Create(ctx context.Context, s Subcategory) (int64, error)
	Update(ctx context.Context, s Subcategory) error
	Delete(ctx context.Context, id int64) error
}
