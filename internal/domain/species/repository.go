package species

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Species, error)
	GetByID(ctx context.Context, id int64) (Species, error)
	Create(ctx context.Context, s Species) (int64, error)
	Update(ctx context.Context, s Species) error
	Delete(ctx context.Context, id int64) error
}
