package breeds

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Breed, error)
	GetByID(ctx context.Context, id int64) (Breed, error)
	Create(ctx context.Context, b Breed) (int64, error)
	Update(ctx context.Context, b Breed) error
	Delete(ctx context.Context, id int64) error
}
