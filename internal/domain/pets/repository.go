package pets

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, p Pet) (int64, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
}
