package employees

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, e Employee) (int64, error)
	Update(ctx context.Context, e Employee) error
	Delete(ctx context.Context, id int64) error
}
