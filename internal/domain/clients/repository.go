package clients

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]Client, error)
	GetByID(ctx context.Context, id int64) (Client, error)
	Create(ctx context.Context, c Client) (int64, error)
	Update(ctx context.Context, c Client) error
	Delete(ctx context.Context, id int64) error
}
