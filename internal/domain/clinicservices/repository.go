package clinicservices

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]ClinicService, error)
	GetByID(ctx context.Context, id int64) (ClinicService, error)
	Create(ctx context.Context, s ClinicService) (int64, error)
	Update(ctx context.Context, s ClinicService) error
	Delete(ctx context.Context, id int64) error
}
