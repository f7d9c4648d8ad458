package clinicservices

import (
	"context"
	"strings"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/limits"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, search string) ([]ClinicService, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (ClinicService, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	cs, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, cs)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	cs, err := normalize(in)
	if err != nil {
		return err
	}
	cs.ID = id
	return s.repo.Update(ctx, cs)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (ClinicService, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Price.Valid {
		return ClinicService{}, apperr.Invalid("NombreServicio y Precio son obligatorios.")
	}
	if in.Price.Decimal.IsNegative() {
		return ClinicService{}, apperr.Invalid("Precio debe ser un número válido mayor o igual a 0.")
	}

	// La columna es NUMERIC(10,2).
	price := in.Price.Decimal.Round(2)
	if price.GreaterThanOrEqual(limits.MaxPrice) {
		return ClinicService{}, apperr.Invalid("Precio debe ser menor a 100000000.")
	}
	if err := limits.Check(limits.Field{Name: "NombreServicio", Value: name, Max: limits.ServiceName}); err != nil {
		return ClinicService{}, err
	}

	cs := ClinicService{
		Name:          name,
		Price:         price.InexactFloat64(),
		SubcategoryID: in.SubcategoryID.Ptr(),
	}
	if cs.SubcategoryID != nil && *cs.SubcategoryID <= 0 {
		cs.SubcategoryID = nil
	}
	if d := strings.TrimSpace(in.Description); d != "" {
		cs.Description = &d
	}
	return cs, nil
}
