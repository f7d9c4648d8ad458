package subcategories

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

func (s *Service) List(ctx context.Context, search string) ([]Subcategory, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Subcategory, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	sc, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, sc)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	sc, err := normalize(in)
	if err != nil {
		return err
	}
	sc.ID = id
	return s.repo.Update(ctx, sc)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Subcategory, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.CategoryID.Positive() {
		return Subcategory{}, apperr.Invalid("CategoriaProductoID y Nombre son obligatorios.")
	}
	if err := limits.Check(limits.Field{Name: "Nombre", Value: name, Max: limits.Name}); err != nil {
		return Subcategory{}, err
	}

	sc := Subcategory{CategoryID: in.CategoryID.Value, Name: name}
	// Descripción vacía se guarda como NULL.
	if d := strings.TrimSpace(in.Description); d != "" {
		sc.Description = &d
	}
	return sc, nil
}
