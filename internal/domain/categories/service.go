package categories

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

func (s *Service) List(ctx context.Context, search string) ([]Category, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	c, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	c, err := normalize(in)
	if err != nil {
		return err
	}
	c.ID = id
	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Category{}, apperr.Invalid("NombreCategoria es obligatorio.")
	}
	if err := limits.Check(limits.Field{Name: "NombreCategoria", Value: name, Max: limits.Name}); err != nil {
		return Category{}, err
	}
	return Category{Name: name}, nil
}
