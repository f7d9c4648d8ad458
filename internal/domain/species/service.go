package species

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

func (s *Service) List(ctx context.Context, search string) ([]Species, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Species, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	sp, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, sp)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	sp, err := normalize(in)
	if err != nil {
		return err
	}
	sp.ID = id
	return s.repo.Update(ctx, sp)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Species, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Species{}, apperr.Invalid("NombreEspecie es obligatorio.")
	}
	if err := limits.Check(limits.Field{Name: "NombreEspecie", Value: name, Max: limits.Name}); err != nil {
		return Species{}, err
	}
	return Species{Name: name}, nil
}
