package breeds

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

func (s *Service) List(ctx context.Context, search string) ([]Breed, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Breed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	b, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, b)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	b, err := normalize(in)
	if err != nil {
		return err
	}
	b.ID = id
	return s.repo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Breed, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.SpeciesID.Positive() {
		return Breed{}, apperr.Invalid("NombreRaza y EspecieID son obligatorios.")
	}
	if err := limits.Check(limits.Field{Name: "NombreRaza", Value: name, Max: limits.Name}); err != nil {
		return Breed{}, err
	}
	return Breed{Name: name, SpeciesID: in.SpeciesID.Value}, nil
}
