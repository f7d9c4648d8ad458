package roles

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

func (s *Service) List(ctx context.Context, search string) ([]Role, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Role, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	r, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	r, err := normalize(in)
	if err != nil {
		return err
	}
	r.ID = id
	return s.repo.Update(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Role, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Role{}, apperr.Invalid("NombreRol es obligatorio.")
	}
	if err := limits.Check(limits.Field{Name: "NombreRol", Value: name, Max: limits.Name}); err != nil {
		return Role{}, err
	}
	return Role{Name: name}, nil
}
