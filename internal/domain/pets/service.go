package pets

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

func (s *Service) List(ctx context.Context, search string) ([]Pet, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	p, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	p, err := normalize(in)
	if err != nil {
		return err
	}
	p.ID = id
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Pet, error) {
	p := Pet{
		Name:     strings.TrimSpace(in.Name),
		Sex:      Sex(strings.TrimSpace(in.Sex)),
		ClientID: in.ClientID.Value,
		BreedID:  in.BreedID.Value,
	}

	// Edad 0 es válida (cachorros); lo obligatorio es que venga.
	if p.Name == "" || !in.Age.Valid || p.Sex == "" || !in.ClientID.Positive() || !in.BreedID.Positive() {
		return Pet{}, apperr.Invalid("Todos los campos son obligatorios: Nombre, Edad, Sexo, ClienteID, RazaID.")
	}
	if in.Age.Value < 0 {
		return Pet{}, apperr.Invalid("Edad no puede ser negativa.")
	}
	if in.Age.Value > limits.MaxAge {
		return Pet{}, apperr.Invalid("Edad fuera de rango.")
	}
	err := limits.Check(
		limits.Field{Name: "Nombre", Value: p.Name, Max: limits.Name},
		limits.Field{Name: "Sexo", Value: string(p.Sex), Max: limits.Sex},
	)
	if err != nil {
		return Pet{}, err
	}
	p.Age = int(in.Age.Value)
	return p, nil
}
