package clients

import (
	"context"
	"regexp"
	"strings"
	"time"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/limits"
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, search string) ([]Client, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	c, err := normalize(in)
	if err != nil {
		return 0, err
	}
	if c.Email == "" {
		c.Email = DefaultEmail
	}

	now := s.now()
	c.CreatedAt = now
	c.UpdatedAt = now

	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	c, err := normalize(in)
	if err != nil {
		return err
	}
	c.ID = id
	c.UpdatedAt = s.now()

	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Client, error) {
	c := Client{
		FirstName:       strings.TrimSpace(in.FirstName),
		PaternalSurname: strings.TrimSpace(in.PaternalSurname),
		MaternalSurname: strings.TrimSpace(in.MaternalSurname),
		DNI:             strings.TrimSpace(in.DNI),
		Phone:           strings.TrimSpace(in.Phone),
		Address:         strings.TrimSpace(in.Address),
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}

	if c.FirstName == "" || c.PaternalSurname == "" || c.MaternalSurname == "" || c.DNI == "" {
		return Client{}, apperr.Invalid("Faltan campos obligatorios: PrimerNombre, ApellidoPaterno, ApellidoMaterno, DNI.")
	}
	if !dniPattern.MatchString(c.DNI) {
		return Client{}, apperr.Invalid("El DNI debe contener exactamente 8 dígitos numéricos.")
	}
	err := limits.Check(
		limits.Field{Name: "PrimerNombre", Value: c.FirstName, Max: limits.Name},
		limits.Field{Name: "ApellidoPaterno", Value: c.PaternalSurname, Max: limits.Name},
		limits.Field{Name: "ApellidoMaterno", Value: c.MaternalSurname, Max: limits.Name},
		limits.Field{Name: "Telefono", Value: c.Phone, Max: limits.Phone},
		limits.Field{Name: "Direccion", Value: c.Address, Max: limits.Address},
		limits.Field{Name: "Correo", Value: c.Email, Max: limits.Email},
	)
	if err != nil {
		return Client{}, err
	}
	return c, nil
}
