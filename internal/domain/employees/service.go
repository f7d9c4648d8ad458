package employees

import (
	"context"
	"regexp"
	"strings"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/limits"
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, search string) ([]Employee, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	e, err := normalize(in)
	if err != nil {
		return 0, err
	}
	if e.Email == "" {
		e.Email = DefaultEmail
	}
	return s.repo.Create(ctx, e)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	e, err := normalize(in)
	if err != nil {
		return err
	}
	e.ID = id
	return s.repo.Update(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(in Input) (Employee, error) {
	e := Employee{
		FirstName:       strings.TrimSpace(in.FirstName),
		PaternalSurname: strings.TrimSpace(in.PaternalSurname),
		MaternalSurname: strings.TrimSpace(in.MaternalSurname),
		DNI:             strings.TrimSpace(in.DNI),
		Phone:           strings.TrimSpace(in.Phone),
		RoleID:          in.RoleID.Value,
	}
	if in.Email != nil {
		e.Email = strings.TrimSpace(*in.Email)
	}

	if e.FirstName == "" || e.PaternalSurname == "" || e.MaternalSurname == "" || e.DNI == "" || !in.RoleID.Positive() {
		return Employee{}, apperr.Invalid("Faltan campos obligatorios: PrimerNombre, ApellidoPaterno, ApellidoMaterno, DNI, RolID.")
	}
	if !dniPattern.MatchString(e.DNI) {
		return Employee{}, apperr.Invalid("El DNI debe contener exactamente 8 dígitos numéricos.")
	}
	err := limits.Check(
		limits.Field{Name: "PrimerNombre", Value: e.FirstName, Max: limits.Name},
		limits.Field{Name: "ApellidoPaterno", Value: e.PaternalSurname, Max: limits.Name},
		limits.Field{Name: "ApellidoMaterno", Value: e.MaternalSurname, Max: limits.Name},
		limits.Field{Name: "Telefono", Value: e.Phone, Max: limits.Phone},
		limits.Field{Name: "Correo", Value: e.Email, Max: limits.Email},
	)
	if err != nil {
		return Employee{}, err
	}
	return e, nil
}
