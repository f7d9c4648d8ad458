package appointments

import (
	"context"
	"strings"
	"time"

	"veterinaria-api/internal/domain/apperr"
)

type Service struct {
	repo Repository
	now  func() time.Time
	loc  *time.Location
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
	}
}

func (s *Service) List(ctx context.Context, search string) ([]Appointment, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Create agenda una cita. Fecha vacía = ahora; Estado vacío = Pendiente.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if !in.PetID.Positive() || !in.EmployeeID.Positive() {
		return 0, apperr.Invalid("Mascota y Empleado son obligatorios.")
	}

	now := s.now()

	date := now
	if strings.TrimSpace(in.Date) != "" {
		d, err := ParseDate(in.Date, s.loc)
		if err != nil {
			return 0, err
		}
		date = d
	}
	if IsDateInPast(date, now) {
		return 0, apperr.Invalid("No se puede agendar una cita en el pasado.")
	}

	status := Status(strings.TrimSpace(in.Status))
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return 0, invalidStatus()
	}

	return s.repo.Create(ctx, Appointment{
		Date:       date,
		Status:     status,
		PetID:      in.PetID.Value,
		EmployeeID: in.EmployeeID.Value,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// Update reemplaza los campos editables. Ver CheckReschedule para la regla de fechas.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	status := Status(strings.TrimSpace(in.Status))
	if strings.TrimSpace(in.Date) == "" || status == "" || !in.PetID.Positive() || !in.EmployeeID.Positive() {
		return apperr.Invalid("Todos los campos son obligatorios para actualizar la cita.")
	}
	if !status.Valid() {
		return invalidStatus()
	}

	date, err := ParseDate(in.Date, s.loc)
	if err != nil {
		return err
	}

	now := s.now()
	a := Appointment{
		ID:         id,
		Date:       date,
		Status:     status,
		PetID:      in.PetID.Value,
		EmployeeID: in.EmployeeID.Value,
		UpdatedAt:  now,
	}

	return s.repo.Update(ctx, a, func(stored time.Time) error {
		return CheckReschedule(date, stored, now)
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func invalidStatus() error {
	return apperr.Invalid("Estado inválido. Valores permitidos: Pendiente, Programada, Confirmada, Completada, Cancelada.")
}
