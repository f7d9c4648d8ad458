package appointmentservices

import (
	"context"
	"strings"

	"veterinaria-api/internal/domain/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, search string) ([]AppointmentService, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

func (s *Service) GetByID(ctx context.Context, id int64) (AppointmentService, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	a, err := normalize(in)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	a, err := normalize(in)
	if err != nil {
		return err
	}
	a.ID = id
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Report arma el reporte de una cita con sus servicios y el total a pagar.
func (s *Service) Report(ctx context.Context, appointmentID int64) (Report, error) {
	rows, err := s.repo.ReportRows(ctx, appointmentID)
	if err != nil {
		return Report{}, err
	}
	if len(rows) == 0 {
		return Report{}, apperr.ErrNotFound
	}
	return BuildReport(rows), nil
}

func normalize(in Input) (AppointmentService, error) {
	if !in.AppointmentID.Positive() || !in.ServiceID.Positive() {
		return AppointmentService{}, apperr.Invalid("CitaID y ServicioID son obligatorios.")
	}
	return AppointmentService{
		AppointmentID: in.AppointmentID.Value,
		ServiceID:     in.ServiceID.Value,
	}, nil
}
