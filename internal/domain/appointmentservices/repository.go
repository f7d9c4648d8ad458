package appointmentservices

import "context"

type Repository interface {
	List(ctx context.Context, search string) ([]AppointmentService, error)
	GetByID(ctx context.Context, id int64) (AppointmentService, error)
	Create(ctx context.Context, a AppointmentService) (int64, error)
	Update(ctx context.Context, a AppointmentService) error
	Delete(ctx context.Context, id int64) error

	// ReportRows devuelve las filas del reporte ordenadas por nombre de servicio.
	// Sin filas = la cita no existe.
	ReportRows(ctx context.Context, appointmentID int64) ([]ReportRow, error)
}
