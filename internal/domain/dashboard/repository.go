package dashboard

import (
	"context"
	"time"
)

// Repository expone las consultas de solo lectura del dashboard.
type Repository interface {
	CountAppointments(ctx context.Context, f AppointmentFilter) (int64, error)
	CountClients(ctx context.Context) (int64, error)
	CountPets(ctx context.Context) (int64, error)

	// Upcoming: citas con Estado en statuses y Fecha >= from, por Fecha ascendente.
	Upcoming(ctx context.Context, from time.Time, statuses []string, limit int) ([]UpcomingRow, error)

	// RecentAppointments: las últimas citas creadas (FechaCreacion desc).
	RecentAppointments(ctx context.Context, limit int) ([]AppointmentActivity, error)

	// LatestClient: último cliente creado. ok=false si no hay clientes.
	LatestClient(ctx context.Context) (c ClientActivity, ok bool, err error)

	// LatestWithStatus: última cita con ese Estado según FechaActualizacion.
	LatestWithStatus(ctx context.Context, status string) (a AppointmentActivity, ok bool, err error)
}
