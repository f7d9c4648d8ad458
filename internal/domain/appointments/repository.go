package appointments

import (
	"context"
	"time"
)

// DateCheck recibe la fecha guardada de la cita y decide si la escritura procede.
type DateCheck func(stored time.Time) error

type Repository interface {
	List(ctx context.Context, search string) ([]Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)
	Create(ctx context.Context, a Appointment) (int64, error)

	// Update lee la fecha guardada, ejecuta check y escribe, todo de forma atómica
	// (dos ediciones concurrentes de la misma cita quedan serializadas).
	// Devuelve apperr.ErrNotFound si la cita no existe.
	Update(ctx context.Context, a Appointment, check DateCheck) error

	Delete(ctx context.Context, id int64) error
}
