package appointmentservices

import (
	"time"

	"veterinaria-api/internal/platform/jsonx"
)

// AppointmentService asigna un servicio facturable a una cita (par único).
type AppointmentService struct {
	ID int64 `json:"CitaServicioID"`

	AppointmentID     int64     `json:"CitaID"`
	AppointmentDate   time.Time `json:"CitaFecha"`
	AppointmentStatus string    `json:"CitaEstado"`

	PetName               string `json:"MascotaNombre"`
	ClientFirstName       string `json:"ClientePrimerNombre"`
	ClientPaternalSurname string `json:"ClienteApellidoPaterno"`
	ClientMaternalSurname string `json:"ClienteApellidoMaterno"`

	ServiceID          int64   `json:"ServicioID"`
	ServiceName        string  `json:"ServicioNombre"`
	ServiceDescription *string `json:"ServicioDescripcion"`
	ServicePrice       float64 `json:"ServicioPrecio"`
}

type Input struct {
	AppointmentID jsonx.Int `json:"CitaID" swaggertype:"integer"`
	ServiceID     jsonx.Int `json:"ServicioID" swaggertype:"integer"`
}
