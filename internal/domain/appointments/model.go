package appointments

import (
	"time"

	"veterinaria-api/internal/platform/jsonx"
)

// Status de la cita. Cualquier valor de la lista se puede escribir en cualquier
// momento; no hay transiciones protegidas.
type Status string

const (
	StatusPending   Status = "Pendiente"
	StatusScheduled Status = "Programada"
	StatusConfirmed Status = "Confirmada"
	StatusCompleted Status = "Completada"
	StatusCancelled Status = "Cancelada"
)

// OpenStatuses son los estados que cuentan como "pendientes" en el dashboard.
var OpenStatuses = []Status{StatusScheduled, StatusPending}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment referencia una mascota y un empleado. Los nombres vienen del join.
type Appointment struct {
	ID     int64     `json:"CitaID"`
	Date   time.Time `json:"Fecha"`
	Status Status    `json:"Estado"`

	PetID                 int64  `json:"MascotaID"`
	PetName               string `json:"MascotaNombre"`
	ClientFirstName       string `json:"ClientePrimerNombre"`
	ClientPaternalSurname string `json:"ClienteApellidoPaterno"`
	ClientMaternalSurname string `json:"ClienteApellidoMaterno"`

	EmployeeID              int64  `json:"EmpleadoID"`
	EmployeeFirstName       string `json:"EmpleadoPrimerNombre"`
	EmployeePaternalSurname string `json:"EmpleadoApellidoPaterno"`
	EmployeeRole            string `json:"EmpleadoRol"`

	CreatedAt time.Time `json:"FechaCreacion"`
	UpdatedAt time.Time `json:"FechaActualizacion"`
}

type Input struct {
	Date       string    `json:"Fecha"`
	Status     string    `json:"Estado"`
	PetID      jsonx.Int `json:"MascotaID" swaggertype:"integer"`
	EmployeeID jsonx.Int `json:"EmpleadoID" swaggertype:"integer"`
}
