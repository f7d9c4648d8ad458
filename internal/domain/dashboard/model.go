package dashboard

import "time"

type Summary struct {
	Today          int64 `json:"today"`
	Pending        int64 `json:"pending"`
	CompletedToday int64 `json:"completedToday"`
	CompletedWeek  int64 `json:"completedWeek"`
	CancelledToday int64 `json:"cancelledToday"`
	CancelledWeek  int64 `json:"cancelledWeek"`
}

type Counts struct {
	TotalClients int64 `json:"totalClients"`
	TotalPets    int64 `json:"totalMascotas"`
}

type UpcomingAppointment struct {
	AppointmentID int64     `json:"CitaID"`
	Date          time.Time `json:"Fecha"`
	PetName       string    `json:"MascotaNombre"`
	ClientName    string    `json:"ClienteNombre"`
	MainService   string    `json:"ServicioPrincipal"`
}

type ActivityType string

const (
	ActivityAppointmentScheduled ActivityType = "cita_agendada"
	ActivityNewClient            ActivityType = "cliente_nuevo"
	ActivityAppointmentCompleted ActivityType = "cita_completada"
)

type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

// -------------------------
// Filas que devuelve el repositorio
// -------------------------

// AppointmentFilter cuenta citas con Estado en Statuses (vacío = cualquiera)
// y Fecha en [From, To) cuando vienen.
type AppointmentFilter struct {
	Statuses []string
	From     *time.Time
	To       *time.Time
}

type UpcomingRow struct {
	AppointmentID         int64
	Date                  time.Time
	PetName               string
	ClientFirstName       string
	ClientPaternalSurname string
	ServiceNames          []string // distintos y ordenados
}

type AppointmentActivity struct {
	AppointmentID         int64
	Date                  time.Time
	PetName               string
	ClientFirstName       string
	ClientPaternalSurname string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type ClientActivity struct {
	ClientID        int64
	FirstName       string
	PaternalSurname string
	CreatedAt       time.Time
}
