package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/appointments"
	"veterinaria-api/internal/domain/appointmentservices"
	"veterinaria-api/internal/domain/breeds"
	"veterinaria-api/internal/domain/clients"
	"veterinaria-api/internal/domain/clinicservices"
	"veterinaria-api/internal/domain/dashboard"
	"veterinaria-api/internal/domain/employees"
	"veterinaria-api/internal/domain/pets"
	"veterinaria-api/internal/domain/roles"
	"veterinaria-api/internal/domain/species"
)

type fixture struct {
	store *Store

	clientID, speciesID, breedID, petID, roleID, employeeID int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	f := fixture{store: s}

	var err error
	f.clientID, err = NewClientsRepo(s).Create(ctx, clients.Client{FirstName: "Ana", PaternalSurname: "Rojas", DNI: "12345678"})
	require.NoError(t, err)
	f.speciesID, err = NewSpeciesRepo(s).Create(ctx, species.Species{Name: "Perro"})
	require.NoError(t, err)
	f.breedID, err = NewBreedsRepo(s).Create(ctx, breeds.Breed{Name: "Labrador", SpeciesID: f.speciesID})
	require.NoError(t, err)
	f.petID, err = NewPetsRepo(s).Create(ctx, pets.Pet{Name: "Toby", Age: 4, Sex: pets.SexMale, ClientID: f.clientID, BreedID: f.breedID})
	require.NoError(t, err)
	f.roleID, err = NewRolesRepo(s).Create(ctx, roles.Role{Name: "Veterinario"})
	require.NoError(t, err)
	f.employeeID, err = NewEmployeesRepo(s).Create(ctx, employees.Employee{FirstName: "Jorge", PaternalSurname: "Salas", DNI: "11223344", RoleID: f.roleID})
	require.NoError(t, err)
	return f
}

func TestStore_UniqueAndForeignKeys(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// DNI duplicado
	_, err := NewClientsRepo(f.store).Create(ctx, clients.Client{FirstName: "Otro", DNI: "12345678"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// especie duplicada
	_, err = NewSpeciesRepo(f.store).Create(ctx, species.Species{Name: "Perro"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// raza con especie inexistente
	_, err = NewBreedsRepo(f.store).Create(ctx, breeds.Breed{Name: "X", SpeciesID: 999})
	assert.ErrorIs(t, err, apperr.ErrMissingReference)

	// borrar cliente con mascota / especie con raza
	assert.ErrorIs(t, NewClientsRepo(f.store).Delete(ctx, f.clientID), apperr.ErrReferenced)
	assert.ErrorIs(t, NewSpeciesRepo(f.store).Delete(ctx, f.speciesID), apperr.ErrReferenced)

	// inexistentes
	assert.ErrorIs(t, NewSpeciesRepo(f.store).Delete(ctx, 999), apperr.ErrNotFound)
	_, err = NewPetsRepo(f.store).GetByID(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStore_PetViewFillsJoinedNames(t *testing.T) {
	f := newFixture(t)

	p, err := NewPetsRepo(f.store).GetByID(context.Background(), f.petID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.ClientFirstName)
	assert.Equal(t, "Labrador", p.BreedName)
	assert.Equal(t, f.speciesID, p.SpeciesID)
	assert.Equal(t, "Perro", p.SpeciesName)
}

func TestStore_ClientUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := NewClientsRepo(s)

	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	id, err := repo.Create(ctx, clients.Client{FirstName: "Ana", DNI: "12345678", CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)

	later := created.Add(48 * time.Hour)
	require.NoError(t, repo.Update(ctx, clients.Client{ID: id, FirstName: "Ana María", DNI: "12345678", UpdatedAt: later}))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.FirstName)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, later, got.UpdatedAt)
}

func TestStore_AppointmentUpdateRunsDateCheck(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := NewAppointmentsRepo(f.store)

	stored := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	id, err := repo.Create(ctx, appointments.Appointment{Date: stored, Status: appointments.StatusScheduled, PetID: f.petID, EmployeeID: f.employeeID})
	require.NoError(t, err)

	var seen time.Time
	err = repo.Update(ctx, appointments.Appointment{ID: id, Date: stored, Status: appointments.StatusCompleted, PetID: f.petID, EmployeeID: f.employeeID},
		func(cur time.Time) error {
			seen = cur
			return apperr.Invalid("rechazada")
		})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, stored, seen)

	// el rechazo no escribe nada
	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, appointments.StatusScheduled, got.Status)

	// mascota inexistente
	_, err = repo.Create(ctx, appointments.Appointment{Date: stored, Status: appointments.StatusPending, PetID: 999, EmployeeID: f.employeeID})
	assert.ErrorIs(t, err, apperr.ErrMissingReference)
}

func TestStore_ReportRows(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	apptID, err := NewAppointmentsRepo(f.store).Create(ctx, appointments.Appointment{
		Date: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), Status: appointments.StatusPending, PetID: f.petID, EmployeeID: f.employeeID,
	})
	require.NoError(t, err)

	report := NewAppointmentServicesRepo(f.store)

	// sin servicios: una sola fila con columnas de servicio nulas
	rows, err := report.ReportRows(ctx, apptID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].ServiceID)
	assert.False(t, rows[0].ServicePrice.Valid)
	assert.Equal(t, "Perro", rows[0].PetSpecies)
	assert.Equal(t, "Veterinario", rows[0].EmployeeRole)

	svcRepo := NewClinicServicesRepo(f.store)
	vacuna, err := svcRepo.Create(ctx, clinicservices.ClinicService{Name: "Vacuna", Price: 25.3})
	require.NoError(t, err)
	consulta, err := svcRepo.Create(ctx, clinicservices.ClinicService{Name: "Consulta", Price: 40})
	require.NoError(t, err)

	for _, sid := range []int64{vacuna, consulta} {
		_, err := report.Create(ctx, appointmentservices.AppointmentService{AppointmentID: apptID, ServiceID: sid})
		require.NoError(t, err)
	}
	_, err = report.Create(ctx, appointmentservices.AppointmentService{AppointmentID: apptID, ServiceID: vacuna})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	rows, err = report.ReportRows(ctx, apptID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Consulta", *rows[0].ServiceName)
	assert.Equal(t, "Vacuna", *rows[1].ServiceName)

	rep := appointmentservices.BuildReport(rows)
	assert.Equal(t, 65.3, rep.Total)

	// servicio en uso no se puede borrar
	assert.ErrorIs(t, svcRepo.Delete(ctx, vacuna), apperr.ErrReferenced)

	// cita inexistente => sin filas
	rows, err = report.ReportRows(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStore_DashboardCounts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	appts := NewAppointmentsRepo(f.store)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for i, st := range []appointments.Status{appointments.StatusPending, appointments.StatusCompleted, appointments.StatusCancelled} {
		_, err := appts.Create(ctx, appointments.Appointment{
			Date: day.Add(time.Duration(9+i) * time.Hour), Status: st, PetID: f.petID, EmployeeID: f.employeeID,
		})
		require.NoError(t, err)
	}
	// otro día
	_, err := appts.Create(ctx, appointments.Appointment{Date: day.AddDate(0, 0, 1), Status: appointments.StatusPending, PetID: f.petID, EmployeeID: f.employeeID})
	require.NoError(t, err)

	repo := NewDashboardRepo(f.store)
	from, to := dashboard.DayRange(day.Add(12 * time.Hour))

	n, err := repo.CountAppointments(ctx, dashboard.AppointmentFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.CountAppointments(ctx, dashboard.AppointmentFilter{Statuses: []string{"Pendiente", "Programada"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	clientsN, err := repo.CountClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), clientsN)
}
