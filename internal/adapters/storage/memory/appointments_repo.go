package memory

import (
	"context"
	"sort"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/appointments"
)

type appointmentsRepo struct{ s *Store }

func NewAppointmentsRepo(s *Store) appointments.Repository { return &appointmentsRepo{s: s} }

func (r *appointmentsRepo) view(a appointments.Appointment) appointments.Appointment {
	p := r.s.pets[a.PetID]
	c := r.s.clients[p.ClientID]
	e := r.s.employees[a.EmployeeID]

	a.PetName = p.Name
	a.ClientFirstName = c.FirstName
	a.ClientPaternalSurname = c.PaternalSurname
	a.ClientMaternalSurname = c.MaternalSurname
	a.EmployeeFirstName = e.FirstName
	a.EmployeePaternalSurname = e.PaternalSurname
	a.EmployeeRole = r.s.roles[e.RoleID].Name
	return a
}

func (r *appointmentsRepo) List(ctx context.Context, search string) ([]appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Appointment, 0)
	for _, a := range r.s.appointments {
		a = r.view(a)
		if matches(search,
			a.PetName, a.ClientFirstName, a.ClientPaternalSurname, a.ClientMaternalSurname,
			a.EmployeeFirstName, a.EmployeePaternalSurname, a.EmployeeRole, string(a.Status)) {
			out = append(out, a)
		}
	}
	// Fecha desc, luego id desc.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return appointments.Appointment{}, apperr.ErrNotFound
	}
	return r.view(a), nil
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(a); err != nil {
		return 0, err
	}
	a.ID = r.s.nextID("citas")
	r.s.appointments[a.ID] = a
	return a.ID, nil
}

// Update valida y escribe bajo el mismo lock de escritura.
func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment, check appointments.DateCheck) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.appointments[a.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	if err := check(cur.Date); err != nil {
		return err
	}
	if err := r.check(a); err != nil {
		return err
	}
	a.CreatedAt = cur.CreatedAt
	r.s.appointments[a.ID] = a
	return nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, as := range r.s.apptServices {
		if as.AppointmentID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.appointments, id)
	return nil
}

func (r *appointmentsRepo) check(a appointments.Appointment) error {
	if _, ok := r.s.pets[a.PetID]; !ok {
		return apperr.ErrMissingReference
	}
	if _, ok := r.s.employees[a.EmployeeID]; !ok {
		return apperr.ErrMissingReference
	}
	if !a.Status.Valid() {
		return apperr.ErrInvalidInput
	}
	return nil
}
