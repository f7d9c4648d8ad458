package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/appointmentservices"
)

type appointmentServicesRepo struct{ s *Store }

func NewAppointmentServicesRepo(s *Store) appointmentservices.Repository {
	return &appointmentServicesRepo{s: s}
}

func (r *appointmentServicesRepo) view(as appointmentservices.AppointmentService) appointmentservices.AppointmentService {
	a := r.s.appointments[as.AppointmentID]
	p := r.s.pets[a.PetID]
	c := r.s.clients[p.ClientID]
	svc := r.s.services[as.ServiceID]

	as.AppointmentDate = a.Date
	as.AppointmentStatus = string(a.Status)
	as.PetName = p.Name
	as.ClientFirstName = c.FirstName
	as.ClientPaternalSurname = c.PaternalSurname
	as.ClientMaternalSurname = c.MaternalSurname
	as.ServiceName = svc.Name
	as.ServiceDescription = svc.Description
	as.ServicePrice = svc.Price
	return as
}

func (r *appointmentServicesRepo) List(ctx context.Context, search string) ([]appointmentservices.AppointmentService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointmentservices.AppointmentService, 0)
	for _, as := range r.s.apptServices {
		as = r.view(as)
		if matches(search,
			as.PetName, as.ClientFirstName, as.ClientPaternalSurname, as.ClientMaternalSurname,
			as.ServiceName, as.AppointmentStatus) {
			out = append(out, as)
		}
	}
	// Fecha de la cita desc, mascota, servicio, id.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.AppointmentDate.Equal(b.AppointmentDate) {
			return a.AppointmentDate.After(b.AppointmentDate)
		}
		if c := compareFold(a.PetName, b.PetName); c != 0 {
			return c < 0
		}
		if c := compareFold(a.ServiceName, b.ServiceName); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *appointmentServicesRepo) GetByID(ctx context.Context, id int64) (appointmentservices.AppointmentService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	as, ok := r.s.apptServices[id]
	if !ok {
		return appointmentservices.AppointmentService{}, apperr.ErrNotFound
	}
	return r.view(as), nil
}

func (r *appointmentServicesRepo) Create(ctx context.Context, as appointmentservices.AppointmentService) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(as); err != nil {
		return 0, err
	}
	as.ID = r.s.nextID("cita_servicios")
	r.s.apptServices[as.ID] = as
	return as.ID, nil
}

func (r *appointmentServicesRepo) Update(ctx context.Context, as appointmentservices.AppointmentService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.apptServices[as.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(as); err != nil {
		return err
	}
	r.s.apptServices[as.ID] = as
	return nil
}

func (r *appointmentServicesRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.apptServices[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.s.apptServices, id)
	return nil
}

func (r *appointmentServicesRepo) check(as appointmentservices.AppointmentService) error {
	if _, ok := r.s.appointments[as.AppointmentID]; !ok {
		return apperr.ErrMissingReference
	}
	if _, ok := r.s.services[as.ServiceID]; !ok {
		return apperr.ErrMissingReference
	}
	for _, other := range r.s.apptServices {
		if other.ID != as.ID && other.AppointmentID == as.AppointmentID && other.ServiceID == as.ServiceID {
			return apperr.ErrConflict
		}
	}
	return nil
}

// ReportRows emula el join del reporte: una fila por servicio, o una sola fila
// con columnas de servicio nulas si la cita no tiene servicios.
func (r *appointmentServicesRepo) ReportRows(ctx context.Context, appointmentID int64) ([]appointmentservices.ReportRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[appointmentID]
	if !ok {
		return nil, nil
	}

	p := r.s.pets[a.PetID]
	b := r.s.breeds[p.BreedID]
	c := r.s.clients[p.ClientID]
	e := r.s.employees[a.EmployeeID]

	header := appointmentservices.ReportRow{
		AppointmentID:           a.ID,
		AppointmentDate:         a.Date,
		AppointmentStatus:       string(a.Status),
		PetID:                   p.ID,
		PetName:                 p.Name,
		PetAge:                  p.Age,
		PetSex:                  string(p.Sex),
		PetSpecies:              r.s.species[b.SpeciesID].Name,
		PetBreed:                b.Name,
		ClientID:                c.ID,
		ClientFirstName:         c.FirstName,
		ClientPaternalSurname:   c.PaternalSurname,
		ClientMaternalSurname:   c.MaternalSurname,
		ClientDNI:               c.DNI,
		ClientPhone:             c.Phone,
		ClientAddress:           c.Address,
		ClientEmail:             c.Email,
		EmployeeFirstName:       e.FirstName,
		EmployeePaternalSurname: e.PaternalSurname,
		EmployeeRole:            r.s.roles[e.RoleID].Name,
	}

	out := make([]appointmentservices.ReportRow, 0)
	for _, as := range r.s.apptServices {
		if as.AppointmentID != appointmentID {
			continue
		}
		svc := r.s.services[as.ServiceID]
		row := header
		id, name := svc.ID, svc.Name
		row.ServiceID = &id
		row.ServiceName = &name
		row.ServiceDescription = svc.Description
		row.ServicePrice = decimal.NewNullDecimal(decimal.NewFromFloat(svc.Price))
		out = append(out, row)
	}
	if len(out) == 0 {
		return []appointmentservices.ReportRow{header}, nil
	}

	sort.Slice(out, func(i, j int) bool {
		if c := compareFold(*out[i].ServiceName, *out[j].ServiceName); c != 0 {
			return c < 0
		}
		return *out[i].ServiceID < *out[j].ServiceID
	})
	return out, nil
}
