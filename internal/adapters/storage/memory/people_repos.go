package memory

import (
	"context"
	"sort"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/clients"
	"veterinaria-api/internal/domain/employees"
	"veterinaria-api/internal/domain/pets"
)

// -------------------------
// Clientes
// -------------------------

type clientsRepo struct{ s *Store }

func NewClientsRepo(s *Store) clients.Repository { return &clientsRepo{s: s} }

func (r *clientsRepo) List(ctx context.Context, search string) ([]clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clients.Client, 0)
	for _, c := range r.s.clients {
		if matches(search, c.FirstName, c.PaternalSurname, c.MaternalSurname, c.DNI, c.Phone, c.Email) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := compareFold(out[i].FirstName, out[j].FirstName); c != 0 {
			return c < 0
		}
		if c := compareFold(out[i].PaternalSurname, out[j].PaternalSurname); c != 0 {
			return c < 0
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *clientsRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return clients.Client{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) Create(ctx context.Context, c clients.Client) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(c); err != nil {
		return 0, err
	}
	c.ID = r.s.nextID("clientes")
	r.s.clients[c.ID] = c
	return c.ID, nil
}

func (r *clientsRepo) Update(ctx context.Context, c clients.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.clients[c.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(c); err != nil {
		return err
	}
	c.CreatedAt = cur.CreatedAt
	r.s.clients[c.ID] = c
	return nil
}

func (r *clientsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, p := range r.s.pets {
		if p.ClientID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.clients, id)
	return nil
}

func (r *clientsRepo) check(c clients.Client) error {
	for _, other := range r.s.clients {
		if other.ID != c.ID && other.DNI == c.DNI {
			return apperr.ErrConflict
		}
	}
	return nil
}

// -------------------------
// Empleados
// -------------------------

type employeesRepo struct{ s *Store }

func NewEmployeesRepo(s *Store) employees.Repository { return &employeesRepo{s: s} }

func (r *employeesRepo) view(e employees.Employee) employees.Employee {
	e.RoleName = r.s.roles[e.RoleID].Name
	return e
}

func (r *employeesRepo) List(ctx context.Context, search string) ([]employees.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]employees.Employee, 0)
	for _, e := range r.s.employees {
		e = r.view(e)
		if matches(search, e.FirstName, e.PaternalSurname, e.MaternalSurname, e.DNI, e.Phone, e.Email, e.RoleName) {
			out = append(out, e)
		}
	}
	sortByName(out, func(v employees.Employee) string { return v.FirstName }, func(v employees.Employee) int64 { return v.ID })
	return out, nil
}

func (r *employeesRepo) GetByID(ctx context.Context, id int64) (employees.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return employees.Employee{}, apperr.ErrNotFound
	}
	return r.view(e), nil
}

func (r *employeesRepo) Create(ctx context.Context, e employees.Employee) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(e); err != nil {
		return 0, err
	}
	e.ID = r.s.nextID("empleados")
	e.RoleName = ""
	r.s.employees[e.ID] = e
	return e.ID, nil
}

func (r *employeesRepo) Update(ctx context.Context, e employees.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[e.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(e); err != nil {
		return err
	}
	e.RoleName = ""
	r.s.employees[e.ID] = e
	return nil
}

func (r *employeesRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, a := range r.s.appointments {
		if a.EmployeeID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.employees, id)
	return nil
}

func (r *employeesRepo) check(e employees.Employee) error {
	if _, ok := r.s.roles[e.RoleID]; !ok {
		return apperr.ErrMissingReference
	}
	for _, other := range r.s.employees {
		if other.ID != e.ID && other.DNI == e.DNI {
			return apperr.ErrConflict
		}
	}
	return nil
}

// -------------------------
// Mascotas
// -------------------------

type petsRepo struct{ s *Store }

func NewPetsRepo(s *Store) pets.Repository { return &petsRepo{s: s} }

func (r *petsRepo) view(p pets.Pet) pets.Pet {
	c := r.s.clients[p.ClientID]
	b := r.s.breeds[p.BreedID]

	p.ClientFirstName = c.FirstName
	p.ClientPaternalSurname = c.PaternalSurname
	p.ClientMaternalSurname = c.MaternalSurname
	p.BreedName = b.Name
	p.SpeciesID = b.SpeciesID
	p.SpeciesName = r.s.species[b.SpeciesID].Name
	return p
}

func (r *petsRepo) List(ctx context.Context, search string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		p = r.view(p)
		if matches(search, p.Name, p.ClientFirstName, p.ClientPaternalSurname, p.ClientMaternalSurname, p.BreedName, p.SpeciesName) {
			out = append(out, p)
		}
	}
	sortByName(out, func(v pets.Pet) string { return v.Name }, func(v pets.Pet) int64 { return v.ID })
	return out, nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return pets.Pet{}, apperr.ErrNotFound
	}
	return r.view(p), nil
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(p); err != nil {
		return 0, err
	}
	p.ID = r.s.nextID("mascotas")
	r.s.pets[p.ID] = p
	return p.ID, nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(p); err != nil {
		return err
	}
	r.s.pets[p.ID] = p
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, a := range r.s.appointments {
		if a.PetID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.pets, id)
	return nil
}

func (r *petsRepo) check(p pets.Pet) error {
	if _, ok := r.s.clients[p.ClientID]; !ok {
		return apperr.ErrMissingReference
	}
	if _, ok := r.s.breeds[p.BreedID]; !ok {
		return apperr.ErrMissingReference
	}
	if p.Age < 0 {
		return apperr.ErrInvalidInput
	}
	return nil
}
