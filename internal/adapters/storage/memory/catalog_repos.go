package memory

import (
	"context"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/breeds"
	"veterinaria-api/internal/domain/categories"
	"veterinaria-api/internal/domain/roles"
	"veterinaria-api/internal/domain/species"
	"veterinaria-api/internal/domain/subcategories"
)

// -------------------------
// Especies
// -------------------------

type speciesRepo struct{ s *Store }

func NewSpeciesRepo(s *Store) species.Repository { return &speciesRepo{s: s} }

func (r *speciesRepo) List(ctx context.Context, search string) ([]species.Species, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]species.Species, 0)
	for _, sp := range r.s.species {
		if matches(search, sp.Name) {
			out = append(out, sp)
		}
	}
	sortByName(out, func(v species.Species) string { return v.Name }, func(v species.Species) int64 { return v.ID })
	return out, nil
}

func (r *speciesRepo) GetByID(ctx context.Context, id int64) (species.Species, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sp, ok := r.s.species[id]
	if !ok {
		return species.Species{}, apperr.ErrNotFound
	}
	return sp, nil
}

func (r *speciesRepo) Create(ctx context.Context, sp species.Species) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(sp); err != nil {
		return 0, err
	}
	sp.ID = r.s.nextID("especies")
	r.s.species[sp.ID] = sp
	return sp.ID, nil
}

func (r *speciesRepo) Update(ctx context.Context, sp species.Species) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.species[sp.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(sp); err != nil {
		return err
	}
	r.s.species[sp.ID] = sp
	return nil
}

func (r *speciesRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.species[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, b := range r.s.breeds {
		if b.SpeciesID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.species, id)
	return nil
}

func (r *speciesRepo) check(sp species.Species) error {
	for _, other := range r.s.species {
		if other.ID != sp.ID && other.Name == sp.Name {
			return apperr.ErrConflict
		}
	}
	return nil
}

// -------------------------
// Razas
// -------------------------

type breedsRepo struct{ s *Store }

func NewBreedsRepo(s *Store) breeds.Repository { return &breedsRepo{s: s} }

func (r *breedsRepo) view(b breeds.Breed) breeds.Breed {
	b.SpeciesName = r.s.species[b.SpeciesID].Name
	return b
}

func (r *breedsRepo) List(ctx context.Context, search string) ([]breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]breeds.Breed, 0)
	for _, b := range r.s.breeds {
		b = r.view(b)
		if matches(search, b.Name, b.SpeciesName) {
			out = append(out, b)
		}
	}
	sortByName(out, func(v breeds.Breed) string { return v.Name }, func(v breeds.Breed) int64 { return v.ID })
	return out, nil
}

func (r *breedsRepo) GetByID(ctx context.Context, id int64) (breeds.Breed, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.breeds[id]
	if !ok {
		return breeds.Breed{}, apperr.ErrNotFound
	}
	return r.view(b), nil
}

func (r *breedsRepo) Create(ctx context.Context, b breeds.Breed) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(b); err != nil {
		return 0, err
	}
	b.ID = r.s.nextID("razas")
	b.SpeciesName = ""
	r.s.breeds[b.ID] = b
	return b.ID, nil
}

func (r *breedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[b.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(b); err != nil {
		return err
	}
	b.SpeciesName = ""
	r.s.breeds[b.ID] = b
	return nil
}

func (r *breedsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.breeds[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, p := range r.s.pets {
		if p.BreedID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.breeds, id)
	return nil
}

func (r *breedsRepo) check(b breeds.Breed) error {
	if _, ok := r.s.species[b.SpeciesID]; !ok {
		return apperr.ErrMissingReference
	}
	for _, other := range r.s.breeds {
		if other.ID != b.ID && other.Name == b.Name && other.SpeciesID == b.SpeciesID {
			return apperr.ErrConflict
		}
	}
	return nil
}

// -------------------------
// Roles
// -------------------------

type rolesRepo struct{ s *Store }

func NewRolesRepo(s *Store) roles.Repository { return &rolesRepo{s: s} }

func (r *rolesRepo) List(ctx context.Context, search string) ([]roles.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]roles.Role, 0)
	for _, role := range r.s.roles {
		if matches(search, role.Name) {
			out = append(out, role)
		}
	}
	sortByName(out, func(v roles.Role) string { return v.Name }, func(v roles.Role) int64 { return v.ID })
	return out, nil
}

func (r *rolesRepo) GetByID(ctx context.Context, id int64) (roles.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	role, ok := r.s.roles[id]
	if !ok {
		return roles.Role{}, apperr.ErrNotFound
	}
	return role, nil
}

func (r *rolesRepo) Create(ctx context.Context, role roles.Role) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(role); err != nil {
		return 0, err
	}
	role.ID = r.s.nextID("roles")
	r.s.roles[role.ID] = role
	return role.ID, nil
}

func (r *rolesRepo) Update(ctx context.Context, role roles.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.roles[role.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(role); err != nil {
		return err
	}
	r.s.roles[role.ID] = role
	return nil
}

func (r *rolesRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.roles[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, e := range r.s.employees {
		if e.RoleID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.roles, id)
	return nil
}

func (r *rolesRepo) check(role roles.Role) error {
	for _, other := range r.s.roles {
		if other.ID != role.ID && other.Name == role.Name {
			return apperr.ErrConflict
		}
	}
	return nil
}

// -------------------------
// Categorías
// -------------------------

type categoriesRepo struct{ s *Store }

func NewCategoriesRepo(s *Store) categories.Repository { return &categoriesRepo{s: s} }

func (r *categoriesRepo) List(ctx context.Context, search string) ([]categories.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]categories.Category, 0)
	for _, c := range r.s.categories {
		if matches(search, c.Name) {
			out = append(out, c)
		}
	}
	sortByName(out, func(v categories.Category) string { return v.Name }, func(v categories.Category) int64 { return v.ID })
	return out, nil
}

func (r *categoriesRepo) GetByID(ctx context.Context, id int64) (categories.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[id]
	if !ok {
		return categories.Category{}, apperr.ErrNotFound
	}
	return c, nil
}

func (r *categoriesRepo) Create(ctx context.Context, c categories.Category) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(c); err != nil {
		return 0, err
	}
	c.ID = r.s.nextID("categorias_productos")
	r.s.categories[c.ID] = c
	return c.ID, nil
}

func (r *categoriesRepo) Update(ctx context.Context, c categories.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[c.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(c); err != nil {
		return err
	}
	r.s.categories[c.ID] = c
	return nil
}

func (r *categoriesRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, sc := range r.s.subcategories {
		if sc.CategoryID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.categories, id)
	return nil
}

func (r *categoriesRepo) check(c categories.Category) error {
	for _, other := range r.s.categories {
		if other.ID != c.ID && other.Name == c.Name {
			return apperr.ErrConflict
		}
	}
	return nil
}

// -------------------------
// Subcategorías
// -------------------------

type subcategoriesRepo struct{ s *Store }

func NewSubcategoriesRepo(s *Store) subcategories.Repository { return &subcategoriesRepo{s: s} }

func (r *subcategoriesRepo) view(sc subcategories.Subcategory) subcategories.Subcategory {
	sc.CategoryName = r.s.categories[sc.CategoryID].Name
	return sc
}

func (r *subcategoriesRepo) List(ctx context.Context, search string) ([]subcategories.Subcategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]subcategories.Subcategory, 0)
	for _, sc := range r.s.subcategories {
		sc = r.view(sc)
		if matches(search, sc.Name, sc.CategoryName) {
			out = append(out, sc)
		}
	}
	sortByName(out, func(v subcategories.Subcategory) string { return v.Name }, func(v subcategories.Subcategory) int64 { return v.ID })
	return out, nil
}

func (r *subcategoriesRepo) GetByID(ctx context.Context, id int64) (subcategories.Subcategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sc, ok := r.s.subcategories[id]
	if !ok {
		return subcategories.Subcategory{}, apperr.ErrNotFound
	}
	return r.view(sc), nil
}

func (r *subcategoriesRepo) Create(ctx context.Context, sc subcategories.Subcategory) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(sc); err != nil {
		return 0, err
	}
	sc.ID = r.s.nextID("subcategorias")
	sc.CategoryName = ""
	r.s.subcategories[sc.ID] = sc
	return sc.ID, nil
}

func (r *subcategoriesRepo) Update(ctx context.Context, sc subcategories.Subcategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.subcategories[sc.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(sc); err != nil {
		return err
	}
	sc.CategoryName = ""
	r.s.subcategories[sc.ID] = sc
	return nil
}

func (r *subcategoriesRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.subcategories[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, svc := range r.s.services {
		if svc.SubcategoryID != nil && *svc.SubcategoryID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.subcategories, id)
	return nil
}

func (r *subcategoriesRepo) check(sc subcategories.Subcategory) error {
	if _, ok := r.s.categories[sc.CategoryID]; !ok {
		return apperr.ErrMissingReference
	}
	for _, other := range r.s.subcategories {
		if other.ID != sc.ID && other.Name == sc.Name && other.CategoryID == sc.CategoryID {
			return apperr.ErrConflict
		}
	}
	return nil
}
