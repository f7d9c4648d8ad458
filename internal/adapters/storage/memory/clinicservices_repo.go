package memory

import (
	"context"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/domain/clinicservices"
)

type clinicServicesRepo struct{ s *Store }

func NewClinicServicesRepo(s *Store) clinicservices.Repository { return &clinicServicesRepo{s: s} }

// view completa subcategoría/categoría; quedan en nil si no hay subcategoría.
func (r *clinicServicesRepo) view(svc clinicservices.ClinicService) clinicservices.ClinicService {
	svc.SubcategoryName, svc.CategoryID, svc.CategoryName = nil, nil, nil
	if svc.SubcategoryID == nil {
		return svc
	}
	sc, ok := r.s.subcategories[*svc.SubcategoryID]
	if !ok {
		return svc
	}
	subName := sc.Name
	catID := sc.CategoryID
	catName := r.s.categories[sc.CategoryID].Name
	svc.SubcategoryName = &subName
	svc.CategoryID = &catID
	svc.CategoryName = &catName
	return svc
}

func (r *clinicServicesRepo) List(ctx context.Context, search string) ([]clinicservices.ClinicService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinicservices.ClinicService, 0)
	for _, svc := range r.s.services {
		svc = r.view(svc)
		if matches(search, svc.Name, deref(svc.Description), deref(svc.SubcategoryName), deref(svc.CategoryName)) {
			out = append(out, svc)
		}
	}
	sortByName(out, func(v clinicservices.ClinicService) string { return v.Name }, func(v clinicservices.ClinicService) int64 { return v.ID })
	return out, nil
}

func (r *clinicServicesRepo) GetByID(ctx context.Context, id int64) (clinicservices.ClinicService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	svc, ok := r.s.services[id]
	if !ok {
		return clinicservices.ClinicService{}, apperr.ErrNotFound
	}
	return r.view(svc), nil
}

func (r *clinicServicesRepo) Create(ctx context.Context, svc clinicservices.ClinicService) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(svc); err != nil {
		return 0, err
	}
	svc.ID = r.s.nextID("servicios")
	r.s.services[svc.ID] = svc
	return svc.ID, nil
}

func (r *clinicServicesRepo) Update(ctx context.Context, svc clinicservices.ClinicService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[svc.ID]; !ok {
		return apperr.ErrNotFound
	}
	if err := r.check(svc); err != nil {
		return err
	}
	r.s.services[svc.ID] = svc
	return nil
}

func (r *clinicServicesRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return apperr.ErrNotFound
	}
	for _, as := range r.s.apptServices {
		if as.ServiceID == id {
			return apperr.ErrReferenced
		}
	}
	delete(r.s.services, id)
	return nil
}

func (r *clinicServicesRepo) check(svc clinicservices.ClinicService) error {
	if svc.SubcategoryID != nil {
		if _, ok := r.s.subcategories[*svc.SubcategoryID]; !ok {
			return apperr.ErrMissingReference
		}
	}
	if svc.Price < 0 {
		return apperr.ErrInvalidInput
	}
	for _, other := range r.s.services {
		if other.ID != svc.ID && other.Name == svc.Name {
			return apperr.ErrConflict
		}
	}
	return nil
}
