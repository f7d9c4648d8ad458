package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"veterinaria-api/internal/domain/dashboard"
)

type dashboardRepo struct{ s *Store }

func NewDashboardRepo(s *Store) dashboard.Repository { return &dashboardRepo{s: s} }

func (r *dashboardRepo) CountAppointments(ctx context.Context, f dashboard.AppointmentFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, a := range r.s.appointments {
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, string(a.Status)) {
			continue
		}
		if f.From != nil && a.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && !a.Date.Before(*f.To) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *dashboardRepo) CountClients(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.clients)), nil
}

func (r *dashboardRepo) CountPets(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.pets)), nil
}

func (r *dashboardRepo) Upcoming(ctx context.Context, from time.Time, statuses []string, limit int) ([]dashboard.UpcomingRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dashboard.UpcomingRow, 0)
	for _, a := range r.s.appointments {
		if a.Date.Before(from) || !slices.Contains(statuses, string(a.Status)) {
			continue
		}
		p := r.s.pets[a.PetID]
		c := r.s.clients[p.ClientID]

		names := make([]string, 0)
		for _, as := range r.s.apptServices {
			if as.AppointmentID != a.ID {
				continue
			}
			if name := r.s.services[as.ServiceID].Name; !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
		sort.Strings(names)

		out = append(out, dashboard.UpcomingRow{
			AppointmentID:         a.ID,
			Date:                  a.Date,
			PetName:               p.Name,
			ClientFirstName:       c.FirstName,
			ClientPaternalSurname: c.PaternalSurname,
			ServiceNames:          names,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].AppointmentID < out[j].AppointmentID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *dashboardRepo) activity(id int64) dashboard.AppointmentActivity {
	a := r.s.appointments[id]
	p := r.s.pets[a.PetID]
	c := r.s.clients[p.ClientID]
	return dashboard.AppointmentActivity{
		AppointmentID:         a.ID,
		Date:                  a.Date,
		PetName:               p.Name,
		ClientFirstName:       c.FirstName,
		ClientPaternalSurname: c.PaternalSurname,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func (r *dashboardRepo) RecentAppointments(ctx context.Context, limit int) ([]dashboard.AppointmentActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dashboard.AppointmentActivity, 0, len(r.s.appointments))
	for id := range r.s.appointments {
		out = append(out, r.activity(id))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].AppointmentID > out[j].AppointmentID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *dashboardRepo) LatestClient(ctx context.Context) (dashboard.ClientActivity, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var (
		best  dashboard.ClientActivity
		found bool
	)
	for _, c := range r.s.clients {
		newer := c.CreatedAt.After(best.CreatedAt) ||
			(c.CreatedAt.Equal(best.CreatedAt) && c.ID > best.ClientID)
		if !found || newer {
			best = dashboard.ClientActivity{
				ClientID:        c.ID,
				FirstName:       c.FirstName,
				PaternalSurname: c.PaternalSurname,
				CreatedAt:       c.CreatedAt,
			}
			found = true
		}
	}
	return best, found, nil
}

func (r *dashboardRepo) LatestWithStatus(ctx context.Context, status string) (dashboard.AppointmentActivity, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var (
		best  dashboard.AppointmentActivity
		found bool
	)
	for id, a := range r.s.appointments {
		if string(a.Status) != status {
			continue
		}
		newer := a.UpdatedAt.After(best.UpdatedAt) ||
			(a.UpdatedAt.Equal(best.UpdatedAt) && a.ID > best.AppointmentID)
		if !found || newer {
			best = r.activity(id)
			found = true
		}
	}
	return best, found, nil
}
