package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"veterinaria-api/internal/domain/appointments"
)

const (
	DefaultUpcomingLimit = 5
	MaxUpcomingLimit     = 50

	recentActivityLimit = 5
	noServiceLabel      = "No especificado"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Summary ejecuta los seis conteos en paralelo; el primer error cancela el resto.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	now := s.now()
	dayStart, dayEnd := DayRange(now)
	weekStart, weekEnd := WeekRange(now)

	completed := []string{string(appointments.StatusCompleted)}
	cancelled := []string{string(appointments.StatusCancelled)}

	var out Summary
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, f AppointmentFilter) {
		g.Go(func() error {
			n, err := s.repo.CountAppointments(gctx, f)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&out.Today, AppointmentFilter{From: &dayStart, To: &dayEnd})
	count(&out.Pending, AppointmentFilter{Statuses: openStatuses()})
	count(&out.CompletedToday, AppointmentFilter{Statuses: completed, From: &dayStart, To: &dayEnd})
	count(&out.CompletedWeek, AppointmentFilter{Statuses: completed, From: &weekStart, To: &weekEnd})
	count(&out.CancelledToday, AppointmentFilter{Statuses: cancelled, From: &dayStart, To: &dayEnd})
	count(&out.CancelledWeek, AppointmentFilter{Statuses: cancelled, From: &weekStart, To: &weekEnd})

	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("dashboard summary: %w", err)
	}
	return out, nil
}

func (s *Service) Counts(ctx context.Context) (Counts, error) {
	var out Counts
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountClients(gctx)
		out.TotalClients = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountPets(gctx)
		out.TotalPets = n
		return err
	})

	if err := g.Wait(); err != nil {
		return Counts{}, fmt.Errorf("dashboard counts: %w", err)
	}
	return out, nil
}

// Upcoming lista las próximas citas pendientes/programadas desde hoy 00:00.
// limit <= 0 usa el default; se acota a MaxUpcomingLimit.
func (s *Service) Upcoming(ctx context.Context, limit int) ([]UpcomingAppointment, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	if limit > MaxUpcomingLimit {
		limit = MaxUpcomingLimit
	}

	from, _ := DayRange(s.now())
	rows, err := s.repo.Upcoming(ctx, from, openStatuses(), limit)
	if err != nil {
		return nil, err
	}

	out := make([]UpcomingAppointment, 0, len(rows))
	for _, r := range rows {
		main := strings.Join(r.ServiceNames, ", ")
		if main == "" {
			main = noServiceLabel
		}
		out = append(out, UpcomingAppointment{
			AppointmentID: r.AppointmentID,
			Date:          r.Date,
			PetName:       r.PetName,
			ClientName:    strings.TrimSpace(r.ClientFirstName + " " + r.ClientPaternalSurname),
			MainService:   main,
		})
	}
	return out, nil
}

// RecentActivity arma el feed: dos últimas citas creadas, último cliente y
// última cita completada, ordenado por timestamp desc.
func (s *Service) RecentActivity(ctx context.Context) ([]Activity, error) {
	var (
		recent    []AppointmentActivity
		client    ClientActivity
		hasClient bool
		done      AppointmentActivity
		hasDone   bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recent, err = s.repo.RecentAppointments(gctx, 2)
		return err
	})
	g.Go(func() (err error) {
		client, hasClient, err = s.repo.LatestClient(gctx)
		return err
	})
	g.Go(func() (err error) {
		done, hasDone, err = s.repo.LatestWithStatus(gctx, string(appointments.StatusCompleted))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard recent activity: %w", err)
	}

	loc := s.now().Location()
	out := make([]Activity, 0, 4)
	for _, a := range recent {
		when := a.Date.In(loc)
		out = append(out, Activity{
			ID:   fmt.Sprintf("cita_%d_created", a.AppointmentID),
			Type: ActivityAppointmentScheduled,
			Description: fmt.Sprintf("Cita agendada para %s (%s %s) el %s a las %s.",
				a.PetName, a.ClientFirstName, a.ClientPaternalSurname,
				when.Format("02/01/2006"), when.Format("15:04")),
			Timestamp: a.CreatedAt,
		})
	}
	if hasClient {
		out = append(out, Activity{
			ID:          fmt.Sprintf("cliente_%d_new", client.ClientID),
			Type:        ActivityNewClient,
			Description: fmt.Sprintf("Nuevo cliente registrado: %s %s.", client.FirstName, client.PaternalSurname),
			Timestamp:   client.CreatedAt,
		})
	}
	if hasDone {
		out = append(out, Activity{
			ID:          fmt.Sprintf("cita_%d_completed", done.AppointmentID),
			Type:        ActivityAppointmentCompleted,
			Description: fmt.Sprintf("Cita ID %d marcada como completada.", done.AppointmentID),
			Timestamp:   done.UpdatedAt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if len(out) > recentActivityLimit {
		out = out[:recentActivityLimit]
	}
	return out, nil
}

func openStatuses() []string {
	out := make([]string, 0, len(appointments.OpenStatuses))
	for _, st := range appointments.OpenStatuses {
		out = append(out, string(st))
	}
	return out
}
