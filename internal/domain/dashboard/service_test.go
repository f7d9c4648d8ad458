package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// -------------------------
// Fake repo
// -------------------------

type fakeRepo struct {
	mu      sync.Mutex
	filters []AppointmentFilter
	countFn func(AppointmentFilter) (int64, error)

	clients, pets int64

	upcoming      []UpcomingRow
	upcomingFrom  time.Time
	upcomingLimit int

	recent    []AppointmentActivity
	client    *ClientActivity
	completed *AppointmentActivity
}

func (f *fakeRepo) CountAppointments(ctx context.Context, flt AppointmentFilter) (int64, error) {
	f.mu.Lock()
	f.filters = append(f.filters, flt)
	f.mu.Unlock()
	if f.countFn != nil {
		return f.countFn(flt)
	}
	return 0, nil
}

func (f *fakeRepo) CountClients(ctx context.Context) (int64, error) { return f.clients, nil }
func (f *fakeRepo) CountPets(ctx context.Context) (int64, error)    { return f.pets, nil }

func (f *fakeRepo) Upcoming(ctx context.Context, from time.Time, statuses []string, limit int) ([]UpcomingRow, error) {
	f.upcomingFrom = from
	f.upcomingLimit = limit
	return f.upcoming, nil
}

func (f *fakeRepo) RecentAppointments(ctx context.Context, limit int) ([]AppointmentActivity, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeRepo) LatestClient(ctx context.Context) (ClientActivity, bool, error) {
	if f.client == nil {
		return ClientActivity{}, false, nil
	}
	return *f.client, true, nil
}

func (f *fakeRepo) LatestWithStatus(ctx context.Context, status string) (AppointmentActivity, bool, error) {
	if f.completed == nil {
		return AppointmentActivity{}, false, nil
	}
	return *f.completed, true, nil
}

// miércoles
var fixedNow = time.Date(2025, 6, 11, 14, 20, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestWeekRange_StartsOnMonday(t *testing.T) {
	cases := map[string]time.Time{
		"monday":    time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		"wednesday": time.Date(2025, 6, 11, 23, 0, 0, 0, time.UTC),
		"sunday":    time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	for name, now := range cases {
		t.Run(name, func(t *testing.T) {
			start, end := WeekRange(now)
			assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), end)
		})
	}
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(fixedNow)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), end)
}

func TestService_Summary(t *testing.T) {
	repo := &fakeRepo{
		countFn: func(f AppointmentFilter) (int64, error) {
			switch {
			case len(f.Statuses) == 0:
				return 4, nil // hoy
			case len(f.Statuses) == 2:
				return 7, nil // pendientes
			case f.Statuses[0] == "Completada" && f.From.Day() == 11:
				return 1, nil
			case f.Statuses[0] == "Completada":
				return 3, nil
			case f.Statuses[0] == "Cancelada" && f.From.Day() == 11:
				return 2, nil
			default:
				return 5, nil
			}
		},
	}

	got, err := newTestService(repo).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{Today: 4, Pending: 7, CompletedToday: 1, CompletedWeek: 3, CancelledToday: 2, CancelledWeek: 5}, got)
	assert.Len(t, repo.filters, 6)

	for _, f := range repo.filters {
		if len(f.Statuses) == 2 {
			assert.ElementsMatch(t, []string{"Programada", "Pendiente"}, f.Statuses)
			assert.Nil(t, f.From)
			assert.Nil(t, f.To)
		}
	}
}

func TestService_Summary_PropagatesError(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeRepo{countFn: func(AppointmentFilter) (int64, error) { return 0, boom }}

	_, err := newTestService(repo).Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestService_Counts(t *testing.T) {
	got, err := newTestService(&fakeRepo{clients: 12, pets: 30}).Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Counts{TotalClients: 12, TotalPets: 30}, got)
}

func TestService_Upcoming(t *testing.T) {
	repo := &fakeRepo{upcoming: []UpcomingRow{
		{AppointmentID: 1, PetName: "Toby", ClientFirstName: "Ana", ClientPaternalSurname: "Quispe", ServiceNames: []string{"Baño", "Consulta"}},
		{AppointmentID: 2, PetName: "Misha", ClientFirstName: "Luis", ClientPaternalSurname: "Rojas"},
	}}
	svc := newTestService(repo)

	got, err := svc.Upcoming(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, DefaultUpcomingLimit, repo.upcomingLimit)
	assert.Equal(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC), repo.upcomingFrom)
	assert.Equal(t, "Ana Quispe", got[0].ClientName)
	assert.Equal(t, "Baño, Consulta", got[0].MainService)
	assert.Equal(t, "No especificado", got[1].MainService)

	_, err = svc.Upcoming(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, MaxUpcomingLimit, repo.upcomingLimit)
}

func TestService_RecentActivity(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2025, 6, 11, h, 0, 0, 0, time.UTC) }

	repo := &fakeRepo{
		recent: []AppointmentActivity{
			{AppointmentID: 8, Date: time.Date(2025, 6, 20, 9, 5, 0, 0, time.UTC), PetName: "Toby", ClientFirstName: "Ana", ClientPaternalSurname: "Quispe", CreatedAt: at(12)},
			{AppointmentID: 7, Date: time.Date(2025, 6, 18, 16, 0, 0, 0, time.UTC), PetName: "Misha", ClientFirstName: "Luis", ClientPaternalSurname: "Rojas", CreatedAt: at(9)},
		},
		client:    &ClientActivity{ClientID: 3, FirstName: "Rosa", PaternalSurname: "Diaz", CreatedAt: at(10)},
		completed: &AppointmentActivity{AppointmentID: 5, UpdatedAt: at(13)},
	}

	got, err := newTestService(repo).RecentActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "cita_5_completed", got[0].ID)
	assert.Equal(t, ActivityAppointmentCompleted, got[0].Type)
	assert.Equal(t, "cita_8_created", got[1].ID)
	assert.Equal(t, "Cita agendada para Toby (Ana Quispe) el 20/06/2025 a las 09:05.", got[1].Description)
	assert.Equal(t, "cliente_3_new", got[2].ID)
	assert.Equal(t, "Nuevo cliente registrado: Rosa Diaz.", got[2].Description)
	assert.Equal(t, "cita_7_created", got[3].ID)
}

func TestService_RecentActivity_Empty(t *testing.T) {
	got, err := newTestService(&fakeRepo{}).RecentActivity(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
