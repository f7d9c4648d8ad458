package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/platform/jsonx"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Appointment
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Appointment{}}
}

func (r *testRepo) List(ctx context.Context, search string) ([]Appointment, error) {
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) Create(ctx context.Context, a Appointment) (int64, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a.ID, nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment, check DateCheck) error {
	cur, ok := r.byID[a.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	if err := check(cur.Date); err != nil {
		return err
	}
	a.CreatedAt = cur.CreatedAt
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService(now time.Time) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	svc.loc = time.UTC
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Defaults(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc, repo := newTestService(now)

	id, err := svc.Create(context.Background(), Input{
		PetID:      jsonx.NewInt(1),
		EmployeeID: jsonx.NewInt(2),
	})
	require.NoError(t, err)

	a := repo.byID[id]
	assert.Equal(t, StatusPending, a.Status)
	assert.True(t, a.Date.Equal(now))
	assert.True(t, a.CreatedAt.Equal(now))
	assert.True(t, a.UpdatedAt.Equal(now))
}

func TestService_Create_TodayEarlierHourIsAllowed(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	_, err := svc.Create(context.Background(), Input{
		Date:       "2025-03-10T08:00",
		Status:     "Programada",
		PetID:      jsonx.NewInt(1),
		EmployeeID: jsonx.NewInt(2),
	})
	assert.NoError(t, err)
}

func TestService_Create_Rejects(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	cases := map[string]Input{
		"past date":     {Date: "2025-03-09T23:59", PetID: jsonx.NewInt(1), EmployeeID: jsonx.NewInt(2)},
		"bad date":      {Date: "10/03/2025", PetID: jsonx.NewInt(1), EmployeeID: jsonx.NewInt(2)},
		"bad status":    {Status: "Perdida", PetID: jsonx.NewInt(1), EmployeeID: jsonx.NewInt(2)},
		"missing pet":   {EmployeeID: jsonx.NewInt(2)},
		"missing staff": {PetID: jsonx.NewInt(1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			svc, repo := newTestService(now)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
			assert.Empty(t, repo.byID)
		})
	}
}

func TestService_Update_PastDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	stored := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	setup := func() (*Service, *testRepo) {
		svc, repo := newTestService(now)
		repo.byID[7] = Appointment{ID: 7, Date: stored, Status: StatusPending, PetID: 1, EmployeeID: 2}
		return svc, repo
	}

	t.Run("unchanged stored date is accepted", func(t *testing.T) {
		svc, repo := setup()
		err := svc.Update(context.Background(), 7, Input{
			Date:       "2025-03-01T09:30",
			Status:     "Completada",
			PetID:      jsonx.NewInt(1),
			EmployeeID: jsonx.NewInt(2),
		})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, repo.byID[7].Status)
		assert.True(t, repo.byID[7].UpdatedAt.Equal(now))
	})

	t.Run("different past date is rejected", func(t *testing.T) {
		svc, repo := setup()
		err := svc.Update(context.Background(), 7, Input{
			Date:       "2025-03-02T09:30",
			Status:     "Completada",
			PetID:      jsonx.NewInt(1),
			EmployeeID: jsonx.NewInt(2),
		})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Equal(t, StatusPending, repo.byID[7].Status)
	})

	t.Run("future date is accepted", func(t *testing.T) {
		svc, _ := setup()
		err := svc.Update(context.Background(), 7, Input{
			Date:       "2025-04-01T10:00:00Z",
			Status:     "Programada",
			PetID:      jsonx.NewInt(1),
			EmployeeID: jsonx.NewInt(2),
		})
		assert.NoError(t, err)
	})
}

func TestService_Update_Validation(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestService(now)

	err := svc.Update(context.Background(), 1, Input{Date: "2025-04-01", PetID: jsonx.NewInt(1), EmployeeID: jsonx.NewInt(2)})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	err = svc.Update(context.Background(), 1, Input{Date: "2025-04-01", Status: "Programada", PetID: jsonx.NewInt(1), EmployeeID: jsonx.NewInt(2)})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("PET", -5*3600)

	cases := map[string]time.Time{
		"2025-03-10T08:15":            time.Date(2025, 3, 10, 8, 15, 0, 0, loc),
		"2025-03-10T08:15:30":         time.Date(2025, 3, 10, 8, 15, 30, 0, loc),
		"2025-03-10 08:15:30":         time.Date(2025, 3, 10, 8, 15, 30, 0, loc),
		"2025-03-10":                  time.Date(2025, 3, 10, 0, 0, 0, 0, loc),
		"2025-03-10T13:15:00Z":        time.Date(2025, 3, 10, 8, 15, 0, 0, loc),
		"2025-03-10T13:15:00.500Z":    time.Date(2025, 3, 10, 13, 15, 0, 500_000_000, time.UTC),
		" 2025-03-10T08:15:00-05:00 ": time.Date(2025, 3, 10, 8, 15, 0, 0, loc),
	}
	for raw, want := range cases {
		got, err := ParseDate(raw, loc)
		if !assert.NoError(t, err, raw) {
			continue
		}
		assert.True(t, want.Equal(got), "%q: got %s want %s", raw, got, want)
	}

	_, err := ParseDate("mañana", loc)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestIsDateInPast_UsesLocalMidnight(t *testing.T) {
	loc := time.FixedZone("PET", -5*3600)
	now := time.Date(2025, 3, 10, 1, 0, 0, 0, loc)

	// 2025-03-10 04:00 UTC es 2025-03-09 23:00 local.
	assert.True(t, IsDateInPast(time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC), now))
}

func TestSameSlot(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	assert.True(t, SameSlot(base, base.Add(45*time.Second)))
	assert.False(t, SameSlot(base, base.Add(time.Minute)))
}
