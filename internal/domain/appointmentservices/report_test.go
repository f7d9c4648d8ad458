package appointmentservices

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/platform/jsonx"
)

func ptr[T any](v T) *T { return &v }

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func headerRow() ReportRow {
	return ReportRow{
		AppointmentID:           9,
		AppointmentDate:         time.Date(2025, 5, 2, 10, 30, 0, 0, time.UTC),
		AppointmentStatus:       "Programada",
		PetID:                   3,
		PetName:                 "Firulais",
		PetAge:                  4,
		PetSex:                  "Macho",
		PetSpecies:              "Perro",
		PetBreed:                "Mestizo",
		ClientID:                1,
		ClientFirstName:         "Ana",
		ClientPaternalSurname:   "Quispe",
		ClientMaternalSurname:   "Rojas",
		ClientDNI:               "12345678",
		ClientPhone:             "999111222",
		ClientAddress:           "Av. Sol 123",
		ClientEmail:             "ana@example.com",
		EmployeeFirstName:       "Luis",
		EmployeePaternalSurname: "Huamán",
		EmployeeRole:            "Veterinario",
	}
}

func TestBuildReport_TwoServices(t *testing.T) {
	bath := headerRow()
	bath.ServiceID = ptr(int64(5))
	bath.ServiceName = ptr("Baño")
	bath.ServicePrice = price("25.10")

	consult := headerRow()
	consult.ServiceID = ptr(int64(2))
	consult.ServiceName = ptr("Consulta")
	consult.ServiceDescription = ptr("General")
	consult.ServicePrice = price("40.20")

	got := BuildReport([]ReportRow{bath, consult})

	want := Report{
		AppointmentID: 9,
		Date:          time.Date(2025, 5, 2, 10, 30, 0, 0, time.UTC),
		Status:        "Programada",
		Pet:           ReportPet{ID: 3, Name: "Firulais", Age: 4, Sex: "Macho", Species: "Perro", Breed: "Mestizo"},
		Client: ReportClient{
			ID: 1, FirstName: "Ana", PaternalSurname: "Quispe", MaternalSurname: "Rojas",
			DNI: "12345678", Phone: "999111222", Address: "Av. Sol 123", Email: "ana@example.com",
		},
		Employee: ReportEmployee{FirstName: "Luis", PaternalSurname: "Huamán", Role: "Veterinario"},
		Services: []ReportLine{
			{ID: 5, Name: "Baño", Price: 25.10},
			{ID: 2, Name: "Consulta", Description: ptr("General"), Price: 40.20},
		},
		Total: 65.30,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildReport_NoServices(t *testing.T) {
	got := BuildReport([]ReportRow{headerRow()})

	require.NotNil(t, got.Services)
	assert.Empty(t, got.Services)
	assert.Equal(t, 0.0, got.Total)
}

func TestBuildReport_TotalIsRounded(t *testing.T) {
	a := headerRow()
	a.ServiceID = ptr(int64(1))
	a.ServicePrice = price("0.105")
	b := headerRow()
	b.ServiceID = ptr(int64(2))
	b.ServicePrice = price("0.2")

	got := BuildReport([]ReportRow{a, b})
	assert.Equal(t, 0.31, got.Total)
}

// -------------------------
// Service
// -------------------------

type reportRepo struct {
	Repository
	rows []ReportRow
}

func (r *reportRepo) ReportRows(ctx context.Context, appointmentID int64) ([]ReportRow, error) {
	if appointmentID != 9 {
		return nil, nil
	}
	return r.rows, nil
}

func TestService_Report_NotFound(t *testing.T) {
	svc := NewService(&reportRepo{rows: []ReportRow{headerRow()}})

	_, err := svc.Report(context.Background(), 404)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	rep, err := svc.Report(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), rep.AppointmentID)
}

func TestService_Create_RequiresBothIDs(t *testing.T) {
	svc := NewService(&reportRepo{})

	_, err := svc.Create(context.Background(), Input{AppointmentID: jsonx.NewInt(1)})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{ServiceID: jsonx.NewInt(1), AppointmentID: jsonx.NewInt(0)})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
