package clients

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
)

// recordingRepo guarda el último cliente escrito.
type recordingRepo struct {
	Repository
	created Client
	updated Client
}

func (r *recordingRepo) Create(ctx context.Context, c Client) (int64, error) {
	r.created = c
	return 1, nil
}

func (r *recordingRepo) Update(ctx context.Context, c Client) error {
	r.updated = c
	return nil
}

func strPtr(s string) *string { return &s }

func TestService_Create_DefaultsAndTrims(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	id, err := svc.Create(context.Background(), Input{
		FirstName:       "  Ana ",
		PaternalSurname: "Rojas",
		MaternalSurname: "Vega",
		DNI:             " 12345678 ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "Ana", repo.created.FirstName)
	assert.Equal(t, "12345678", repo.created.DNI)
	assert.Equal(t, DefaultEmail, repo.created.Email)
	assert.Equal(t, now, repo.created.CreatedAt)
	assert.Equal(t, now, repo.created.UpdatedAt)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(&recordingRepo{})

	cases := map[string]Input{
		"sin DNI":          {FirstName: "Ana", PaternalSurname: "Rojas", MaternalSurname: "Vega"},
		"sin nombre":       {PaternalSurname: "Rojas", MaternalSurname: "Vega", DNI: "12345678"},
		"DNI corto":        {FirstName: "Ana", PaternalSurname: "Rojas", MaternalSurname: "Vega", DNI: "1234567"},
		"DNI con letras":   {FirstName: "Ana", PaternalSurname: "Rojas", MaternalSurname: "Vega", DNI: "1234567A"},
		"DNI de 9 dígitos": {FirstName: "Ana", PaternalSurname: "Rojas", MaternalSurname: "Vega", DNI: "123456789"},
		"nombre largo":     {FirstName: strings.Repeat("a", 101), PaternalSurname: "Rojas", MaternalSurname: "Vega", DNI: "12345678"},
		"teléfono largo":   {FirstName: "Ana", PaternalSurname: "Rojas", MaternalSurname: "Vega", DNI: "12345678", Phone: strings.Repeat("9", 21)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}

func TestService_Update_KeepsGivenEmail(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	err := svc.Update(context.Background(), 5, Input{
		FirstName:       "Ana",
		PaternalSurname: "Rojas",
		MaternalSurname: "Vega",
		DNI:             "12345678",
		Email:           strPtr(" ana@correo.pe "),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.updated.ID)
	assert.Equal(t, "ana@correo.pe", repo.updated.Email)
}
