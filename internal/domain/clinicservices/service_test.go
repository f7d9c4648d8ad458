package clinicservices

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/platform/jsonx"
)

type recordingRepo struct {
	Repository
	created ClinicService
}

func (r *recordingRepo) Create(ctx context.Context, cs ClinicService) (int64, error) {
	r.created = cs
	return 1, nil
}

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestService_Create_RoundsPriceAndOptionalFields(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Input{Name: " Consulta ", Price: price("40.005")})
	require.NoError(t, err)
	assert.Equal(t, "Consulta", repo.created.Name)
	assert.Equal(t, 40.01, repo.created.Price)
	assert.Nil(t, repo.created.Description)
	assert.Nil(t, repo.created.SubcategoryID)

	_, err = svc.Create(context.Background(), Input{
		Name:          "Vacuna",
		Description:   "Triple felina",
		Price:         price("0"),
		SubcategoryID: jsonx.NewInt(3),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created.Description)
	assert.Equal(t, "Triple felina", *repo.created.Description)
	require.NotNil(t, repo.created.SubcategoryID)
	assert.Equal(t, int64(3), *repo.created.SubcategoryID)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(&recordingRepo{})

	_, err := svc.Create(context.Background(), Input{Name: "Consulta"})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{Price: price("10")})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(context.Background(), Input{Name: "Consulta", Price: price("-1")})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestService_Create_ColumnLimits(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	// NUMERIC(10,2): 99999999.99 entra, 1e8 no (tampoco lo que redondea a 1e8)
	_, err := svc.Create(ctx, Input{Name: "Cirugía", Price: price("99999999.99")})
	require.NoError(t, err)
	assert.Equal(t, 99999999.99, repo.created.Price)

	for _, p := range []string{"100000000", "99999999.995", "123456789012"} {
		_, err := svc.Create(ctx, Input{Name: "Cirugía", Price: price(p)})
		assert.ErrorIs(t, err, apperr.ErrInvalidInput, p)
	}

	_, err = svc.Create(ctx, Input{Name: strings.Repeat("x", 151), Price: price("10")})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.Create(ctx, Input{Name: strings.Repeat("x", 150), Price: price("10")})
	assert.NoError(t, err)
}
