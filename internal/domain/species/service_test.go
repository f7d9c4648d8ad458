package species

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
)

type recordingRepo struct {
	Repository
	created Species
}

func (r *recordingRepo) Create(ctx context.Context, sp Species) (int64, error) {
	r.created = sp
	return 1, nil
}

func TestService_Create_Name(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Name: "  Perro "})
	require.NoError(t, err)
	assert.Equal(t, "Perro", repo.created.Name)

	_, err = svc.Create(ctx, Input{Name: " "})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, Input{Name: strings.Repeat("p", 300)})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "NombreEspecie no puede superar 100 caracteres.", apperr.Message(err))
}
