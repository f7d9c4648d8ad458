package pets

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/platform/jsonx"
)

type recordingRepo struct {
	Repository
	created Pet
}

func (r *recordingRepo) Create(ctx context.Context, p Pet) (int64, error) {
	r.created = p
	return 1, nil
}

func validInput() Input {
	return Input{
		Name:     "Toby",
		Age:      jsonx.NewInt(0),
		Sex:      string(SexMale),
		ClientID: jsonx.NewInt(1),
		BreedID:  jsonx.NewInt(2),
	}
}

func TestService_Create_AgeZeroIsValid(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, 0, repo.created.Age)
	assert.Equal(t, int64(1), repo.created.ClientID)
	assert.Equal(t, int64(2), repo.created.BreedID)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(&recordingRepo{})

	mutate := map[string]func(*Input){
		"sin nombre":    func(in *Input) { in.Name = "  " },
		"sin edad":      func(in *Input) { in.Age = jsonx.Int{} },
		"edad negativa": func(in *Input) { in.Age = jsonx.NewInt(-1) },
		"sin sexo":      func(in *Input) { in.Sex = "" },
		"sin cliente":   func(in *Input) { in.ClientID = jsonx.Int{} },
		"raza cero":     func(in *Input) { in.BreedID = jsonx.NewInt(0) },
		"edad > int32":  func(in *Input) { in.Age = jsonx.NewInt(math.MaxInt32 + 1) },
		"nombre largo":  func(in *Input) { in.Name = strings.Repeat("a", 101) },
		"sexo largo":    func(in *Input) { in.Sex = "Desconocido" },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			fn(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
		})
	}
}
