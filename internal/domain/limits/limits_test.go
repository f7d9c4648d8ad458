package limits

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veterinaria-api/internal/domain/apperr"
)

func TestCheck(t *testing.T) {
	require.NoError(t, Check(
		Field{Name: "Nombre", Value: strings.Repeat("a", Name), Max: Name},
		Field{Name: "Telefono", Value: "", Max: Phone},
	))

	// se cuentan caracteres: 100 "ñ" ocupan 200 bytes y siguen siendo válidos
	require.NoError(t, Check(Field{Name: "Nombre", Value: strings.Repeat("ñ", Name), Max: Name}))

	err := Check(
		Field{Name: "Nombre", Value: "ok", Max: Name},
		Field{Name: "Telefono", Value: strings.Repeat("9", Phone+1), Max: Phone},
	)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "Telefono no puede superar 20 caracteres.", apperr.Message(err))
}
