package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/platform/web"
)

func pgErr(code string) error {
	// Los repos reciben el error envuelto por database/sql / pgx.
	return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code})
}

func TestMapWriteErr(t *testing.T) {
	cases := []struct {
		code   string
		want   error
		status int
	}{
		{codeUniqueViolation, apperr.ErrConflict, http.StatusConflict},
		{codeForeignKeyViolation, apperr.ErrMissingReference, http.StatusBadRequest},
		{codeCheckViolation, apperr.ErrInvalidInput, http.StatusBadRequest},
		{codeInvalidTextRepr, apperr.ErrInvalidInput, http.StatusBadRequest},
		{codeInvalidDatetime, apperr.ErrInvalidInput, http.StatusBadRequest},
		{codeStringTooLong, apperr.ErrInvalidInput, http.StatusBadRequest},
		{codeNumericOutOfRange, apperr.ErrInvalidInput, http.StatusBadRequest},
		{"40001", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			in := pgErr(tc.code)
			err := mapWriteErr(in)

			// el error original se conserva para el log
			assert.ErrorIs(t, err, in)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
			assert.Equal(t, tc.status, web.StatusFor(err))
		})
	}

	assert.NoError(t, mapWriteErr(nil))
	plain := errors.New("conexión cerrada")
	assert.Same(t, plain, mapWriteErr(plain))
}

func TestMapDeleteErr(t *testing.T) {
	err := mapDeleteErr(pgErr(codeForeignKeyViolation))
	assert.ErrorIs(t, err, apperr.ErrReferenced)
	assert.NotErrorIs(t, err, apperr.ErrMissingReference)
	assert.Equal(t, http.StatusConflict, web.StatusFor(err))

	assert.Equal(t, http.StatusInternalServerError, web.StatusFor(mapDeleteErr(pgErr(codeUniqueViolation))))
	assert.NoError(t, mapDeleteErr(nil))
}

func TestMapNoRows(t *testing.T) {
	assert.ErrorIs(t, mapNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)), apperr.ErrNotFound)

	other := errors.New("otro")
	assert.Same(t, other, mapNoRows(other))
}

func TestLikePattern(t *testing.T) {
	cases := map[string]string{
		"gato":   "%gato%",
		"50%":    `%50\%%`,
		"a_b":    `%a\_b%`,
		`c:\dir`: `%c:\\dir%`,
		`\%_`:    `%\\\%\_%`,
	}
	for in, want := range cases {
		assert.Equal(t, want, likePattern(in), in)
	}
}

func TestListQuery(t *testing.T) {
	base := "SELECT especie_id, nombre_especie FROM especies"
	order := "LOWER(nombre_especie), especie_id"

	q, args := listQuery(base, order, "", "nombre_especie")
	assert.Equal(t, base+" ORDER BY "+order, q)
	assert.Empty(t, args)

	q, args = listQuery(base, order, "pe_rro", "r.nombre_raza", "e.nombre_especie")
	assert.Equal(t,
		base+" WHERE (r.nombre_raza ILIKE $1 OR e.nombre_especie ILIKE $1) ORDER BY "+order, q)
	assert.Equal(t, []any{`%pe\_rro%`}, args)
}
