package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"veterinaria-api/internal/domain/apperr"
)

// Códigos SQLSTATE que traducimos a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidTextRepr     = "22P02"
	codeInvalidDatetime     = "22007"
	codeStringTooLong       = "22001"
	codeNumericOutOfRange   = "22003"
)

// mapWriteErr traduce errores de INSERT/UPDATE.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return errors.Join(apperr.ErrConflict, err)
	case codeForeignKeyViolation:
		return errors.Join(apperr.ErrMissingReference, err)
	case codeCheckViolation, codeInvalidTextRepr, codeInvalidDatetime, codeStringTooLong, codeNumericOutOfRange:
		return errors.Join(apperr.ErrInvalidInput, err)
	default:
		return err
	}
}

// mapDeleteErr traduce errores de DELETE: una FK rota significa que hay hijos.
func mapDeleteErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return errors.Join(apperr.ErrReferenced, err)
	}
	return err
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}
	return err
}

// requireAffected devuelve apperr.ErrNotFound si el UPDATE/DELETE no tocó filas.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern arma el patrón de búsqueda por subcadena para ILIKE.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// searchWhere arma "WHERE (c1 ILIKE $1 OR c2 ILIKE $1 ...)".
func searchWhere(cols ...string) string {
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, c+" ILIKE $1")
	}
	return " WHERE (" + strings.Join(parts, " OR ") + ")"
}

// listQuery agrega el filtro de búsqueda (si hay término) y el ORDER BY.
func listQuery(base, orderBy, search string, cols ...string) (string, []any) {
	if search == "" {
		return base + " ORDER BY " + orderBy, nil
	}
	return base + searchWhere(cols...) + " ORDER BY " + orderBy, []any{likePattern(search)}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}
