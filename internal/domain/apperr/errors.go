// Package apperr define la taxonomía de errores que comparten services,
// adapters de storage y handlers HTTP.
package apperr

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrConflict: violación de unicidad (DNI, nombres, par cita/servicio).
	ErrConflict = errors.New("conflict")

	// ErrReferenced: no se puede borrar porque hay filas hijas que apuntan a la fila.
	ErrReferenced = errors.New("referenced by other rows")

	// ErrMissingReference: la fila apunta a un padre que no existe.
	ErrMissingReference = errors.New("missing referenced row")
)

// ValidationError lleva un mensaje apto para el cliente (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Invalid construye un error de entrada con mensaje visible para el usuario.
func Invalid(msg string) error {
	return &ValidationError{Msg: msg}
}

// Message devuelve el mensaje de un ValidationError, o "" si err no lo es.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Msg
	}
	return ""
}
