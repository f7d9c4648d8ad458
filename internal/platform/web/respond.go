package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/domain/apperr"
	"veterinaria-api/internal/platform/logger"
)

// WriteJSON escribe v como JSON con el status dado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody es la forma {"error": "..."} de las respuestas de error.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody es la forma {"message": "..."} de confirmaciones y 404.
type MessageBody struct {
	Message string `json:"message"`
}

// CreatedBody es la respuesta 201 de los POST.
type CreatedBody struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func WriteErrorMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Error: msg})
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageBody{Message: msg})
}

// Messages es la tabla de mensajes por entidad para cada tipo de error.
type Messages struct {
	Entity string // solo para logs, p.ej. "clientes"

	NotFound   string
	Conflict   string
	Referenced string
	MissingRef string
	Internal   string

	Created string
	Updated string
	Deleted string
}

func (m Messages) withDefaults() Messages {
	if m.NotFound == "" {
		m.NotFound = "Registro no encontrado."
	}
	if m.Conflict == "" {
		m.Conflict = "El registro ya existe."
	}
	if m.Referenced == "" {
		m.Referenced = "No se puede eliminar porque tiene registros asociados."
	}
	if m.MissingRef == "" {
		m.MissingRef = "Alguno de los registros referenciados no existe."
	}
	if m.Internal == "" {
		m.Internal = "Error interno del servidor."
	}
	return m
}

// StatusFor mapea un error de dominio a su status HTTP.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrMissingReference):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrReferenced):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError traduce err a la respuesta HTTP usando la tabla de mensajes.
// Los errores no previstos se loguean con el detalle y salen como 500 genérico.
func WriteError(w http.ResponseWriter, log logger.Logger, op string, err error, msgs Messages) {
	msgs = msgs.withDefaults()

	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		msg := apperr.Message(err)
		if msg == "" {
			msg = "Datos inválidos."
		}
		WriteErrorMessage(w, http.StatusBadRequest, msg)
	case errors.Is(err, apperr.ErrMissingReference):
		WriteErrorMessage(w, http.StatusBadRequest, msgs.MissingRef)
	case errors.Is(err, apperr.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, msgs.NotFound)
	case errors.Is(err, apperr.ErrConflict):
		WriteErrorMessage(w, http.StatusConflict, msgs.Conflict)
	case errors.Is(err, apperr.ErrReferenced):
		WriteErrorMessage(w, http.StatusConflict, msgs.Referenced)
	default:
		if log != nil {
			log.Error("unexpected error", map[string]any{
				"entity": msgs.Entity,
				"op":     op,
				"error":  err,
			})
		}
		WriteErrorMessage(w, http.StatusInternalServerError, msgs.Internal)
	}
}

// DecodeJSON decodifica el body en v. Body inválido => apperr.ErrInvalidInput.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return apperr.Invalid("Cuerpo de la petición vacío.")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Invalid("JSON inválido.")
	}
	return nil
}

// ParseID lee el parámetro {id} de la ruta; debe ser entero positivo.
func ParseID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("ID inválido.")
	}
	return id, nil
}

// SearchTerm devuelve ?search= ya recortado.
func SearchTerm(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("search"))
}
