package web

import (
	"context"
	"net/http"

	"veterinaria-api/internal/platform/logger"
)

// CRUDService es el contrato uniforme List/Get/Create/Update/Delete que
// implementa el service de cada entidad.
type CRUDService[T any, In any] interface {
	List(ctx context.Context, search string) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in In) (int64, error)
	Update(ctx context.Context, id int64, in In) error
	Delete(ctx context.Context, id int64) error
}

// Resource describe una entidad montada sobre el contrato CRUD.
type Resource[T any, In any] struct {
	Service  CRUDService[T, In]
	Messages Messages
	Log      logger.Logger

	// Opcional: campos extra para la respuesta 201 (además de id y message).
	CreatedExtra func(in In) map[string]any
}

// ListHandler: GET / con ?search= opcional. Nunca devuelve null.
func ListHandler[T any, In any](res Resource[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := res.Service.List(r.Context(), SearchTerm(r))
		if err != nil {
			WriteError(w, res.Log, "list", err, res.Messages)
			return
		}
		if items == nil {
			items = []T{}
		}
		WriteJSON(w, http.StatusOK, items)
	}
}

func GetHandler[T any, In any](res Resource[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(r)
		if err != nil {
			WriteError(w, res.Log, "get", err, res.Messages)
			return
		}

		item, err := res.Service.GetByID(r.Context(), id)
		if err != nil {
			WriteError(w, res.Log, "get", err, res.Messages)
			return
		}
		WriteJSON(w, http.StatusOK, item)
	}
}

// CreateHandler responde 201 {"id","message"} (+ CreatedExtra).
func CreateHandler[T any, In any](res Resource[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := DecodeJSON(r, &in); err != nil {
			WriteError(w, res.Log, "create", err, res.Messages)
			return
		}

		id, err := res.Service.Create(r.Context(), in)
		if err != nil {
			WriteError(w, res.Log, "create", err, res.Messages)
			return
		}

		msg := res.Messages.Created
		if msg == "" {
			msg = "Registro creado correctamente."
		}
		if res.CreatedExtra == nil {
			WriteJSON(w, http.StatusCreated, CreatedBody{ID: id, Message: msg})
			return
		}

		body := map[string]any{}
		for k, v := range res.CreatedExtra(in) {
			body[k] = v
		}
		body["id"] = id
		body["message"] = msg
		WriteJSON(w, http.StatusCreated, body)
	}
}

func UpdateHandler[T any, In any](res Resource[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(r)
		if err != nil {
			WriteError(w, res.Log, "update", err, res.Messages)
			return
		}

		var in In
		if err := DecodeJSON(r, &in); err != nil {
			WriteError(w, res.Log, "update", err, res.Messages)
			return
		}

		if err := res.Service.Update(r.Context(), id, in); err != nil {
			WriteError(w, res.Log, "update", err, res.Messages)
			return
		}

		msg := res.Messages.Updated
		if msg == "" {
			msg = "Registro actualizado correctamente."
		}
		WriteMessage(w, http.StatusOK, msg)
	}
}

func DeleteHandler[T any, In any](res Resource[T, In]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := ParseID(r)
		if err != nil {
			WriteError(w, res.Log, "delete", err, res.Messages)
			return
		}

		if err := res.Service.Delete(r.Context(), id); err != nil {
			WriteError(w, res.Log, "delete", err, res.Messages)
			return
		}

		msg := res.Messages.Deleted
		if msg == "" {
			msg = "Registro eliminado correctamente."
		}
		WriteMessage(w, http.StatusOK, msg)
	}
}
