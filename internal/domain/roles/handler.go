package roles

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "roles",
	NotFound:   "Rol no encontrado.",
	Conflict:   "Ya existe un rol con este nombre.",
	Referenced: "No se puede eliminar el rol porque tiene empleados asociados. Por favor, elimina primero los empleados relacionados.",
	Internal:   "Error interno del servidor al procesar roles.",
	Created:    "Rol creado correctamente.",
	Updated:    "Rol actualizado correctamente.",
	Deleted:    "Rol eliminado correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Role, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
		// El SPA agrega el rol creado a la tabla sin recargar.
		CreatedExtra: func(in Input) map[string]any {
			return map[string]any{"NombreRol": strings.TrimSpace(in.Name)}
		},
	}

	r.Route("/api/roles", func(rr chi.Router) {
		rr.Get("/", listRoles(res))
		rr.Post("/", createRole(res))
		rr.Get("/{id}", getRole(res))
		rr.Put("/{id}", updateRole(res))
		rr.Delete("/{id}", deleteRole(res))
	})
}

// listRoles godoc
// @Summary Listar roles
// @Description Búsqueda opcional por NombreRol (subcadena, sin distinguir mayúsculas).
// @Tags roles
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Role
// @Failure 500 {object} web.ErrorBody
// @Router /api/roles [get]
func listRoles(res web.Resource[Role, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getRole godoc
// @Summary Obtener rol por ID
// @Tags roles
// @Produce json
// @Param id path int true "ID del rol"
// @Success 200 {object} Role
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/roles/{id} [get]
func getRole(res web.Resource[Role, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createRole godoc
// @Summary Crear rol
// @Tags roles
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del rol"
// @Success 201 {object} web.CreatedBody{NombreRol=string}
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/roles [post]
func createRole(res web.Resource[Role, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateRole godoc
// @Summary Actualizar rol
// @Tags roles
// @Accept json
// @Produce json
// @Param id path int true "ID del rol"
// @Param payload body Input true "Datos del rol"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/roles/{id} [put]
func updateRole(res web.Resource[Role, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteRole godoc
// @Summary Eliminar rol
// @Description Devuelve 409 si tiene registros asociados.
// @Tags roles
// @Produce json
// @Param id path int true "ID del rol"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/roles/{id} [delete]
func deleteRole(res web.Resource[Role, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
