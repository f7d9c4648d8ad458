package clinicservices

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "servicios",
	NotFound:   "Servicio no encontrado.",
	Conflict:   "Ya existe un servicio con este nombre.",
	Referenced: "No se puede eliminar el servicio porque está asignado a citas. Por favor, elimina primero los elementos relacionados.",
	MissingRef: "La subcategoría indicada no existe.",
	Internal:   "Error interno del servidor al procesar servicios.",
	Created:    "Servicio creado correctamente.",
	Updated:    "Servicio actualizado correctamente.",
	Deleted:    "Servicio eliminado correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[ClinicService, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/servicios", func(sr chi.Router) {
		sr.Get("/", listServices(res))
		sr.Post("/", createService(res))
		sr.Get("/{id}", getService(res))
		sr.Put("/{id}", updateService(res))
		sr.Delete("/{id}", deleteService(res))
	})
}

// listServices godoc
// @Summary Listar servicios
// @Description Búsqueda opcional por NombreServicio, Descripcion, subcategoría o categoría (subcadena, sin distinguir mayúsculas).
// @Tags servicios
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} ClinicService
// @Failure 500 {object} web.ErrorBody
// @Router /api/servicios [get]
func listServices(res web.Resource[ClinicService, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getService godoc
// @Summary Obtener servicio por ID
// @Tags servicios
// @Produce json
// @Param id path int true "ID del servicio"
// @Success 200 {object} ClinicService
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/servicios/{id} [get]
func getService(res web.Resource[ClinicService, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createService godoc
// @Summary Crear servicio
// @Description Obligatorios: NombreServicio y Precio (número o string, >= 0 y < 100000000). SubcategoriaID es opcional.
// @Tags servicios
// @Accept json
// @Produce json
// @Param payload body Input true "Datos del servicio"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/servicios [post]
func createService(res web.Resource[ClinicService, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateService godoc
// @Summary Actualizar servicio
// @Tags servicios
// @Accept json
// @Produce json
// @Param id path int true "ID del servicio"
// @Param payload body Input true "Datos del servicio"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/servicios/{id} [put]
func updateService(res web.Resource[ClinicService, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteService godoc
// @Summary Eliminar servicio
// @Description Devuelve 409 si tiene registros asociados.
// @Tags servicios
// @Produce json
// @Param id path int true "ID del servicio"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/servicios/{id} [delete]
func deleteService(res web.Resource[ClinicService, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
