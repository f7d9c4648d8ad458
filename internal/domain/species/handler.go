package species

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"veterinaria-api/internal/platform/logger"
	"veterinaria-api/internal/platform/web"
)

var messages = web.Messages{
	Entity:     "especies",
	NotFound:   "Especie no encontrada.",
	Conflict:   "Ya existe una especie con este nombre.",
	Referenced: "No se puede eliminar la especie porque tiene razas o mascotas asociadas. Por favor, elimina primero los elementos relacionados.",
	Internal:   "Error interno del servidor al procesar especies.",
	Created:    "Especie creada correctamente.",
	Updated:    "Especie actualizada correctamente.",
	Deleted:    "Especie eliminada correctamente.",
}

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	res := web.Resource[Species, Input]{
		Service:  svc,
		Messages: messages,
		Log:      log,
	}

	r.Route("/api/especies", func(sr chi.Router) {
		sr.Get("/", listSpecies(res))
		sr.Post("/", createSpecies(res))
		sr.Get("/{id}", getSpecies(res))
		sr.Put("/{id}", updateSpecies(res))
		sr.Delete("/{id}", deleteSpecies(res))
	})
}

// listSpecies godoc
// @Summary Listar especies
// @Description Búsqueda opcional por NombreEspecie (subcadena, sin distinguir mayúsculas).
// @Tags especies
// @Produce json
// @Param search query string false "Texto a buscar"
// @Success 200 {array} Species
// @Failure 500 {object} web.ErrorBody
// @Router /api/especies [get]
func listSpecies(res web.Resource[Species, Input]) http.HandlerFunc {
	return web.ListHandler(res)
}

// getSpecies godoc
// @Summary Obtener especie por ID
// @Tags especies
// @Produce json
// @Param id path int true "ID de la especie"
// @Success 200 {object} Species
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/especies/{id} [get]
func getSpecies(res web.Resource[Species, Input]) http.HandlerFunc {
	return web.GetHandler(res)
}

// createSpecies godoc
// @Summary Crear especie
// @Tags especies
// @Accept json
// @Produce json
// @Param payload body Input true "Datos de la especie"
// @Success 201 {object} web.CreatedBody
// @Failure 400 {object} web.ErrorBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/especies [post]
func createSpecies(res web.Resource[Species, Input]) http.HandlerFunc {
	return web.CreateHandler(res)
}

// updateSpecies godoc
// @Summary Actualizar especie
// @Tags especies
// @Accept json
// @Produce json
// @Param id path int true "ID de la especie"
// @Param payload body Input true "Datos de la especie"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/especies/{id} [put]
func updateSpecies(res web.Resource[Species, Input]) http.HandlerFunc {
	return web.UpdateHandler(res)
}

// deleteSpecies godoc
// @Summary Eliminar especie
// @Description Devuelve 409 si tiene registros asociados.
// @Tags especies
// @Produce json
// @Param id path int true "ID de la especie"
// @Success 200 {object} web.MessageBody
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.MessageBody
// @Failure 409 {object} web.ErrorBody
// @Failure 500 {object} web.ErrorBody
// @Router /api/especies/{id} [delete]
func deleteSpecies(res web.Resource[Species, Input]) http.HandlerFunc {
	return web.DeleteHandler(res)
}
